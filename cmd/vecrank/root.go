package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/hupe1980/vecrank"
	"github.com/hupe1980/vecrank/codec"
	"github.com/hupe1980/vecrank/dataset"
	"github.com/hupe1980/vecrank/distance"
	"github.com/hupe1980/vecrank/prom"
)

type flags struct {
	store       string
	codecName   string
	workers     int
	scores      bool
	exclude     []string
	logLevel    string
	logFormat   string
	listMetrics bool
	metrics     bool
	noColor     bool
}

// env carries the resources shared by all subcommands.
type env struct {
	flags
	stdout, stderr io.Writer
	logger         *vecrank.Logger
	registry       *prometheus.Registry
	collector      vecrank.MetricsCollector
	jsonCodec      codec.Codec
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	e := &env{stdout: stdout, stderr: stderr}

	cmd := newRootCmd(e)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprint(stderr, "error: ")
		fmt.Fprintln(stderr, err)
	}

	if e.metrics && e.registry != nil {
		if werr := prom.WriteText(stderr, e.registry); werr != nil && err == nil {
			err = werr
		}
	}
	return exitCode(err)
}

func newRootCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vecrank <target> <feature_file> <N> <metric>",
		Short: "Rank feature vectors by similarity to a target entry",
		Long: "vecrank scores every entry of a feature file against the target entry\n" +
			"and prints the N best matches, best first. The target itself is never listed.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if e.listMetrics {
				return nil
			}
			if len(args) != 4 {
				return usagef("accepts 4 args, received %d", len(args))
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.listMetrics {
				return e.printMetrics(distance.Default())
			}
			return e.rank(cmd.Context(), cmd.Flags().Changed("store"), args)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&e.store, "store", "", "feature store: DIR, file://DIR, s3://BUCKET/PREFIX or minio://ENDPOINT/BUCKET/PREFIX (default: read feature_file as a local path)")
	pf.StringVar(&e.codecName, "codec", "go-json", "JSON codec for .json feature files: json or go-json")
	pf.StringVar(&e.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&e.logFormat, "log-format", "text", "log format: text or json")
	pf.BoolVar(&e.metrics, "metrics", false, "print Prometheus metrics to stderr on exit")
	pf.BoolVar(&e.noColor, "no-color", false, "disable colored output")

	f := cmd.Flags()
	f.IntVarP(&e.workers, "workers", "w", 1, "number of goroutines scoring in parallel")
	f.BoolVarP(&e.scores, "scores", "s", false, "print the score next to each match")
	f.StringSliceVarP(&e.exclude, "exclude", "x", nil, "identifiers to leave out of the result")
	f.BoolVar(&e.listMetrics, "list-metrics", false, "list the registered metrics and exit")

	cmd.AddCommand(newConvertCmd(e))
	return cmd
}

func (e *env) setup() error {
	if e.noColor {
		color.NoColor = true
	}

	c, ok := codec.ByName(e.codecName)
	if !ok {
		return usagef("invalid --codec %q", e.codecName)
	}
	e.jsonCodec = c

	var level slog.Level
	if err := level.UnmarshalText([]byte(e.logLevel)); err != nil {
		return usagef("invalid --log-level %q", e.logLevel)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(e.logFormat) {
	case "text":
		e.logger = vecrank.NewLogger(slog.NewTextHandler(e.stderr, opts))
	case "json":
		e.logger = vecrank.NewLogger(slog.NewJSONHandler(e.stderr, opts))
	default:
		return usagef("invalid --log-format %q", e.logFormat)
	}

	e.collector = vecrank.NoopMetricsCollector{}
	if e.metrics {
		e.registry = prometheus.NewRegistry()
		e.collector = prom.NewCollector(e.registry)
	}
	return nil
}

func (e *env) loadOptions() []dataset.Option {
	return []dataset.Option{
		dataset.WithCodec(e.jsonCodec),
		dataset.WithLogger(e.logger),
		dataset.WithMetricsCollector(e.collector),
	}
}

func (e *env) rank(ctx context.Context, storeSet bool, args []string) error {
	target, file, rawN, metric := args[0], args[1], args[2], args[3]

	n, err := strconv.Atoi(rawN)
	if err != nil {
		return usagef("invalid N %q: not an integer", rawN)
	}
	if e.workers < 1 {
		return usagef("invalid --workers %d: must be at least 1", e.workers)
	}

	spec, name, err := e.locate(storeSet, file)
	if err != nil {
		return err
	}

	// Reject bad parameters before touching the store.
	if n <= 0 {
		return fmt.Errorf("%w: got %d", vecrank.ErrInvalidN, n)
	}
	if _, err := distance.Default().Resolve(metric); err != nil {
		return err
	}

	store, err := spec.open(ctx)
	if err != nil {
		return err
	}

	ds, err := dataset.Load(ctx, store, name, e.loadOptions()...)
	if err != nil {
		return classifyLoad(err)
	}

	ranker := vecrank.New(
		vecrank.WithWorkers(e.workers),
		vecrank.WithLogger(e.logger),
		vecrank.WithMetricsCollector(e.collector),
	)

	matches, err := ranker.RankMatches(ctx, ds, target, metric, n, vecrank.Exclude(e.exclude...))
	if err != nil {
		return err
	}

	title := color.New(color.FgCyan, color.Bold)
	id := color.New(color.FgGreen)
	score := color.New(color.FgHiBlack)

	title.Fprintf(e.stdout, "Top %d matches for %s (%s):\n", n, target, metric)
	for i, m := range matches {
		fmt.Fprintf(e.stdout, "%3d. ", i+1)
		id.Fprint(e.stdout, m.ID)
		if e.scores {
			score.Fprintf(e.stdout, "  %g", m.Score)
		}
		fmt.Fprintln(e.stdout)
	}
	return nil
}

// classifyLoad marks load failures that are not about the file's content as
// I/O errors.
func classifyLoad(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if exitCode(err) == exitFailure {
		return &ioError{err: err}
	}
	return err
}

func (e *env) printMetrics(r *distance.Registry) error {
	name := color.New(color.FgGreen)
	for _, n := range r.Names() {
		m, err := r.Resolve(n)
		if err != nil {
			return err
		}
		name.Fprintf(e.stdout, "%-28s", n)
		fmt.Fprintf(e.stdout, " %s\n", m.Direction())
	}
	return nil
}
