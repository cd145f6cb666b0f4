package vecrank

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecrank/distance"
	"github.com/hupe1980/vecrank/model"
)

// cancelCheckInterval is how many entries a scan scores between context checks.
const cancelCheckInterval = 1024

// Ranker executes exhaustive top-N scans over a dataset.
// It holds no per-call state and is safe for concurrent use.
type Ranker struct {
	opts options
}

// New creates a Ranker.
func New(optFns ...Option) *Ranker {
	return &Ranker{opts: applyOptions(optFns)}
}

var defaultRanker = New()

// Rank returns the identifiers of the n entries most similar to queryID using
// a sequential Ranker and the default metric registry.
func Rank(ds model.Dataset, queryID, metricName string, n int) ([]string, error) {
	return defaultRanker.Rank(context.Background(), ds, queryID, metricName, n)
}

// RankOption configures a single ranking call.
type RankOption func(*rankOptions)

type rankOptions struct {
	exclude []string
}

// Exclude skips entries with the given identifiers in addition to the query.
// Identifiers absent from the dataset are ignored.
func Exclude(ids ...string) RankOption {
	return func(o *rankOptions) {
		o.exclude = append(o.exclude, ids...)
	}
}

// Rank returns the identifiers of the n entries most similar to the entry
// identified by queryID, best first. The query itself is never part of the
// result. Fewer than n identifiers are returned when the dataset is smaller.
func (r *Ranker) Rank(ctx context.Context, ds model.Dataset, queryID, metricName string, n int, opts ...RankOption) ([]string, error) {
	matches, err := r.RankMatches(ctx, ds, queryID, metricName, n, opts...)
	if err != nil {
		return nil, err
	}
	return model.IDs(matches), nil
}

// RankMatches is like Rank but also returns the score of every match.
func (r *Ranker) RankMatches(ctx context.Context, ds model.Dataset, queryID, metricName string, n int, opts ...RankOption) (matches []model.Match, err error) {
	start := time.Now()
	scored := 0

	log := r.opts.logger.WithQuery(queryID).WithMetric(metricName).WithN(n)
	defer func() {
		elapsed := time.Since(start)
		log.LogRank(ctx, scored, len(matches), elapsed, err)
		r.opts.metricsCollector.RecordRank(metricName, n, scored, elapsed, err)
	}()

	m, err := r.prepare(ds, metricName, n)
	if err != nil {
		return nil, err
	}

	q, ok := ds.Lookup(queryID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrQueryNotFound, queryID)
	}

	skip := skipMask(ds, append([]string{queryID}, collect(opts).exclude...))

	all, err := r.scan(ctx, ds, ds[q].Vector, m, skip)
	if err != nil {
		return nil, err
	}
	scored = len(all)

	return top(all, m.Direction(), n), nil
}

// RankVector returns the n entries most similar to an external query vector,
// best first, with their scores. No entry is skipped by identity.
func (r *Ranker) RankVector(ctx context.Context, ds model.Dataset, query []float32, metricName string, n int, opts ...RankOption) (matches []model.Match, err error) {
	start := time.Now()
	scored := 0

	log := r.opts.logger.WithMetric(metricName).WithN(n)
	defer func() {
		elapsed := time.Since(start)
		log.LogRank(ctx, scored, len(matches), elapsed, err)
		r.opts.metricsCollector.RecordRank(metricName, n, scored, elapsed, err)
	}()

	m, err := r.prepare(ds, metricName, n)
	if err != nil {
		return nil, err
	}

	skip := skipMask(ds, collect(opts).exclude)

	all, err := r.scan(ctx, ds, query, m, skip)
	if err != nil {
		return nil, err
	}
	scored = len(all)

	return top(all, m.Direction(), n), nil
}

// prepare validates the call parameters and resolves the metric.
// Nothing is scored before it succeeds.
func (r *Ranker) prepare(ds model.Dataset, metricName string, n int) (distance.Metric, error) {
	if n <= 0 {
		return distance.Metric{}, fmt.Errorf("%w: got %d", ErrInvalidN, n)
	}
	if len(ds) == 0 {
		return distance.Metric{}, ErrEmptyDataset
	}
	return r.opts.registry.Resolve(metricName)
}

func collect(opts []RankOption) rankOptions {
	var o rankOptions
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// skipMask marks the positions of every entry whose identifier is in ids.
func skipMask(ds model.Dataset, ids []string) *roaring.Bitmap {
	skip := roaring.New()
	if len(ids) == 0 {
		return skip
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	for i := range ds {
		if _, ok := set[ds[i].ID]; ok {
			skip.Add(uint32(i))
		}
	}
	return skip
}

// scan scores every entry not in skip against query, in dataset order.
func (r *Ranker) scan(ctx context.Context, ds model.Dataset, query []float32, m distance.Metric, skip *roaring.Bitmap) ([]model.Match, error) {
	workers := min(r.opts.workers, len(ds))
	if workers <= 1 {
		return scanRange(ctx, ds, 0, len(ds), query, m, skip)
	}

	chunk := (len(ds) + workers - 1) / workers
	parts := make([][]model.Match, workers)
	errs := make([]error, workers)

	// Each chunk keeps its own error so the reported failure is the
	// lowest-position one regardless of completion order.
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(ds))
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			parts[w], errs[w] = scanRange(ctx, ds, lo, hi, query, m, skip)
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for w := range parts {
		if errs[w] != nil {
			return nil, errs[w]
		}
		total += len(parts[w])
	}

	all := make([]model.Match, 0, total)
	for _, p := range parts {
		all = append(all, p...)
	}
	return all, nil
}

func scanRange(ctx context.Context, ds model.Dataset, lo, hi int, query []float32, m distance.Metric, skip *roaring.Bitmap) ([]model.Match, error) {
	out := make([]model.Match, 0, hi-lo)

	for i := lo; i < hi; i++ {
		if (i-lo)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if skip.Contains(uint32(i)) {
			continue
		}

		e := &ds[i]
		score, err := m.Score(e.Vector, query)
		if err != nil {
			return nil, translateError(e.ID, err)
		}
		out = append(out, model.Match{ID: e.ID, Score: score})
	}
	return out, nil
}

// top stably sorts matches best-first and keeps at most n of them.
func top(matches []model.Match, dir distance.Direction, n int) []model.Match {
	slices.SortStableFunc(matches, func(a, b model.Match) int {
		return dir.Compare(a.Score, b.Score)
	})
	return matches[:min(n, len(matches))]
}
