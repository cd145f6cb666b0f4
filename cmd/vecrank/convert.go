package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecrank/dataset"
)

func newConvertCmd(e *env) *cobra.Command {
	var noValidate bool

	cmd := &cobra.Command{
		Use:   "convert <feature_file> <output>",
		Short: "Rewrite a feature file in another format or compression",
		Long: "convert reads a feature file from the store and writes it to a local path.\n" +
			"The output format and compression follow the output name, e.g. features.json.zst.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usagef("accepts 2 args, received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, name, err := e.locate(cmd.Flags().Changed("store"), args[0])
			if err != nil {
				return err
			}
			store, err := spec.open(cmd.Context())
			if err != nil {
				return err
			}

			opts := e.loadOptions()
			if noValidate {
				opts = append(opts, dataset.WithoutValidation())
			}

			ds, err := dataset.Load(cmd.Context(), store, name, opts...)
			if err != nil {
				return classifyLoad(err)
			}

			comp, base := dataset.DetectCompression(args[1])
			format := dataset.DetectFormat(base)

			f, err := os.Create(args[1])
			if err != nil {
				return &ioError{err: err}
			}
			if err := dataset.Encode(f, ds, comp, format, e.jsonCodec); err != nil {
				_ = f.Close()
				return &ioError{err: fmt.Errorf("write %s: %w", args[1], err)}
			}
			if err := f.Close(); err != nil {
				return &ioError{err: err}
			}

			fmt.Fprintf(e.stdout, "wrote %d entries to %s (%s, %s)\n", len(ds), args[1], format, comp)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "copy entries without integrity checks")
	return cmd
}
