package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ribpatch/pkg/errors"
	"github.com/matzehuels/ribpatch/pkg/observability"
	"github.com/matzehuels/ribpatch/pkg/pipeline"
)

// convertOpts holds the command-line flags for a conversion.
type convertOpts struct {
	verbose    bool   // enable debug logging
	configPath string // optional TOML config file
	format     string // output format: "text" or "json"
	precision  int    // decimal digits compared when merging points
}

// convertCommand creates the root command, which converts a scene file into
// a patch file.
//
// Flag values take precedence over the config file, which takes precedence
// over the built-in defaults.
func (c *CLI) convertCommand() *cobra.Command {
	opts := convertOpts{
		format:    pipeline.DefaultFormat,
		precision: pipeline.DefaultPrecision,
	}

	cmd := &cobra.Command{
		Use:   appName + " <input> <output>",
		Short: "Convert a RIB scene into a bicubic patch mesh",
		Long: `ribpatch reads a scene in a restricted RIB subset, applies the nested
Translate, Scale and Rotate transforms to every bicubic patch, and writes the
patches as an indexed mesh with deduplicated control points.`,
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, &opts); err != nil {
				return err
			}
			if opts.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd, args[0], args[1], &opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML config file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), json")
	cmd.Flags().IntVar(&opts.precision, "precision", opts.precision, "decimal digits compared when merging control points (1-15)")

	return cmd
}

// runConvert executes the conversion pipeline and prints the summary line.
// The stage hooks are process-global, so only one conversion may run at a time.
func (c *CLI) runConvert(cmd *cobra.Command, input, output string, opts *convertOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	// Options treats 0 as "use the default"; here the value is always explicit.
	if err := pipeline.ValidatePrecision(opts.precision); err != nil {
		return err
	}

	observability.SetPipelineHooks(&stageLogger{logger: logger})
	defer observability.Reset()

	prog := newProgress(logger)
	result, err := c.newRunner().Execute(ctx, pipeline.Options{
		Input:     input,
		Output:    output,
		Format:    opts.format,
		Precision: opts.precision,
	})
	if err != nil {
		return err
	}
	prog.done("wrote mesh", "output", output)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
	return err
}

// exactArgs is cobra.ExactArgs returning a USAGE error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.New(errors.ErrCodeUsage, "expected %d arguments, got %d\nUsage: %s", n, len(args), cmd.UseLine())
		}
		return nil
	}
}

// flagError reports unknown or malformed flags as USAGE errors.
func flagError(cmd *cobra.Command, err error) error {
	return errors.Wrap(errors.ErrCodeUsage, err, "usage: %s", cmd.UseLine())
}
