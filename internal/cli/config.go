package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ribpatch/pkg/errors"
)

// fileConfig mirrors the optional TOML config file:
//
//	format = "json"
//	precision = 6
//	verbose = true
//
// Pointer fields distinguish an unset key from its zero value.
type fileConfig struct {
	Format    *string `toml:"format"`
	Precision *int    `toml:"precision"`
	Verbose   *bool   `toml:"verbose"`
}

// readConfig decodes the config file at path. Unknown keys are rejected so a
// misspelt setting does not go unnoticed.
func readConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	return &cfg, nil
}

// apply copies config values into opts for every flag not set on the
// command line.
func (f *fileConfig) apply(cmd *cobra.Command, opts *convertOpts) {
	flags := cmd.Flags()
	if f.Verbose != nil && !flags.Changed("verbose") {
		opts.verbose = *f.Verbose
	}
	if f.Format != nil && !flags.Changed("format") {
		opts.format = *f.Format
	}
	if f.Precision != nil && !flags.Changed("precision") {
		opts.precision = *f.Precision
	}
}

// loadConfig reads --config, if given, and merges it into opts.
func loadConfig(cmd *cobra.Command, opts *convertOpts) error {
	if opts.configPath == "" {
		return nil
	}
	cfg, err := readConfig(opts.configPath)
	if err != nil {
		return err
	}
	cfg.apply(cmd, opts)
	return nil
}
