package main

import (
	"fmt"
	"os"

	"github.com/logicossoftware/go-flv"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	compression string
	strict      bool
	maxUnpacked uint64
	output      string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "flvinfo <file>",
		Short: "Print the header of an FLV capture",
		Long: `Load an FLV capture into memory and print its header.

Captures packed as ZIP, Zstandard or LZ4 are detected and inflated
automatically. Brotli input must be named with --compression.

Examples:
  # Print the header of a capture
  flvinfo capture.flv

  # Reject headers whose data offset lies outside the file
  flvinfo --strict capture.flv.zst

  # Output as JSON
  flvinfo --output json capture.flv`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, f, args[0])
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to a TOML config file")
	cmd.Flags().StringVar(&f.compression, "compression", "", "Force a packing (none|zip|zstd|lz4|brotli)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Require the data offset to lie within the file")
	cmd.Flags().Uint64Var(&f.maxUnpacked, "max-unpacked", 0, "Maximum inflated size in bytes (0 uses the default)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log each detection step")
	return cmd
}

// resolveSettings layers defaults, the config file and explicitly set flags.
func resolveSettings(cmd *cobra.Command, f rootFlags) (settings, error) {
	cfg := defaultSettings()
	if f.configPath != "" {
		var err error
		if cfg, err = loadSettings(f.configPath); err != nil {
			return settings{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("compression") {
		comp, err := flv.ParseCompression(f.compression)
		if err != nil {
			return settings{}, err
		}
		cfg.Compression = comp
		cfg.Forced = comp != flv.CompNone
	}
	if flags.Changed("strict") {
		cfg.Strict = f.strict
	}
	if flags.Changed("max-unpacked") {
		cfg.Limits.MaxUnpackedSize = f.maxUnpacked
	}
	if flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	return cfg, nil
}

func runInfo(cmd *cobra.Command, f rootFlags, path string) error {
	cfg, err := resolveSettings(cmd, f)
	if err != nil {
		return err
	}
	log := initLogger(cmd.ErrOrStderr(), cfg.Verbose)

	buf, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("read capture")
		return fmt.Errorf("read %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("bytes", len(buf)).Msg("capture loaded")

	c, h, err := flv.Open(buf, append(cfg.openOptions(), flv.WithLogger(log))...)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("not an FLV capture")
		return fmt.Errorf("open %s: %w", path, err)
	}
	return summarize(path, c, h).render(cmd.OutOrStdout(), cfg.Output)
}
