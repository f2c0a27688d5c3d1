package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/logicossoftware/go-flv"
)

// settings is the resolved flvinfo configuration.
type settings struct {
	Compression flv.Compression
	Forced      bool
	Strict      bool
	Limits      flv.Limits
	Output      string
	Verbose     bool
}

func defaultSettings() settings {
	return settings{
		Limits: flv.DefaultLimits(),
		Output: "text",
	}
}

// flvinfo config.toml key mapping.
type fileConfig struct {
	Compression     string `toml:"compression"`
	StrictOffset    bool   `toml:"strict_offset"`
	MaxPackedSize   uint64 `toml:"max_packed_size"`
	MaxUnpackedSize uint64 `toml:"max_unpacked_size"`
	Output          string `toml:"output"`
	Verbose         bool   `toml:"verbose"`
}

// loadSettings overlays the keys present in the TOML file at path on defaults.
func loadSettings(path string) (settings, error) {
	cfg := defaultSettings()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return settings{}, fmt.Errorf("load flvinfo config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return settings{}, fmt.Errorf("load flvinfo config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("compression") {
		comp, err := flv.ParseCompression(raw.Compression)
		if err != nil {
			return settings{}, fmt.Errorf("load flvinfo config: %w", err)
		}
		cfg.Compression = comp
		cfg.Forced = comp != flv.CompNone
	}
	if meta.IsDefined("strict_offset") {
		cfg.Strict = raw.StrictOffset
	}
	if meta.IsDefined("max_packed_size") {
		cfg.Limits.MaxPackedSize = raw.MaxPackedSize
	}
	if meta.IsDefined("max_unpacked_size") {
		cfg.Limits.MaxUnpackedSize = raw.MaxUnpackedSize
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}
	return cfg, nil
}

func (s settings) openOptions() []flv.OpenOption {
	opts := []flv.OpenOption{
		flv.WithLimits(s.Limits),
		flv.WithStrictOffset(s.Strict),
	}
	if s.Forced {
		opts = append(opts, flv.WithCompression(s.Compression))
	}
	return opts
}
