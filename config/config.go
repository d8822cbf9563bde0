// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config holds the settings of an optable run.
package config

import (
	"errors"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/optable/render"
	"github.com/ezrec/optable/translate"
)

var f = translate.From

var (
	ErrInputMissing = errors.New(f("input missing"))
)

// ErrKeyUnknown lists configuration keys that are not settings.
type ErrKeyUnknown []string

func (err ErrKeyUnknown) Error() string {
	return f("unknown keys %v", strings.Join(err, ", "))
}

// Config of a run.
type Config struct {
	Input   string        `toml:"input"`   // HTML reference grid.
	Output  string        `toml:"output"`  // Output file, "-" for stdout.
	Format  render.Format `toml:"format"`  // Output format.
	Name    string        `toml:"name"`    // Table constant name.
	Package string        `toml:"package"` // Go package, for the go format.
	Verify  bool          `toml:"verify"`  // Decode and compare output before writing it.
	Verbose bool          `toml:"verbose"` // Log every decoded cell.
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Input:   "opcodes.html",
		Output:  "-",
		Format:  render.FORMAT_RUST,
		Name:    render.DEFAULT_NAME,
		Package: render.DEFAULT_PACKAGE,
	}
}

// Load decodes a TOML configuration file over the defaults.
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		keys := make(ErrKeyUnknown, len(undecoded))
		for n, key := range undecoded {
			keys[n] = key.String()
		}
		err = keys
		return
	}

	err = cfg.Validate()
	return
}

// Validate checks that the configuration can be run.
func (cfg *Config) Validate() (err error) {
	if len(cfg.Input) == 0 {
		err = ErrInputMissing
		return
	}

	_, err = cfg.Codec()
	return
}

// Codec returns the output codec of the configuration.
func (cfg *Config) Codec() (render.Codec, error) {
	return render.New(cfg.Format, render.Options{Name: cfg.Name, Package: cfg.Package})
}
