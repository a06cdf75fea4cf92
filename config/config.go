// Package config loads splice configuration.
//
// Configuration comes from a single YAML file named by the --config flag
// or the SPLICE_CONFIG environment variable. There is no discovery: with
// neither set, Default is used. Command-line flags override file values.
package config

import (
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/splice/errors"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "SPLICE_CONFIG"

// Config is the complete splice configuration.
type Config struct {
	// Toolchain is the go command used to build snippets.
	// Default: go
	Toolchain string `yaml:"toolchain"`

	// WorkDir is where snippet sources and binaries are written.
	// Empty means a fresh temporary directory per snippet, which keeps
	// concurrent expansions apart. "." writes next to the template and
	// makes equal snippet names collide.
	WorkDir string `yaml:"work_dir"`

	// Manifest is the go.mod the dialect is read from.
	// Default: go.mod
	Manifest string `yaml:"manifest"`

	// Dialect overrides the go directive from Manifest when set.
	Dialect string `yaml:"dialect"`

	// DumpDir receives the files written by the dump! macro.
	// Default: .
	DumpDir string `yaml:"dump_dir"`

	// Format runs gofmt over expanded output.
	// Default: true
	Format bool `yaml:"format"`

	// Suffix is stripped from template names to get output names.
	// Default: .splice
	Suffix string `yaml:"suffix"`

	// WirePackage is the qualifier generated codecs use for the wire runtime.
	// Default: wire
	WirePackage string `yaml:"wire_package"`

	// LogLevel is a zap level name.
	// Default: info
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Toolchain:   "go",
		Manifest:    "go.mod",
		DumpDir:     ".",
		Format:      true,
		Suffix:      ".splice",
		WirePackage: "wire",
		LogLevel:    "info",
	}
}

// Load reads path over the defaults. An empty path falls back to
// SPLICE_CONFIG, and with that unset returns Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO(errors.PhaseConfig, "read config", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Path(path).
			Detail("parse config").
			Cause(err).
			Build()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Toolchain == "" {
		return errors.InvalidInput(errors.PhaseConfig, "toolchain must not be empty")
	}
	if c.Suffix == "" {
		return errors.InvalidInput(errors.PhaseConfig, "suffix must not be empty")
	}
	if c.WirePackage == "" {
		return errors.InvalidInput(errors.PhaseConfig, "wire_package must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Value(c.LogLevel).
			Detail("unknown log level %q", c.LogLevel).
			Cause(err).
			Build()
	}
	return lvl, nil
}
