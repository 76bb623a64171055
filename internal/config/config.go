// Package config loads calc.toml, the settings shared by the calculator's
// front ends.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/zephyrtronium/calc"
)

// FileName is the name of the configuration file.
const FileName = "calc.toml"

// Config is the calculator configuration.
type Config struct {
	Eval   EvalConfig   `toml:"eval"`
	Output OutputConfig `toml:"output"`
	Server ServerConfig `toml:"server"`
}

// EvalConfig limits expressions.
type EvalConfig struct {
	// MaxDepth is the nesting limit for parsing and evaluation.
	MaxDepth int `toml:"max_depth"`
}

// OutputConfig controls how results and errors are shown.
type OutputConfig struct {
	// Format is a printf verb for results. Empty means whole numbers print
	// without a decimal point and other numbers print in shortest form.
	Format string `toml:"format"`
	// Plain replaces every error message with ErrorText.
	Plain bool `toml:"plain"`
	// ErrorText is the message shown for any error when Plain is set.
	ErrorText string `toml:"error_text"`
}

// ServerConfig configures calcd.
type ServerConfig struct {
	// Listen is the address to serve on.
	Listen string `toml:"listen"`
	// LogLevel is the server log level: debug, info, warn, error, or disable.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration used when there is no file.
func DefaultConfig() *Config {
	return &Config{
		Eval: EvalConfig{
			MaxDepth: calc.DefaultMaxDepth,
		},
		Output: OutputConfig{
			ErrorText: "Error",
		},
		Server: ServerConfig{
			Listen:   ":8080",
			LogLevel: "info",
		},
	}
}

// FindAndLoad looks for calc.toml in startDir and its parents and loads the
// first one found. If there is none, the result is the default
// configuration and an empty path.
func FindAndLoad(startDir string) (*Config, string, error) {
	path := FindConfigFile(startDir)
	if path == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// FindConfigFile returns the path of the nearest calc.toml in startDir or its
// parents, or the empty string if there is none.
func FindConfigFile(startDir string) string {
	dir := startDir
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load loads a configuration file. Settings the file omits keep their
// default values. Unknown keys are an error, so that typos don't silently
// fall back to defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, err
	}
	if u := md.Undecoded(); len(u) != 0 {
		keys := make([]string, len(u))
		for i, k := range u {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that settings are usable.
func (cfg *Config) Validate() error {
	if cfg.Eval.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be positive, not %d", cfg.Eval.MaxDepth)
	}
	if cfg.Output.Plain && cfg.Output.ErrorText == "" {
		return errors.New("error_text must not be empty when plain is set")
	}
	switch cfg.Server.LogLevel {
	case "debug", "info", "warn", "error", "disable":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.Server.LogLevel)
	}
	return nil
}

// Options returns the parse options the configuration implies.
func (cfg *Config) Options() []calc.ParseOption {
	return []calc.ParseOption{calc.MaxDepth(cfg.Eval.MaxDepth)}
}

// Result renders a result for display.
func (cfg *Config) Result(x float64) string {
	if cfg.Output.Format == "" {
		return calc.Format(x)
	}
	return fmt.Sprintf(cfg.Output.Format, x)
}

// Error renders an error for display.
func (cfg *Config) Error(err error) string {
	if cfg.Output.Plain {
		return cfg.Output.ErrorText
	}
	return err.Error()
}
