// Package config loads golox's optional CLI configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds settings that tune the CLI's behavior without changing
// Lox's language semantics.
type Config struct {
	// ColorDiagnostics is read from the config file but no command
	// consults it: stderr diagnostics are always written uncolored.
	ColorDiagnostics bool `yaml:"color_diagnostics"`
	// MaxCallDepth caps nested function calls before the evaluator
	// reports a stack-overflow runtime error instead of letting Go's own
	// goroutine stack fault.
	MaxCallDepth int `yaml:"max_call_depth"`
}

// Default returns the configuration used when no --config flag is given:
// no color, and a call depth generous enough for everyday scripts while
// still bounded.
func Default() *Config {
	return &Config{
		ColorDiagnostics: false,
		MaxCallDepth:     1000,
	}
}

// Load reads and unmarshals a YAML config file, starting from Default()
// so a file that only sets one field leaves the others at their default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
