package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/internal/config"
)

// readSource loads the single script argument every subcommand takes.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// loadConfig resolves the shared --config flag, falling back to defaults
// when no file was given.
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
