package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// toolConfig is the optional lox.toml next to (or above) the working
// directory. Everything in it is a default; flags always win.
type toolConfig struct {
	Repl   replConfig   `toml:"repl"`
	Output outputConfig `toml:"output"`
}

type replConfig struct {
	Prompt string `toml:"prompt"`
}

type outputConfig struct {
	Color          string `toml:"color"` // auto|on|off
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

// findLoxToml walks from startDir toward the filesystem root looking for
// lox.toml.
func findLoxToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "lox.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadToolConfig returns the nearest lox.toml, or nil when none exists.
func loadToolConfig(startDir string) (*toolConfig, error) {
	path, ok, err := findLoxToml(startDir)
	if err != nil || !ok {
		return nil, err
	}

	var cfg toolConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	switch cfg.Output.Color {
	case "", "auto", "on", "off":
	default:
		return nil, fmt.Errorf("%s: [output].color must be auto, on, or off", path)
	}
	return &cfg, nil
}
