// Package config provides YAML-based configuration loading for the
// mazepath command, with embedded defaults and .env support for secrets.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full configuration of a run.
type Config struct {
	Costs   Costs   `yaml:"costs"`
	Input   Input   `yaml:"input"`
	Storage Storage `yaml:"storage"`
	Log     Log     `yaml:"log"`
}

// Costs defines the maze cost model.
type Costs struct {
	Step int64 `yaml:"step"`
	Turn int64 `yaml:"turn"`
}

// Input defines where puzzle inputs are fetched from.
type Input struct {
	Year       int    `yaml:"year"`
	Day        int    `yaml:"day"`
	BaseURL    string `yaml:"base_url"`
	SessionEnv string `yaml:"session_env"`
}

// Storage defines the SQLite database location. Empty disables storage.
type Storage struct {
	Path string `yaml:"path"`
}

// Log defines the log level name (debug, info, warn, error).
type Log struct {
	Level string `yaml:"level"`
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		// The embedded file is part of the build; fall back to literals.
		return Config{
			Costs:   Costs{Step: 1, Turn: 1000},
			Input:   Input{Year: 2024, Day: 16, BaseURL: "https://adventofcode.com", SessionEnv: "AOC_SESSION"},
			Storage: Storage{Path: "~/.mazepath/mazepath.db"},
			Log:     Log{Level: "info"},
		}
	}
	return cfg
}

// Load loads the configuration.
// Search order: customPath -> ~/.mazepath/config.yaml -> ./configs/mazepath.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
// An explicit customPath that cannot be read or parsed is an error; the
// other locations are skipped silently.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "mazepath.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := Default()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	return cfg, nil
}

// Validate rejects a step cost below 1, a negative turn cost, bad dates
// and an empty base URL.
func (c Config) Validate() error {
	switch {
	case c.Costs.Step < 1:
		return fmt.Errorf("%w: costs.step must be at least 1 (%d)", ErrInvalid, c.Costs.Step)
	case c.Costs.Turn < 0:
		return fmt.Errorf("%w: costs.turn cannot be negative (%d)", ErrInvalid, c.Costs.Turn)
	case c.Input.Day < 1 || c.Input.Day > 25:
		return fmt.Errorf("%w: input.day must be within 1..25 (%d)", ErrInvalid, c.Input.Day)
	case c.Input.Year < 2015:
		return fmt.Errorf("%w: input.year must be 2015 or later (%d)", ErrInvalid, c.Input.Year)
	case c.Input.BaseURL == "":
		return fmt.Errorf("%w: input.base_url is empty", ErrInvalid)
	}
	return nil
}

// SessionCookie loads .env from the working directory and returns the
// session cookie from the configured variable. A missing .env is fine; an
// unreadable or malformed one is an error.
// The boolean is false when the variable is unset or empty.
func SessionCookie(c Config) (string, bool, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", false, fmt.Errorf("config: cannot load .env: %w", err)
	}
	if c.Input.SessionEnv == "" {
		return "", false, nil
	}
	v, ok := os.LookupEnv(c.Input.SessionEnv)
	return v, ok && v != "", nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazepath", filename)
}
