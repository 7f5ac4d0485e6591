package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything soletrack needs at startup.
type Config struct {
	Endpoint    string // remote endpoint URL; empty runs cache-only
	DataDir     string // cache, settings and log files
	PollSeconds int    // connectivity probe cadence
}

const (
	defaultConfigPath  = "~/.config/soletrack/config.toml"
	defaultDataDir     = "~/.local/share/soletrack"
	defaultPollSeconds = 30

	envEndpoint = "SOLETRACK_ENDPOINT"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the TOML config, falling back to defaults when the file is
// missing. A .env file in the working directory and the SOLETRACK_ENDPOINT
// environment variable override the endpoint, in that order of loading.
func Load(path string) (Config, error) {
	// Best-effort; a missing .env is the normal case.
	_ = godotenv.Load()

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{DataDir: defaultDataDir, PollSeconds: defaultPollSeconds}

	file, err := os.Open(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
	} else {
		defer file.Close()

		raw, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		var parsed struct {
			Endpoint    string `toml:"endpoint"`
			DataDir     string `toml:"data_dir"`
			PollSeconds int    `toml:"poll_seconds"`
		}
		if err := toml.Unmarshal(raw, &parsed); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.Endpoint = strings.TrimSpace(parsed.Endpoint)
		if dir := strings.TrimSpace(parsed.DataDir); dir != "" {
			cfg.DataDir = dir
		}
		if parsed.PollSeconds > 0 {
			cfg.PollSeconds = parsed.PollSeconds
		}
	}

	if env := strings.TrimSpace(os.Getenv(envEndpoint)); env != "" {
		cfg.Endpoint = env
	}
	cfg.DataDir = mustExpand(cfg.DataDir)

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
