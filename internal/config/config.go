package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures hansard's settings.
type Config struct {
	APIBase        string
	RequestTimeout time.Duration
	StatsEvery     time.Duration
	LogFile        string
}

const (
	defaultConfigPath     = "~/.config/hansard/config.toml"
	defaultLogFile        = "~/.local/state/hansard/hansard.log"
	defaultAPIBase        = "127.0.0.1:8000"
	defaultRequestTimeout = 5 * time.Second
	defaultStatsEvery     = 60 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBase:        defaultAPIBase,
		RequestTimeout: defaultRequestTimeout,
		StatsEvery:     defaultStatsEvery,
		LogFile:        mustExpand(defaultLogFile),
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase        string `toml:"api_base"`
		RequestTimeout string `toml:"request_timeout"`
		StatsEvery     string `toml:"stats_every"`
		LogFile        string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBase); v != "" {
		cfg.APIBase = v
	}
	if cfg.RequestTimeout, err = parseDuration("request_timeout", raw.RequestTimeout, defaultRequestTimeout); err != nil {
		return Config{}, err
	}
	if cfg.StatsEvery, err = parseDuration("stats_every", raw.StatsEvery, defaultStatsEvery); err != nil {
		return Config{}, err
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}

	return cfg, nil
}

// LogDir returns the directory holding the log file.
func (c Config) LogDir() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return filepath.Dir(mustExpand(defaultLogFile))
	}
	return filepath.Dir(c.LogFile)
}

func parseDuration(field, raw string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", field, err)
	}
	if d <= 0 {
		return fallback, nil
	}
	return d, nil
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
