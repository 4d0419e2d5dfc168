package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != defaultAPIBase {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, defaultAPIBase)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
	if cfg.StatsEvery != defaultStatsEvery {
		t.Fatalf("StatsEvery = %v, want %v", cfg.StatsEvery, defaultStatsEvery)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if cfg.LogDir() != filepath.Dir(wantLog) {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir(), filepath.Dir(wantLog))
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
api_base = "  https://interests.example.org  "
request_timeout = " 12s "
stats_every = "5m"
log_file = "  ~/logs/hansard.log  "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != "https://interests.example.org" {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, "https://interests.example.org")
	}
	if cfg.RequestTimeout != 12*time.Second {
		t.Fatalf("RequestTimeout = %v, want 12s", cfg.RequestTimeout)
	}
	if cfg.StatsEvery != 5*time.Minute {
		t.Fatalf("StatsEvery = %v, want 5m", cfg.StatsEvery)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
api_base = "   "
request_timeout = ""
stats_every = "0s"
log_file = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != defaultAPIBase {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, defaultAPIBase)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
	if cfg.StatsEvery != defaultStatsEvery {
		t.Fatalf("StatsEvery = %v, want %v", cfg.StatsEvery, defaultStatsEvery)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, `request_timeout = "soon"`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "request_timeout") {
		t.Fatalf("Load error = %v, want request_timeout parse failure", err)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "api_base = [")

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %v, want parse config failure", err)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/x/y.toml")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	if got != filepath.Join(home, "x", "y.toml") {
		t.Fatalf("expandPath = %q, want %q", got, filepath.Join(home, "x", "y.toml"))
	}
	if _, err := expandPath("   "); err == nil {
		t.Fatal("expandPath(blank) returned nil error")
	}
}
