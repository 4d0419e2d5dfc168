// Package prefs persists hansard's user preferences in
// ~/.config/hansard/prefs.toml: the colour theme and the location the last
// session ended on.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme        string `toml:"theme"`
	LastLocation string `toml:"last_location,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/hansard/prefs.toml"
	defaultTheme     = "Dracula"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme}
}

// Load reads preferences from path. Missing or unreadable files degrade to
// defaults; the error return is reserved for callers that want to surface
// it and is currently always nil.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), nil
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return Defaults(), nil
	}

	p := Defaults()
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Defaults(), nil
	}

	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	p.LastLocation = strings.TrimSpace(p.LastLocation)
	return p, nil
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// Update loads the stored preferences, applies fn and saves the result.
func Update(path string, fn func(*Prefs)) error {
	p, err := Load(path)
	if err != nil {
		return err
	}
	fn(&p)
	return Save(path, p)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
