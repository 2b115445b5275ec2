// Package prefs persists eqdisplay UI preferences in
// ~/.config/eqdisplay/prefs.toml. Reading never fails: anything missing or
// unreadable falls back to defaults.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/eqdisplay/internal/config"
)

// Prefs holds the choices the UI restores on the next start.
type Prefs struct {
	Theme string `toml:"theme"`
	Page  string `toml:"page"`
}

const (
	defaultPrefsPath = "~/.config/eqdisplay/prefs.toml"
	defaultTheme     = "Curses"
	defaultPage      = "events"
)

// Default returns the preferences used on first start.
func Default() Prefs {
	return Prefs{Theme: defaultTheme, Page: defaultPage}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path, or the default path when empty.
func Load(path string) Prefs {
	p := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return p
	}
	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return p
	}
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Default()
	}

	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	p.Page = strings.ToLower(strings.TrimSpace(p.Page))
	if p.Page == "" {
		p.Page = defaultPage
	}
	return p
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

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
