// Package manifest loads the configuration that drives the Discourse desktop
// shell: product identity, window definitions, and tray behavior.
//
// Built-in defaults are embedded in the binary. Users may override them with a
// manifest.json in their config directory; a missing override file is not an
// error. Everything is validated before the shell starts, because a bad window
// definition discovered mid-run would leave the tray pointing at nothing.
package manifest

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed defaults.json
var defaultsJSON []byte

// MainWindow is the label of the window the shell requires to exist. The tray
// restores and focuses this window on left-click.
const MainWindow = "main"

const (
	configDirName    = "Discourse"
	overrideFileName = "manifest.json"

	maxURLLength     = 2048
	maxWindowEdge    = 8192
	minPrintableChar = 0x20
	deleteChar       = 0x7F
)

// Manifest is the complete shell configuration, loaded once at startup and
// treated as immutable afterwards.
type Manifest struct {
	ProductName string   `json:"productName"`
	Identifier  string   `json:"identifier"`
	Version     string   `json:"version"`
	Autostart   bool     `json:"autostart"`
	Tray        Tray     `json:"tray"`
	Windows     []Window `json:"windows"`
}

// Window defines one webview window the shell creates at startup.
type Window struct {
	Label      string `json:"label"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Resizable  bool   `json:"resizable"`
	Fullscreen bool   `json:"fullscreen"`
}

// Tray holds the system tray settings. Label is text shown beside the icon
// on hosts that support it; empty means icon only.
type Tray struct {
	Label string `json:"label"`
}

// Default returns the embedded manifest.
func Default() (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(defaultsJSON, &m); err != nil {
		return nil, fmt.Errorf("parse embedded manifest: %w", err)
	}
	return &m, nil
}

// OverridePath returns the location of the user's manifest override file.
func OverridePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(configDir, configDirName, overrideFileName), nil
}

// Load returns the validated manifest. With an empty path it merges the user's
// override file (if any) over the embedded defaults; with an explicit path the
// file must exist. Top-level fields in an override replace the defaults, and a
// "windows" array replaces the default windows wholesale.
func Load(path string) (*Manifest, error) {
	m, err := Default()
	if err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		path, err = OverridePath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, m); err != nil {
			return nil, fmt.Errorf("parse manifest %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No override file, defaults apply.
	default:
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return m, nil
}

// Validate checks the invariants the shell depends on: a product name, at
// least one window, exactly one window labeled "main", unique labels, HTTPS
// URLs, and sane dimensions.
func (m *Manifest) Validate() error {
	if m.ProductName == "" {
		return errors.New("productName cannot be empty")
	}
	if len(m.Windows) == 0 {
		return errors.New("at least one window is required")
	}

	seen := make(map[string]bool, len(m.Windows))
	mainCount := 0
	for i := range m.Windows {
		w := &m.Windows[i]
		if w.Label == "" {
			return fmt.Errorf("window %d: label cannot be empty", i)
		}
		if seen[w.Label] {
			return fmt.Errorf("duplicate window label %q", w.Label)
		}
		seen[w.Label] = true
		if w.Label == MainWindow {
			mainCount++
		}
		if err := validateURL(w.URL); err != nil {
			return fmt.Errorf("window %q: %w", w.Label, err)
		}
		if w.Width <= 0 || w.Height <= 0 {
			return fmt.Errorf("window %q: dimensions must be positive, got %dx%d", w.Label, w.Width, w.Height)
		}
		if w.Width > maxWindowEdge || w.Height > maxWindowEdge {
			return fmt.Errorf("window %q: dimensions too large, got %dx%d", w.Label, w.Width, w.Height)
		}
	}
	if mainCount != 1 {
		return fmt.Errorf("exactly one window labeled %q is required, found %d", MainWindow, mainCount)
	}
	return nil
}

// validateURL performs strict validation on a window URL.
func validateURL(rawURL string) error {
	if rawURL == "" {
		return errors.New("URL cannot be empty")
	}

	// Reject null bytes and control characters outright
	for _, r := range rawURL {
		if r < minPrintableChar || r == deleteChar {
			return errors.New("URL contains control characters")
		}
	}

	if len(rawURL) > maxURLLength {
		return errors.New("URL too long")
	}

	if !strings.HasPrefix(rawURL, "https://") {
		return errors.New("URL must use HTTPS")
	}

	return nil
}
