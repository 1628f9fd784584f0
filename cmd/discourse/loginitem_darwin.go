//go:build darwin

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ensureLoginItem syncs the macOS login item with the manifest's autostart
// setting. It runs in the background; failures are logged, never fatal.
func ensureLoginItem(ctx context.Context, enabled bool) {
	if _, err := bundlePath(); err != nil {
		slog.Debug("[AUTOSTART] Skipping login item sync", "reason", err)
		return
	}

	if isLoginItem(ctx) == enabled {
		slog.Debug("[AUTOSTART] Login item already in sync", "enabled", enabled)
		return
	}

	if err := setLoginItem(ctx, enabled); err != nil {
		slog.Warn("[AUTOSTART] Failed to update login item", "enabled", enabled, "error", err)
		return
	}
	slog.Info("[AUTOSTART] Login item updated", "enabled", enabled)
}

// escapeForAppleScript validates and escapes a path for safe interpolation
// into an AppleScript string literal. Returns empty on invalid characters.
func escapeForAppleScript(path string) string {
	for _, r := range path {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') &&
			(r < '0' || r > '9') && r != ' ' && r != '.' &&
			r != '/' && r != '-' && r != '_' {
			slog.Warn("[AUTOSTART] Path contains invalid character for AppleScript", "char", string(r), "path", path)
			return ""
		}
	}
	path = strings.ReplaceAll(path, `\`, `\\`)
	path = strings.ReplaceAll(path, `"`, `\"`)
	return path
}

// isLoginItem reports whether the app bundle is registered to start at login.
func isLoginItem(ctx context.Context) bool {
	bundle, err := bundlePath()
	if err != nil {
		return false
	}

	escaped := escapeForAppleScript(bundle)
	if escaped == "" {
		return false
	}
	// The path is validated and escaped above
	//nolint:gocritic // already escaped
	script := fmt.Sprintf(
		`tell application "System Events" to get the name of every login item where path is "%s"`,
		escaped)
	output, err := exec.CommandContext(ctx, "osascript", "-e", script).CombinedOutput()
	if err != nil {
		slog.Warn("[AUTOSTART] Failed to check login items", "error", err)
		return false
	}
	return strings.TrimSpace(string(output)) != ""
}

// setLoginItem adds or removes the app bundle from the user's login items.
func setLoginItem(ctx context.Context, enable bool) error {
	bundle, err := bundlePath()
	if err != nil {
		return fmt.Errorf("get bundle path: %w", err)
	}

	if enable {
		escaped := escapeForAppleScript(bundle)
		if escaped == "" {
			return fmt.Errorf("invalid bundle path for AppleScript: %s", bundle)
		}
		//nolint:gocritic // already escaped
		script := fmt.Sprintf(
			`tell application "System Events" to make login item at end with properties {path:"%s", hidden:false}`,
			escaped)
		if output, err := exec.CommandContext(ctx, "osascript", "-e", script).CombinedOutput(); err != nil {
			return fmt.Errorf("add login item: %w (output: %s)", err, string(output))
		}
		return nil
	}

	name := strings.TrimSuffix(filepath.Base(bundle), ".app")
	escaped := escapeForAppleScript(name)
	if escaped == "" {
		return fmt.Errorf("invalid bundle name for AppleScript: %s", name)
	}
	script := fmt.Sprintf(`tell application "System Events" to delete login item "%s"`, escaped) //nolint:gocritic // already escaped
	if output, err := exec.CommandContext(ctx, "osascript", "-e", script).CombinedOutput(); err != nil {
		// A missing item is fine, the goal state is reached either way
		if !strings.Contains(string(output), "Can't get login item") {
			return fmt.Errorf("remove login item: %w (output: %s)", err, string(output))
		}
	}
	return nil
}

// bundlePath returns the path of the enclosing .app bundle. Bundles have the
// structure /path/to/App.app/Contents/MacOS/executable; outside a bundle
// there is nothing to register with login items.
func bundlePath() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("get executable: %w", err)
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return "", fmt.Errorf("eval symlinks: %w", err)
	}

	if strings.Contains(execPath, ".app/Contents/MacOS/") {
		parts := strings.Split(execPath, ".app/Contents/MacOS/")
		if len(parts) >= 2 {
			return parts[0] + ".app", nil
		}
	}
	return "", errors.New("not running from app bundle")
}
