//go:build !darwin

package main

import (
	"context"
	"log/slog"
)

// ensureLoginItem is a no-op off macOS. Autostart entries on Linux and
// Windows are left to the platform installer.
func ensureLoginItem(_ context.Context, enabled bool) {
	if enabled {
		slog.Debug("[AUTOSTART] Login item sync not supported on this platform")
	}
}
