//go:build linux || freebsd || openbsd || netbsd || dragonfly || solaris || illumos || aix

// Package traycheck probes for a system tray host. Modern Unix desktops
// expose one through the StatusNotifierWatcher D-Bus service; without it the
// tray icon silently never appears, which for a tray-centric app deserves a
// loud log line.
package traycheck

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/godbus/dbus/v5"
)

const (
	statusNotifierWatcher = "org.kde.StatusNotifierWatcher"

	probeAttempts = 6
	maxProbeDelay = 5 * time.Second
)

// Available reports whether a StatusNotifierWatcher is on the session bus.
func Available() error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect to D-Bus session bus: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Debug("[TRAYCHECK] Failed to close D-Bus connection", "error", err)
		}
	}()

	var names []string
	if err := conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		return fmt.Errorf("query D-Bus services: %w", err)
	}

	for _, name := range names {
		if name == statusNotifierWatcher {
			slog.Debug("[TRAYCHECK] Tray host found", "service", statusNotifierWatcher)
			return nil
		}
	}
	return fmt.Errorf("no tray host: %s service not available", statusNotifierWatcher)
}

// Wait polls for a tray host with backoff, for desktops that start the
// watcher after the session. It returns nil as soon as one appears.
func Wait(ctx context.Context) error {
	return retry.Do(Available,
		retry.Attempts(probeAttempts),
		retry.DelayType(retry.BackOffDelay),
		retry.MaxDelay(maxProbeDelay),
		retry.OnRetry(func(n uint, err error) {
			slog.Debug("[TRAYCHECK] Tray host not found yet", "attempt", n+1, "error", err)
		}),
		retry.Context(ctx),
	)
}
