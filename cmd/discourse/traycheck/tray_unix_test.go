//go:build linux || freebsd || openbsd || netbsd || dragonfly || solaris || illumos || aix

package traycheck

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
)

func skipIfNoDBus(t *testing.T) {
	t.Helper()
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		t.Skipf("D-Bus session bus not available: %v", err)
	}
	conn.Close()
}

func TestAvailable(t *testing.T) {
	skipIfNoDBus(t)

	err := Available()
	if err == nil {
		return // tray host present on this desktop
	}
	if !strings.Contains(err.Error(), "StatusNotifierWatcher") && !strings.Contains(err.Error(), "tray host") {
		t.Errorf("Available() error = %v, want mention of StatusNotifierWatcher or tray host", err)
	}
}

func TestWait_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The result depends on whether this desktop has a tray host, but a
	// canceled context must stop the backoff loop promptly either way.
	done := make(chan error, 1)
	go func() { done <- Wait(ctx) }()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Wait() did not return promptly with canceled context")
	}
}
