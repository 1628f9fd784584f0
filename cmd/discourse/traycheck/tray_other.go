//go:build !linux && !freebsd && !openbsd && !netbsd && !dragonfly && !solaris && !illumos && !aix

package traycheck

import "context"

// Available always succeeds on platforms where the OS provides the tray
// itself.
func Available() error {
	return nil
}

// Wait succeeds immediately on platforms with a built-in tray.
func Wait(_ context.Context) error {
	return nil
}
