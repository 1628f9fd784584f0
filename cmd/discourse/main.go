// Package main implements the Discourse desktop shell: a thin native host
// for the Discourse web app with a native menu bar and a system tray icon.
// Closing the main window hides it to the tray; a left-click on the tray
// icon restores it, and the tray menu offers an immediate Quit.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/lucasfernog/discourse/pkg/logging"
	"github.com/lucasfernog/discourse/pkg/manifest"
)

// Version information - set during build with -ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	var (
		manifestPath string
		debug        bool
		logFile      string
	)
	flag.StringVar(&manifestPath, "manifest", "", "Path to a manifest file (defaults to embedded settings plus the user override)")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging and web view dev tools")
	flag.StringVar(&logFile, "log-file", "", "Also write JSON logs to this file")
	flag.Parse()

	logger, closeLogs := logging.Setup(logging.Options{Debug: debug, File: logFile})
	defer closeLogs()

	logger.Info("[MAIN] Starting Discourse desktop shell",
		"version", version, "commit", commit, "date", date)

	man, err := manifest.Load(manifestPath)
	if err != nil {
		fatal(logger, "[MAIN] Manifest rejected", "error", err)
	}
	logger.Info("[MAIN] Manifest loaded",
		"product", man.ProductName,
		"windows", len(man.Windows),
		"autostart", man.Autostart)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shell, err := newShell(ctx, man, debug)
	if err != nil {
		fatal(logger, "[MAIN] Shell assembly failed", "error", err)
	}

	if err := shell.run(); err != nil {
		fatal(logger, "[MAIN] Host event loop failed", "error", err)
	}
	logger.Info("[MAIN] Shut down cleanly")
}

// fatal logs and aborts. File descriptors are closed by the OS; log file
// writes are unbuffered so nothing is lost.
func fatal(logger *slog.Logger, msg string, args ...any) {
	logger.Error(msg, args...)
	os.Exit(1)
}
