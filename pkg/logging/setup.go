package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Options configures Setup.
type Options struct {
	// Debug lowers the level to slog.LevelDebug.
	Debug bool
	// File, when set, adds a JSON handler appending to that path.
	File string
}

// Setup installs the process-wide logger: a text handler on stderr plus, when
// configured, a JSON handler appending to a log file. Every record carries a
// per-run session id so overlapping runs are distinguishable in a shared file.
//
// A log file that cannot be opened disables file logging with a warning
// rather than failing startup. The returned func closes the file and should
// run on shutdown.
func Setup(opts Options) (*slog.Logger, func()) {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}
	closeFile := func() {}

	var fileErr error
	if opts.File != "" {
		file, err := openLogFile(opts.File)
		if err != nil {
			fileErr = err
		} else {
			handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))
			closeFile = func() {
				if err := file.Close(); err != nil {
					slog.Debug("[LOG] Failed to close log file", "error", err)
				}
			}
		}
	}

	logger := slog.New(NewMultiHandler(handlers...)).With("session", uuid.NewString())
	slog.SetDefault(logger)

	if fileErr != nil {
		logger.Warn("[LOG] File logging disabled", "path", opts.File, "error", fileErr)
	}
	return logger, closeFile
}

// openLogFile creates the parent directory and opens the file for appending.
// Owner-only permissions: logs can carry window titles and URLs.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}
