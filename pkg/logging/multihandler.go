// Package logging configures structured logging for the Discourse desktop
// shell. Records fan out to stderr and, when enabled, a JSON log file, and
// every record carries a per-run session id.
package logging

import (
	"context"
	"log/slog"
)

// MultiHandler is a slog.Handler that forwards each record to every
// destination handler.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler creates a handler fanning out to the given destinations.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports whether at least one destination accepts the level.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, dest := range h.handlers {
		if dest.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle forwards the record to every destination that accepts its level.
// A failing destination must not starve the others, so individual handler
// errors are dropped.
func (h *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, dest := range h.handlers {
		if dest.Enabled(ctx, record.Level) {
			_ = dest.Handle(ctx, record) //nolint:errcheck // one destination must not starve the rest
		}
	}
	return nil
}

// WithAttrs returns a handler whose destinations all carry the attributes.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, dest := range h.handlers {
		handlers[i] = dest.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: handlers}
}

// WithGroup returns a handler whose destinations all open the group.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, dest := range h.handlers {
		handlers[i] = dest.WithGroup(name)
	}
	return &MultiHandler{handlers: handlers}
}
