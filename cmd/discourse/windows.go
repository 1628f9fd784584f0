package main

import (
	"sync"

	"github.com/wailsapp/wails/v3/pkg/application"
)

// Window abstracts the host window operations the shell drives, so tray and
// menu handlers can be exercised in tests without a GUI.
type Window interface {
	Show()
	Hide()
	Focus()
	Unminimize()
	ToggleFullscreen()
	Eval(js string)
}

// HostWindow implements Window on top of a Wails webview window.
type HostWindow struct {
	win application.Window
}

// NewHostWindow wraps a webview window.
func NewHostWindow(win application.Window) *HostWindow {
	return &HostWindow{win: win}
}

func (h *HostWindow) Show() { h.win.Show() }

func (h *HostWindow) Hide() { h.win.Hide() }

func (h *HostWindow) Focus() { h.win.Focus() }

func (h *HostWindow) Unminimize() { h.win.UnMinimise() }

func (h *HostWindow) ToggleFullscreen() {
	if h.win.IsFullscreen() {
		h.win.UnFullscreen()
		return
	}
	h.win.Fullscreen()
}

func (h *HostWindow) Eval(js string) { h.win.ExecJS(js) }

// WindowRegistry maps manifest window labels to live windows. It is populated
// once during startup and only read afterwards.
type WindowRegistry struct {
	windows map[string]Window
	mu      sync.RWMutex
}

// NewWindowRegistry creates an empty registry.
func NewWindowRegistry() *WindowRegistry {
	return &WindowRegistry{windows: make(map[string]Window)}
}

// Add registers a window under its label.
func (r *WindowRegistry) Add(label string, w Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows[label] = w
}

// Get returns the window registered under label.
func (r *WindowRegistry) Get(label string) (Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.windows[label]
	return w, ok
}

// Each calls fn for every registered window.
func (r *WindowRegistry) Each(fn func(label string, w Window)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for label, w := range r.windows {
		fn(label, w)
	}
}

// Len returns the number of registered windows.
func (r *WindowRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.windows)
}

// MockWindow implements Window for testing, recording each operation.
type MockWindow struct {
	calls []string
}

func (m *MockWindow) Show() { m.calls = append(m.calls, "show") }

func (m *MockWindow) Hide() { m.calls = append(m.calls, "hide") }

func (m *MockWindow) Focus() { m.calls = append(m.calls, "focus") }

func (m *MockWindow) Unminimize() { m.calls = append(m.calls, "unminimize") }

func (m *MockWindow) ToggleFullscreen() { m.calls = append(m.calls, "fullscreen") }

func (m *MockWindow) Eval(js string) { m.calls = append(m.calls, "eval:"+js) }
