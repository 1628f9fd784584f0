package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"github.com/lucasfernog/discourse/cmd/discourse/traycheck"
	"github.com/lucasfernog/discourse/pkg/dedup"
	"github.com/lucasfernog/discourse/pkg/icon"
	"github.com/lucasfernog/discourse/pkg/manifest"
)

// hiddenNoticeInterval throttles the hidden-to-tray notice. Users who close
// the window all day get told about the tray at most once an hour.
const hiddenNoticeInterval = time.Hour

// Shell owns the host application, its windows, and the tray. One shell per
// process.
type Shell struct {
	app        *application.App
	windows    *WindowRegistry
	dispatcher *Dispatcher
	man        *manifest.Manifest
	notices    *dedup.Window
	debug      bool
}

// newShell assembles the host application from the manifest: windows first,
// then the menu bar, then the tray.
func newShell(ctx context.Context, man *manifest.Manifest, debug bool) (*Shell, error) {
	appIcon, err := icon.App(512)
	if err != nil {
		return nil, fmt.Errorf("render app icon: %w", err)
	}

	app := application.New(application.Options{
		Name:        man.ProductName,
		Description: man.ProductName + " desktop shell",
		Icon:        appIcon,
		Mac: application.MacOptions{
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
	})

	s := &Shell{
		app:     app,
		windows: NewWindowRegistry(),
		man:     man,
		notices: dedup.NewWindow(hiddenNoticeInterval, 8),
		debug:   debug,
	}
	s.dispatcher = NewDispatcher(s.windows)

	for i := range man.Windows {
		s.createWindow(&man.Windows[i])
	}

	s.installMenuBar(menuBar(man.ProductName), man.ProductName)

	// The tray host probe is diagnostic only. On desktops that start the
	// StatusNotifier watcher late we keep waiting in the background and log
	// instead of failing startup.
	go func() {
		if err := traycheck.Wait(ctx); err != nil {
			slog.Warn("[TRAY] No tray host detected, icon may not be visible", "error", err)
		}
	}()

	if err := setupTray(app, s.dispatcher, man); err != nil {
		return nil, fmt.Errorf("set up tray: %w", err)
	}

	go ensureLoginItem(ctx, man.Autostart)

	return s, nil
}

// createWindow realizes one manifest window and registers it. Closing the
// main window hides it to the tray instead of ending the app.
func (s *Shell) createWindow(w *manifest.Window) {
	win := s.app.Window.NewWithOptions(application.WebviewWindowOptions{
		Name:            w.Label,
		Title:           w.Title,
		Width:           w.Width,
		Height:          w.Height,
		URL:             w.URL,
		DisableResize:   !w.Resizable,
		DevToolsEnabled: s.debug,
	})
	if w.Fullscreen {
		win.Fullscreen()
	}

	host := NewHostWindow(win)
	s.windows.Add(w.Label, host)

	if w.Label == manifest.MainWindow {
		win.RegisterHook(events.Common.WindowClosing, func(e *application.WindowEvent) {
			e.Cancel()
			host.Hide()
			if s.notices.Allow("hidden-to-tray", time.Now()) {
				go notifyHidden(s.man.ProductName)
			}
			slog.Debug("[WINDOW] Main window hidden to tray")
		})
	}

	slog.Info("[WINDOW] Window created",
		"label", w.Label,
		"url", w.URL,
		"size", fmt.Sprintf("%dx%d", w.Width, w.Height))
}

// run blocks until the host event loop ends.
func (s *Shell) run() error {
	return s.app.Run()
}
