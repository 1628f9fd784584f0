package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/google/uuid"
	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/lucasfernog/discourse/pkg/icon"
	"github.com/lucasfernog/discourse/pkg/manifest"
)

// trayQuitID identifies the tray menu's only actionable item.
const trayQuitID = "quit"

// TrayEventKind discriminates tray interaction events.
type TrayEventKind int

const (
	// TrayLeftClick is a primary click on the tray icon.
	TrayLeftClick TrayEventKind = iota
	// TrayMenuItem is a click on a tray menu entry, identified by ItemID.
	TrayMenuItem
	// TrayOther covers every event kind the shell deliberately ignores.
	TrayOther
)

// TrayEvent is one tray interaction delivered by the host. Events are handled
// synchronously and never persisted.
type TrayEvent struct {
	// ItemID identifies the clicked menu entry for TrayMenuItem events.
	ItemID string
	// EventID correlates the log records of one interaction.
	EventID string
	Kind    TrayEventKind
	// Click position and size, where the host reports them. The shell
	// ignores both.
	X, Y, Width, Height int
}

// newTrayEvent stamps a fresh correlation id onto an event.
func newTrayEvent(kind TrayEventKind, itemID string) TrayEvent {
	return TrayEvent{Kind: kind, ItemID: itemID, EventID: uuid.NewString()}
}

// Dispatcher reacts to tray events. It keeps no state between events: quit
// exits the process immediately, left-click restores the main window, and
// everything else is a deliberate no-op.
type Dispatcher struct {
	windows *WindowRegistry
	exit    func(code int)
	fatal   func(msg string, args ...any)
}

// NewDispatcher creates a dispatcher over the registry with production exit
// semantics. Tests replace exit and fatal with recorders.
func NewDispatcher(windows *WindowRegistry) *Dispatcher {
	return &Dispatcher{
		windows: windows,
		exit:    os.Exit,
		fatal: func(msg string, args ...any) {
			slog.Error(msg, args...)
			os.Exit(1)
		},
	}
}

// Dispatch handles one tray event on the host UI thread. It must not block.
//
// Quit bypasses the host's graceful shutdown on purpose: the tray quit is the
// user's "stop now" affordance and there is no state worth flushing.
func (d *Dispatcher) Dispatch(evt TrayEvent) {
	switch evt.Kind {
	case TrayLeftClick:
		d.restoreMainWindow(evt)
	case TrayMenuItem:
		if evt.ItemID == trayQuitID {
			slog.Info("[TRAY] Quit selected, exiting", "event", evt.EventID)
			d.exit(0)
			return
		}
		slog.Debug("[TRAY] Ignoring menu item", "id", evt.ItemID, "event", evt.EventID)
	default:
		slog.Debug("[TRAY] Ignoring event", "kind", int(evt.Kind), "event", evt.EventID)
	}
}

// restoreMainWindow brings the main window back from the tray: un-minimized,
// then focused. A missing main window breaks the invariant the whole shell is
// built on, so it aborts the process rather than limping along with a tray
// icon that controls nothing.
func (d *Dispatcher) restoreMainWindow(evt TrayEvent) {
	win, ok := d.windows.Get(manifest.MainWindow)
	if !ok {
		d.fatal("[TRAY] Main window not registered", "label", manifest.MainWindow, "event", evt.EventID)
		return
	}
	slog.Debug("[TRAY] Restoring main window", "event", evt.EventID)
	win.Unminimize()
	win.Focus()
}

// setupTray registers the tray icon with its single-entry menu and routes the
// host's callbacks into the dispatcher.
func setupTray(app *application.App, dispatcher *Dispatcher, man *manifest.Manifest) error {
	tray := app.SystemTray.New()

	if runtime.GOOS == "darwin" {
		tpl, err := icon.Template()
		if err != nil {
			return fmt.Errorf("render template icon: %w", err)
		}
		tray.SetTemplateIcon(tpl)
	} else {
		light, err := icon.Tray()
		if err != nil {
			return fmt.Errorf("render tray icon: %w", err)
		}
		dark, err := icon.DarkModeTray()
		if err != nil {
			return fmt.Errorf("render dark mode tray icon: %w", err)
		}
		tray.SetIcon(light)
		tray.SetDarkModeIcon(dark)
	}

	if man.Tray.Label != "" {
		tray.SetLabel(man.Tray.Label)
	}

	menu := application.NewMenu()
	menu.Add("Quit").OnClick(func(_ *application.Context) {
		dispatcher.Dispatch(newTrayEvent(TrayMenuItem, trayQuitID))
	})
	tray.SetMenu(menu)

	tray.OnClick(func() {
		dispatcher.Dispatch(newTrayEvent(TrayLeftClick, ""))
	})

	slog.Info("[TRAY] System tray ready")
	return nil
}
