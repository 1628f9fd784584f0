package main

import (
	"fmt"
	"log/slog"

	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/lucasfernog/discourse/pkg/manifest"
	"github.com/lucasfernog/discourse/pkg/menuspec"
)

// menuBar returns the native menu layout for the given app name. It is a pure
// function of its argument: building it twice yields deeply equal specs.
func menuBar(appName string) menuspec.Spec {
	return menuspec.New(
		menuspec.Submenu(appName,
			menuspec.About(appName),
			menuspec.Separator(),
			menuspec.Native(menuspec.RoleHide),
			menuspec.Native(menuspec.RoleHideOthers),
			menuspec.Native(menuspec.RoleShowAll),
			menuspec.Separator(),
			menuspec.Native(menuspec.RoleQuit),
		),
		menuspec.Submenu("Edit",
			menuspec.Native(menuspec.RoleUndo),
			menuspec.Native(menuspec.RoleRedo),
			menuspec.Separator(),
			menuspec.Native(menuspec.RoleCut),
			menuspec.Native(menuspec.RoleCopy),
			menuspec.Native(menuspec.RolePaste),
		),
		menuspec.Native(menuspec.RoleEnterFullScreen),
		menuspec.Separator(),
		menuspec.Native(menuspec.RoleQuit),
	)
}

// roleLabel returns the display label for a native role, following the
// conventions macOS established. Roles whose String form already is the
// label fall through to it.
func roleLabel(role menuspec.Role, appName string) string {
	switch role {
	case menuspec.RoleAbout:
		return "About " + appName
	case menuspec.RoleHide:
		return "Hide " + appName
	case menuspec.RoleHideOthers:
		return "Hide Others"
	case menuspec.RoleShowAll:
		return "Show All"
	case menuspec.RoleEnterFullScreen:
		return "Enter Full Screen"
	case menuspec.RoleQuit:
		return "Quit " + appName
	default:
		return role.String()
	}
}

// roleAccelerator returns the keyboard shortcut for a native role, or "" for
// roles that carry none.
func roleAccelerator(role menuspec.Role) string {
	switch role {
	case menuspec.RoleHide:
		return "CmdOrCtrl+H"
	case menuspec.RoleHideOthers:
		return "CmdOrCtrl+Alt+H"
	case menuspec.RoleUndo:
		return "CmdOrCtrl+Z"
	case menuspec.RoleRedo:
		return "CmdOrCtrl+Shift+Z"
	case menuspec.RoleCut:
		return "CmdOrCtrl+X"
	case menuspec.RoleCopy:
		return "CmdOrCtrl+C"
	case menuspec.RolePaste:
		return "CmdOrCtrl+V"
	case menuspec.RoleEnterFullScreen:
		return "Ctrl+CmdOrCtrl+F"
	case menuspec.RoleQuit:
		return "CmdOrCtrl+Q"
	default:
		return ""
	}
}

// installMenuBar realizes a menu spec as the application menu. Separators and
// submenus map one to one, native roles get their conventional label,
// accelerator, and behavior, and plain action items log the click and do
// nothing else.
func (s *Shell) installMenuBar(spec menuspec.Spec, appName string) {
	root := application.NewMenu()
	s.addEntries(root, spec.Items, appName)
	s.app.Menu.SetApplicationMenu(root)
	slog.Info("[MENU] Menu bar installed", "entries", len(spec.Items))
}

func (s *Shell) addEntries(menu *application.Menu, entries []menuspec.Entry, appName string) {
	for _, e := range entries {
		switch e.Kind {
		case menuspec.KindSeparator:
			menu.AddSeparator()
		case menuspec.KindSubmenu:
			sub := menu.AddSubmenu(e.Label)
			s.addEntries(sub, e.Items, appName)
		case menuspec.KindNative:
			item := menu.Add(roleLabel(e.Role, appName))
			if acc := roleAccelerator(e.Role); acc != "" {
				item.SetAccelerator(acc)
			}
			item.OnClick(s.roleHandler(e.Role))
		case menuspec.KindAction:
			id := e.ID
			menu.Add(e.Label).OnClick(func(*application.Context) {
				slog.Debug("[MENU] Action item clicked", "id", id)
			})
		}
	}
}

// roleHandler binds a native role to its behavior in this shell. Edit roles
// act on the main web view through execCommand, which is where the focus
// lives in a single-webview app.
func (s *Shell) roleHandler(role menuspec.Role) func(*application.Context) {
	switch role {
	case menuspec.RoleAbout:
		return func(*application.Context) { s.app.Menu.ShowAbout() }
	case menuspec.RoleHide:
		return func(*application.Context) { s.app.Hide() }
	case menuspec.RoleHideOthers:
		return func(*application.Context) { s.hideOtherWindows() }
	case menuspec.RoleShowAll:
		return func(*application.Context) { s.showAllWindows() }
	case menuspec.RoleUndo:
		return func(*application.Context) { s.editCommand("undo") }
	case menuspec.RoleRedo:
		return func(*application.Context) { s.editCommand("redo") }
	case menuspec.RoleCut:
		return func(*application.Context) { s.editCommand("cut") }
	case menuspec.RoleCopy:
		return func(*application.Context) { s.editCommand("copy") }
	case menuspec.RolePaste:
		return func(*application.Context) { s.editCommand("paste") }
	case menuspec.RoleEnterFullScreen:
		return func(*application.Context) { s.toggleFullscreen() }
	case menuspec.RoleQuit:
		return func(*application.Context) {
			slog.Info("[MENU] Quit selected, shutting down")
			s.app.Quit()
		}
	default:
		return func(*application.Context) {
			slog.Debug("[MENU] No behavior for role", "role", role.String())
		}
	}
}

// editCommand runs a document editing command in the main web view.
func (s *Shell) editCommand(command string) {
	win, ok := s.windows.Get(manifest.MainWindow)
	if !ok {
		slog.Warn("[MENU] Main window not registered", "command", command)
		return
	}
	win.Eval(fmt.Sprintf("document.execCommand(%q)", command))
}

// hideOtherWindows hides every shell window except main.
func (s *Shell) hideOtherWindows() {
	s.windows.Each(func(label string, w Window) {
		if label != manifest.MainWindow {
			w.Hide()
		}
	})
}

// showAllWindows brings the app forward with every window it owns.
func (s *Shell) showAllWindows() {
	s.app.Show()
	s.windows.Each(func(_ string, w Window) { w.Show() })
}

// toggleFullscreen flips the main window in and out of full screen.
func (s *Shell) toggleFullscreen() {
	if win, ok := s.windows.Get(manifest.MainWindow); ok {
		win.ToggleFullscreen()
	}
}
