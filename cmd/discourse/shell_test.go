package main

import (
	"slices"
	"testing"

	"github.com/lucasfernog/discourse/pkg/menuspec"
)

// shellWithWindows builds a shell around mock windows only. Handlers that
// touch the host application are not exercised here.
func shellWithWindows(labels ...string) (*Shell, map[string]*MockWindow) {
	reg := NewWindowRegistry()
	mocks := make(map[string]*MockWindow, len(labels))
	for _, label := range labels {
		m := &MockWindow{}
		reg.Add(label, m)
		mocks[label] = m
	}
	return &Shell{windows: reg}, mocks
}

func TestRoleHandler_EditRolesDriveMainWebView(t *testing.T) {
	tests := []struct {
		name string
		role menuspec.Role
		want string
	}{
		{"undo", menuspec.RoleUndo, `eval:document.execCommand("undo")`},
		{"redo", menuspec.RoleRedo, `eval:document.execCommand("redo")`},
		{"cut", menuspec.RoleCut, `eval:document.execCommand("cut")`},
		{"copy", menuspec.RoleCopy, `eval:document.execCommand("copy")`},
		{"paste", menuspec.RolePaste, `eval:document.execCommand("paste")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mocks := shellWithWindows("main", "settings")

			s.roleHandler(tt.role)(nil)

			if want := []string{tt.want}; !slices.Equal(mocks["main"].calls, want) {
				t.Errorf("main window calls = %v, want %v", mocks["main"].calls, want)
			}
			if len(mocks["settings"].calls) != 0 {
				t.Errorf("settings window calls = %v, want none", mocks["settings"].calls)
			}
		})
	}
}

func TestRoleHandler_FullscreenTogglesMain(t *testing.T) {
	s, mocks := shellWithWindows("main")

	s.roleHandler(menuspec.RoleEnterFullScreen)(nil)

	if want := []string{"fullscreen"}; !slices.Equal(mocks["main"].calls, want) {
		t.Errorf("main window calls = %v, want %v", mocks["main"].calls, want)
	}
}

func TestRoleHandler_UnknownRoleIsNoOp(t *testing.T) {
	s, mocks := shellWithWindows("main")

	s.roleHandler(menuspec.RoleNone)(nil)

	if len(mocks["main"].calls) != 0 {
		t.Errorf("main window calls = %v, want none", mocks["main"].calls)
	}
}

func TestHideOtherWindows_SparesMain(t *testing.T) {
	s, mocks := shellWithWindows("main", "settings", "composer")

	s.hideOtherWindows()

	if len(mocks["main"].calls) != 0 {
		t.Errorf("main window calls = %v, want none", mocks["main"].calls)
	}
	for _, label := range []string{"settings", "composer"} {
		if want := []string{"hide"}; !slices.Equal(mocks[label].calls, want) {
			t.Errorf("%s window calls = %v, want %v", label, mocks[label].calls, want)
		}
	}
}

func TestEditCommand_MissingMainIsSafe(t *testing.T) {
	s, _ := shellWithWindows()

	// Must log and return, not panic.
	s.editCommand("undo")
}

func TestToggleFullscreen_MissingMainIsSafe(t *testing.T) {
	s, _ := shellWithWindows()

	s.toggleFullscreen()
}
