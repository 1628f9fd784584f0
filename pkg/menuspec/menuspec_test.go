package menuspec

import (
	"reflect"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  Entry
	}{
		{
			name:  "action carries id and label",
			entry: Action("open-settings", "Settings"),
			want:  Entry{Kind: KindAction, ID: "open-settings", Label: "Settings"},
		},
		{
			name:  "native carries role only",
			entry: Native(RoleCopy),
			want:  Entry{Kind: KindNative, Role: RoleCopy},
		},
		{
			name:  "about carries the application name",
			entry: About("Discourse"),
			want:  Entry{Kind: KindNative, Role: RoleAbout, Label: "Discourse"},
		},
		{
			name:  "separator is empty",
			entry: Separator(),
			want:  Entry{Kind: KindSeparator},
		},
		{
			name:  "submenu nests entries in order",
			entry: Submenu("Edit", Native(RoleUndo), Separator(), Native(RoleRedo)),
			want: Entry{Kind: KindSubmenu, Label: "Edit", Items: []Entry{
				{Kind: KindNative, Role: RoleUndo},
				{Kind: KindSeparator},
				{Kind: KindNative, Role: RoleRedo},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.entry, tt.want) {
				t.Errorf("entry = %+v, want %+v", tt.entry, tt.want)
			}
		})
	}
}

func TestNewPreservesOrder(t *testing.T) {
	spec := New(
		Submenu("File", Action("new", "New")),
		Separator(),
		Native(RoleQuit),
	)

	if len(spec.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(spec.Items))
	}

	wantKinds := []Kind{KindSubmenu, KindSeparator, KindNative}
	for i, want := range wantKinds {
		if spec.Items[i].Kind != want {
			t.Errorf("Items[%d].Kind = %v, want %v", i, spec.Items[i].Kind, want)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindAction, "action"},
		{KindNative, "native"},
		{KindSeparator, "separator"},
		{KindSubmenu, "submenu"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestRoleString(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleAbout, "About"},
		{RoleHide, "Hide"},
		{RoleHideOthers, "HideOthers"},
		{RoleShowAll, "ShowAll"},
		{RoleUndo, "Undo"},
		{RoleRedo, "Redo"},
		{RoleCut, "Cut"},
		{RoleCopy, "Copy"},
		{RolePaste, "Paste"},
		{RoleEnterFullScreen, "EnterFullScreen"},
		{RoleQuit, "Quit"},
		{RoleNone, "None"},
	}

	for _, tt := range tests {
		if got := tt.role.String(); got != tt.want {
			t.Errorf("Role.String() = %q, want %q", got, tt.want)
		}
	}
}
