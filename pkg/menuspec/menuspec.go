// Package menuspec describes a native menu bar as a plain, immutable value.
//
// A Spec is an ordered tree of entries: named action items, platform-native
// items (About, Hide, Copy, Quit, ...), separators, and submenus. The value is
// built once at startup and handed to the host shell, which maps each entry
// onto the platform menu API. Nothing in this package touches the host toolkit,
// so menu layouts can be constructed and inspected in plain unit tests.
package menuspec

// Kind discriminates the entry variants.
type Kind int

const (
	// KindAction is an application-defined item with a stable identifier.
	KindAction Kind = iota
	// KindNative is a predefined platform item whose semantics the host supplies.
	KindNative
	// KindSeparator is a visual divider.
	KindSeparator
	// KindSubmenu is a labeled nested menu.
	KindSubmenu
)

// String returns a short name for the kind, used in logs and test failures.
func (k Kind) String() string {
	switch k {
	case KindAction:
		return "action"
	case KindNative:
		return "native"
	case KindSeparator:
		return "separator"
	case KindSubmenu:
		return "submenu"
	default:
		return "unknown"
	}
}

// Role identifies a platform-native menu item.
type Role int

const (
	RoleNone Role = iota
	RoleAbout
	RoleHide
	RoleHideOthers
	RoleShowAll
	RoleUndo
	RoleRedo
	RoleCut
	RoleCopy
	RolePaste
	RoleEnterFullScreen
	RoleQuit
)

// String returns the conventional name for the role.
func (r Role) String() string {
	switch r {
	case RoleAbout:
		return "About"
	case RoleHide:
		return "Hide"
	case RoleHideOthers:
		return "HideOthers"
	case RoleShowAll:
		return "ShowAll"
	case RoleUndo:
		return "Undo"
	case RoleRedo:
		return "Redo"
	case RoleCut:
		return "Cut"
	case RoleCopy:
		return "Copy"
	case RolePaste:
		return "Paste"
	case RoleEnterFullScreen:
		return "EnterFullScreen"
	case RoleQuit:
		return "Quit"
	default:
		return "None"
	}
}

// Entry is one node of the menu tree. Exactly one variant applies, selected by
// Kind; the other fields are zero.
type Entry struct {
	Kind  Kind
	Role  Role    // KindNative only
	ID    string  // KindAction only: stable identifier reported on click
	Label string  // action label, submenu label, or the About application name
	Items []Entry // KindSubmenu only
}

// Spec is a complete menu bar: the ordered top-level entries.
type Spec struct {
	Items []Entry
}

// New assembles a Spec from top-level entries.
func New(entries ...Entry) Spec {
	return Spec{Items: entries}
}

// Action creates an application-defined item. The id is reported back to the
// shell when the item is clicked; the label is what the user sees.
func Action(id, label string) Entry {
	return Entry{Kind: KindAction, ID: id, Label: label}
}

// Native creates a predefined platform item.
func Native(role Role) Entry {
	return Entry{Kind: KindNative, Role: role}
}

// About creates the native About item, parameterized with the application name
// the platform displays ("About <name>").
func About(appName string) Entry {
	return Entry{Kind: KindNative, Role: RoleAbout, Label: appName}
}

// Separator creates a visual divider.
func Separator() Entry {
	return Entry{Kind: KindSeparator}
}

// Submenu creates a labeled nested menu containing the given entries.
func Submenu(label string, entries ...Entry) Entry {
	return Entry{Kind: KindSubmenu, Label: label, Items: entries}
}
