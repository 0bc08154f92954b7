package hotkey

import (
	"strings"

	"github.com/xyproto/env/v2"
)

// KeyNamer gives the display name of a physical key, or "" if the key has no name.
// Extended selects the extended variant of the scan code (navigation cluster,
// right hand Ctrl and Alt and so on).
type KeyNamer interface {
	KeyName(scanCode uint16, extended bool) string
}

// KeyMapper maps between physical and logical keys
type KeyMapper interface {
	// ScanCode returns the scan code for a virtual key, or 0
	ScanCode(keyCode uint16) uint16
	// KeyCode returns the virtual key for a scan code, or 0.
	// The generic VKControl, VKMenu and VKShift are returned for modifier keys.
	KeyCode(scanCode uint16, extended bool) uint16
	// Char returns the unshifted character a virtual key produces, or 0
	Char(keyCode uint16) byte
}

// Layout is everything the codec needs to know about a keyboard
type Layout interface {
	KeyNamer
	KeyMapper
}

// LayoutByName returns the layout for "us" or "system".
// Unknown names give the system layout.
func LayoutByName(name string) Layout {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "us", "en-us", "builtin":
		return USLayout
	default:
		return SystemLayout()
	}
}

// configuredLayout returns the layout selected by $HOTKEY_LAYOUT
func configuredLayout() Layout {
	return LayoutByName(env.Str("HOTKEY_LAYOUT", "system"))
}

// genericKeyCode folds left and right modifier key codes into the generic ones
func genericKeyCode(keyCode uint16) uint16 {
	switch keyCode {
	case VKLControl, VKRControl:
		return VKControl
	case VKLMenu, VKRMenu:
		return VKMenu
	case VKLShift, VKRShift:
		return VKShift
	}
	return keyCode
}
