//go:build windows

package hotkey

import (
	"log/slog"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32DLL           = windows.NewLazySystemDLL("user32.dll")
	procGetKeyNameTextW = user32DLL.NewProc("GetKeyNameTextW")
	procMapVirtualKeyW  = user32DLL.NewProc("MapVirtualKeyW")

	// user32LoadErr is set if user32.dll could not be loaded
	user32LoadErr = user32DLL.Load()
)

const (
	mapVKToVSC   = 0
	mapVSCToVK   = 1
	mapVKToChar  = 2
	mapVSCToVKEx = 3

	maxKeyNameLen = 16
)

type windowsLayout struct{}

// SystemLayout returns the layout of the active Windows keyboard, as seen
// through user32. If user32 can not be loaded, the US layout is returned.
func SystemLayout() Layout {
	if user32LoadErr != nil {
		slog.Debug("[hotkey] DEBUG user32.dll is unavailable, using the US layout", "error", user32LoadErr)
		return USLayout
	}
	return windowsLayout{}
}

// KeyName asks GetKeyNameTextW for the name of a scan code
func (windowsLayout) KeyName(scanCode uint16, extended bool) string {
	lParam := uintptr(scanCode&0xFF) << 16
	if extended {
		lParam |= 1 << 24
	}
	var buf [maxKeyNameLen]uint16
	n, _, _ := procGetKeyNameTextW.Call(lParam, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func mapVirtualKey(code uint32, mapType uint32) uint32 {
	r, _, _ := procMapVirtualKeyW.Call(uintptr(code), uintptr(mapType))
	return uint32(r)
}

// ScanCode maps a virtual key code to a scan code
func (windowsLayout) ScanCode(keyCode uint16) uint16 {
	return uint16(mapVirtualKey(uint32(keyCode), mapVKToVSC))
}

// KeyCode maps a scan code to a virtual key code. Extended scan codes are
// looked up with the 0xE0 prefix first, so that the navigation cluster is
// not reported as keypad keys.
func (windowsLayout) KeyCode(scanCode uint16, extended bool) uint16 {
	if extended {
		if vk := mapVirtualKey(0xE000|uint32(scanCode&0xFF), mapVSCToVKEx); vk != 0 {
			return genericKeyCode(uint16(vk))
		}
	}
	return genericKeyCode(uint16(mapVirtualKey(uint32(scanCode), mapVSCToVK)))
}

// Char maps a virtual key code to its unshifted character.
// Dead keys and characters outside of a single byte give 0.
func (windowsLayout) Char(keyCode uint16) byte {
	c := mapVirtualKey(uint32(keyCode), mapVKToChar)
	if c&0x80000000 != 0 || c > 0xFF {
		return 0
	}
	return byte(c)
}
