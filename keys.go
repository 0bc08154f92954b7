package hotkey

import (
	"fmt"
	"strings"
)

// Virtual key codes, as reported in the KeyCode field of a KeyEvent
const (
	VKCancel   = 0x03
	VKBack     = 0x08
	VKTab      = 0x09
	VKReturn   = 0x0D
	VKShift    = 0x10
	VKControl  = 0x11
	VKMenu     = 0x12 // Alt
	VKPause    = 0x13
	VKCapital  = 0x14 // Caps Lock
	VKEscape   = 0x1B
	VKSpace    = 0x20
	VKPrior    = 0x21 // Page Up
	VKNext     = 0x22 // Page Down
	VKEnd      = 0x23
	VKHome     = 0x24
	VKLeft     = 0x25
	VKUp       = 0x26
	VKRight    = 0x27
	VKDown     = 0x28
	VKSnapshot = 0x2C
	VKInsert   = 0x2D
	VKDelete   = 0x2E
	VKLWin     = 0x5B
	VKRWin     = 0x5C
	VKApps     = 0x5D
	VKNumpad0  = 0x60
	VKMultiply = 0x6A
	VKAdd      = 0x6B
	VKSubtract = 0x6D
	VKDecimal  = 0x6E
	VKDivide   = 0x6F
	VKF1       = 0x70
	VKNumLock  = 0x90
	VKScroll   = 0x91
	VKLShift   = 0xA0
	VKRShift   = 0xA1
	VKLControl = 0xA2
	VKRControl = 0xA3
	VKLMenu    = 0xA4
	VKRMenu    = 0xA5

	VKOEM1      = 0xBA // ;
	VKOEMPlus   = 0xBB // =
	VKOEMComma  = 0xBC
	VKOEMMinus  = 0xBD
	VKOEMPeriod = 0xBE
	VKOEM2      = 0xBF // /
	VKOEM3      = 0xC0 // `
	VKOEM4      = 0xDB // [
	VKOEM5      = 0xDC // \
	VKOEM6      = 0xDD // ]
	VKOEM7      = 0xDE // '
)

// Modifier is a bitmask of the modifier and lock state that accompanies a
// key event. The bit values are the ones used by the console in
// dwControlKeyState, so a console record can be converted with a cast.
type Modifier uint32

// Modifiers
const (
	ModNone       Modifier = 0
	ModRightAlt   Modifier = 0x0001
	ModLeftAlt    Modifier = 0x0002
	ModRightCtrl  Modifier = 0x0004
	ModLeftCtrl   Modifier = 0x0008
	ModShift      Modifier = 0x0010
	ModNumLock    Modifier = 0x0020
	ModScrollLock Modifier = 0x0040
	ModCapsLock   Modifier = 0x0080
	ModExtended   Modifier = 0x0100

	ModAnyAlt  = ModLeftAlt | ModRightAlt
	ModAnyCtrl = ModLeftCtrl | ModRightCtrl
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModLeftCtrl, "LeftCtrl"},
	{ModRightCtrl, "RightCtrl"},
	{ModLeftAlt, "LeftAlt"},
	{ModRightAlt, "RightAlt"},
	{ModShift, "Shift"},
	{ModNumLock, "NumLock"},
	{ModScrollLock, "ScrollLock"},
	{ModCapsLock, "CapsLock"},
	{ModExtended, "Extended"},
}

// Has reports whether all bits in m2 are set in m
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// Any reports whether at least one bit in m2 is set in m
func (m Modifier) Any(m2 Modifier) bool {
	return m&m2 != 0
}

// String returns the set flags joined by "|", or "None"
func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}
	var names []string
	rest := m
	for _, mn := range modifierNames {
		if m.Has(mn.mod) {
			names = append(names, mn.name)
			rest &^= mn.mod
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(names, "|")
}

// ParseModifiers parses flag names as produced by Modifier.String.
// Names are case-insensitive and may be separated by "|" or ",".
func ParseModifiers(s string) (Modifier, error) {
	var m Modifier
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ','
	})
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" || strings.EqualFold(field, "None") {
			continue
		}
		found := false
		for _, mn := range modifierNames {
			if strings.EqualFold(field, mn.name) {
				m |= mn.mod
				found = true
				break
			}
		}
		if !found {
			return ModNone, fmt.Errorf("unknown modifier %q", field)
		}
	}
	return m, nil
}
