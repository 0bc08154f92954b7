package hotkey

import (
	"fmt"
	"strings"
)

// splitHotkey splits a hotkey string on "+", skipping empty names
func splitHotkey(hotkey string) []string {
	var tokens []string
	for _, token := range strings.Split(hotkey, "+") {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Decode converts a hotkey string like "Ctrl+Shift+A" to a key down event.
//
// Key names are matched without regard to case. Every key adds its modifier
// bits, if it is a modifier, while the last key decides the scan code, key
// code and character of the event. "Ctrl+Alt" is therefore an Alt key event
// with Ctrl held down. If a name is not found, a zero KeyEvent is returned
// together with an *UnknownKeyError.
func (c *Codec) Decode(hotkey string) (KeyEvent, error) {
	tokens := splitHotkey(hotkey)
	if len(tokens) == 0 {
		return KeyEvent{}, ErrEmpty
	}
	if len(tokens) > MaxKeyCombination {
		return KeyEvent{}, fmt.Errorf("%w: %d keys, the limit is %d", ErrTooManyKeys, len(tokens), MaxKeyCombination)
	}

	names := c.Names()

	var (
		ev   KeyEvent
		mods Modifier
	)
	for _, token := range tokens {
		scanCode, extended, ok := names.Find(token)
		if !ok {
			return KeyEvent{}, &UnknownKeyError{Name: token}
		}
		// The extended flag belongs to the event, not to this key
		if extended {
			mods |= ModExtended
		}

		keyCode := c.layout.KeyCode(scanCode, extended)
		mods = addModifiers(mods, keyCode)

		ev = KeyEvent{
			Down:        true,
			RepeatCount: 1,
			KeyCode:     keyCode,
			ScanCode:    scanCode,
			Char:        keyChar(keyCode, c.layout.Char(keyCode), mods),
			Modifiers:   mods,
		}
	}
	return ev, nil
}
