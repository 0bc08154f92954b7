package hotkey

import "time"

var defaultTimeout = 2 * time.Millisecond

// Timeout returns the configured read timeout
func (tty *TTY) Timeout() time.Duration {
	return tty.timeout
}

// SetLayout sets the layout used to fill in scan codes for the keys that are read
func (tty *TTY) SetLayout(layout Layout) {
	tty.layout = layout
}

// pressed returns a key down event for keyCode. The scan code comes from
// layout, and the event is marked as extended if the key is only found
// in the extended key table.
func pressed(layout Layout, keyCode uint16, mods Modifier, c byte) KeyEvent {
	scanCode := layout.ScanCode(keyCode)
	if layout.KeyCode(scanCode, false) != keyCode && layout.KeyCode(scanCode, true) == keyCode {
		mods |= ModExtended
	}
	return KeyEvent{
		Down:        true,
		RepeatCount: 1,
		KeyCode:     keyCode,
		ScanCode:    scanCode,
		Char:        c,
		Modifiers:   mods,
	}
}
