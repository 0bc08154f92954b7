package hotkey

// KeyEvent represents a keyboard event, laid out like a console key event record
type KeyEvent struct {
	Down        bool     // Pressed (true) or released (false)
	RepeatCount uint16   // Number of repeats represented by this event
	KeyCode     uint16   // Virtual key code, layout independent
	ScanCode    uint16   // Physical key position, indexes the key name tables
	Char        byte     // Resolved character, or 0
	Modifiers   Modifier // Modifier and lock state
}

// Extended reports whether the scan code refers to the extended key name table
func (ev KeyEvent) Extended() bool {
	return ev.Modifiers.Has(ModExtended)
}
