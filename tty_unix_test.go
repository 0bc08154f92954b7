//go:build !windows

package hotkey

import "testing"

func TestParseKeyBytes(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantKey    uint16
		wantScan   uint16
		wantMods   Modifier
		wantHotkey string
	}{
		{"lower case letter", "a", 'A', 0x1E, 0, "A"},
		{"upper case letter", "A", 'A', 0x1E, ModShift, "Shift+A"},
		{"shifted digit", "#", '3', 0x04, ModShift, "Shift+3"},
		{"punctuation", "?", VKOEM2, 0x35, ModShift, "Shift+/"},
		{"Ctrl+A", "\x01", 'A', 0x1E, ModLeftCtrl, "A"},
		{"Esc", "\x1b", VKEscape, 0x01, 0, "Esc"},
		{"Backspace", "\x7f", VKBack, 0x0E, 0, "Backspace"},
		{"Enter", "\r", VKReturn, 0x1C, 0, "Enter"},
		{"Tab", "\t", VKTab, 0x0F, 0, "Tab"},
		{"Up", "\x1b[A", VKUp, 0x48, ModExtended, "Up"},
		{"Delete", "\x1b[3~", VKDelete, 0x53, ModExtended, "Delete"},
		{"F5", "\x1b[15~", VKF1 + 4, 0x3F, 0, "F5"},
		{"Ctrl+Right", "\x1b[1;5C", VKRight, 0x4D, ModLeftCtrl | ModExtended, "Ctrl+Right"},
		{"Shift+Left", "\x1b[1;2D", VKLeft, 0x4B, ModShift | ModExtended, "Shift+Left"},
		{"Alt+x", "\x1bx", 'X', 0x2D, ModLeftAlt, "Alt+X"},
	}

	c := New(USLayout)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := parseKeyBytes(USLayout, []byte(tt.input))
			if !ok {
				t.Fatalf("parseKeyBytes(%q) did not recognize the key", tt.input)
			}
			if !ev.Down || ev.RepeatCount != 1 {
				t.Errorf("%+v is not a key press", ev)
			}
			if ev.KeyCode != tt.wantKey || ev.ScanCode != tt.wantScan || ev.Modifiers != tt.wantMods {
				t.Errorf("parseKeyBytes(%q) = key %#x scan %#x mods %s; want %#x %#x %s",
					tt.input, ev.KeyCode, ev.ScanCode, ev.Modifiers, tt.wantKey, tt.wantScan, tt.wantMods)
			}
			s, err := c.Encode(ev)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if s != tt.wantHotkey {
				t.Errorf("Encode = %q, want %q", s, tt.wantHotkey)
			}
		})
	}
}

func TestParseKeyBytesUnknown(t *testing.T) {
	for _, input := range []string{"", "\xc3\xa5", "\x1b[99~", "\x1b\xc3", "\x1b\x80"} {
		if ev, ok := parseKeyBytes(USLayout, []byte(input)); ok || ev != (KeyEvent{}) {
			t.Errorf("parseKeyBytes(%q) = %+v, %t; want no key", input, ev, ok)
		}
	}
}
