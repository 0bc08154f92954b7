package hotkey

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultMacros(t *testing.T) {
	ms, err := LoadMacros("")
	if err != nil {
		t.Fatal(err)
	}
	if len(ms.Macros) != 3 {
		t.Fatalf("got %d default macros, want 3", len(ms.Macros))
	}
	m, found := ms.Find("ctrl-backspace")
	if !found {
		t.Fatal("Ctrl-Backspace not found")
	}
	if len(m.Steps) != 2 || m.Steps[0].Key != "Ctrl" || m.Steps[0].Char != nil {
		t.Fatalf("unexpected steps: %+v", m.Steps)
	}
	if c := m.Steps[1].Char; c == nil || *c != 0x7f {
		t.Errorf("second step should override the character with 0x7f, got %v", c)
	}
	if _, found := ms.Find("Nonexistent"); found {
		t.Error("found a macro that does not exist")
	}
}

func TestExpand(t *testing.T) {
	ms, err := LoadMacros("")
	if err != nil {
		t.Fatal(err)
	}
	c := New(USLayout)

	tests := []struct {
		name string
		want []KeyEvent
	}{
		{
			name: "Ctrl-Alt",
			want: []KeyEvent{
				{Down: true, RepeatCount: 1, KeyCode: VKControl, ScanCode: 0x1D, Modifiers: ModLeftCtrl},
				{Down: true, RepeatCount: 1, KeyCode: VKMenu, ScanCode: 0x38, Modifiers: ModLeftCtrl | ModLeftAlt},
			},
		},
		{
			name: "Ctrl-Backspace",
			want: []KeyEvent{
				{Down: true, RepeatCount: 1, KeyCode: VKControl, ScanCode: 0x1D, Modifiers: ModLeftCtrl},
				{Down: true, RepeatCount: 1, KeyCode: VKBack, ScanCode: 0x0E, Char: 0x7f, Modifiers: ModLeftCtrl},
				{Down: false, RepeatCount: 1, KeyCode: VKBack, ScanCode: 0x0E, Char: 0x7f, Modifiers: ModLeftCtrl},
				{Down: false, RepeatCount: 1, KeyCode: VKControl, ScanCode: 0x1D},
			},
		},
		{
			name: "Ctrl-.",
			want: []KeyEvent{
				{Down: true, RepeatCount: 1, KeyCode: VKControl, ScanCode: 0x1D, Modifiers: ModLeftCtrl},
				{Down: true, RepeatCount: 1, KeyCode: VKOEMPeriod, ScanCode: 0x34, Modifiers: ModLeftCtrl},
				{Down: false, RepeatCount: 1, KeyCode: VKOEMPeriod, ScanCode: 0x34, Modifiers: ModLeftCtrl},
				{Down: false, RepeatCount: 1, KeyCode: VKControl, ScanCode: 0x1D},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, found := ms.Find(tt.name)
			if !found {
				t.Fatalf("macro %q not found", tt.name)
			}
			got, err := c.Expand(m)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExpandReleasesRightAlt(t *testing.T) {
	m := Macro{Name: "AltGr-Q", Steps: []Step{{Key: "Right Alt"}, {Key: "Right Alt+Q"}}}
	events, err := New(USLayout).Expand(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	last := events[3]
	if last.Down || last.KeyCode != VKMenu {
		t.Fatalf("last event is %+v, want Right Alt released", last)
	}
	if last.Modifiers != ModExtended {
		t.Errorf("Modifiers after releasing Right Alt = %s, want Extended", last.Modifiers)
	}
}

func TestExpandUnknownKey(t *testing.T) {
	m := Macro{Name: "broken", Steps: []Step{{Key: "Ctrl"}, {Key: "Ctrl+Nonexistent"}}}
	_, err := New(USLayout).Expand(m)
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("error = %v, want ErrUnknownKey", err)
	}
	if !strings.Contains(err.Error(), `"broken"`) {
		t.Errorf("error %q does not name the macro", err)
	}
}

func TestReadMacros(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    int
		wantErr bool
	}{
		{name: "empty", yaml: "", want: 0},
		{name: "scalar and mapping steps", yaml: `macros:
  - name: paste
    keys:
      - Shift+Insert
      - key: Ctrl+V
        char: 22
`, want: 1},
		{name: "missing name", yaml: `macros:
  - keys: [A]
`, wantErr: true},
		{name: "missing keys", yaml: `macros:
  - name: nothing
`, wantErr: true},
		{name: "char out of range", yaml: `macros:
  - name: big
    keys:
      - key: A
        char: 300
`, wantErr: true},
		{name: "not yaml", yaml: "macros: [", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, err := ReadMacros(strings.NewReader(tt.yaml))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(ms.Macros) != tt.want {
				t.Errorf("got %d macros, want %d", len(ms.Macros), tt.want)
			}
		})
	}
}

func TestLoadMacrosFromFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "macros.yaml")
	data := `macros:
  - name: quit
    description: close the window
    keys:
      - Alt+F4
`
	if err := os.WriteFile(filename, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	ms, err := LoadMacros(filename)
	if err != nil {
		t.Fatal(err)
	}
	m, found := ms.Find("QUIT")
	if !found || m.Description != "close the window" {
		t.Fatalf("Find(QUIT) = %+v, %t", m, found)
	}
	events, err := New(USLayout).Expand(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 || events[0].Modifiers != ModLeftAlt || events[1].Down {
		t.Errorf("unexpected events: %+v", events)
	}

	if _, err := LoadMacros(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
