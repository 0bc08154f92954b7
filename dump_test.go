package hotkey

import (
	"bytes"
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	if err := New(USLayout).Dump(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(BuildKeyNames(USLayout).Entries()) {
		t.Fatalf("got %d lines, want one per key", len(lines))
	}
	if lines[0] != "R 01 Esc" {
		t.Errorf("first line is %q", lines[0])
	}
	for _, want := range []string{"R 1D Ctrl", "E 1D Right Ctrl", "E 38 Right Alt", "R 45 Num Lock", "E 45 Pause"} {
		found := false
		for _, line := range lines {
			if line == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%q is missing from the dump", want)
		}
	}
}

func TestDumpStyled(t *testing.T) {
	c := New(USLayout)

	var buf bytes.Buffer
	if err := c.DumpStyled(&buf, DumpStyle{Width: 80}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) >= len(c.Names().Entries()) {
		t.Errorf("expected several keys per line, got %d lines", len(lines))
	}
	for _, line := range lines {
		if len(line) > 80 {
			t.Errorf("line is wider than the terminal: %q", line)
		}
	}

	buf.Reset()
	if err := c.DumpStyled(&buf, DumpStyle{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("expected color codes in the output")
	}
}

func TestDescribe(t *testing.T) {
	c := New(USLayout)
	ev, err := c.Decode("Ctrl+Alt+Delete")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := c.Describe(&buf, ev); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		" Down:          true\n",
		" ScanCode:      0x53\n",
		`    name      => "Delete"`,
		"  LeftCtrl\n",
		"  LeftAlt\n",
		"  Extended\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("%q is missing from:\n%s", want, out)
		}
	}
	if strings.Contains(out, "  Shift\n") {
		t.Errorf("Shift is listed, but not set:\n%s", out)
	}
}
