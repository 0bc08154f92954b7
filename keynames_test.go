package hotkey

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

// countingLayout counts the KeyName calls, to see when the tables are built
type countingLayout struct {
	Layout
	calls atomic.Int64
}

func (cl *countingLayout) KeyName(scanCode uint16, extended bool) string {
	cl.calls.Add(1)
	return cl.Layout.KeyName(scanCode, extended)
}

func TestNamesAreBuiltOnce(t *testing.T) {
	cl := &countingLayout{Layout: USLayout}
	c := New(cl)

	if n := cl.calls.Load(); n != 0 {
		t.Fatalf("New asked for %d key names, want none", n)
	}

	const workers = 16
	var (
		wg     sync.WaitGroup
		tables [workers]*KeyNames
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := c.Decode("Ctrl+Alt+Delete"); err != nil {
				t.Errorf("Decode: %v", err)
			}
			tables[i] = c.Names()
		}(i)
	}
	wg.Wait()

	if n := cl.calls.Load(); n != 2*NumScanCodes {
		t.Errorf("KeyName was called %d times, want %d", n, 2*NumScanCodes)
	}
	for i := 1; i < workers; i++ {
		if tables[i] != tables[0] {
			t.Fatal("Names returned different tables")
		}
	}
}

func TestFind(t *testing.T) {
	kn := BuildKeyNames(USLayout)
	tests := []struct {
		name         string
		wantScan     uint16
		wantExtended bool
		wantOK       bool
	}{
		{"Ctrl", 0x1D, false, true},
		{"ctrl", 0x1D, false, true},
		{"RIGHT CTRL", 0x1D, true, true},
		{"Delete", 0x53, true, true},
		{"Num Del", 0x53, false, true},
		{"Pause", 0x45, true, true},
		{"Num Lock", 0x45, false, true},
		{"Num Plus", 0x4E, false, true},
		{"", 0, false, false},
		{"Nonexistent", 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, ext, ok := kn.Find(tt.name)
			if ok != tt.wantOK || sc != tt.wantScan || ext != tt.wantExtended {
				t.Errorf("Find(%q) = %#x, %t, %t; want %#x, %t, %t",
					tt.name, sc, ext, ok, tt.wantScan, tt.wantExtended, tt.wantOK)
			}
		})
	}
}

func TestNamesAreUnique(t *testing.T) {
	seen := make(map[string]KeyNameEntry)
	for _, e := range BuildKeyNames(USLayout).Entries() {
		if strings.Contains(e.Name, "+") {
			t.Errorf("key name %q contains the separator", e.Name)
		}
		key := strings.ToLower(e.Name)
		if prev, found := seen[key]; found {
			t.Errorf("%q is used for both %+v and %+v", e.Name, prev, e)
		}
		seen[key] = e
	}
}

func TestEntriesOrder(t *testing.T) {
	entries := BuildKeyNames(USLayout).Entries()
	if len(entries) == 0 {
		t.Fatal("no entries")
	}
	if first := entries[0]; first.ScanCode != 0x01 || first.Extended || first.Name != "Esc" {
		t.Errorf("first entry is %+v, want Esc", first)
	}
	for i := 1; i < len(entries); i++ {
		a, b := entries[i-1], entries[i]
		if a.ScanCode > b.ScanCode || (a.ScanCode == b.ScanCode && a.Extended) {
			t.Fatalf("entries %+v and %+v are out of order", a, b)
		}
	}
}

func TestNameOutOfRange(t *testing.T) {
	kn := BuildKeyNames(USLayout)
	if name := kn.Name(0x1FF, false); name != "" {
		t.Errorf("Name(0x1ff) = %q, want nothing", name)
	}
	if name := kn.Name(0x53, true); name != "Delete" {
		t.Errorf("Name(0x53, extended) = %q, want Delete", name)
	}
}
