package hotkey

import (
	"log/slog"
	"strings"
)

// NumScanCodes is the number of entries in each key name table
const NumScanCodes = 256

// KeyNames holds the display names of the regular and the extended keys,
// indexed by scan code. It is never modified after it has been built.
type KeyNames struct {
	regular  [NumScanCodes]string
	extended [NumScanCodes]string
}

// KeyNameEntry is one named key, as listed by KeyNames.Entries
type KeyNameEntry struct {
	ScanCode uint16
	Extended bool
	Name     string
}

// BuildKeyNames asks namer for the name of every scan code, in both the
// regular and the extended variant
func BuildKeyNames(namer KeyNamer) *KeyNames {
	var kn KeyNames
	var regularCount, extendedCount int
	for sc := 0; sc < NumScanCodes; sc++ {
		if kn.regular[sc] = namer.KeyName(uint16(sc), false); kn.regular[sc] != "" {
			regularCount++
		}
		if kn.extended[sc] = namer.KeyName(uint16(sc), true); kn.extended[sc] != "" {
			extendedCount++
		}
	}
	slog.Debug("[hotkey] DEBUG key name tables built", "regular", regularCount, "extended", extendedCount)
	return &kn
}

// Name returns the name of a scan code, or "" if it has none
func (kn *KeyNames) Name(scanCode uint16, extended bool) string {
	if scanCode >= NumScanCodes {
		return ""
	}
	if extended {
		return kn.extended[scanCode]
	}
	return kn.regular[scanCode]
}

// Find looks up a key name, ignoring case. The regular table is searched
// before the extended one.
func (kn *KeyNames) Find(name string) (scanCode uint16, extended, ok bool) {
	if name == "" {
		return 0, false, false
	}
	for sc := range kn.regular {
		if strings.EqualFold(kn.regular[sc], name) {
			return uint16(sc), false, true
		}
	}
	for sc := range kn.extended {
		if strings.EqualFold(kn.extended[sc], name) {
			return uint16(sc), true, true
		}
	}
	return 0, false, false
}

// Entries returns every named key, ordered by scan code, with the regular
// entry before the extended entry for the same scan code
func (kn *KeyNames) Entries() []KeyNameEntry {
	var entries []KeyNameEntry
	for sc := 0; sc < NumScanCodes; sc++ {
		if name := kn.regular[sc]; name != "" {
			entries = append(entries, KeyNameEntry{uint16(sc), false, name})
		}
		if name := kn.extended[sc]; name != "" {
			entries = append(entries, KeyNameEntry{uint16(sc), true, name})
		}
	}
	return entries
}
