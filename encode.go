package hotkey

import (
	"fmt"
	"strings"
)

// Encode converts a key event to a hotkey string like "Ctrl+Alt+Delete".
// The modifiers come first, in the order people say them, and the main key
// of the event comes last. If any of the names is missing from the key name
// tables, nothing is returned and the error is an *UnknownKeyError.
// An event without modifiers whose key has no name gives ErrEmpty.
func (c *Codec) Encode(ev KeyEvent) (string, error) {
	names := c.Names()

	refs := modifierKeys(c.layout, ev)
	if len(refs) == 0 && names.Name(ev.ScanCode, ev.Extended()) == "" {
		return "", ErrEmpty
	}
	refs = append(refs, keyRef{ev.ScanCode, ev.Extended()})

	parts := make([]string, 0, len(refs))
	for _, ref := range refs {
		name := names.Name(ref.scanCode, ref.extended)
		if name == "" {
			return "", &UnknownKeyError{ScanCode: ref.scanCode, Extended: ref.extended}
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, "+"), nil
}

// EncodeN is like Encode, but fails with ErrTooLong instead of returning a
// hotkey string that is longer than maxLen bytes
func (c *Codec) EncodeN(ev KeyEvent, maxLen int) (string, error) {
	s, err := c.Encode(ev)
	if err != nil {
		return "", err
	}
	if len(s) > maxLen {
		return "", fmt.Errorf("%w: %q is %d bytes, the limit is %d", ErrTooLong, s, len(s), maxLen)
	}
	return s, nil
}
