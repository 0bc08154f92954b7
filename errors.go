package hotkey

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKey is matched by every *UnknownKeyError
	ErrUnknownKey = errors.New("unknown key")

	// ErrEmpty is returned when there are no key names to encode or decode
	ErrEmpty = errors.New("no keys in hotkey")

	// ErrTooLong is returned by EncodeN when the hotkey does not fit
	ErrTooLong = errors.New("hotkey is too long")

	// ErrTooManyKeys is returned by Decode for more than MaxKeyCombination keys
	ErrTooManyKeys = errors.New("too many keys in hotkey")
)

// UnknownKeyError is returned when a key name or scan code has no entry in
// the key name tables.
type UnknownKeyError struct {
	Name     string // the token that could not be decoded, if decoding
	ScanCode uint16 // the scan code that had no name, if encoding
	Extended bool
}

func (e *UnknownKeyError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown key name %q", e.Name)
	}
	table := "regular"
	if e.Extended {
		table = "extended"
	}
	return fmt.Sprintf("no %s key name for scan code %#02x", table, e.ScanCode)
}

// Is makes errors.Is(err, ErrUnknownKey) true for an *UnknownKeyError
func (e *UnknownKeyError) Is(target error) bool {
	return target == ErrUnknownKey
}
