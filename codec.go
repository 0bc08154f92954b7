package hotkey

import "sync"

// MaxKeyCombination is the largest number of keys a hotkey can hold:
// eight modifiers and one other key, like
// Caps Lock+Alt+Right Alt+Ctrl+Right Ctrl+Num Lock+Scroll Lock+Shift+X
const MaxKeyCombination = 9

// Codec converts between key events and hotkey strings like "Ctrl+Alt+Delete"
// for one keyboard layout. The key name tables are built on first use.
// A Codec is safe for concurrent use.
type Codec struct {
	layout Layout
	once   sync.Once
	names  *KeyNames
}

// New creates a Codec for the given layout
func New(layout Layout) *Codec {
	return &Codec{layout: layout}
}

// Layout returns the layout of the Codec
func (c *Codec) Layout() Layout {
	return c.layout
}

// Names returns the key name tables, building them if this is the first call.
// Concurrent first callers wait for the one build to finish.
func (c *Codec) Names() *KeyNames {
	c.once.Do(func() {
		c.names = BuildKeyNames(c.layout)
	})
	return c.names
}

var (
	defaultCodec     *Codec
	defaultCodecOnce sync.Once
)

// Default returns the process wide Codec, using the layout selected by
// $HOTKEY_LAYOUT ("us" or "system", the default)
func Default() *Codec {
	defaultCodecOnce.Do(func() {
		defaultCodec = New(configuredLayout())
	})
	return defaultCodec
}

// Encode converts a key event to a hotkey string, using the default Codec
func Encode(ev KeyEvent) (string, error) {
	return Default().Encode(ev)
}

// EncodeN is like Encode, but fails with ErrTooLong if the hotkey string
// would be longer than maxLen bytes
func EncodeN(ev KeyEvent, maxLen int) (string, error) {
	return Default().EncodeN(ev, maxLen)
}

// Decode converts a hotkey string to a key event, using the default Codec
func Decode(hotkey string) (KeyEvent, error) {
	return Default().Decode(hotkey)
}
