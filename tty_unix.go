//go:build !windows

package hotkey

import (
	"os"
	"time"

	"github.com/pkg/term"
	"github.com/xyproto/env/v2"
)

// escapeKey is a key and its modifiers, as sent by a VT100 compatible terminal
type escapeKey struct {
	keyCode uint16
	mods    Modifier
}

// Keys for escape sequences
var escapeKeys = map[string]escapeKey{
	"\x1b[A": {VKUp, 0},
	"\x1b[B": {VKDown, 0},
	"\x1b[C": {VKRight, 0},
	"\x1b[D": {VKLeft, 0},
	"\x1b[H": {VKHome, 0},
	"\x1b[F": {VKEnd, 0},

	"\x1b[1~": {VKHome, 0},
	"\x1b[2~": {VKInsert, 0},
	"\x1b[3~": {VKDelete, 0},
	"\x1b[4~": {VKEnd, 0},
	"\x1b[5~": {VKPrior, 0},
	"\x1b[6~": {VKNext, 0},

	"\x1bOP":   {VKF1, 0},
	"\x1bOQ":   {VKF1 + 1, 0},
	"\x1bOR":   {VKF1 + 2, 0},
	"\x1bOS":   {VKF1 + 3, 0},
	"\x1b[11~": {VKF1, 0},
	"\x1b[12~": {VKF1 + 1, 0},
	"\x1b[13~": {VKF1 + 2, 0},
	"\x1b[14~": {VKF1 + 3, 0},
	"\x1b[15~": {VKF1 + 4, 0},
	"\x1b[17~": {VKF1 + 5, 0},
	"\x1b[18~": {VKF1 + 6, 0},
	"\x1b[19~": {VKF1 + 7, 0},
	"\x1b[20~": {VKF1 + 8, 0},
	"\x1b[21~": {VKF1 + 9, 0},
	"\x1b[23~": {VKF1 + 10, 0},
	"\x1b[24~": {VKF1 + 11, 0},

	"\x1b[1;5A": {VKUp, ModLeftCtrl},
	"\x1b[1;5B": {VKDown, ModLeftCtrl},
	"\x1b[1;5C": {VKRight, ModLeftCtrl},
	"\x1b[1;5D": {VKLeft, ModLeftCtrl},
	"\x1b[1;5H": {VKHome, ModLeftCtrl},
	"\x1b[1;5F": {VKEnd, ModLeftCtrl},
	"\x1b[2;5~": {VKInsert, ModLeftCtrl},

	"\x1b[1;3A": {VKUp, ModLeftAlt},
	"\x1b[1;3B": {VKDown, ModLeftAlt},
	"\x1b[1;3C": {VKRight, ModLeftAlt},
	"\x1b[1;3D": {VKLeft, ModLeftAlt},

	"\x1b[1;2A": {VKUp, ModShift},
	"\x1b[1;2B": {VKDown, ModShift},
	"\x1b[1;2C": {VKRight, ModShift},
	"\x1b[1;2D": {VKLeft, ModShift},
	"\x1b[2;2~": {VKInsert, ModShift},
}

// TTY reads key events from the terminal
type TTY struct {
	t       *term.Term
	timeout time.Duration
	layout  Layout
}

// NewTTY opens the terminal in raw mode
func NewTTY() (*TTY, error) {
	t, err := term.Open(getTTYPath(), term.RawMode, term.CBreakMode, term.ReadTimeout(defaultTimeout))
	if err != nil {
		return nil, err
	}
	return &TTY{t, defaultTimeout, USLayout}, nil
}

// getTTYPath returns the appropriate TTY path
func getTTYPath() string {
	// Check for tmux pane TTY
	if tmuxTTY := env.Str("TMUX_PANE_TTY"); tmuxTTY != "" {
		return tmuxTTY
	}

	// Check for SSH TTY
	if sshTTY := env.Str("SSH_TTY"); sshTTY != "" {
		return sshTTY
	}

	defaultTTY := "/dev/tty"
	if _, err := os.Stat(defaultTTY); err == nil {
		return defaultTTY
	}

	// Fallback to stdin if /dev/tty unavailable
	return "/dev/stdin"
}

// SetTimeout sets a timeout for reading a key. 0 blocks until a key is pressed.
func (tty *TTY) SetTimeout(d time.Duration) {
	tty.timeout = d
	tty.t.SetReadTimeout(tty.timeout)
}

// Close will restore and close the raw terminal
func (tty *TTY) Close() {
	tty.t.Restore()
	tty.t.Close()
}

// ReadEvent reads the next key press. The returned bool is false if the
// read timed out, or if the bytes that were read are not a known key.
// A terminal only reports key presses, so every event is a key down event.
func (tty *TTY) ReadEvent() (KeyEvent, bool, error) {
	buf := make([]byte, 6)
	n, err := tty.t.Read(buf)
	if err != nil || n == 0 {
		return KeyEvent{}, false, err
	}

	// If only the ESC byte arrived, do a short timed read to collect
	// the rest of an escape sequence
	if n == 1 && buf[0] == 27 {
		saved := tty.timeout
		tty.SetTimeout(50 * time.Millisecond)
		n2, _ := tty.t.Read(buf[1:])
		tty.SetTimeout(saved)
		n += n2
	}

	ev, ok := parseKeyBytes(tty.layout, buf[:n])
	return ev, ok, nil
}

// parseKeyBytes converts the bytes a terminal sends for one key press to a key event
func parseKeyBytes(layout Layout, b []byte) (KeyEvent, bool) {
	if len(b) == 0 {
		return KeyEvent{}, false
	}
	if k, found := escapeKeys[string(b)]; found {
		return pressed(layout, k.keyCode, k.mods, 0), true
	}
	if len(b) == 2 && b[0] == 27 {
		// Alt+key
		ev, ok := parseKeyBytes(layout, b[1:])
		if !ok {
			return KeyEvent{}, false
		}
		ev.Modifiers |= ModLeftAlt
		return ev, true
	}
	if len(b) != 1 {
		return KeyEvent{}, false
	}

	c := b[0]
	switch {
	case c == 27:
		return pressed(layout, VKEscape, 0, c), true
	case c == 127 || c == 8:
		return pressed(layout, VKBack, 0, '\b'), true
	case c == 13 || c == 10:
		return pressed(layout, VKReturn, 0, '\r'), true
	case c == 9:
		return pressed(layout, VKTab, 0, '\t'), true
	case c == 0:
		return pressed(layout, VKSpace, ModLeftCtrl, 0), true
	case c >= 1 && c <= 26:
		// Ctrl+A ... Ctrl+Z
		return pressed(layout, uint16('A'+c-1), ModLeftCtrl, c), true
	}
	if keyCode, shift, ok := KeyForChar(c); ok {
		var mods Modifier
		if shift {
			mods = ModShift
		}
		return pressed(layout, keyCode, mods, c), true
	}
	return KeyEvent{}, false
}
