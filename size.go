package hotkey

import (
	"os"

	"github.com/xyproto/env/v2"
	"golang.org/x/term"
)

// TermWidth returns the width of the terminal on stdout.
// If stdout is not a terminal, $COLS or $COLUMNS is used, or 0 if neither is set.
func TermWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, _, err := term.GetSize(fd)
		if err == nil {
			return width
		}
	}
	if cols := env.Int("COLS", 0); cols > 0 {
		return cols
	}
	return env.Int("COLUMNS", 0)
}

// ColorEnabled reports whether stdout is a terminal and $NO_COLOR is not set
func ColorEnabled() bool {
	return !env.Has("NO_COLOR") && term.IsTerminal(int(os.Stdout.Fd()))
}
