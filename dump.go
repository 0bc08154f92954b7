package hotkey

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mgutz/ansi"
)

// DumpStyle controls how DumpStyled lays out the key name tables
type DumpStyle struct {
	Color bool // color the table letter, scan code and name
	Width int  // terminal width, entries are placed in columns if > 0
}

var (
	regularColor  = ansi.ColorFunc("green")
	extendedColor = ansi.ColorFunc("yellow")
	scanCodeColor = ansi.ColorFunc("cyan")
	nameColor     = ansi.ColorFunc("white+b")
)

// tableLetter is "R" for the regular table and "E" for the extended table
func tableLetter(extended bool) string {
	if extended {
		return "E"
	}
	return "R"
}

// Dump writes one line per named key, like "R 1D Ctrl" or "E 38 Right Alt"
func (c *Codec) Dump(w io.Writer) error {
	return c.DumpStyled(w, DumpStyle{})
}

// DumpStyled writes the named keys, optionally in color and in columns
func (c *Codec) DumpStyled(w io.Writer, style DumpStyle) error {
	entries := c.Names().Entries()

	nameWidth := 0
	for _, e := range entries {
		if len(e.Name) > nameWidth {
			nameWidth = len(e.Name)
		}
	}
	// "R 1D " + name + two spaces between columns
	cellWidth := 5 + nameWidth + 2
	columns := 1
	if style.Width > 0 && style.Width/cellWidth > 1 {
		columns = style.Width / cellWidth
	}

	bw := bufio.NewWriter(w)
	for i, e := range entries {
		letter, code, name := tableLetter(e.Extended), fmt.Sprintf("%02X", e.ScanCode), e.Name
		padding := ""
		last := (i+1)%columns == 0 || i == len(entries)-1
		if !last {
			padding = strings.Repeat(" ", nameWidth-len(name)+2)
		}
		if style.Color {
			if e.Extended {
				letter = extendedColor(letter)
			} else {
				letter = regularColor(letter)
			}
			code = scanCodeColor(code)
			name = nameColor(name)
		}
		fmt.Fprintf(bw, "%s %s %s%s", letter, code, name, padding)
		if last {
			bw.WriteString("\n")
		}
	}
	return bw.Flush()
}

// Describe writes every field of a key event, how the layout maps its key
// code and scan code, and the names of the modifier flags that are set
func (c *Codec) Describe(w io.Writer, ev KeyEvent) error {
	l := c.layout
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Key event:\n")
	fmt.Fprintf(bw, " Down:          %t\n", ev.Down)
	fmt.Fprintf(bw, " RepeatCount:   %d\n", ev.RepeatCount)
	fmt.Fprintf(bw, " KeyCode:       %#02x\n", ev.KeyCode)
	fmt.Fprintf(bw, "    scan code => %#02x\n", l.ScanCode(ev.KeyCode))
	fmt.Fprintf(bw, "    char      => %#02x\n", l.Char(ev.KeyCode))
	fmt.Fprintf(bw, " ScanCode:      %#02x\n", ev.ScanCode)
	fmt.Fprintf(bw, "    key code  => %#02x\n", l.KeyCode(ev.ScanCode, false))
	fmt.Fprintf(bw, "    extended  => %#02x\n", l.KeyCode(ev.ScanCode, true))
	fmt.Fprintf(bw, "    name      => %q\n", c.Names().Name(ev.ScanCode, ev.Extended()))
	if ev.Char >= 0x20 && ev.Char < 0x7F {
		fmt.Fprintf(bw, " Char:          '%c' (%#02x)\n", ev.Char, ev.Char)
	} else {
		fmt.Fprintf(bw, " Char:          %#02x\n", ev.Char)
	}
	fmt.Fprintf(bw, " Modifiers:     %#04x\n", uint32(ev.Modifiers))
	for _, mn := range modifierNames {
		if ev.Modifiers.Has(mn.mod) {
			fmt.Fprintf(bw, "  %s\n", mn.name)
		}
	}
	return bw.Flush()
}
