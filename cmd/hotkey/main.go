package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
	"github.com/xyproto/hotkey"
)

const version = "1.0.0"

var (
	layoutName string
	noColor    bool
	verbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hotkey",
	Short: "Convert between key events and hotkey strings",
	Long: `hotkey converts keyboard events to hotkey strings like "Ctrl+Alt+Delete",
and hotkey strings back to keyboard events.

Examples:
  hotkey decode Ctrl+Alt+Delete          # Show the key event for a hotkey
  hotkey encode --scan 0x1e --mods Shift # Show the hotkey for a key event
  hotkey dump                            # List all key names
  hotkey capture                         # Print the hotkey of each key pressed
  hotkey macro Ctrl-Alt                  # Show the key events of a macro`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose || env.Has("HOTKEY_DEBUG") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&layoutName, "layout", "l", env.Str("HOTKEY_LAYOUT", "system"), "keyboard layout: us or system")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	encodeCmd.Flags().String("scan", "0", "scan code")
	encodeCmd.Flags().String("vk", "", "virtual key code (default: from the scan code)")
	encodeCmd.Flags().String("char", "", "character")
	encodeCmd.Flags().String("mods", "", `modifiers, like "LeftCtrl|Shift|Extended"`)
	encodeCmd.Flags().Bool("up", false, "key up event")
	encodeCmd.Flags().Int("max", 0, "maximum length of the hotkey string (0 for no limit)")

	macroCmd.Flags().StringP("file", "f", "", "macro file (default: built-in macros)")

	rootCmd.AddCommand(encodeCmd, decodeCmd, dumpCmd, describeCmd, captureCmd, macroCmd)
}

func codec() *hotkey.Codec {
	return hotkey.New(hotkey.LayoutByName(layoutName))
}

// parseUint16 parses decimal or 0x prefixed hexadecimal numbers
func parseUint16(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return uint16(v), nil
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Convert a key event to a hotkey string",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := codec()
		flags := cmd.Flags()

		scanFlag, _ := flags.GetString("scan")
		scanCode, err := parseUint16(scanFlag)
		if err != nil {
			return err
		}
		modsFlag, _ := flags.GetString("mods")
		mods, err := hotkey.ParseModifiers(modsFlag)
		if err != nil {
			return err
		}
		up, _ := flags.GetBool("up")
		ev := hotkey.KeyEvent{
			Down:        !up,
			RepeatCount: 1,
			ScanCode:    scanCode,
			Modifiers:   mods,
		}
		if vkFlag, _ := flags.GetString("vk"); vkFlag != "" {
			if ev.KeyCode, err = parseUint16(vkFlag); err != nil {
				return err
			}
		} else {
			ev.KeyCode = c.Layout().KeyCode(scanCode, ev.Extended())
		}
		if charFlag, _ := flags.GetString("char"); len(charFlag) == 1 {
			ev.Char = charFlag[0]
		} else if charFlag != "" {
			v, err := parseUint16(charFlag)
			if err != nil {
				return err
			}
			ev.Char = byte(v)
		}

		maxLen, _ := flags.GetInt("max")
		var s string
		if maxLen > 0 {
			s, err = c.EncodeN(ev, maxLen)
		} else {
			s, err = c.Encode(ev)
		}
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <hotkey>...",
	Short: "Convert hotkey strings to key events",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := codec()
		for _, arg := range args {
			ev, err := c.Decode(arg)
			if err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
			fmt.Printf("%s: scan=%#02x vk=%#02x char=%#02x mods=%s\n", arg, ev.ScanCode, ev.KeyCode, ev.Char, ev.Modifiers)
		}
		return nil
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe <hotkey>",
	Short: "Decode a hotkey string and show every field of the key event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := codec()
		ev, err := c.Decode(args[0])
		if err != nil {
			return err
		}
		return c.Describe(os.Stdout, ev)
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "List the names of all keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return codec().DumpStyled(os.Stdout, hotkey.DumpStyle{
			Color: !noColor && hotkey.ColorEnabled(),
			Width: hotkey.TermWidth(),
		})
	},
}

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Print the hotkey string of each key that is pressed, until Esc is pressed twice",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := codec()
		tty, err := hotkey.NewTTY()
		if err != nil {
			return err
		}
		defer tty.Close()
		tty.SetLayout(c.Layout())
		tty.SetTimeout(10 * time.Millisecond)

		escCount := 0
		for escCount < 2 {
			ev, ok, err := tty.ReadEvent()
			if err != nil {
				return err
			}
			if !ok || !ev.Down {
				continue
			}
			s, err := c.Encode(ev)
			if err != nil {
				s = err.Error()
			}
			fmt.Printf("%s\r\n", s)
			if ev.KeyCode == hotkey.VKEscape {
				escCount++
				if escCount == 1 {
					fmt.Print("Press Esc again to exit\r\n")
				}
			} else {
				escCount = 0
			}
		}
		return nil
	},
}

var macroCmd = &cobra.Command{
	Use:   "macro [name]",
	Short: "List macros, or show the key events of one macro",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename, _ := cmd.Flags().GetString("file")
		macros, err := hotkey.LoadMacros(filename)
		if err != nil {
			return err
		}
		if len(args) == 0 {
			for _, m := range macros.Macros {
				fmt.Printf("%-16s - %s\n", m.Name, m.Description)
			}
			return nil
		}
		m, found := macros.Find(args[0])
		if !found {
			return errors.New("no such macro: " + args[0])
		}
		c := codec()
		events, err := c.Expand(m)
		if err != nil {
			return err
		}
		for _, ev := range events {
			s, err := c.Encode(ev)
			if err != nil {
				s = "?"
			}
			state := "down"
			if !ev.Down {
				state = "up"
			}
			fmt.Printf("%-4s %-20s scan=%#02x vk=%#02x char=%#02x mods=%s\n", state, s, ev.ScanCode, ev.KeyCode, ev.Char, ev.Modifiers)
		}
		return nil
	},
}
