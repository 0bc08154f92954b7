package hotkey

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Step is one key press in a macro. In YAML it is either a hotkey string,
// or a mapping with "key" and an optional "char" that replaces the
// character the key would normally produce.
type Step struct {
	Key  string `yaml:"key"`
	Char *byte  `yaml:"char,omitempty"`
}

// UnmarshalYAML accepts both "Ctrl+A" and {key: "Ctrl+A", char: 1}
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		s.Key = value.Value
		return nil
	}
	type plain Step
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = Step(p)
	return nil
}

// Macro is a named sequence of key presses.
// The keys are released in reverse order afterwards, unless NoUp is set.
type Macro struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	NoUp        bool   `yaml:"no_up"`
	Steps       []Step `yaml:"keys"`
}

// Macros is a list of macros, as read from a macro file
type Macros struct {
	Macros []Macro `yaml:"macros"`
}

// DefaultMacros is used when no macro file is given
const DefaultMacros = `macros:
  - name: Ctrl-Alt
    description: information
    no_up: true
    keys:
      - Ctrl
      - Ctrl+Alt
  - name: Ctrl-Backspace
    description: file history
    keys:
      - Ctrl
      - key: Ctrl+Backspace
        char: 0x7f
  - name: Ctrl-.
    description: start/stop recording macro to Macro0
    keys:
      - Ctrl
      - key: Ctrl+.
        char: 0
`

// ReadMacros reads macros in YAML format
func ReadMacros(r io.Reader) (*Macros, error) {
	var ms Macros
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&ms); err != nil {
		if errors.Is(err, io.EOF) {
			return &ms, nil
		}
		return nil, fmt.Errorf("could not parse macros: %w", err)
	}
	for i, m := range ms.Macros {
		if strings.TrimSpace(m.Name) == "" {
			return nil, fmt.Errorf("macro %d has no name", i+1)
		}
		if len(m.Steps) == 0 {
			return nil, fmt.Errorf("macro %q has no keys", m.Name)
		}
	}
	slog.Debug("[hotkey] DEBUG macros read", "count", len(ms.Macros))
	return &ms, nil
}

// LoadMacros reads macros from a YAML file.
// An empty filename gives DefaultMacros.
func LoadMacros(filename string) (*Macros, error) {
	if filename == "" {
		return ReadMacros(strings.NewReader(DefaultMacros))
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ReadMacros(bytes.NewReader(data))
}

// Find returns the macro with the given name, ignoring case
func (ms *Macros) Find(name string) (Macro, bool) {
	for _, m := range ms.Macros {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Macro{}, false
}

// releaseMask returns the modifier bits that releasing the key of ev clears
func releaseMask(ev KeyEvent) Modifier {
	switch ev.KeyCode {
	case VKControl:
		if ev.Extended() {
			return ModRightCtrl
		}
		return ModLeftCtrl
	case VKMenu:
		if ev.Extended() {
			return ModRightAlt | ModLeftCtrl
		}
		return ModLeftAlt
	case VKShift:
		return ModShift
	}
	return ModNone
}

// Expand decodes the steps of a macro into key events: one key down event
// per step, followed by the key up events in reverse order, unless m.NoUp is set.
// Sending the events is left to the caller.
func (c *Codec) Expand(m Macro) ([]KeyEvent, error) {
	downs := make([]KeyEvent, 0, len(m.Steps))
	for _, step := range m.Steps {
		ev, err := c.Decode(step.Key)
		if err != nil {
			return nil, fmt.Errorf("macro %q: %w", m.Name, err)
		}
		if step.Char != nil {
			ev.Char = *step.Char
		}
		downs = append(downs, ev)
	}
	if m.NoUp {
		return downs, nil
	}
	events := append([]KeyEvent(nil), downs...)
	for i := len(downs) - 1; i >= 0; i-- {
		up := downs[i]
		up.Down = false
		up.Modifiers &^= releaseMask(up)
		events = append(events, up)
	}
	return events, nil
}
