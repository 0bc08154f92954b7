//go:build windows

package hotkey

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

var (
	kernel32DLL           = windows.NewLazySystemDLL("kernel32.dll")
	procReadConsoleInputW = kernel32DLL.NewProc("ReadConsoleInputW")
)

const keyEventType = 0x0001

// keyEventRecord mirrors KEY_EVENT_RECORD
type keyEventRecord struct {
	keyDown         int32
	repeatCount     uint16
	virtualKeyCode  uint16
	virtualScanCode uint16
	unicodeChar     uint16
	controlKeyState uint32
}

// inputRecord mirrors INPUT_RECORD: 2 bytes of event type, 2 bytes of
// padding, and a 16 byte union
type inputRecord struct {
	eventType uint16
	_         [2]byte
	event     [16]byte
}

// TTY reads key events from the console input buffer
type TTY struct {
	fd      int
	orig    *term.State
	timeout time.Duration
	layout  Layout
}

// NewTTY opens the console for reading key events.
// If stdin is not a console, CONIN$ is opened instead.
func NewTTY() (*TTY, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		f, err := os.OpenFile("CONIN$", os.O_RDWR, 0)
		if err != nil {
			return nil, fmt.Errorf("stdin is not a terminal and CONIN$ could not be opened: %w", err)
		}
		fd = int(f.Fd())
	}
	orig, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &TTY{
		fd:      fd,
		orig:    orig,
		timeout: defaultTimeout,
		layout:  SystemLayout(),
	}, nil
}

// SetTimeout sets a timeout for reading a key. 0 blocks until a key is pressed.
func (tty *TTY) SetTimeout(d time.Duration) {
	tty.timeout = d
}

// Close restores the console mode
func (tty *TTY) Close() {
	if tty.orig != nil {
		term.Restore(tty.fd, tty.orig)
	}
}

// ReadEvent reads the next key event from the console, key up events included.
// The returned bool is false if the read timed out.
func (tty *TTY) ReadEvent() (KeyEvent, bool, error) {
	handle := windows.Handle(tty.fd)

	waitMS := uint32(windows.INFINITE)
	if tty.timeout > 0 {
		waitMS = uint32(tty.timeout.Milliseconds())
		if waitMS == 0 {
			waitMS = 1
		}
	}

	event, err := windows.WaitForSingleObject(handle, waitMS)
	if err != nil {
		return KeyEvent{}, false, err
	}
	if event == uint32(windows.WAIT_TIMEOUT) {
		return KeyEvent{}, false, nil
	}

	for {
		var pending uint32
		if err := windows.GetNumberOfConsoleInputEvents(handle, &pending); err != nil {
			return KeyEvent{}, false, err
		}
		if pending == 0 {
			return KeyEvent{}, false, nil
		}
		rec, err := readConsoleInputRecord(handle)
		if err != nil {
			return KeyEvent{}, false, err
		}
		if rec.eventType != keyEventType {
			continue
		}
		ke := *(*keyEventRecord)(unsafe.Pointer(&rec.event[0]))
		return consoleKeyEvent(ke), true, nil
	}
}

func readConsoleInputRecord(handle windows.Handle) (inputRecord, error) {
	var rec [1]inputRecord
	var n uint32
	r1, _, _ := procReadConsoleInputW.Call(
		uintptr(handle),
		uintptr(unsafe.Pointer(&rec[0])),
		1,
		uintptr(unsafe.Pointer(&n)),
	)
	if r1 == 0 || n == 0 {
		return inputRecord{}, errors.New("ReadConsoleInputW failed")
	}
	return rec[0], nil
}

// consoleKeyEvent converts a console record. The control key state bits
// are the Modifier bits.
func consoleKeyEvent(ke keyEventRecord) KeyEvent {
	var c byte
	if ke.unicodeChar < 0x100 {
		c = byte(ke.unicodeChar)
	}
	return KeyEvent{
		Down:        ke.keyDown != 0,
		RepeatCount: ke.repeatCount,
		KeyCode:     ke.virtualKeyCode,
		ScanCode:    ke.virtualScanCode,
		Char:        c,
		Modifiers:   Modifier(ke.controlKeyState),
	}
}
