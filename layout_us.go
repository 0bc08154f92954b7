package hotkey

// USLayout is the built-in US English layout, with Set 1 scan codes and the
// key names a US English console uses. It is available on every platform.
var USLayout Layout = usLayout{}

type usLayout struct{}

// Regular key names, indexed by scan code
var usRegularNames = [256]string{
	0x01: "Esc",
	0x02: "1", 0x03: "2", 0x04: "3", 0x05: "4", 0x06: "5",
	0x07: "6", 0x08: "7", 0x09: "8", 0x0A: "9", 0x0B: "0",
	0x0C: "-", 0x0D: "=", 0x0E: "Backspace", 0x0F: "Tab",
	0x10: "Q", 0x11: "W", 0x12: "E", 0x13: "R", 0x14: "T",
	0x15: "Y", 0x16: "U", 0x17: "I", 0x18: "O", 0x19: "P",
	0x1A: "[", 0x1B: "]", 0x1C: "Enter", 0x1D: "Ctrl",
	0x1E: "A", 0x1F: "S", 0x20: "D", 0x21: "F", 0x22: "G",
	0x23: "H", 0x24: "J", 0x25: "K", 0x26: "L",
	0x27: ";", 0x28: "'", 0x29: "`", 0x2A: "Shift", 0x2B: "\\",
	0x2C: "Z", 0x2D: "X", 0x2E: "C", 0x2F: "V", 0x30: "B",
	0x31: "N", 0x32: "M", 0x33: ",", 0x34: ".", 0x35: "/",
	0x36: "Right Shift", 0x37: "Num *", 0x38: "Alt", 0x39: "Space",
	0x3A: "Caps Lock",
	0x3B: "F1", 0x3C: "F2", 0x3D: "F3", 0x3E: "F4", 0x3F: "F5",
	0x40: "F6", 0x41: "F7", 0x42: "F8", 0x43: "F9", 0x44: "F10",
	0x45: "Num Lock", 0x46: "Scroll Lock",
	0x47: "Num 7", 0x48: "Num 8", 0x49: "Num 9", 0x4A: "Num -",
	0x4B: "Num 4", 0x4C: "Num 5", 0x4D: "Num 6", 0x4E: "Num Plus",
	0x4F: "Num 1", 0x50: "Num 2", 0x51: "Num 3",
	0x52: "Num 0", 0x53: "Num Del", 0x54: "Sys Req",
	0x57: "F11", 0x58: "F12",
	0x64: "F13", 0x65: "F14", 0x66: "F15", 0x67: "F16", 0x68: "F17",
	0x69: "F18", 0x6A: "F19", 0x6B: "F20", 0x6C: "F21", 0x6D: "F22",
	0x6E: "F23", 0x76: "F24",
}

// Extended key names, indexed by scan code
var usExtendedNames = [256]string{
	0x1C: "Num Enter", 0x1D: "Right Ctrl", 0x35: "Num /",
	0x37: "Prnt Scrn", 0x38: "Right Alt",
	0x45: "Pause", 0x46: "Break",
	0x47: "Home", 0x48: "Up", 0x49: "Page Up",
	0x4B: "Left", 0x4D: "Right",
	0x4F: "End", 0x50: "Down", 0x51: "Page Down",
	0x52: "Insert", 0x53: "Delete",
	0x5B: "Left Windows", 0x5C: "Right Windows", 0x5D: "Application",
}

// Virtual key codes for regular scan codes
var usRegularKeys = [256]uint16{
	0x01: VKEscape,
	0x02: '1', 0x03: '2', 0x04: '3', 0x05: '4', 0x06: '5',
	0x07: '6', 0x08: '7', 0x09: '8', 0x0A: '9', 0x0B: '0',
	0x0C: VKOEMMinus, 0x0D: VKOEMPlus, 0x0E: VKBack, 0x0F: VKTab,
	0x10: 'Q', 0x11: 'W', 0x12: 'E', 0x13: 'R', 0x14: 'T',
	0x15: 'Y', 0x16: 'U', 0x17: 'I', 0x18: 'O', 0x19: 'P',
	0x1A: VKOEM4, 0x1B: VKOEM6, 0x1C: VKReturn, 0x1D: VKControl,
	0x1E: 'A', 0x1F: 'S', 0x20: 'D', 0x21: 'F', 0x22: 'G',
	0x23: 'H', 0x24: 'J', 0x25: 'K', 0x26: 'L',
	0x27: VKOEM1, 0x28: VKOEM7, 0x29: VKOEM3, 0x2A: VKShift, 0x2B: VKOEM5,
	0x2C: 'Z', 0x2D: 'X', 0x2E: 'C', 0x2F: 'V', 0x30: 'B',
	0x31: 'N', 0x32: 'M', 0x33: VKOEMComma, 0x34: VKOEMPeriod, 0x35: VKOEM2,
	0x36: VKShift, 0x37: VKMultiply, 0x38: VKMenu, 0x39: VKSpace,
	0x3A: VKCapital,
	0x3B: VKF1, 0x3C: VKF1 + 1, 0x3D: VKF1 + 2, 0x3E: VKF1 + 3, 0x3F: VKF1 + 4,
	0x40: VKF1 + 5, 0x41: VKF1 + 6, 0x42: VKF1 + 7, 0x43: VKF1 + 8, 0x44: VKF1 + 9,
	0x45: VKNumLock, 0x46: VKScroll,
	0x47: VKNumpad0 + 7, 0x48: VKNumpad0 + 8, 0x49: VKNumpad0 + 9, 0x4A: VKSubtract,
	0x4B: VKNumpad0 + 4, 0x4C: VKNumpad0 + 5, 0x4D: VKNumpad0 + 6, 0x4E: VKAdd,
	0x4F: VKNumpad0 + 1, 0x50: VKNumpad0 + 2, 0x51: VKNumpad0 + 3,
	0x52: VKNumpad0, 0x53: VKDecimal, 0x54: VKSnapshot,
	0x57: VKF1 + 10, 0x58: VKF1 + 11,
	0x64: VKF1 + 12, 0x65: VKF1 + 13, 0x66: VKF1 + 14, 0x67: VKF1 + 15, 0x68: VKF1 + 16,
	0x69: VKF1 + 17, 0x6A: VKF1 + 18, 0x6B: VKF1 + 19, 0x6C: VKF1 + 20, 0x6D: VKF1 + 21,
	0x6E: VKF1 + 22, 0x76: VKF1 + 23,
}

// Virtual key codes for extended scan codes
var usExtendedKeys = [256]uint16{
	0x1C: VKReturn, 0x1D: VKControl, 0x35: VKDivide,
	0x37: VKSnapshot, 0x38: VKMenu,
	0x45: VKPause, 0x46: VKCancel,
	0x47: VKHome, 0x48: VKUp, 0x49: VKPrior,
	0x4B: VKLeft, 0x4D: VKRight,
	0x4F: VKEnd, 0x50: VKDown, 0x51: VKNext,
	0x52: VKInsert, 0x53: VKDelete,
	0x5B: VKLWin, 0x5C: VKRWin, 0x5D: VKApps,
}

// Unshifted characters for virtual key codes that are not letters or digits
var usKeyChars = map[uint16]byte{
	VKBack:      '\b',
	VKTab:       '\t',
	VKReturn:    '\r',
	VKEscape:    0x1B,
	VKSpace:     ' ',
	VKMultiply:  '*',
	VKAdd:       '+',
	VKSubtract:  '-',
	VKDecimal:   '.',
	VKDivide:    '/',
	VKOEM1:      ';',
	VKOEMPlus:   '=',
	VKOEMComma:  ',',
	VKOEMMinus:  '-',
	VKOEMPeriod: '.',
	VKOEM2:      '/',
	VKOEM3:      '`',
	VKOEM4:      '[',
	VKOEM5:      '\\',
	VKOEM6:      ']',
	VKOEM7:      '\'',
}

// usShiftedChars maps the shifted punctuation characters to their unshifted key
var usShiftedChars = map[byte]byte{
	'_': '-', '+': '=', '{': '[', '}': ']', '|': '\\',
	':': ';', '"': '\'', '<': ',', '>': '.', '?': '/', '~': '`',
}

// shiftedDigits holds the characters Shift+0 ... Shift+9 produce.
// This is the US layout, and is used regardless of the active layout.
const shiftedDigits = ")!@#$%^&*("

// usScanCodes is the inverse of usRegularKeys and usExtendedKeys,
// with regular scan codes taking precedence
var usScanCodes = func() map[uint16]uint16 {
	m := make(map[uint16]uint16)
	for sc, vk := range usRegularKeys {
		if _, found := m[vk]; vk != 0 && !found {
			m[vk] = uint16(sc)
		}
	}
	for sc, vk := range usExtendedKeys {
		if _, found := m[vk]; vk != 0 && !found {
			m[vk] = uint16(sc)
		}
	}
	// Left and right variants map to the same position as the generic key
	m[VKLControl] = 0x1D
	m[VKRControl] = 0x1D
	m[VKLMenu] = 0x38
	m[VKRMenu] = 0x38
	m[VKLShift] = 0x2A
	m[VKRShift] = 0x36
	return m
}()

// KeyName returns the US English name for a scan code
func (usLayout) KeyName(scanCode uint16, extended bool) string {
	if scanCode > 0xFF {
		return ""
	}
	if extended {
		return usExtendedNames[scanCode]
	}
	return usRegularNames[scanCode]
}

// ScanCode returns the scan code for a virtual key code
func (usLayout) ScanCode(keyCode uint16) uint16 {
	return usScanCodes[keyCode]
}

// KeyCode returns the virtual key code for a scan code.
// Extended scan codes without a key of their own fall back to the regular key.
func (usLayout) KeyCode(scanCode uint16, extended bool) uint16 {
	if scanCode > 0xFF {
		return 0
	}
	if extended {
		if vk := usExtendedKeys[scanCode]; vk != 0 {
			return vk
		}
	}
	return usRegularKeys[scanCode]
}

// Char returns the unshifted character for a virtual key code.
// Letters are given in upper case.
func (usLayout) Char(keyCode uint16) byte {
	switch {
	case keyCode >= 'A' && keyCode <= 'Z', keyCode >= '0' && keyCode <= '9':
		return byte(keyCode)
	case keyCode >= VKNumpad0 && keyCode <= VKNumpad0+9:
		return byte('0' + keyCode - VKNumpad0)
	}
	return usKeyChars[keyCode]
}

// KeyForChar returns the virtual key code that types c on a US keyboard,
// and whether Shift must be held for it.
func KeyForChar(c byte) (keyCode uint16, shift, ok bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return uint16(c - 'a' + 'A'), false, true
	case c >= 'A' && c <= 'Z':
		return uint16(c), true, true
	case c >= '0' && c <= '9':
		return uint16(c), false, true
	}
	for i := 0; i < len(shiftedDigits); i++ {
		if shiftedDigits[i] == c {
			return uint16('0' + i), true, true
		}
	}
	if base, found := usShiftedChars[c]; found {
		c = base
		shift = true
	}
	for vk, ch := range usKeyChars {
		// The keypad keys produce the same characters, prefer the main block
		if ch == c && !(vk >= VKMultiply && vk <= VKDivide) {
			return vk, shift, true
		}
	}
	return 0, false, false
}
