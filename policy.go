package hotkey

// keyRef points at one entry in the key name tables
type keyRef struct {
	scanCode uint16
	extended bool
}

// modifierKeys decides which modifier names are printed for ev, and in which
// order: Ctrl, Alt, Shift, Num Lock, Scroll Lock, Caps Lock.
//
// A modifier is not printed when it is the main key of the event, since the
// main key is always printed last. Left and right Ctrl and Alt have special
// cases, because pressing Right Alt (AltGr) also asserts Left Ctrl.
func modifierKeys(m KeyMapper, ev KeyEvent) []keyRef {
	var (
		refs     []keyRef
		mods     = ev.Modifiers
		keyCode  = ev.KeyCode
		extended = mods.Has(ModExtended)
	)
	regular := func(vk uint16) {
		refs = append(refs, keyRef{m.ScanCode(vk), false})
	}

	if mods.Has(ModLeftCtrl) {
		if mods.Has(ModRightAlt) {
			// Ctrl+Right Alt and Right Alt can not be told apart
		} else if keyCode != VKControl && extended {
			regular(VKControl)
		}
	}
	// This checks for a regular key, even if Right Ctrl is an extended key
	if mods.Has(ModRightCtrl) && keyCode != VKControl && !extended {
		regular(VKRControl)
	}

	if mods.Has(ModLeftAlt) {
		if keyCode != VKMenu {
			regular(VKLMenu)
		} else if extended && mods.Has(ModRightAlt) {
			// Alt+Right Alt
			regular(VKLMenu)
		}
	}
	if mods.Has(ModRightAlt) {
		if keyCode != VKMenu {
			regular(VKRMenu)
		} else if !extended && mods.Has(ModLeftAlt) {
			// Right Alt+Alt
			refs = append(refs, keyRef{m.ScanCode(VKRMenu), true})
		}
	}

	// Left and right Shift are different keys, but the same modifier
	if mods.Has(ModShift) && keyCode != VKShift {
		regular(VKShift)
	}

	if mods.Has(ModNumLock) && keyCode != VKNumLock {
		regular(VKNumLock)
	}
	if mods.Has(ModScrollLock) && keyCode != VKScroll {
		regular(VKScroll)
	}
	if mods.Has(ModCapsLock) && keyCode != VKCapital {
		regular(VKCapital)
	}

	return refs
}

// addModifiers returns mods with the bits that pressing keyCode sets.
// mods must already carry ModExtended if the key was found in the extended table.
func addModifiers(mods Modifier, keyCode uint16) Modifier {
	switch keyCode {
	case VKCapital:
		mods |= ModCapsLock
	case VKMenu, VKLMenu:
		if mods.Has(ModExtended) {
			// Right Alt can not be pressed without asserting Left Ctrl
			mods |= ModRightAlt | ModLeftCtrl
		} else {
			mods |= ModLeftAlt
		}
	case VKRMenu:
		mods |= ModRightAlt | ModLeftCtrl
	case VKControl:
		if mods.Has(ModExtended) {
			mods |= ModRightCtrl
		} else {
			mods |= ModLeftCtrl
		}
	case VKRControl:
		mods |= ModRightCtrl
	case VKNumLock:
		mods |= ModNumLock
	case VKScroll:
		mods |= ModScrollLock
	case VKShift, VKLShift, VKRShift:
		mods |= ModShift
	}
	return mods
}

// keyChar adjusts the character c that keyCode produces, given the modifiers.
// Digits are shifted with the US layout, whatever the active layout is.
func keyChar(keyCode uint16, c byte, mods Modifier) byte {
	// Ctrl+Alt, like AltGr, does not produce a control character
	if mods.Has(ModLeftCtrl) && mods.Any(ModAnyAlt) {
		c = 0
	}
	if keyCode != uint16(c) {
		return c
	}
	switch {
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 'a'
	case c >= 'a' && c <= 'z':
		return c
	case c >= '0' && c <= '9' && mods.Has(ModShift):
		return shiftedDigits[c-'0']
	}
	return c
}
