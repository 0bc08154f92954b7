//go:build !windows

package hotkey

// SystemLayout returns the US layout, since only Windows has a system key naming facility
func SystemLayout() Layout {
	return USLayout
}
