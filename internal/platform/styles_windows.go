//go:build windows

package platform

import "github.com/lxn/win"

// user32Styles reads GWL_EXSTYLE through GetWindowLongPtrW/SetWindowLongPtrW.
type user32Styles struct{}

func systemStyleTable() (StyleTable, error) {
	return user32Styles{}, nil
}

func (user32Styles) ExStyle(hwnd uintptr) (uintptr, error) {
	return win.GetWindowLongPtr(win.HWND(hwnd), win.GWL_EXSTYLE), nil
}

func (user32Styles) SetExStyle(hwnd uintptr, style uintptr) error {
	win.SetWindowLongPtr(win.HWND(hwnd), win.GWL_EXSTYLE, style)
	return nil
}
