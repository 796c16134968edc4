package platform

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/xgb/xproto"
)

// Handle is an opaque native window handle owned by the caller: an X11
// window ID, a Win32 HWND or an NSWindow pointer depending on the backend.
type Handle uintptr

// XWindow interprets h as an X11 window ID.
func (h Handle) XWindow() (xproto.Window, error) {
	if h == 0 || uint64(h) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: 0x%x is not an X11 window id", ErrInvalidHandle, uint64(h))
	}
	return xproto.Window(h), nil
}

// HWND interprets h as a Win32 window handle.
func (h Handle) HWND() (uintptr, error) {
	if h == 0 {
		return 0, fmt.Errorf("%w: null HWND", ErrInvalidHandle)
	}
	return uintptr(h), nil
}

func (h Handle) String() string {
	return fmt.Sprintf("0x%x", uint64(h))
}

var (
	ErrInvalidHandle         = errors.New("invalid window handle")
	ErrConnection            = errors.New("display connection failed")
	ErrCapabilityMissing     = errors.New("required window system capability is missing")
	ErrRequestFailed         = errors.New("window system request failed")
	ErrGeometry              = errors.New("window geometry query failed")
	ErrMoveResizeUnsupported = errors.New("window manager does not support _NET_WM_MOVERESIZE")
	ErrUnsupportedPlatform   = errors.New("backend is not available on this platform")
)

// Backend toggles and reports mouse-event transparency of native windows.
type Backend interface {
	// SetIgnoresMouseEvents makes the window click-through when flag is true
	// and restores normal pointer handling otherwise. Repeating a call with
	// the same flag leaves the same state.
	SetIgnoresMouseEvents(h Handle, flag bool) error
	// IgnoresMouseEvents reports the current state without changing it.
	IgnoresMouseEvents(h Handle) (bool, error)
	Name() string
}

// Mover is implemented by backends that can ask the window manager to move
// a window.
type Mover interface {
	MoveWindow(h Handle, x, y int) error
}
