package platform

import (
	"fmt"
	"strings"
)

// Backend names accepted by Open and by the config file.
const (
	BackendAuto  = "auto"
	BackendX11   = "x11"
	BackendWin32 = "win32"
	BackendCocoa = "cocoa"
)

// Options carries backend construction parameters.
type Options struct {
	// Display is the X11 display name; empty uses $DISPLAY.
	Display string
}

// Open returns the named backend. "auto" (or empty) picks the native
// backend for the running platform.
func Open(name string, opts Options) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendAuto:
		return openNative(opts)
	case BackendX11:
		return NewX11Backend(opts.Display), nil
	case BackendWin32:
		b, err := NewWin32Backend()
		if err != nil {
			return nil, err
		}
		return b, nil
	case BackendCocoa:
		b, err := NewCocoaBackend()
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (expected auto, x11, win32 or cocoa)", name)
	}
}

// ValidBackendName reports whether Open understands name.
func ValidBackendName(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendAuto, BackendX11, BackendWin32, BackendCocoa:
		return true
	}
	return false
}
