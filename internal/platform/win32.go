package platform

import "fmt"

// Extended window style bits (GWL_EXSTYLE) that make a window click-through.
const (
	ExStyleTransparent uintptr = 0x00000020 // WS_EX_TRANSPARENT
	ExStyleLayered     uintptr = 0x00080000 // WS_EX_LAYERED
)

// StyleTable reads and writes the extended style of a window.
type StyleTable interface {
	ExStyle(hwnd uintptr) (uintptr, error)
	SetExStyle(hwnd uintptr, style uintptr) error
}

// Win32Backend toggles click-through with WS_EX_TRANSPARENT|WS_EX_LAYERED.
type Win32Backend struct {
	styles StyleTable
}

var _ Backend = (*Win32Backend)(nil)

// NewWin32Backend returns a backend bound to user32. Outside Windows it
// fails with ErrUnsupportedPlatform.
func NewWin32Backend() (*Win32Backend, error) {
	styles, err := systemStyleTable()
	if err != nil {
		return nil, err
	}
	return &Win32Backend{styles: styles}, nil
}

func (b *Win32Backend) Name() string { return "win32" }

// SetIgnoresMouseEvents sets or clears both bits together. Other style bits
// are left as they are because outside code may change them.
func (b *Win32Backend) SetIgnoresMouseEvents(h Handle, flag bool) error {
	hwnd, err := h.HWND()
	if err != nil {
		return err
	}

	style, err := b.styles.ExStyle(hwnd)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	if flag {
		style |= ExStyleTransparent | ExStyleLayered
	} else {
		style &^= ExStyleTransparent | ExStyleLayered
	}

	if err := b.styles.SetExStyle(hwnd, style); err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return nil
}

// IgnoresMouseEvents reports the WS_EX_TRANSPARENT bit only. WS_EX_LAYERED is
// not consulted, so a window that only lost its layered bit still reports
// true.
func (b *Win32Backend) IgnoresMouseEvents(h Handle) (bool, error) {
	hwnd, err := h.HWND()
	if err != nil {
		return false, err
	}

	style, err := b.styles.ExStyle(hwnd)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return style&ExStyleTransparent != 0, nil
}
