package platform

import (
	"errors"
	"fmt"

	"github.com/1broseidon/clickthrough/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// ShapeSession is one SHAPE-capable server connection scoped to a single call.
type ShapeSession interface {
	SetInputShape(win xproto.Window, rects []xproto.Rectangle) error
	InputShape(win xproto.Window) ([]xproto.Rectangle, error)
	Geometry(win xproto.Window) (width, height uint16, err error)
	Close()
}

// WMSession is one window-manager messaging connection scoped to a single call.
type WMSession interface {
	SupportedAtom(name string) (xproto.Atom, error)
	SendRootEvent(ev xproto.ClientMessageEvent) error
	Close()
}

// X11Backend implements Backend with the SHAPE input region and Mover with
// _NET_WM_MOVERESIZE. Every call opens and closes its own connection.
type X11Backend struct {
	dialShape func() (ShapeSession, error)
	dialWM    func() (WMSession, error)
}

var (
	_ Backend = (*X11Backend)(nil)
	_ Mover   = (*X11Backend)(nil)
)

// NewX11Backend returns a backend talking to display. An empty display
// uses $DISPLAY.
func NewX11Backend(display string) *X11Backend {
	return &X11Backend{
		dialShape: func() (ShapeSession, error) {
			conn, err := x11.DialShape(display)
			if err != nil {
				return nil, err
			}
			return conn, nil
		},
		dialWM: func() (WMSession, error) {
			conn, err := x11.NewConnection(display)
			if err != nil {
				return nil, err
			}
			return conn, nil
		},
	}
}

func (b *X11Backend) Name() string { return "x11" }

// SetIgnoresMouseEvents sets the input shape of the window to zero
// rectangles (flag true) or to its full bounding box (flag false).
func (b *X11Backend) SetIgnoresMouseEvents(h Handle, flag bool) error {
	win, err := h.XWindow()
	if err != nil {
		return err
	}

	sess, err := b.openShape()
	if err != nil {
		return err
	}
	defer sess.Close()

	var rects []xproto.Rectangle
	if !flag {
		width, height, err := sess.Geometry(win)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrGeometry, err)
		}
		rects = []xproto.Rectangle{{X: 0, Y: 0, Width: width, Height: height}}
	}

	if err := sess.SetInputShape(win, rects); err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return nil
}

// IgnoresMouseEvents reports true only when the input shape has no rectangles.
func (b *X11Backend) IgnoresMouseEvents(h Handle) (bool, error) {
	win, err := h.XWindow()
	if err != nil {
		return false, err
	}

	sess, err := b.openShape()
	if err != nil {
		return false, err
	}
	defer sess.Close()

	rects, err := sess.InputShape(win)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return len(rects) == 0, nil
}

// MoveWindow asks the window manager to move the window to (x, y). The
// request is asynchronous; the WM may ignore it.
func (b *X11Backend) MoveWindow(h Handle, x, y int) error {
	win, err := h.XWindow()
	if err != nil {
		return err
	}

	sess, err := b.dialWM()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer sess.Close()

	atom, err := sess.SupportedAtom(x11.MoveResizeAtom)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMoveResizeUnsupported, err)
	}

	if err := sess.SendRootEvent(x11.NewMoveEvent(win, atom, x, y)); err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return nil
}

func (b *X11Backend) openShape() (ShapeSession, error) {
	sess, err := b.dialShape()
	if err != nil {
		if errors.Is(err, x11.ErrShapeUnavailable) {
			return nil, fmt.Errorf("%w: %w", ErrCapabilityMissing, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return sess, nil
}
