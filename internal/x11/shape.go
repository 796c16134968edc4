package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/shape"
	"github.com/BurntSushi/xgb/xproto"
)

// ErrShapeUnavailable is returned by DialShape when the server has no usable
// SHAPE extension.
var ErrShapeUnavailable = errors.New("SHAPE extension is unavailable")

// ShapeConn is a raw protocol connection with the SHAPE extension initialised.
type ShapeConn struct {
	conn  *xgb.Conn
	Major uint16
	Minor uint16
}

// DialShape opens a new connection and verifies SHAPE by querying its
// version. An empty display uses $DISPLAY.
func DialShape(display string) (*ShapeConn, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	if err := shape.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrShapeUnavailable, err)
	}

	version, err := shape.QueryVersion(conn).Reply()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: version query failed: %v", ErrShapeUnavailable, err)
	}

	return &ShapeConn{
		conn:  conn,
		Major: version.MajorVersion,
		Minor: version.MinorVersion,
	}, nil
}

// SetInputShape replaces the input region of win with rects. An empty slice
// makes the window transparent to pointer events.
func (c *ShapeConn) SetInputShape(win xproto.Window, rects []xproto.Rectangle) error {
	err := shape.RectanglesChecked(
		c.conn,
		shape.SoSet,
		shape.SkInput,
		xproto.ClipOrderingUnsorted,
		win,
		0, 0,
		rects,
	).Check()
	if err != nil {
		return fmt.Errorf("shape rectangles on window 0x%x: %w", uint32(win), err)
	}
	return nil
}

// InputShape returns the rectangles making up the input region of win.
func (c *ShapeConn) InputShape(win xproto.Window) ([]xproto.Rectangle, error) {
	reply, err := shape.GetRectangles(c.conn, win, shape.SkInput).Reply()
	if err != nil {
		return nil, fmt.Errorf("shape lookup on window 0x%x: %w", uint32(win), err)
	}
	return reply.Rectangles, nil
}

// Geometry returns the current size of win.
func (c *ShapeConn) Geometry(win xproto.Window) (width, height uint16, err error) {
	geom, err := xproto.GetGeometry(c.conn, xproto.Drawable(win)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("geometry of window 0x%x: %w", uint32(win), err)
	}
	return geom.Width, geom.Height, nil
}

// Close flushes outstanding requests with a round trip and disconnects.
func (c *ShapeConn) Close() {
	// Same barrier xgbutil uses for Sync.
	xproto.GetInputFocus(c.conn).Reply()
	c.conn.Close()
}
