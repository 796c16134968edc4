package x11

import (
	"fmt"
	"slices"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Connection wraps an xgbutil connection used for window manager requests.
// It is independent of the SHAPE connection opened by DialShape.
type Connection struct {
	XUtil *xgbutil.XUtil
	root  xproto.Window
}

// NewConnection connects to the given display. An empty display uses $DISPLAY.
func NewConnection(display string) (*Connection, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}

	return &Connection{
		XUtil: xu,
		root:  xu.RootWin(),
	}, nil
}

// RootWindow returns the root window of the default screen.
func (c *Connection) RootWindow() xproto.Window {
	return c.root
}

// SupportedAtom resolves name without creating it. It fails when the atom
// does not exist on the server or when the window manager publishes a
// _NET_SUPPORTED list that omits it.
func (c *Connection) SupportedAtom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(c.XUtil.Conn(), true, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to intern %s: %w", name, err)
	}
	if reply.Atom == xproto.AtomNone {
		return 0, fmt.Errorf("%s is not known to the server", name)
	}

	// Not every WM publishes _NET_SUPPORTED; an existing atom is enough then.
	if supported, err := ewmh.SupportedGet(c.XUtil); err == nil && !slices.Contains(supported, name) {
		return 0, fmt.Errorf("window manager does not advertise %s", name)
	}

	return reply.Atom, nil
}

// SendRootEvent delivers a client message to the root window so the window
// manager can intercept it.
func (c *Connection) SendRootEvent(ev xproto.ClientMessageEvent) error {
	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		c.root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// Close flushes pending requests and disconnects from the X11 server.
func (c *Connection) Close() {
	c.XUtil.Sync()
	c.XUtil.Conn().Close()
}
