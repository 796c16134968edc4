package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// ActiveWindow returns the window named by _NET_ACTIVE_WINDOW.
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	if win == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return win, nil
}

// FindWindowByTitle searches the EWMH client list for a window whose
// _NET_WM_NAME contains the given substring. Returns the first match.
func (c *Connection) FindWindowByTitle(substring string) (xproto.Window, error) {
	if substring == "" {
		return 0, fmt.Errorf("empty title")
	}
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get client list: %w", err)
	}
	for _, win := range clients {
		name, err := ewmh.WmNameGet(c.XUtil, win)
		if err != nil {
			continue
		}
		if strings.Contains(name, substring) {
			return win, nil
		}
	}
	return 0, fmt.Errorf("no window found with title containing %q", substring)
}

// FindWindowByTitleStandalone searches for a window by title substring
// using a new temporary X11 connection.
func FindWindowByTitleStandalone(display, substring string) (xproto.Window, error) {
	conn, err := NewConnection(display)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to X11: %w", err)
	}
	defer conn.Close()

	return conn.FindWindowByTitle(substring)
}

// ActiveWindowStandalone returns the active window using a new temporary
// X11 connection.
func ActiveWindowStandalone(display string) (xproto.Window, error) {
	conn, err := NewConnection(display)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to X11: %w", err)
	}
	defer conn.Close()

	return conn.ActiveWindow()
}
