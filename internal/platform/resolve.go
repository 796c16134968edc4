package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/1broseidon/clickthrough/internal/x11"
)

// Target identifies a window by handle, by title substring or as the
// currently active window. Title and Active lookups go through EWMH and
// therefore need an X11 server.
type Target struct {
	ID     string
	Title  string
	Active bool
}

// EWMH lookups; replaced in tests.
var (
	findByTitle  = x11.FindWindowByTitleStandalone
	activeWindow = x11.ActiveWindowStandalone
)

// ParseHandle accepts decimal, 0x-prefixed hex or 0o/0b literals.
func ParseHandle(s string) (Handle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty window id", ErrInvalidHandle)
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidHandle, s, err)
	}
	if v == 0 {
		return 0, fmt.Errorf("%w: zero window id", ErrInvalidHandle)
	}
	return Handle(v), nil
}

// Resolve turns t into a handle. Exactly one of ID, Title or Active must be set.
func Resolve(t Target, opts Options) (Handle, error) {
	set := 0
	if strings.TrimSpace(t.ID) != "" {
		set++
	}
	if t.Title != "" {
		set++
	}
	if t.Active {
		set++
	}
	if set != 1 {
		return 0, fmt.Errorf("exactly one of window id, title or active must be given")
	}

	switch {
	case t.Active:
		win, err := activeWindow(opts.Display)
		if err != nil {
			return 0, err
		}
		return Handle(win), nil
	case t.Title != "":
		win, err := findByTitle(opts.Display, t.Title)
		if err != nil {
			return 0, err
		}
		return Handle(win), nil
	default:
		return ParseHandle(t.ID)
	}
}
