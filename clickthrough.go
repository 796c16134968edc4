// Package clickthrough toggles mouse-event transparency on native windows
// owned by a GUI toolkit.
//
// A window that ignores mouse events lets pointer input fall through to
// whatever lies beneath it while staying visible. On X11 this is done with
// an empty SHAPE input region, on Win32 with WS_EX_TRANSPARENT|WS_EX_LAYERED
// and on macOS with -[NSWindow setIgnoresMouseEvents:].
//
// The Controller methods never fail from the caller's point of view:
// errors are logged and the query reports false.
package clickthrough

import (
	"log/slog"
	"os"

	"github.com/1broseidon/clickthrough/internal/platform"
)

// Handle is a native window handle: an X11 window ID, a Win32 HWND or an
// NSWindow pointer. The caller keeps ownership of the window.
type Handle = platform.Handle

// Backend is a platform strategy. Custom implementations can be passed to New.
type Backend = platform.Backend

// Mover is implemented by backends that support MoveWindow.
type Mover = platform.Mover

// Controller is the caller-facing click-through API.
type Controller struct {
	backend Backend
	logger  *slog.Logger
}

type settings struct {
	logger  *slog.Logger
	backend string
	display string
}

// Option configures New and Open.
type Option func(*settings)

// WithLogger sets the logger failures are reported to. The default writes
// text records to stderr.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithBackend picks a backend by name for Open: auto, x11, win32 or cocoa.
func WithBackend(name string) Option {
	return func(s *settings) { s.backend = name }
}

// WithDisplay sets the X11 display for Open. Empty uses $DISPLAY.
func WithDisplay(display string) Option {
	return func(s *settings) { s.display = display }
}

func collect(opts []Option) settings {
	s := settings{backend: platform.BackendAuto}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return s
}

// New wraps an explicit backend.
func New(backend Backend, opts ...Option) *Controller {
	s := collect(opts)
	return &Controller{backend: backend, logger: s.logger}
}

// Open selects a backend for the running platform, or the one named by
// WithBackend.
func Open(opts ...Option) (*Controller, error) {
	s := collect(opts)
	backend, err := platform.Open(s.backend, platform.Options{Display: s.display})
	if err != nil {
		return nil, err
	}
	return &Controller{backend: backend, logger: s.logger}, nil
}

// Backend returns the underlying platform backend.
func (c *Controller) Backend() Backend {
	return c.backend
}

// SetIgnoresMouseEvents makes the window click-through (flag true) or
// restores normal pointer handling. Failures are logged.
func (c *Controller) SetIgnoresMouseEvents(h Handle, flag bool) {
	if err := c.backend.SetIgnoresMouseEvents(h, flag); err != nil {
		c.logger.Warn("set ignores mouse events failed",
			"backend", c.backend.Name(),
			"window", h.String(),
			"ignore", flag,
			"err", err,
		)
	}
}

// IgnoresMouseEvents reports whether the window is click-through. Any
// failure reports false.
func (c *Controller) IgnoresMouseEvents(h Handle) bool {
	ignores, err := c.backend.IgnoresMouseEvents(h)
	if err != nil {
		c.logger.Warn("query ignores mouse events failed",
			"backend", c.backend.Name(),
			"window", h.String(),
			"err", err,
		)
		return false
	}
	return ignores
}

// MoveWindow asks the window manager to move the window to (x, y). Only the
// X11 backend supports it; elsewhere the request is logged and dropped.
func (c *Controller) MoveWindow(h Handle, x, y int) {
	mover, ok := c.backend.(Mover)
	if !ok {
		c.logger.Warn("move window not supported",
			"backend", c.backend.Name(),
			"window", h.String(),
		)
		return
	}
	if err := mover.MoveWindow(h, x, y); err != nil {
		c.logger.Warn("move window failed",
			"backend", c.backend.Name(),
			"window", h.String(),
			"x", x,
			"y", y,
			"err", err,
		)
	}
}
