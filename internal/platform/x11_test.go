package platform

import (
	"errors"
	"fmt"
	"testing"

	"github.com/1broseidon/clickthrough/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// fakeXServer keeps per-window input shapes and geometry across sessions.
type fakeXServer struct {
	shapes   map[xproto.Window][]xproto.Rectangle
	geometry map[xproto.Window][2]uint16

	dialErr     error
	geometryErr error
	setErr      error
	queryErr    error

	opened  int
	closed  int
	setCall int
}

func newFakeXServer() *fakeXServer {
	return &fakeXServer{
		shapes:   make(map[xproto.Window][]xproto.Rectangle),
		geometry: make(map[xproto.Window][2]uint16),
	}
}

// addWindow registers a freshly mapped window whose input shape covers it.
func (s *fakeXServer) addWindow(win xproto.Window, width, height uint16) {
	s.geometry[win] = [2]uint16{width, height}
	s.shapes[win] = []xproto.Rectangle{{Width: width, Height: height}}
}

func (s *fakeXServer) dial() (ShapeSession, error) {
	if s.dialErr != nil {
		return nil, s.dialErr
	}
	s.opened++
	return &fakeShapeSession{srv: s}, nil
}

type fakeShapeSession struct {
	srv    *fakeXServer
	closed bool
}

func (f *fakeShapeSession) SetInputShape(win xproto.Window, rects []xproto.Rectangle) error {
	f.srv.setCall++
	if f.srv.setErr != nil {
		return f.srv.setErr
	}
	if _, ok := f.srv.geometry[win]; !ok {
		return fmt.Errorf("BadWindow 0x%x", uint32(win))
	}
	f.srv.shapes[win] = append([]xproto.Rectangle(nil), rects...)
	return nil
}

func (f *fakeShapeSession) InputShape(win xproto.Window) ([]xproto.Rectangle, error) {
	if f.srv.queryErr != nil {
		return nil, f.srv.queryErr
	}
	rects, ok := f.srv.shapes[win]
	if !ok {
		return nil, fmt.Errorf("BadWindow 0x%x", uint32(win))
	}
	return rects, nil
}

func (f *fakeShapeSession) Geometry(win xproto.Window) (uint16, uint16, error) {
	if f.srv.geometryErr != nil {
		return 0, 0, f.srv.geometryErr
	}
	g, ok := f.srv.geometry[win]
	if !ok {
		return 0, 0, fmt.Errorf("BadDrawable 0x%x", uint32(win))
	}
	return g[0], g[1], nil
}

func (f *fakeShapeSession) Close() {
	if !f.closed {
		f.closed = true
		f.srv.closed++
	}
}

type fakeWM struct {
	supported bool
	dialErr   error
	sendErr   error
	atom      xproto.Atom
	sent      []xproto.ClientMessageEvent
	closed    int
}

func (w *fakeWM) dial() (WMSession, error) {
	if w.dialErr != nil {
		return nil, w.dialErr
	}
	return w, nil
}

func (w *fakeWM) SupportedAtom(name string) (xproto.Atom, error) {
	if name != x11.MoveResizeAtom || !w.supported {
		return 0, fmt.Errorf("window manager does not advertise %s", name)
	}
	return w.atom, nil
}

func (w *fakeWM) SendRootEvent(ev xproto.ClientMessageEvent) error {
	if w.sendErr != nil {
		return w.sendErr
	}
	w.sent = append(w.sent, ev)
	return nil
}

func (w *fakeWM) Close() { w.closed++ }

func newTestX11Backend(srv *fakeXServer, wm *fakeWM) *X11Backend {
	if wm == nil {
		wm = &fakeWM{}
	}
	return &X11Backend{dialShape: srv.dial, dialWM: wm.dial}
}

const testWin = Handle(0x3a00007)

func TestX11RoundTrip(t *testing.T) {
	srv := newFakeXServer()
	srv.addWindow(xproto.Window(testWin), 640, 480)
	b := newTestX11Backend(srv, nil)

	if got, err := b.IgnoresMouseEvents(testWin); err != nil || got {
		t.Fatalf("fresh window: IgnoresMouseEvents = %v, %v; want false, nil", got, err)
	}

	if err := b.SetIgnoresMouseEvents(testWin, true); err != nil {
		t.Fatalf("SetIgnoresMouseEvents(true): %v", err)
	}
	if got, err := b.IgnoresMouseEvents(testWin); err != nil || !got {
		t.Fatalf("after enable: IgnoresMouseEvents = %v, %v; want true, nil", got, err)
	}

	if err := b.SetIgnoresMouseEvents(testWin, false); err != nil {
		t.Fatalf("SetIgnoresMouseEvents(false): %v", err)
	}
	if got, err := b.IgnoresMouseEvents(testWin); err != nil || got {
		t.Fatalf("after disable: IgnoresMouseEvents = %v, %v; want false, nil", got, err)
	}

	if srv.opened != srv.closed {
		t.Fatalf("opened %d sessions but closed %d", srv.opened, srv.closed)
	}
}

func TestX11EnableIsIdempotent(t *testing.T) {
	srv := newFakeXServer()
	srv.addWindow(xproto.Window(testWin), 300, 200)
	b := newTestX11Backend(srv, nil)

	for i := 0; i < 2; i++ {
		if err := b.SetIgnoresMouseEvents(testWin, true); err != nil {
			t.Fatalf("call %d: %v", i+1, err)
		}
	}
	if got, _ := b.IgnoresMouseEvents(testWin); !got {
		t.Fatalf("IgnoresMouseEvents = false after enabling twice")
	}
	if n := len(srv.shapes[xproto.Window(testWin)]); n != 0 {
		t.Fatalf("input shape has %d rectangles, want 0", n)
	}
}

func TestX11RestoreMatchesGeometry(t *testing.T) {
	srv := newFakeXServer()
	win := xproto.Window(testWin)
	srv.addWindow(win, 800, 600)
	b := newTestX11Backend(srv, nil)

	if err := b.SetIgnoresMouseEvents(testWin, true); err != nil {
		t.Fatalf("enable: %v", err)
	}
	// The window gets resized while click-through.
	srv.geometry[win] = [2]uint16{1024, 300}

	if err := b.SetIgnoresMouseEvents(testWin, false); err != nil {
		t.Fatalf("disable: %v", err)
	}

	rects := srv.shapes[win]
	if len(rects) != 1 {
		t.Fatalf("restored shape has %d rectangles, want 1", len(rects))
	}
	want := xproto.Rectangle{X: 0, Y: 0, Width: 1024, Height: 300}
	if rects[0] != want {
		t.Fatalf("restored rectangle = %+v, want %+v", rects[0], want)
	}
}

func TestX11GeometryFailureLeavesShapeUntouched(t *testing.T) {
	srv := newFakeXServer()
	win := xproto.Window(testWin)
	srv.addWindow(win, 100, 100)
	b := newTestX11Backend(srv, nil)

	if err := b.SetIgnoresMouseEvents(testWin, true); err != nil {
		t.Fatalf("enable: %v", err)
	}
	srv.geometryErr = errors.New("BadDrawable")
	setsBefore := srv.setCall

	err := b.SetIgnoresMouseEvents(testWin, false)
	if !errors.Is(err, ErrGeometry) {
		t.Fatalf("error = %v, want ErrGeometry", err)
	}
	if srv.setCall != setsBefore {
		t.Fatalf("shape request issued after geometry failure")
	}
	if n := len(srv.shapes[win]); n != 0 {
		t.Fatalf("shape changed to %d rectangles, want it left empty", n)
	}
	if srv.opened != srv.closed {
		t.Fatalf("session leaked on geometry failure")
	}
}

func TestX11Failures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*fakeXServer)
		wantErr error
	}{
		{
			name:    "server unreachable",
			setup:   func(s *fakeXServer) { s.dialErr = errors.New("dial unix /tmp/.X11-unix/X0: connect: no such file or directory") },
			wantErr: ErrConnection,
		},
		{
			name:    "shape extension missing",
			setup:   func(s *fakeXServer) { s.dialErr = fmt.Errorf("%w: no extension named SHAPE", x11.ErrShapeUnavailable) },
			wantErr: ErrCapabilityMissing,
		},
		{
			name:    "shape query fails",
			setup:   func(s *fakeXServer) { s.queryErr = errors.New("BadWindow") },
			wantErr: ErrRequestFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newFakeXServer()
			srv.addWindow(xproto.Window(testWin), 10, 10)
			tt.setup(srv)
			b := newTestX11Backend(srv, nil)

			got, err := b.IgnoresMouseEvents(testWin)
			if got {
				t.Fatalf("IgnoresMouseEvents = true on failure, want false")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if srv.opened != srv.closed {
				t.Fatalf("opened %d sessions but closed %d", srv.opened, srv.closed)
			}
		})
	}
}

func TestX11SetRequestError(t *testing.T) {
	srv := newFakeXServer()
	srv.addWindow(xproto.Window(testWin), 10, 10)
	srv.setErr = errors.New("BadMatch")
	b := newTestX11Backend(srv, nil)

	if err := b.SetIgnoresMouseEvents(testWin, true); !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("error = %v, want ErrRequestFailed", err)
	}
	if srv.closed != 1 {
		t.Fatalf("closed = %d, want 1", srv.closed)
	}
}

func TestX11InvalidHandle(t *testing.T) {
	srv := newFakeXServer()
	b := newTestX11Backend(srv, nil)

	if err := b.SetIgnoresMouseEvents(0, true); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("error = %v, want ErrInvalidHandle", err)
	}
	if srv.opened != 0 {
		t.Fatalf("connection opened for invalid handle")
	}
}

func TestX11MoveWindowSendsOneMessage(t *testing.T) {
	wm := &fakeWM{supported: true, atom: 412}
	b := newTestX11Backend(newFakeXServer(), wm)

	if err := b.MoveWindow(testWin, 150, 75); err != nil {
		t.Fatalf("MoveWindow: %v", err)
	}
	if len(wm.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(wm.sent))
	}
	ev := wm.sent[0]
	if ev.Window != xproto.Window(testWin) || ev.Type != 412 {
		t.Fatalf("event window/type = 0x%x/%d, want 0x%x/412", uint32(ev.Window), ev.Type, uint32(testWin))
	}
	data := ev.Data.Data32
	if data[0] != 150 || data[1] != 75 {
		t.Fatalf("event position = (%d, %d), want (150, 75)", data[0], data[1])
	}
	if data[2] != x11.MoveResizeMove {
		t.Fatalf("event direction = %d, want %d", data[2], x11.MoveResizeMove)
	}
	if data[4] != x11.SourceApplication {
		t.Fatalf("event source = %d, want %d", data[4], x11.SourceApplication)
	}
	if wm.closed != 1 {
		t.Fatalf("closed = %d, want 1", wm.closed)
	}
}

func TestX11MoveWindowUnsupported(t *testing.T) {
	wm := &fakeWM{supported: false}
	b := newTestX11Backend(newFakeXServer(), wm)

	err := b.MoveWindow(testWin, 1, 2)
	if !errors.Is(err, ErrMoveResizeUnsupported) {
		t.Fatalf("error = %v, want ErrMoveResizeUnsupported", err)
	}
	if len(wm.sent) != 0 {
		t.Fatalf("sent %d messages for unsupported WM, want 0", len(wm.sent))
	}
	if wm.closed != 1 {
		t.Fatalf("connection not closed on abort")
	}
}

func TestX11MoveWindowConnectionFailure(t *testing.T) {
	wm := &fakeWM{dialErr: errors.New("can't open display")}
	b := newTestX11Backend(newFakeXServer(), wm)

	if err := b.MoveWindow(testWin, 1, 2); !errors.Is(err, ErrConnection) {
		t.Fatalf("error = %v, want ErrConnection", err)
	}
}

func TestX11UnreachableDisplayReportsFalse(t *testing.T) {
	b := NewX11Backend(":250")

	got, err := b.IgnoresMouseEvents(testWin)
	if got {
		t.Fatalf("IgnoresMouseEvents = true with no server")
	}
	if !errors.Is(err, ErrConnection) {
		t.Fatalf("error = %v, want ErrConnection", err)
	}
}
