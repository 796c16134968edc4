package platform

import (
	"errors"
	"math"
	"runtime"
	"testing"
)

func TestOpenX11Explicit(t *testing.T) {
	b, err := Open("X11", Options{Display: ":99"})
	if err != nil {
		t.Fatalf("Open(x11): %v", err)
	}
	if b.Name() != BackendX11 {
		t.Fatalf("Name = %q, want %q", b.Name(), BackendX11)
	}
	if _, ok := b.(Mover); !ok {
		t.Fatalf("x11 backend does not implement Mover")
	}
}

func TestOpenUnknown(t *testing.T) {
	if _, err := Open("wayland", Options{}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestOpenWin32OffWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("win32 available")
	}
	b, err := Open(BackendWin32, Options{})
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("error = %v, want ErrUnsupportedPlatform", err)
	}
	if b != nil {
		t.Fatalf("backend = %v, want nil", b)
	}
}

func TestOpenAutoOnLinux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux only")
	}
	b, err := Open("", Options{})
	if err != nil {
		t.Fatalf("Open(auto): %v", err)
	}
	if b.Name() != BackendX11 {
		t.Fatalf("auto picked %q, want x11", b.Name())
	}
}

func TestValidBackendName(t *testing.T) {
	for _, name := range []string{"", "auto", "x11", "Win32", " cocoa "} {
		if !ValidBackendName(name) {
			t.Errorf("ValidBackendName(%q) = false", name)
		}
	}
	if ValidBackendName("gtk") {
		t.Errorf("ValidBackendName(gtk) = true")
	}
}

func TestHandleXWindow(t *testing.T) {
	if _, err := Handle(0).XWindow(); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("zero handle error = %v", err)
	}
	if w, err := Handle(0x1c00004).XWindow(); err != nil || w != 0x1c00004 {
		t.Fatalf("XWindow = 0x%x, %v", uint32(w), err)
	}
	if math.MaxUint == math.MaxUint64 {
		big := uint64(math.MaxUint32) + 1
		if _, err := Handle(big).XWindow(); !errors.Is(err, ErrInvalidHandle) {
			t.Fatalf("64-bit handle error = %v, want ErrInvalidHandle", err)
		}
	}
}
