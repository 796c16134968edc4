package platform

import (
	"errors"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestParseHandle(t *testing.T) {
	tests := []struct {
		input   string
		want    Handle
		wantErr bool
	}{
		{"0x3a00007", 0x3a00007, false},
		{"60817415", 60817415, false},
		{" 0X10 ", 0x10, false},
		{"", 0, true},
		{"0", 0, true},
		{"window", 0, true},
		{"-5", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseHandle(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidHandle) {
				t.Errorf("ParseHandle(%q) error = %v, want ErrInvalidHandle", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseHandle(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	origTitle, origActive := findByTitle, activeWindow
	t.Cleanup(func() { findByTitle, activeWindow = origTitle, origActive })

	var gotDisplay string
	findByTitle = func(display, title string) (xproto.Window, error) {
		gotDisplay = display
		if title == "Overlay" {
			return 0x500001, nil
		}
		return 0, errors.New("not found")
	}
	activeWindow = func(display string) (xproto.Window, error) {
		return 0x600002, nil
	}

	opts := Options{Display: ":3"}
	if h, err := Resolve(Target{Title: "Overlay"}, opts); err != nil || h != 0x500001 {
		t.Fatalf("Resolve(title) = %v, %v", h, err)
	}
	if gotDisplay != ":3" {
		t.Fatalf("display = %q, want :3", gotDisplay)
	}
	if h, err := Resolve(Target{Active: true}, opts); err != nil || h != 0x600002 {
		t.Fatalf("Resolve(active) = %v, %v", h, err)
	}
	if h, err := Resolve(Target{ID: "0x42"}, opts); err != nil || h != 0x42 {
		t.Fatalf("Resolve(id) = %v, %v", h, err)
	}
	if _, err := Resolve(Target{Title: "missing"}, opts); err == nil {
		t.Fatalf("expected lookup error")
	}
	if _, err := Resolve(Target{}, opts); err == nil {
		t.Fatalf("expected error with no selector")
	}
	if _, err := Resolve(Target{ID: "1", Active: true}, opts); err == nil {
		t.Fatalf("expected error with two selectors")
	}
}
