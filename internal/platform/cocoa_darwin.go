//go:build darwin && cgo

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>
#include <stdint.h>

static void ct_set_ignores_mouse_events(uintptr_t w, int flag) {
	NSWindow *win = (NSWindow *)(void *)w;
	if ([NSThread isMainThread]) {
		[win setIgnoresMouseEvents:(flag ? YES : NO)];
		return;
	}
	dispatch_sync(dispatch_get_main_queue(), ^{
		[win setIgnoresMouseEvents:(flag ? YES : NO)];
	});
}

static int ct_ignores_mouse_events(uintptr_t w) {
	NSWindow *win = (NSWindow *)(void *)w;
	__block BOOL ignores = NO;
	if ([NSThread isMainThread]) {
		ignores = [win ignoresMouseEvents];
	} else {
		dispatch_sync(dispatch_get_main_queue(), ^{
			ignores = [win ignoresMouseEvents];
		});
	}
	return ignores ? 1 : 0;
}
*/
import "C"

// CocoaBackend drives -[NSWindow setIgnoresMouseEvents:]. Handles are
// NSWindow pointers.
type CocoaBackend struct{}

var _ Backend = (*CocoaBackend)(nil)

func NewCocoaBackend() (*CocoaBackend, error) {
	return &CocoaBackend{}, nil
}

func (b *CocoaBackend) Name() string { return "cocoa" }

func (b *CocoaBackend) SetIgnoresMouseEvents(h Handle, flag bool) error {
	if h == 0 {
		return ErrInvalidHandle
	}
	v := C.int(0)
	if flag {
		v = 1
	}
	C.ct_set_ignores_mouse_events(C.uintptr_t(h), v)
	return nil
}

func (b *CocoaBackend) IgnoresMouseEvents(h Handle) (bool, error) {
	if h == 0 {
		return false, ErrInvalidHandle
	}
	return C.ct_ignores_mouse_events(C.uintptr_t(h)) != 0, nil
}
