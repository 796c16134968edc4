//go:build !darwin || !cgo

package platform

import "fmt"

// CocoaBackend is only functional on darwin builds with cgo.
type CocoaBackend struct{}

func NewCocoaBackend() (*CocoaBackend, error) {
	return nil, fmt.Errorf("%w: cocoa", ErrUnsupportedPlatform)
}

func (b *CocoaBackend) Name() string { return "cocoa" }

func (b *CocoaBackend) SetIgnoresMouseEvents(Handle, bool) error {
	return fmt.Errorf("%w: cocoa", ErrUnsupportedPlatform)
}

func (b *CocoaBackend) IgnoresMouseEvents(Handle) (bool, error) {
	return false, fmt.Errorf("%w: cocoa", ErrUnsupportedPlatform)
}
