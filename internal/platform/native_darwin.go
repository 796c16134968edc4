//go:build darwin && cgo

package platform

func openNative(Options) (Backend, error) {
	b, err := NewCocoaBackend()
	if err != nil {
		return nil, err
	}
	return b, nil
}
