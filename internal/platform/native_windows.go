//go:build windows

package platform

func openNative(Options) (Backend, error) {
	b, err := NewWin32Backend()
	if err != nil {
		return nil, err
	}
	return b, nil
}
