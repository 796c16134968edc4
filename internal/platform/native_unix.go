//go:build linux || freebsd || netbsd || openbsd || dragonfly

package platform

func openNative(opts Options) (Backend, error) {
	return NewX11Backend(opts.Display), nil
}
