//go:build !linux && !freebsd && !netbsd && !openbsd && !dragonfly && !windows && !(darwin && cgo)

package platform

import (
	"fmt"
	"runtime"
)

func openNative(Options) (Backend, error) {
	return nil, fmt.Errorf("%w: no native backend for %s", ErrUnsupportedPlatform, runtime.GOOS)
}
