//go:build !windows

package platform

import "fmt"

func systemStyleTable() (StyleTable, error) {
	return nil, fmt.Errorf("%w: win32", ErrUnsupportedPlatform)
}
