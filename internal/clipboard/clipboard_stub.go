//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import (
	"fmt"
	"runtime"
)

// WriteImage always fails; captures only exist on unix desktops.
func WriteImage([]byte) (<-chan struct{}, error) {
	return nil, fmt.Errorf("clipboard images are not supported on %s", runtime.GOOS)
}
