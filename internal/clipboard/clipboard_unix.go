//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && cgo

package clipboard

import (
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		initErr = clipboard.Init()
	})
	return initErr
}

// WriteImage offers data as image/png on the clipboard. The returned channel
// is closed when another client replaces the clipboard contents.
func WriteImage(data []byte) (<-chan struct{}, error) {
	if err := checkPNG(data); err != nil {
		return nil, err
	}
	if err := ensureInit(); err != nil {
		return nil, err
	}
	return clipboard.Write(clipboard.FmtImage, data), nil
}
