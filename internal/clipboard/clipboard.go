// Package clipboard publishes captured PNG data to the desktop clipboard.
//
// Clipboard contents on X11 and Wayland live in the publishing process, so
// WriteImage returns a channel that is closed once another client takes
// ownership of the selection. A short-lived program should Hold until then.
package clipboard

import (
	"bytes"
	"errors"
	"os"
	"time"
)

var (
	errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
	errNotPNG    = errors.New("clipboard data is not a PNG image")
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func checkPNG(data []byte) error {
	if !bytes.HasPrefix(data, pngSignature) {
		return errNotPNG
	}
	return nil
}

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// Hold blocks until released is closed or d elapses. It reports whether the
// clipboard was taken over by another client.
func Hold(released <-chan struct{}, d time.Duration) bool {
	if released == nil {
		return false
	}
	if d <= 0 {
		select {
		case <-released:
			return true
		default:
			return false
		}
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-released:
		return true
	case <-timer.C:
		return false
	}
}
