package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/example/wc-grab/internal/capture"
	"github.com/example/wc-grab/internal/clipboard"
	"github.com/example/wc-grab/internal/notify"
)

// session is a remote call channel that must be released after use.
type session interface {
	capture.Caller
	Close() error
}

var (
	dialFn = func(opts capture.BusOptions) (session, error) {
		b, err := capture.Dial(opts)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	writeClipboardFn = clipboard.WriteImage
	holdClipboardFn  = clipboard.Hold
)

type grabCmd struct {
	*root
}

func (g *grabCmd) Run() error {
	opts, err := g.captureOptions()
	if err != nil {
		return err
	}
	path := g.outputPath()

	bus, err := dialFn(capture.BusOptions{Timeout: g.timeout, Log: g.log})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := bus.Close(); cerr != nil {
			g.log.Warning("Close session bus: %s", cerr)
		}
	}()

	shot, err := capture.Grab(context.Background(), bus, opts)
	if err != nil {
		return err
	}
	fields := notify.Fields{Output: shot.Output, Resolution: shot.Resolution.String()}
	if err := g.notifier.Captured(fields, shot.PNG); err != nil {
		g.log.Warning("%s", err)
	}

	if err := capture.WriteFile(path, shot.PNG); err != nil {
		return err
	}
	saved := path
	if abs, err := filepath.Abs(path); err == nil {
		saved = abs
	}
	fmt.Fprintf(g.stderr, "saved %s (%s, %s)\n", saved, shot.Output, shot.Resolution)
	fields.Path = saved
	if err := g.notifier.Saved(fields); err != nil {
		g.log.Warning("%s", err)
	}

	if g.toClipboard {
		return g.copyToClipboard(shot, fields)
	}
	return nil
}

func (g *grabCmd) captureOptions() (capture.Options, error) {
	level, err := capture.ParseCompression(g.compression)
	if err != nil {
		return capture.Options{}, err
	}
	method := capture.MethodActiveScreen
	switch {
	case g.list:
		method = capture.MethodList
	case g.config != nil && g.config.ScreenMethod != "":
		switch {
		case strings.EqualFold(g.config.ScreenMethod, capture.MethodActiveScreen):
		case strings.EqualFold(g.config.ScreenMethod, capture.MethodList):
			method = capture.MethodList
		default:
			return capture.Options{}, fmt.Errorf("unknown screen_method %q", g.config.ScreenMethod)
		}
	}
	return capture.Options{
		ScreenMethod: method,
		Flip:         g.flip,
		Compression:  level,
		Log:          g.log,
	}, nil
}

func (g *grabCmd) outputPath() string {
	path := g.output
	if path == "" {
		path = "screenshot.png"
	}
	if g.config != nil && g.config.SaveDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(g.config.SaveDir, path)
	}
	return path
}

func (g *grabCmd) copyToClipboard(shot *capture.Shot, fields notify.Fields) error {
	released, err := writeClipboardFn(shot.PNG)
	if err != nil {
		return fmt.Errorf("copy PNG to clipboard: %w", err)
	}
	fmt.Fprintf(g.stderr, "copied %s capture to clipboard\n", shot.Output)
	if err := g.notifier.Copied(fields); err != nil {
		g.log.Warning("%s", err)
	}
	if holdClipboardFn(released, g.clipboardHold) {
		g.log.Debug("Clipboard taken over by another client.")
	} else {
		g.log.Debug("Stopped serving the clipboard after %s.", g.clipboardHold)
	}
	return nil
}
