package capture

import (
	"context"
	"image"
	"image/png"

	"github.com/PurpleSec/logx"
)

// Options controls a single capture.
type Options struct {
	// ScreenMethod selects the output discovery call, MethodActiveScreen
	// when empty.
	ScreenMethod string
	// Flip reverses the row order of the captured frame.
	Flip        bool
	Compression png.CompressionLevel
	Log         logx.Log
}

// Shot is a finished capture held in memory.
type Shot struct {
	Output     string
	Resolution Resolution
	Image      *image.NRGBA
	PNG        []byte
}

// Grab captures the active output through c and returns the final PNG.
// Nothing is written to disk; see WriteFile.
func Grab(ctx context.Context, c Caller, opts Options) (*Shot, error) {
	log := opts.Log
	if log == nil {
		log = logx.NOP
	}
	output, res, err := Resolve(ctx, c, opts.ScreenMethod)
	if err != nil {
		return nil, err
	}
	log.Debug("Active output %q is %s.", output, res)

	pix, err := Scrape(ctx, c)
	if err != nil {
		return nil, err
	}
	log.Debug("Scraped %d bytes from %q.", len(pix), output)

	Reorder(pix)
	encoded, err := Encode(pix, res, opts.Compression)
	if err != nil {
		return nil, err
	}
	img, final, err := Finalize(encoded, opts.Flip, opts.Compression)
	if err != nil {
		return nil, err
	}
	log.Trace("Encoded %s capture into %d bytes (flip=%t).", res, len(final), opts.Flip)
	return &Shot{Output: output, Resolution: res, Image: img, PNG: final}, nil
}
