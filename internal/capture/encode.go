package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
)

// BytesPerPixel is the size of one RGBA pixel in the raw buffer.
const BytesPerPixel = 4

// ParseCompression maps a compression name to a png.CompressionLevel.
func ParseCompression(name string) (png.CompressionLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return png.DefaultCompression, nil
	case "none", "no":
		return png.NoCompression, nil
	case "fast", "speed":
		return png.BestSpeed, nil
	case "best", "size":
		return png.BestCompression, nil
	default:
		return png.DefaultCompression, fmt.Errorf("unknown compression %q", name)
	}
}

// Encode wraps pix as an 8-bit RGBA image of size res and encodes it as PNG.
// pix must hold exactly Width*Height*4 bytes.
func Encode(pix []byte, res Resolution, level png.CompressionLevel) ([]byte, error) {
	if !res.Valid() {
		return nil, &EncodeError{Stage: StageEncode, Err: fmt.Errorf("invalid dimensions %s", res)}
	}
	want := uint64(res.Width) * uint64(res.Height) * BytesPerPixel
	if uint64(len(pix)) != want {
		return nil, &EncodeError{Stage: StageEncode, Err: fmt.Errorf("buffer holds %d bytes, %s needs %d", len(pix), res, want)}
	}
	w, h := int(res.Width), int(res.Height)
	img := &image.NRGBA{
		Pix:    pix,
		Stride: w * BytesPerPixel,
		Rect:   image.Rect(0, 0, w, h),
	}
	buf := bytes.NewBuffer(make([]byte, 0, len(pix)/2))
	enc := png.Encoder{CompressionLevel: level}
	if err := enc.Encode(buf, img); err != nil {
		return nil, &EncodeError{Stage: StageEncode, Err: err}
	}
	return buf.Bytes(), nil
}

// Decode reads an encoded PNG back into a mutable NRGBA image.
func Decode(data []byte) (*image.NRGBA, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &EncodeError{Stage: StageDecode, Err: err}
	}
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba, nil
	}
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	return nrgba, nil
}

// FlipVertical swaps the rows of img top to bottom in place.
func FlipVertical(img *image.NRGBA) {
	b := img.Bounds()
	rowLen := b.Dx() * BytesPerPixel
	if rowLen == 0 {
		return
	}
	tmp := make([]byte, rowLen)
	for top, bottom := b.Min.Y, b.Max.Y-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := img.Pix[img.PixOffset(b.Min.X, top):][:rowLen]
		u := img.Pix[img.PixOffset(b.Min.X, bottom):][:rowLen]
		copy(tmp, t)
		copy(t, u)
		copy(u, tmp)
	}
}

// Finalize decodes an encoded capture, optionally flips it and re-encodes it.
// The returned image is the one the returned bytes encode.
func Finalize(encoded []byte, flip bool, level png.CompressionLevel) (*image.NRGBA, []byte, error) {
	img, err := Decode(encoded)
	if err != nil {
		return nil, nil, err
	}
	if !flip {
		return img, encoded, nil
	}
	FlipVertical(img)
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: level}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, nil, &EncodeError{Stage: StageEncode, Err: err}
	}
	return img, buf.Bytes(), nil
}
