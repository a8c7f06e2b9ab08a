// Package sheet loads terrain source sheets into RGBA pixel buffers
// addressable by pixel and by texture-block coordinates.
package sheet

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Sheet is a decoded source texture sheet.
type Sheet struct {
	rgba *image.RGBA
}

// FromImage wraps a decoded image, converting to RGBA if needed.
func FromImage(img image.Image) *Sheet {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == image.Pt(0, 0) {
		return &Sheet{rgba: rgba}
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(rgba, image.Pt(0, 0), img, b, draw.Src, nil)
	return &Sheet{rgba: rgba}
}

// Load decodes a sheet file. PNG, BMP and TGA are supported.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err = png.Decode(bytes.NewReader(data))
	case ".bmp":
		img, err = bmp.Decode(bytes.NewReader(data))
	case ".tga":
		img, err = DecodeTGA(data)
	default:
		return nil, fmt.Errorf("unsupported sheet format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding sheet %s: %w", path, err)
	}

	return FromImage(img), nil
}

// Image returns the underlying RGBA buffer.
func (s *Sheet) Image() *image.RGBA {
	return s.rgba
}

// Width returns the sheet width in pixels.
func (s *Sheet) Width() int {
	return s.rgba.Rect.Dx()
}

// Height returns the sheet height in pixels.
func (s *Sheet) Height() int {
	return s.rgba.Rect.Dy()
}

// Block returns the rectangle of a block-aligned region: (bx, by) in
// multiples of blockSize pixels.
func (s *Sheet) Block(bx, by, blockSize int) image.Rectangle {
	return image.Rect(bx*blockSize, by*blockSize, (bx+1)*blockSize, (by+1)*blockSize)
}

// Hash returns a content hash of the pixel data, used to key the atlas
// disk cache.
func (s *Sheet) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write(s.rgba.Pix)
	return h.Sum64()
}
