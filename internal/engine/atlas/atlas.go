package atlas

import (
	"image"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/halvden/hexfield/pkg/sheet"
)

// Atlas dimensions and block sizes, in pixels.
const (
	Size       = 2048
	SmallBlock = 64
	BigBlock   = 256

	// WrapMargin is the strip duplicated from a big block's left edge onto
	// its right edge, so stagger-shifted sub-tiles near the right boundary
	// can read past BigBlock without GPU wrap addressing.
	WrapMargin = 64

	// BigSlotWidth is the full width a big block occupies in the atlas.
	BigSlotWidth = BigBlock + WrapMargin

	// bigRegionY splits the atlas: small blocks shelf-allocate above,
	// big blocks below.
	bigRegionY = 1024
)

// Atlas accumulates packed blocks. Pixels are RGBA, ready for GPU upload.
type Atlas struct {
	pixels *image.RGBA
	layout *Layout
	log    *zap.Logger

	smallX, smallY int
	bigX, bigY     int
}

// New creates an empty atlas recording placements into the given layout.
// The layout is shared by reference with the texture primitives that
// address the atlas.
func New(layout *Layout, log *zap.Logger) *Atlas {
	if log == nil {
		log = zap.NewNop()
	}
	return &Atlas{
		pixels: image.NewRGBA(image.Rect(0, 0, Size, Size)),
		layout: layout,
		log:    log,
		bigY:   bigRegionY,
	}
}

// Pixels returns the packed RGBA buffer.
func (a *Atlas) Pixels() *image.RGBA {
	return a.pixels
}

// Layout returns the shared source→destination layout.
func (a *Atlas) Layout() *Layout {
	return a.layout
}

// ClaimSmall copies one small source block into the atlas, unless the block
// was already claimed, and returns its packed position. srcX, srcY are
// pixel coordinates at SmallBlock multiples.
func (a *Atlas) ClaimSmall(sh *sheet.Sheet, srcX, srcY int) Point {
	if a.layout.Has(srcX, srcY) {
		return a.layout.Get(srcX, srcY)
	}

	if a.smallX+SmallBlock > Size {
		a.smallX = 0
		a.smallY += SmallBlock
	}
	if a.smallY+SmallBlock > bigRegionY {
		a.log.Error("atlas small region full, block dropped",
			zap.Int("srcX", srcX), zap.Int("srcY", srcY))
		a.layout.Set(srcX, srcY, 0, 0)
		return Point{}
	}

	dest := Point{X: a.smallX, Y: a.smallY}
	a.smallX += SmallBlock

	a.blit(sh, srcX, srcY, SmallBlock, SmallBlock, dest)
	a.layout.Set(srcX, srcY, dest.X, dest.Y)
	return dest
}

// ClaimBig copies one big source block into the atlas plus the wrap strip,
// unless the block was already claimed, and returns its packed position.
// srcX, srcY are pixel coordinates at BigBlock multiples.
func (a *Atlas) ClaimBig(sh *sheet.Sheet, srcX, srcY int) Point {
	if a.layout.Has(srcX, srcY) {
		return a.layout.Get(srcX, srcY)
	}

	if a.bigX+BigSlotWidth > Size {
		a.bigX = 0
		a.bigY += BigBlock
	}
	if a.bigY+BigBlock > Size {
		a.log.Error("atlas big region full, block dropped",
			zap.Int("srcX", srcX), zap.Int("srcY", srcY))
		a.layout.Set(srcX, srcY, 0, 0)
		return Point{}
	}

	dest := Point{X: a.bigX, Y: a.bigY}
	a.bigX += BigSlotWidth

	a.blit(sh, srcX, srcY, BigBlock, BigBlock, dest)
	// Duplicate the left edge strip onto the right edge to emulate wrap
	// addressing for sub-tiles shifted past the block boundary.
	a.blit(sh, srcX, srcY, WrapMargin, BigBlock, dest.Add(BigBlock, 0))

	a.layout.Set(srcX, srcY, dest.X, dest.Y)
	return dest
}

func (a *Atlas) blit(sh *sheet.Sheet, srcX, srcY, w, h int, dest Point) {
	sr := image.Rect(srcX, srcY, srcX+w, srcY+h)
	draw.Copy(a.pixels, image.Pt(dest.X, dest.Y), sh.Image(), sr, draw.Src, nil)
}
