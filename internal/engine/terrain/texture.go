package terrain

import (
	"github.com/halvden/hexfield/internal/engine/atlas"
	"github.com/halvden/hexfield/pkg/sheet"
)

// TriangleShift is the x offset of a tile's bottom-right (B) triangle half
// relative to its top-left (A) half inside a block.
const TriangleShift = atlas.SmallBlock / 2

// Texture is one catalogued primitive of the source sheet: a physical
// region plus the corner patterns it can render.
type Texture interface {
	// Patterns lists the corner patterns this primitive satisfies.
	Patterns() []Pattern

	// TextureA returns the atlas pixel offset for the top-left triangle
	// half of tile (x, y) rendered under pattern p.
	TextureA(p Pattern, x, y int) atlas.Point

	// TextureB is TextureA for the bottom-right triangle half.
	TextureB(p Pattern, x, y int) atlas.Point

	// Pack claims the primitive's source blocks into the atlas. Claiming
	// is idempotent: aliased blocks are copied once.
	Pack(sh *sheet.Sheet, a *atlas.Atlas)
}

// UniformTexture renders a single terrain type. Small blocks hold one tile;
// big blocks hold a 4x4 tile region addressed by stagger so neighbouring
// tiles do not repeat visibly.
type UniformTexture struct {
	layout  *atlas.Layout
	terrain Type
	srcX    int
	srcY    int
	big     bool
}

// NewUniform creates a small uniform primitive. blockX, blockY are source
// coordinates in SmallBlock multiples.
func NewUniform(layout *atlas.Layout, t Type, blockX, blockY int) *UniformTexture {
	return &UniformTexture{
		layout:  layout,
		terrain: t,
		srcX:    blockX * atlas.SmallBlock,
		srcY:    blockY * atlas.SmallBlock,
	}
}

// NewBigUniform creates a big uniform primitive. blockX, blockY are source
// coordinates in BigBlock multiples.
func NewBigUniform(layout *atlas.Layout, t Type, blockX, blockY int) *UniformTexture {
	return &UniformTexture{
		layout:  layout,
		terrain: t,
		srcX:    blockX * atlas.BigBlock,
		srcY:    blockY * atlas.BigBlock,
		big:     true,
	}
}

func (u *UniformTexture) Patterns() []Pattern {
	return []Pattern{{A: u.terrain, B: u.terrain, C: u.terrain}}
}

func (u *UniformTexture) TextureA(_ Pattern, x, y int) atlas.Point {
	base := u.layout.Get(u.srcX, u.srcY)
	if !u.big {
		return base
	}
	sx, sy := bigSubOffset(x, y)
	return base.Add(sx, sy)
}

func (u *UniformTexture) TextureB(_ Pattern, x, y int) atlas.Point {
	base := u.layout.Get(u.srcX, u.srcY)
	if !u.big {
		return base.Add(TriangleShift, 0)
	}
	sx, sy := bigSubOffset(x, y)
	return base.Add(sx+TriangleShift, sy)
}

func (u *UniformTexture) Pack(sh *sheet.Sheet, a *atlas.Atlas) {
	if u.big {
		a.ClaimBig(sh, u.srcX, u.srcY)
		return
	}
	a.ClaimSmall(sh, u.srcX, u.srcY)
}

// bigSubOffset selects the 64px sub-tile of a big block for tile (x, y).
// The x term follows the stagger so vertically adjacent tiles stay aligned;
// the B-half shift past the right boundary lands in the wrap strip.
func bigSubOffset(x, y int) (int, int) {
	sx := ((x + y/2) & 3) * atlas.SmallBlock
	sy := (y & 3) * atlas.SmallBlock
	return sx, sy
}

// gradientCase enumerates which corners of a pattern hold the gradient's
// inner type. Sub-tile offsets are a lookup per case, not a formula.
type gradientCase int

const (
	caseInnerA  gradientCase = iota // inner at corner A only
	caseInnerBC                     // inner at corners B and C
	caseInnerC                      // inner at corner C only
	caseInnerAB                     // inner at corners A and B
)

// gradientSub maps case -> triangle half (A, B) -> sub-tile offset inside
// a small transition block.
var gradientSub = [4][2][2]int{
	caseInnerA:  {{0, 0}, {TriangleShift, 0}},
	caseInnerBC: {{0, TriangleShift}, {TriangleShift, TriangleShift}},
	caseInnerC:  {{TriangleShift, 0}, {0, 0}},
	caseInnerAB: {{TriangleShift, TriangleShift}, {0, TriangleShift}},
}

// GradientTexture renders a two-terrain transition. Each instance covers
// one mirror side of the transition; a full transition is a left/right
// pair sharing the same physical blocks. With two blocks the choice
// alternates on the tile parity checkerboard.
type GradientTexture struct {
	layout  *atlas.Layout
	outer   Type
	inner   Type
	blocks  [][2]int // source pixel coords, 1 or 2 entries
	right   bool     // which mirror side's patterns this instance serves
	flipped bool     // mirrored sub-tile addressing
}

// NewGradient creates a gradient primitive. blocks are source coordinates
// in SmallBlock multiples; one or two entries.
func NewGradient(layout *atlas.Layout, outer, inner Type, right bool, blocks ...[2]int) *GradientTexture {
	px := make([][2]int, len(blocks))
	for i, b := range blocks {
		px[i] = [2]int{b[0] * atlas.SmallBlock, b[1] * atlas.SmallBlock}
	}
	return &GradientTexture{
		layout: layout,
		outer:  outer,
		inner:  inner,
		blocks: px,
		right:  right,
	}
}

// WithTypes returns a copy of g bound to a different terrain role pair.
// The atlas binding and physical blocks are shared, so no pixel data moves.
func (g *GradientTexture) WithTypes(outer, inner Type) *GradientTexture {
	c := *g
	c.outer = outer
	c.inner = inner
	return &c
}

// withFlip returns a copy of g with mirrored sub-tile addressing.
func (g *GradientTexture) withFlip(flipped bool) *GradientTexture {
	c := *g
	c.flipped = flipped
	return &c
}

func (g *GradientTexture) Patterns() []Pattern {
	o, i := g.outer, g.inner
	if g.right {
		return []Pattern{
			{A: o, B: o, C: i},
			{A: i, B: i, C: o},
		}
	}
	return []Pattern{
		{A: i, B: o, C: o},
		{A: o, B: i, C: i},
	}
}

func (g *GradientTexture) TextureA(p Pattern, x, y int) atlas.Point {
	return g.offset(p, x, y, 0)
}

func (g *GradientTexture) TextureB(p Pattern, x, y int) atlas.Point {
	return g.offset(p, x, y, 1)
}

func (g *GradientTexture) offset(p Pattern, x, y, half int) atlas.Point {
	idx := 0
	if len(g.blocks) == 2 {
		idx = (x + y) & 1
	}
	block := g.blocks[idx]
	base := g.layout.Get(block[0], block[1])

	sub := gradientSub[g.classify(p)][half]
	dx := sub[0]
	if g.flipped {
		dx ^= TriangleShift
	}
	return base.Add(dx, sub[1])
}

func (g *GradientTexture) classify(p Pattern) gradientCase {
	in := func(t Type) bool { return t == g.inner }
	switch {
	case in(p.A) && !in(p.B) && !in(p.C):
		return caseInnerA
	case !in(p.A) && in(p.B) && in(p.C):
		return caseInnerBC
	case !in(p.A) && !in(p.B) && in(p.C):
		return caseInnerC
	case in(p.A) && in(p.B) && !in(p.C):
		return caseInnerAB
	}
	return caseInnerA
}

func (g *GradientTexture) Pack(sh *sheet.Sheet, a *atlas.Atlas) {
	for _, b := range g.blocks {
		a.ClaimSmall(sh, b[0], b[1])
	}
}

// HexagonTexture renders a three-terrain corner in rotational symmetry,
// with two physical blocks alternated by tile parity.
type HexagonTexture struct {
	layout  *atlas.Layout
	pattern Pattern
	blocks  [2][2]int // source pixel coords
}

// NewHexagon creates a three-corner primitive. block0, block1 are source
// coordinates in SmallBlock multiples.
func NewHexagon(layout *atlas.Layout, t1, t2, t3 Type, block0, block1 [2]int) *HexagonTexture {
	return &HexagonTexture{
		layout:  layout,
		pattern: Pattern{A: t1, B: t2, C: t3},
		blocks: [2][2]int{
			{block0[0] * atlas.SmallBlock, block0[1] * atlas.SmallBlock},
			{block1[0] * atlas.SmallBlock, block1[1] * atlas.SmallBlock},
		},
	}
}

func (h *HexagonTexture) Patterns() []Pattern {
	p := h.pattern
	q := p.Rotate()
	r := q.Rotate()
	return []Pattern{p, q, r}
}

// TODO: add rotation-specific sub-tile offsets once the three-way corner
// layout of the sheet is mapped. Until then both halves read the block
// origin for every rotation.

func (h *HexagonTexture) TextureA(_ Pattern, x, y int) atlas.Point {
	block := h.blocks[(x+y)&1]
	return h.layout.Get(block[0], block[1])
}

func (h *HexagonTexture) TextureB(_ Pattern, x, y int) atlas.Point {
	block := h.blocks[(x+y)&1]
	return h.layout.Get(block[0], block[1])
}

func (h *HexagonTexture) Pack(sh *sheet.Sheet, a *atlas.Atlas) {
	for _, b := range h.blocks {
		a.ClaimSmall(sh, b[0], b[1])
	}
}
