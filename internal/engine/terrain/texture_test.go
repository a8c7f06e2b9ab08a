package terrain

import (
	"testing"

	"github.com/halvden/hexfield/internal/engine/atlas"
)

func TestUniform_SmallAddressing(t *testing.T) {
	l := atlas.NewLayout()
	u := NewUniform(l, Grass, 2, 0)
	l.Set(2*atlas.SmallBlock, 0, 640, 320)

	p := Pattern{Grass, Grass, Grass}
	if got := u.TextureA(p, 5, 9); got != (atlas.Point{X: 640, Y: 320}) {
		t.Errorf("unexpected A offset: %+v", got)
	}
	if got := u.TextureB(p, 5, 9); got != (atlas.Point{X: 640 + TriangleShift, Y: 320}) {
		t.Errorf("unexpected B offset: %+v", got)
	}
}

func TestUniform_BigAddressing(t *testing.T) {
	l := atlas.NewLayout()
	u := NewBigUniform(l, Grass, 0, 1)
	l.Set(0, atlas.BigBlock, 1000, 1024)

	p := Pattern{Grass, Grass, Grass}

	// Tile (0,0) reads the block origin.
	if got := u.TextureA(p, 0, 0); got != (atlas.Point{X: 1000, Y: 1024}) {
		t.Errorf("unexpected A offset at origin: %+v", got)
	}

	// Tile (3,0): right column of the 4x4 region; the B half shifts into
	// the wrap strip past the 256px boundary.
	a := u.TextureA(p, 3, 0)
	b := u.TextureB(p, 3, 0)
	if a != (atlas.Point{X: 1000 + 192, Y: 1024}) {
		t.Errorf("unexpected A offset at right column: %+v", a)
	}
	if b != (atlas.Point{X: 1000 + 192 + TriangleShift, Y: 1024}) {
		t.Errorf("unexpected B offset at right column: %+v", b)
	}
	if b.X-1000 <= atlas.BigBlock-atlas.SmallBlock {
		t.Error("B half at the right column should need the wrap strip")
	}

	// Stagger keeps vertically adjacent tiles on the same sub-column:
	// tile (3,0) and tile (2,2) share the staggered column 3.
	a2 := u.TextureA(p, 2, 2)
	if a2.X != a.X {
		t.Errorf("stagger misalignment: (3,0)=%+v vs (2,2)=%+v", a, a2)
	}
}

func TestGradient_PatternSides(t *testing.T) {
	l := atlas.NewLayout()
	left := NewGradient(l, Grass, Desert, false, [2]int{0, 1})
	right := NewGradient(l, Grass, Desert, true, [2]int{0, 1})

	wantLeft := []Pattern{
		{Desert, Grass, Grass},
		{Grass, Desert, Desert},
	}
	wantRight := []Pattern{
		{Grass, Grass, Desert},
		{Desert, Desert, Grass},
	}

	for i, p := range left.Patterns() {
		if p != wantLeft[i] {
			t.Errorf("left pattern %d: got %s, want %s", i, p, wantLeft[i])
		}
	}
	for i, p := range right.Patterns() {
		if p != wantRight[i] {
			t.Errorf("right pattern %d: got %s, want %s", i, p, wantRight[i])
		}
	}
}

func TestGradient_CaseTable(t *testing.T) {
	l := atlas.NewLayout()
	g := NewGradient(l, Grass, Desert, false, [2]int{0, 1})
	l.Set(0, atlas.SmallBlock, 512, 64)

	// Inner at corner A only.
	p := Pattern{Desert, Grass, Grass}
	if got := g.TextureA(p, 0, 0); got != (atlas.Point{X: 512, Y: 64}) {
		t.Errorf("caseInnerA half A: %+v", got)
	}
	if got := g.TextureB(p, 0, 0); got != (atlas.Point{X: 512 + TriangleShift, Y: 64}) {
		t.Errorf("caseInnerA half B: %+v", got)
	}

	// Inner at corners B and C reads the lower sub-row.
	q := Pattern{Grass, Desert, Desert}
	if got := g.TextureA(q, 0, 0); got != (atlas.Point{X: 512, Y: 64 + TriangleShift}) {
		t.Errorf("caseInnerBC half A: %+v", got)
	}
}

func TestGradient_ParityCheckerboard(t *testing.T) {
	l := atlas.NewLayout()
	g := NewGradient(l, Grass, Desert, false, [2]int{0, 1}, [2]int{1, 1})
	l.Set(0, atlas.SmallBlock, 512, 64)
	l.Set(atlas.SmallBlock, atlas.SmallBlock, 576, 64)

	p := Pattern{Desert, Grass, Grass}
	even := g.TextureA(p, 0, 0)
	odd := g.TextureA(p, 1, 0)
	if even == odd {
		t.Error("adjacent tiles must alternate physical blocks")
	}
	if g.TextureA(p, 0, 0) != g.TextureA(p, 2, 0) {
		t.Error("same-parity tiles must share a block")
	}
	if g.TextureA(p, 1, 0) != g.TextureA(p, 0, 1) {
		t.Error("parity is (x+y)%2, not per-axis")
	}
}

func TestGradient_WithTypesSharesSlot(t *testing.T) {
	l := atlas.NewLayout()
	g := NewGradient(l, Grass, River4, false, [2]int{0, 3})
	l.Set(0, 3*atlas.SmallBlock, 700, 128)

	rebound := g.WithTypes(River4, River2)

	// Same physical slot, different terrain roles.
	if rebound.TextureA(Pattern{River2, River4, River4}, 0, 0) !=
		g.TextureA(Pattern{River4, Grass, Grass}, 0, 0) {
		t.Error("rebinding roles must not move the atlas slot")
	}
	wantPatterns := []Pattern{
		{River2, River4, River4},
		{River4, River2, River2},
	}
	for i, p := range rebound.Patterns() {
		if p != wantPatterns[i] {
			t.Errorf("rebound pattern %d: got %s, want %s", i, p, wantPatterns[i])
		}
	}
}

func TestGradient_FlipMirrorsX(t *testing.T) {
	l := atlas.NewLayout()
	g := NewGradient(l, Grass, Desert, false, [2]int{0, 1})
	l.Set(0, atlas.SmallBlock, 512, 64)

	flipped := g.withFlip(true)
	p := Pattern{Desert, Grass, Grass}

	plain := g.TextureA(p, 0, 0)
	mirror := flipped.TextureA(p, 0, 0)
	if mirror.X != plain.X+TriangleShift || mirror.Y != plain.Y {
		t.Errorf("flip must mirror the x sub-offset: %+v vs %+v", plain, mirror)
	}
}

// Three-corner sub-tile addressing is a known-incomplete placeholder: both
// halves read the block origin regardless of rotation.
func TestHexagon_PlaceholderAddressing(t *testing.T) {
	l := atlas.NewLayout()
	h := NewHexagon(l, Grass, Desert, Rock, [2]int{4, 2}, [2]int{5, 2})
	l.Set(4*atlas.SmallBlock, 2*atlas.SmallBlock, 800, 192)
	l.Set(5*atlas.SmallBlock, 2*atlas.SmallBlock, 864, 192)

	pats := h.Patterns()
	if len(pats) != 3 {
		t.Fatalf("expected 3 rotations, got %d", len(pats))
	}
	if pats[1] != (Pattern{Desert, Rock, Grass}) || pats[2] != (Pattern{Rock, Grass, Desert}) {
		t.Errorf("unexpected rotations: %v", pats)
	}

	base := atlas.Point{X: 800, Y: 192}
	for _, p := range pats {
		if got := h.TextureA(p, 0, 0); got != base {
			t.Errorf("rotation %s half A: got %+v, want block origin", p, got)
		}
		if got := h.TextureB(p, 0, 0); got != base {
			t.Errorf("rotation %s half B: got %+v, want block origin", p, got)
		}
	}

	// Parity still alternates the physical block.
	if h.TextureA(pats[0], 1, 0) != (atlas.Point{X: 864, Y: 192}) {
		t.Errorf("odd parity should read the second block")
	}
}
