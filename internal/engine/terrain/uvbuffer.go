package terrain

import "github.com/halvden/hexfield/internal/engine/atlas"

// UVBuffer is the baked per-tile instance data: one atlas offset per
// triangle half, row-major. Lookup changes (river reconfiguration) do not
// touch already-baked entries; call Rebuild afterwards.
type UVBuffer struct {
	Width  int
	Height int
	A      []atlas.Point
	B      []atlas.Point
}

// BuildUVBuffer bakes the whole grid.
func BuildUVBuffer(m *TextureMap, g *TypeGrid) *UVBuffer {
	b := &UVBuffer{
		Width:  g.Width,
		Height: g.Height,
		A:      make([]atlas.Point, g.Width*g.Height),
		B:      make([]atlas.Point, g.Width*g.Height),
	}
	b.Rebuild(m, g)
	return b
}

// Rebuild re-runs the per-tile lookup over the whole grid. Single-threaded;
// the caller must not read the buffer while it runs.
func (b *UVBuffer) Rebuild(m *TextureMap, g *TypeGrid) {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			i := y*b.Width + x
			b.A[i], b.B[i] = m.ComputeTileUV(g, x, y)
		}
	}
}

// At returns both triangle offsets of tile (x, y).
func (b *UVBuffer) At(x, y int) (uvA, uvB atlas.Point) {
	i := y*b.Width + x
	return b.A[i], b.B[i]
}
