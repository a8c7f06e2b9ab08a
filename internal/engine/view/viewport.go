package view

import "github.com/halvden/hexfield/internal/engine/terrain"

// Viewport maps pixel coordinates to normalized world coordinates.
// Zoom is world units per half viewport height.
type Viewport struct {
	Width  int
	Height int
	Zoom   float64
}

// Aspect returns the canvas aspect ratio.
func (v Viewport) Aspect() float64 {
	return float64(v.Width) / float64(v.Height)
}

// ScreenToWorld converts a pixel position to world coordinates.
func (v Viewport) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	ndcX := 2*sx/float64(v.Width) - 1
	ndcY := 1 - 2*sy/float64(v.Height)
	return ndcX * v.Zoom * v.Aspect(), ndcY * v.Zoom
}

// WorldToScreen converts world coordinates to a pixel position.
func (v Viewport) WorldToScreen(wx, wy float64) (sx, sy float64) {
	ndcX := wx / (v.Zoom * v.Aspect())
	ndcY := wy / v.Zoom
	return (ndcX + 1) * float64(v.Width) / 2, (1 - ndcY) * float64(v.Height) / 2
}

// TileToScreen projects a tile's center vertex to pixels.
func (v Viewport) TileToScreen(tileX, tileY int, heights *terrain.HeightGrid, a Anchor) (sx, sy float64) {
	wx, wy := TileToWorld(tileX, tileY, heights, a)
	return v.WorldToScreen(wx, wy)
}

// ScreenToTile resolves the tile under a pixel position, or ok=false when
// the point maps outside the map.
func (v Viewport) ScreenToTile(sx, sy float64, heights *terrain.HeightGrid, a Anchor) (tileX, tileY int, ok bool) {
	wx, wy := v.ScreenToWorld(sx, sy)
	return WorldToTile(wx, wy, heights, a)
}
