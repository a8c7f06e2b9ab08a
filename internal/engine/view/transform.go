// Package view converts between the logical tile grid, the hex-staggered
// instance space, and normalized world coordinates. The same arithmetic
// drives the vertex data and mouse picking, so forward and inverse must
// stay exact mirrors of each other.
package view

import (
	"math"

	"github.com/halvden/hexfield/internal/engine/terrain"
)

// Sub-tile base offsets of a tile's center vertex.
const (
	BaseCenterX = 0.25
	BaseCenterY = 0.5
)

// HeightScale converts a terrain height byte to its world-unit vertical
// displacement.
func HeightScale(h uint8) float64 {
	return float64(h) * 20.0 / 255.0
}

// Anchor is the camera center in tile units. The integer parts feed the
// stagger computation; the fractional parts are applied only in the final
// projection step. Mixing them is the classic way to misplace every tile.
type Anchor struct {
	X float64
	Y float64
}

func (a Anchor) ints() (vx, vy int) {
	return floorInt(a.X), floorInt(a.Y)
}

func (a Anchor) frac() (fx, fy float64) {
	vx, vy := a.ints()
	return a.X - float64(vx), a.Y - float64(vy)
}

// StaggerX returns the anchor's staggered column, from the integer parts
// only.
func (a Anchor) StaggerX() int {
	vx, vy := a.ints()
	return vx + floorDiv(vy, 2)
}

// StaggerX converts a tile column to its hex-staggered column.
func StaggerX(tileX, tileY int) int {
	return tileX + floorDiv(tileY, 2)
}

// Instance returns the hex-staggered instance offset of a tile relative to
// the anchor.
func Instance(tileX, tileY int, a Anchor) (instX, instY int) {
	_, vy := a.ints()
	return StaggerX(tileX, tileY) - a.StaggerX(), tileY - vy
}

// Project converts an instance position plus sub-tile base offsets and a
// height displacement to world coordinates. Identical to the vertex shader
// arithmetic.
func Project(instX, instY int, baseX, baseY float64, height uint8, a Anchor) (wx, wy float64) {
	fx, fy := a.frac()
	hs := HeightScale(height)
	wx = float64(instX) + baseX - float64(instY)*0.5 - fx + fy*0.5
	wy = (float64(instY) + baseY - hs - fy) * 0.5
	return wx, wy
}

// TileToWorld projects a tile's center vertex using its terrain height.
func TileToWorld(tileX, tileY int, heights *terrain.HeightGrid, a Anchor) (wx, wy float64) {
	ix, iy := Instance(tileX, tileY, a)
	return Project(ix, iy, BaseCenterX, BaseCenterY, heights.At(tileX, tileY), a)
}

// WorldToTile inverts TileToWorld. The first pass assumes height 0 to get
// a candidate tile, then the candidate's actual height refines the row
// before the final rounding. Points outside the map resolve to ok=false.
func WorldToTile(wx, wy float64, heights *terrain.HeightGrid, a Anchor) (tileX, tileY int, ok bool) {
	cx, cy := invert(wx, wy, 0, a)
	h := heights.At(cx, cy)
	tileX, tileY = invert(wx, wy, HeightScale(h), a)

	if tileX < 0 || tileY < 0 || tileX >= heights.Width || tileY >= heights.Height {
		return 0, 0, false
	}
	return tileX, tileY, true
}

// invert undoes Project for the tile-center base offsets at a known height
// displacement.
func invert(wx, wy, hs float64, a Anchor) (tileX, tileY int) {
	_, vy := a.ints()
	fx, fy := a.frac()

	iyf := 2*wy - BaseCenterY + fy + hs
	instY := int(math.Round(iyf))

	ixf := wx - BaseCenterX + float64(instY)*0.5 + fx - fy*0.5
	instX := int(math.Round(ixf))

	tileY = instY + vy
	tileX = instX + a.StaggerX() - floorDiv(tileY, 2)
	return tileX, tileY
}

func floorInt(v float64) int {
	return int(math.Floor(v))
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
