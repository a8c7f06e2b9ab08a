// Package atlas packs claimed source-sheet blocks into a single GPU-uploadable
// texture atlas and tracks where each block landed.
package atlas

// Point is a pixel position inside the packed atlas. The zero value is the
// "no texture" sentinel: tiles resolved to it sample the atlas origin.
type Point struct {
	X int
	Y int
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Layout maps source-block coordinates to their packed atlas position.
// Many texture primitives may alias the same source block; the first pack
// request claims it and later requests resolve to the same slot.
//
// Not thread-safe: written single-threaded at load time only.
type Layout struct {
	entries map[uint64]Point
}

// NewLayout returns an empty layout.
func NewLayout() *Layout {
	return &Layout{entries: make(map[uint64]Point)}
}

func srcKey(srcX, srcY int) uint64 {
	return uint64(uint32(srcX))<<32 | uint64(uint32(srcY))
}

// Set records the packed destination for a source block.
func (l *Layout) Set(srcX, srcY, destX, destY int) {
	l.entries[srcKey(srcX, srcY)] = Point{X: destX, Y: destY}
}

// Has reports whether the source block has been claimed.
func (l *Layout) Has(srcX, srcY int) bool {
	_, ok := l.entries[srcKey(srcX, srcY)]
	return ok
}

// Get returns the packed destination of a source block, or the zero
// sentinel if the block was never claimed.
func (l *Layout) Get(srcX, srcY int) Point {
	return l.entries[srcKey(srcX, srcY)]
}

// Len returns the number of claimed blocks.
func (l *Layout) Len() int {
	return len(l.entries)
}

// Each calls fn for every claimed block.
func (l *Layout) Each(fn func(srcX, srcY int, dest Point)) {
	for k, dest := range l.entries {
		fn(int(uint32(k>>32)), int(uint32(k)), dest)
	}
}
