// Package terrain resolves terrain corner patterns to packed atlas
// coordinates for the hex-staggered tile renderer.
package terrain

// Type identifies one terrain kind. Values match the map-file terrain byte.
type Type uint8

const (
	Water0 Type = iota // deepest open water
	Water1
	Water2
	Water3 // shallow water
	Beach
	Grass
	GrassDry // parched grass variant
	Desert
	Rock
	Snow
	Swamp
	Mud
	River1 // narrowest river course
	River2
	River3
	River4 // widest course, carries the grass bank transitions

	NumTypes
)

var typeNames = [NumTypes]string{
	Water0:   "Water0",
	Water1:   "Water1",
	Water2:   "Water2",
	Water3:   "Water3",
	Beach:    "Beach",
	Grass:    "Grass",
	GrassDry: "GrassDry",
	Desert:   "Desert",
	Rock:     "Rock",
	Snow:     "Snow",
	Swamp:    "Swamp",
	Mud:      "Mud",
	River1:   "River1",
	River2:   "River2",
	River3:   "River3",
	River4:   "River4",
}

func (t Type) String() string {
	if t < NumTypes {
		return typeNames[t]
	}
	return "Unknown"
}

// IsRiver reports whether t is one of the four river stages.
func (t Type) IsRiver() bool {
	return t >= River1 && t <= River4
}

// TypeGrid holds one terrain type per tile, row-major.
type TypeGrid struct {
	Width  int
	Height int
	Cells  []Type
}

// NewTypeGrid creates a grid filled with Grass.
func NewTypeGrid(width, height int) *TypeGrid {
	g := &TypeGrid{Width: width, Height: height, Cells: make([]Type, width*height)}
	for i := range g.Cells {
		g.Cells[i] = Grass
	}
	return g
}

// TypeGridFrom converts a raw terrain-type byte array as supplied by the
// map loader.
func TypeGridFrom(width, height int, raw []byte) *TypeGrid {
	cells := make([]Type, len(raw))
	for i, b := range raw {
		cells[i] = Type(b)
	}
	return &TypeGrid{Width: width, Height: height, Cells: cells}
}

// At returns the terrain type at (x, y), clamping out-of-range coordinates
// to the grid edge.
func (g *TypeGrid) At(x, y int) Type {
	x = clamp(x, 0, g.Width-1)
	y = clamp(y, 0, g.Height-1)
	return g.Cells[y*g.Width+x]
}

// Set assigns the terrain type at (x, y). Out-of-range coordinates are
// ignored.
func (g *TypeGrid) Set(x, y int, t Type) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	g.Cells[y*g.Width+x] = t
}

// HeightGrid holds one height byte (0-255) per tile, row-major.
type HeightGrid struct {
	Width  int
	Height int
	Cells  []uint8
}

// NewHeightGrid creates a flat grid at the given height.
func NewHeightGrid(width, height int, level uint8) *HeightGrid {
	g := &HeightGrid{Width: width, Height: height, Cells: make([]uint8, width*height)}
	for i := range g.Cells {
		g.Cells[i] = level
	}
	return g
}

// HeightGridFrom wraps a raw height byte array as supplied by the map loader.
func HeightGridFrom(width, height int, raw []uint8) *HeightGrid {
	return &HeightGrid{Width: width, Height: height, Cells: raw}
}

// At returns the height at (x, y), clamping out-of-range coordinates to the
// grid edge.
func (g *HeightGrid) At(x, y int) uint8 {
	x = clamp(x, 0, g.Width-1)
	y = clamp(y, 0, g.Height-1)
	return g.Cells[y*g.Width+x]
}

// Set assigns the height at (x, y). Out-of-range coordinates are ignored.
func (g *HeightGrid) Set(x, y int, h uint8) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	g.Cells[y*g.Width+x] = h
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
