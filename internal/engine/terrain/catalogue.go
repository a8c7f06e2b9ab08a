package terrain

import "go.uber.org/zap"

// BuildDefault registers the fixed source-sheet catalogue. Block
// coordinates mirror the hand-curated sheet layout: uniforms on the top
// row, transition pairs below, river slot pairs on row three, and the big
// grass block in the lower-left quarter.
func BuildDefault(log *zap.Logger) *TextureMap {
	m := NewTextureMap(log)
	l := m.Layout()

	m.AddTexture(NewBigUniform(l, Grass, 0, 1))

	// Mud shares Swamp's block: the sheet draws them identically, the
	// layout dedup resolves both to one packed copy.
	for _, u := range []struct {
		t      Type
		bx, by int
	}{
		{Water0, 0, 0}, {Water1, 1, 0}, {Water2, 2, 0}, {Water3, 3, 0},
		{Beach, 4, 0}, {GrassDry, 5, 0}, {Desert, 6, 0}, {Rock, 7, 0},
		{Snow, 8, 0}, {Swamp, 9, 0}, {Mud, 9, 0},
		{River1, 10, 0}, {River2, 11, 0}, {River3, 12, 0}, {River4, 13, 0},
	} {
		m.AddTexture(NewUniform(l, u.t, u.bx, u.by))
	}

	// Two-corner transitions: a left/right mirror pair per terrain pair,
	// both instances sharing the same two parity blocks.
	addPair := func(outer, inner Type, b0, b1 [2]int) {
		m.AddTexture(NewGradient(l, outer, inner, false, b0, b1))
		m.AddTexture(NewGradient(l, outer, inner, true, b0, b1))
	}
	addPair(Grass, Desert, [2]int{0, 1}, [2]int{1, 1})
	addPair(Grass, Rock, [2]int{2, 1}, [2]int{3, 1})
	addPair(Rock, Snow, [2]int{4, 1}, [2]int{5, 1})
	addPair(Grass, Beach, [2]int{6, 1}, [2]int{7, 1})
	addPair(Beach, Water3, [2]int{8, 1}, [2]int{9, 1})
	addPair(Water3, Water2, [2]int{10, 1}, [2]int{11, 1})
	addPair(Water2, Water1, [2]int{12, 1}, [2]int{13, 1})
	addPair(Water1, Water0, [2]int{14, 1}, [2]int{15, 1})
	addPair(Grass, Swamp, [2]int{0, 2}, [2]int{1, 2})
	addPair(Desert, Rock, [2]int{2, 2}, [2]int{3, 2})

	// Three-corner meeting points.
	m.AddTexture(NewHexagon(l, Grass, Desert, Rock, [2]int{4, 2}, [2]int{5, 2}))
	m.AddTexture(NewHexagon(l, Grass, Rock, Snow, [2]int{6, 2}, [2]int{7, 2}))
	m.AddTexture(NewHexagon(l, Grass, Beach, Water3, [2]int{8, 2}, [2]int{9, 2}))

	// River slot pairs. The terrain roles bound here are placeholders;
	// UpdateRiverConfig assigns the real role per slot.
	var pairs [numRiverRoles][2]*GradientTexture
	slots := [numRiverRoles][2][2]int{
		{{0, 3}, {1, 3}},
		{{2, 3}, {3, 3}},
		{{4, 3}, {5, 3}},
	}
	for i, s := range slots {
		pairs[i][0] = NewGradient(l, Grass, River4, false, s[0], s[1])
		pairs[i][1] = NewGradient(l, Grass, River4, true, s[0], s[1])
	}
	m.SetRiverSlots(pairs)
	m.UpdateRiverConfig(RiverConfig{})

	return m
}
