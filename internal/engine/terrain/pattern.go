package terrain

import "fmt"

// Pattern is the ordered triple of terrain types meeting at one triangular
// tile half. Corner A is the triangle's first grid sample, B and C follow
// in winding order.
type Pattern struct {
	A Type
	B Type
	C Type
}

// Key packs the three terrain bytes into one lookup integer. Distinct
// triples always produce distinct keys, so the pattern table needs no
// structural comparison in the per-tile hot path.
func (p Pattern) Key() uint32 {
	return uint32(p.A) | uint32(p.B)<<8 | uint32(p.C)<<16
}

// Rotate returns the next cyclic rotation (B, C, A).
func (p Pattern) Rotate() Pattern {
	return Pattern{A: p.B, B: p.C, C: p.A}
}

// Contains reports whether any corner holds t.
func (p Pattern) Contains(t Type) bool {
	return p.A == t || p.B == t || p.C == t
}

func (p Pattern) String() string {
	return fmt.Sprintf("%s/%s/%s", p.A, p.B, p.C)
}

// substituteRiver rewrites the lower river stages to the canonical River4
// when the pattern mixes a river stage with grass. The sheet catalogue
// only defines grass banks against River4; map authors place grass against
// the narrower stages anyway.
func substituteRiver(p Pattern) (Pattern, bool) {
	if !p.Contains(Grass) {
		return p, false
	}
	hasRiver := p.A.IsRiver() || p.B.IsRiver() || p.C.IsRiver()
	if !hasRiver {
		return p, false
	}

	widen := func(t Type) Type {
		if t >= River1 && t < River4 {
			return River4
		}
		return t
	}
	q := Pattern{A: widen(p.A), B: widen(p.B), C: widen(p.C)}
	return q, q != p
}
