package terrain

import (
	"go.uber.org/zap"

	"github.com/halvden/hexfield/internal/engine/atlas"
	"github.com/halvden/hexfield/pkg/sheet"
)

// River roles. The outer role is the grass bank; inner and middle are
// river-to-river gradients between course widths.
const (
	roleInner = iota
	roleOuter
	roleMiddle
	numRiverRoles
)

// riverPermutations enumerates the six assignments of the three roles to
// the three physical slot pairs.
var riverPermutations = [6][numRiverRoles]int{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

// riverRoleTypes binds each role to its (outer, inner) terrain pair.
var riverRoleTypes = [numRiverRoles][2]Type{
	roleInner:  {River4, River2},
	roleOuter:  {Grass, River4},
	roleMiddle: {River4, River3},
}

// RiverConfig selects how the three physical river slot pairs map onto the
// three semantic roles, plus a mirror flip per role. Persisted by the host
// application as opaque configuration.
type RiverConfig struct {
	Permutation int  `yaml:"permutation"`
	FlipInner   bool `yaml:"flip_inner"`
	FlipOuter   bool `yaml:"flip_outer"`
	FlipMiddle  bool `yaml:"flip_middle"`
}

// TextureMap owns the primitive catalogue and resolves corner patterns to
// atlas coordinates. Built once at load time; the only later mutation is
// river reconfiguration, which relabels lookup entries without repacking.
type TextureMap struct {
	layout    *atlas.Layout
	catalogue []Texture
	lut       map[uint32]Texture

	riverPairs [numRiverRoles][2]*GradientTexture
	riverKeys  []uint32
	riverCfg   RiverConfig

	log *zap.Logger
}

// NewTextureMap creates an empty pattern table with its own shared layout.
func NewTextureMap(log *zap.Logger) *TextureMap {
	if log == nil {
		log = zap.NewNop()
	}
	return &TextureMap{
		layout: atlas.NewLayout(),
		lut:    make(map[uint32]Texture),
		log:    log,
	}
}

// Layout returns the atlas layout shared with all primitives.
func (m *TextureMap) Layout() *atlas.Layout {
	return m.layout
}

// RiverConfig returns the active river slot configuration.
func (m *TextureMap) RiverConfig() RiverConfig {
	return m.riverCfg
}

// AddTexture registers a primitive's patterns. A pattern key that is
// already present is a catalogue authoring error: it is logged and that
// registration dropped, the rest of the catalogue keeps building.
func (m *TextureMap) AddTexture(t Texture) {
	m.catalogue = append(m.catalogue, t)
	for _, p := range t.Patterns() {
		k := p.Key()
		if _, dup := m.lut[k]; dup {
			m.log.Error("duplicate corner pattern registration dropped",
				zap.String("pattern", p.String()))
			continue
		}
		m.lut[k] = t
	}
}

// SetRiverSlots installs the three physical river slot pairs. The pairs
// are packed with the rest of the catalogue; their lookup entries are
// created by UpdateRiverConfig.
func (m *TextureMap) SetRiverSlots(pairs [numRiverRoles][2]*GradientTexture) {
	m.riverPairs = pairs
	for _, pair := range pairs {
		m.catalogue = append(m.catalogue, pair[0], pair[1])
	}
}

// UpdateRiverConfig rebinds the six river lookup entries to the selected
// slot permutation and mirror flips. Pure relabeling: the atlas layout and
// pixel data are untouched, so this is safe to call between frames. The
// caller must rebuild any baked per-tile UV buffers afterwards.
func (m *TextureMap) UpdateRiverConfig(cfg RiverConfig) {
	if m.riverPairs[0][0] == nil {
		m.log.Warn("river slots not installed, config ignored")
		return
	}
	if cfg.Permutation < 0 || cfg.Permutation >= len(riverPermutations) {
		m.log.Error("invalid river permutation, using 0",
			zap.Int("permutation", cfg.Permutation))
		cfg.Permutation = 0
	}

	for _, k := range m.riverKeys {
		delete(m.lut, k)
	}
	m.riverKeys = m.riverKeys[:0]

	perm := riverPermutations[cfg.Permutation]
	flips := [numRiverRoles]bool{cfg.FlipInner, cfg.FlipOuter, cfg.FlipMiddle}

	for role := 0; role < numRiverRoles; role++ {
		slot := perm[role]
		outer, inner := riverRoleTypes[role][0], riverRoleTypes[role][1]
		for side := 0; side < 2; side++ {
			bound := m.riverPairs[slot][side].WithTypes(outer, inner).withFlip(flips[role])
			for _, p := range bound.Patterns() {
				k := p.Key()
				if _, dup := m.lut[k]; dup {
					m.log.Error("river pattern collides with catalogue entry, dropped",
						zap.String("pattern", p.String()))
					continue
				}
				m.lut[k] = bound
				m.riverKeys = append(m.riverKeys, k)
			}
		}
	}

	m.riverCfg = cfg
}

// BuildAtlas packs every claimed source block of the catalogue into a new
// atlas sharing this table's layout. One-time call at load; aliased blocks
// are copied once.
func (m *TextureMap) BuildAtlas(sh *sheet.Sheet) *atlas.Atlas {
	a := atlas.New(m.layout, m.log)
	for _, t := range m.catalogue {
		t.Pack(sh, a)
	}
	m.log.Info("atlas packed",
		zap.Int("primitives", len(m.catalogue)),
		zap.Int("blocks", m.layout.Len()))
	return a
}

// TextureA resolves the atlas offset for the top-left triangle half of
// tile (x, y) whose corners hold t1, t2, t3. Never fails: unresolvable
// patterns return the zero sentinel.
func (m *TextureMap) TextureA(t1, t2, t3 Type, x, y int) atlas.Point {
	tex, p, ok := m.resolve(Pattern{A: t1, B: t2, C: t3})
	if !ok {
		return atlas.Point{}
	}
	return tex.TextureA(p, x, y)
}

// TextureB is TextureA for the bottom-right triangle half.
func (m *TextureMap) TextureB(t1, t2, t3 Type, x, y int) atlas.Point {
	tex, p, ok := m.resolve(Pattern{A: t1, B: t2, C: t3})
	if !ok {
		return atlas.Point{}
	}
	return tex.TextureB(p, x, y)
}

// resolve looks up a pattern with tiered fallback: exact, river
// substitution, then any uniform of the three corner types.
func (m *TextureMap) resolve(p Pattern) (Texture, Pattern, bool) {
	if t, ok := m.lut[p.Key()]; ok {
		return t, p, true
	}

	if q, changed := substituteRiver(p); changed {
		if t, ok := m.lut[q.Key()]; ok {
			return t, q, true
		}
	}

	for _, c := range [3]Type{p.A, p.B, p.C} {
		u := Pattern{A: c, B: c, C: c}
		if t, ok := m.lut[u.Key()]; ok {
			return t, u, true
		}
	}

	return nil, Pattern{}, false
}

// ComputeTileUV resolves both triangle halves of tile (x, y) from the
// terrain-type grid. Corner order: A half reads (x,y), (x+1,y), (x,y+1);
// B half reads (x+1,y+1), (x,y+1), (x+1,y).
func (m *TextureMap) ComputeTileUV(g *TypeGrid, x, y int) (uvA, uvB atlas.Point) {
	t00 := g.At(x, y)
	t10 := g.At(x+1, y)
	t01 := g.At(x, y+1)
	t11 := g.At(x+1, y+1)

	uvA = m.TextureA(t00, t10, t01, x, y)
	uvB = m.TextureB(t11, t01, t10, x, y)
	return uvA, uvB
}
