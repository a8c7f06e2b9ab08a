package terrain

import (
	"image"
	"image/color"
	"testing"

	"github.com/halvden/hexfield/internal/engine/atlas"
	"github.com/halvden/hexfield/pkg/sheet"
)

// testSheet builds a coordinate-encoded sheet covering the full default
// catalogue layout.
func testSheet() *sheet.Sheet {
	img := image.NewRGBA(image.Rect(0, 0, 1024, 512))
	for y := 0; y < 512; y++ {
		for x := 0; x < 1024; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x >> 8), A: 255})
		}
	}
	return sheet.FromImage(img)
}

func TestTextureMap_EmptyLookupReturnsSentinel(t *testing.T) {
	m := NewTextureMap(nil)

	// Must not panic before any catalogue construction.
	if got := m.TextureA(Grass, Grass, Grass, 0, 0); got != (atlas.Point{}) {
		t.Errorf("expected sentinel, got %+v", got)
	}
	if got := m.TextureB(Grass, Grass, Grass, 0, 0); got != (atlas.Point{}) {
		t.Errorf("expected sentinel, got %+v", got)
	}
}

func TestTextureMap_DuplicateRegistrationDropped(t *testing.T) {
	m := NewTextureMap(nil)
	l := m.Layout()

	m.AddTexture(NewUniform(l, Grass, 0, 0))
	m.AddTexture(NewUniform(l, Grass, 1, 0)) // same pattern, dropped

	l.Set(0, 0, 100, 0)
	l.Set(atlas.SmallBlock, 0, 200, 0)

	if got := m.TextureA(Grass, Grass, Grass, 0, 0); got != (atlas.Point{X: 100}) {
		t.Errorf("lookup must keep the first registration, got %+v", got)
	}
}

func TestTextureMap_FallbackTiering(t *testing.T) {
	m := BuildDefault(nil)
	m.BuildAtlas(testSheet())

	// {Grass, Grass, River1} has no exact entry; river substitution must
	// land on the same primitive as {Grass, Grass, River4} before any
	// uniform fallback.
	sub := m.TextureA(Grass, Grass, River1, 2, 3)
	exact := m.TextureA(Grass, Grass, River4, 2, 3)
	if sub != exact {
		t.Errorf("river substitution mismatch: %+v vs %+v", sub, exact)
	}

	uniform := m.TextureA(Grass, Grass, Grass, 2, 3)
	if sub == uniform {
		t.Error("river substitution must win over the uniform fallback")
	}
}

func TestTextureMap_UniformFallback(t *testing.T) {
	m := BuildDefault(nil)
	m.BuildAtlas(testSheet())

	// Desert/Snow/Water0 never meet in the catalogue; the first corner
	// with a uniform primitive wins.
	got := m.TextureA(Desert, Snow, Water0, 0, 0)
	want := m.TextureA(Desert, Desert, Desert, 0, 0)
	if got != want {
		t.Errorf("expected uniform fallback to Desert: %+v vs %+v", got, want)
	}
}

func TestTextureMap_AliasedBlocksPackOnce(t *testing.T) {
	m := BuildDefault(nil)
	a := m.BuildAtlas(testSheet())

	// Mud aliases Swamp's source block: one packed copy, same slot.
	swamp := m.TextureA(Swamp, Swamp, Swamp, 0, 0)
	mud := m.TextureA(Mud, Mud, Mud, 0, 0)
	if swamp != mud {
		t.Errorf("aliased uniforms must share a slot: %+v vs %+v", swamp, mud)
	}

	// Re-packing is a no-op for every claimed block.
	before := a.Layout().Len()
	m.BuildAtlas(testSheet())
	if got := m.Layout().Len(); got != before {
		t.Errorf("second pack added entries: %d -> %d", before, got)
	}
}

func TestTextureMap_RiverRelabelIdempotent(t *testing.T) {
	m := BuildDefault(nil)
	m.BuildAtlas(testSheet())
	entries := m.Layout().Len()

	cfg := RiverConfig{Permutation: 0}
	m.UpdateRiverConfig(cfg)
	first := m.TextureA(Grass, Grass, River4, 7, 7)
	firstB := m.TextureB(River4, Grass, Grass, 7, 7)

	m.UpdateRiverConfig(cfg)
	second := m.TextureA(Grass, Grass, River4, 7, 7)
	secondB := m.TextureB(River4, Grass, Grass, 7, 7)

	if first != second || firstB != secondB {
		t.Errorf("same config must produce identical UVs: %+v/%+v vs %+v/%+v",
			first, firstB, second, secondB)
	}
	if m.Layout().Len() != entries {
		t.Errorf("relabeling must not add atlas entries: %d -> %d", entries, m.Layout().Len())
	}
}

func TestTextureMap_RiverPermutationMovesSlots(t *testing.T) {
	m := BuildDefault(nil)
	m.BuildAtlas(testSheet())

	m.UpdateRiverConfig(RiverConfig{Permutation: 0})
	perm0 := m.TextureA(Grass, Grass, River4, 0, 0)

	// Permutation 2 assigns the outer role to a different physical slot.
	m.UpdateRiverConfig(RiverConfig{Permutation: 2})
	perm2 := m.TextureA(Grass, Grass, River4, 0, 0)

	if perm0 == perm2 {
		t.Error("changing the permutation must move the outer role's slot")
	}
	if m.RiverConfig().Permutation != 2 {
		t.Errorf("config not recorded: %+v", m.RiverConfig())
	}
}

func TestTextureMap_RiverFlipMirrors(t *testing.T) {
	m := BuildDefault(nil)
	m.BuildAtlas(testSheet())

	m.UpdateRiverConfig(RiverConfig{Permutation: 0})
	plain := m.TextureA(River4, Grass, Grass, 0, 0)

	m.UpdateRiverConfig(RiverConfig{Permutation: 0, FlipOuter: true})
	flipped := m.TextureA(River4, Grass, Grass, 0, 0)

	if flipped.X != plain.X+TriangleShift || flipped.Y != plain.Y {
		t.Errorf("outer flip must mirror the x sub-offset: %+v vs %+v", plain, flipped)
	}
}

func TestTextureMap_InvalidPermutationFallsBack(t *testing.T) {
	m := BuildDefault(nil)
	m.BuildAtlas(testSheet())

	m.UpdateRiverConfig(RiverConfig{Permutation: 0})
	want := m.TextureA(Grass, Grass, River4, 0, 0)

	m.UpdateRiverConfig(RiverConfig{Permutation: 99})
	if got := m.TextureA(Grass, Grass, River4, 0, 0); got != want {
		t.Errorf("invalid permutation must behave like 0: %+v vs %+v", got, want)
	}
	if m.RiverConfig().Permutation != 0 {
		t.Errorf("expected clamped permutation 0, got %d", m.RiverConfig().Permutation)
	}
}

func TestTextureMap_ComputeTileUV(t *testing.T) {
	m := BuildDefault(nil)
	m.BuildAtlas(testSheet())

	g := NewTypeGrid(4, 4)
	g.Set(1, 1, Desert)

	// Tile (0,0): A half all grass, B half sees Desert at (1,1).
	uvA, uvB := m.ComputeTileUV(g, 0, 0)
	grassA := m.TextureA(Grass, Grass, Grass, 0, 0)
	if uvA != grassA {
		t.Errorf("A half should be uniform grass: %+v vs %+v", uvA, grassA)
	}
	wantB := m.TextureB(Desert, Grass, Grass, 0, 0)
	if uvB != wantB {
		t.Errorf("B half should read the desert transition: %+v vs %+v", uvB, wantB)
	}

	// Tile far from the desert stays uniform.
	_, uvB2 := m.ComputeTileUV(g, 2, 2)
	grassB := m.TextureB(Grass, Grass, Grass, 2, 2)
	if uvB2 != grassB {
		t.Errorf("unexpected B half away from transition: %+v", uvB2)
	}
}
