package mesher

import (
	"encoding/json"
	"testing"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/blockmodel"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/voxel"
)

type memSource struct {
	blocks map[voxel.Position]voxel.Block
	bounds voxel.BoundingBox
}

func (m *memSource) Get(pos voxel.Position) (voxel.Block, bool) {
	b, ok := m.blocks[pos]
	return b, ok
}

func (m *memSource) Iterate(yield func(voxel.Position, voxel.Block) bool) {
	for pos, b := range m.blocks {
		if !yield(pos, b) {
			return
		}
	}
}

func (m *memSource) Bounds() voxel.BoundingBox { return m.bounds }

func newMemSource() *memSource {
	return &memSource{blocks: map[voxel.Position]voxel.Block{}}
}

func (m *memSource) set(pos voxel.Position, b voxel.Block) {
	m.blocks[pos] = b
}

func opaqueTexture(size int) *blockmodel.Texture {
	pix := make([]byte, size*size*4)
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 255
	}
	return &blockmodel.Texture{Width: size, Height: size, Pixels: pix}
}

// fullCubePack builds a MemoryPack with a single "minecraft:stone"-like
// full opaque cube block, following the vanilla "cube_all" convention of
// setting cullface equal to each face's own direction.
func fullCubePack(t *testing.T, identifier, modelTexture string) *blockmodel.MemoryPack {
	t.Helper()
	pack := blockmodel.NewMemoryPack()

	var state blockmodel.BlockState
	if err := json.Unmarshal([]byte(`{"variants":{"":{"model":"block/cube_all"}}}`), &state); err != nil {
		t.Fatalf("unmarshal blockstate: %v", err)
	}
	pack.BlockStates[identifier] = &state

	faces := map[string]blockmodel.Face{}
	for _, dir := range [6]string{"down", "up", "north", "south", "west", "east"} {
		faces[dir] = blockmodel.Face{Texture: "#all", CullFace: dir}
	}
	pack.Models["block/cube_all"] = &blockmodel.Model{
		Textures: map[string]string{"all": modelTexture},
		Elements: []blockmodel.Element{{From: [3]float32{0, 0, 0}, To: [3]float32{16, 16, 16}, Faces: faces}},
	}
	pack.Textures[modelTexture] = opaqueTexture(16)
	return pack
}

func TestMeshSingleCubeEmitsSixFaces(t *testing.T) {
	pack := fullCubePack(t, "minecraft:stone", "block/stone")
	src := newMemSource()
	src.set(voxel.Position{}, voxel.Block{Name: "minecraft:stone"})

	out, err := Mesh(src, pack, nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	if len(out.Opaque.Indices) != 36 {
		t.Errorf("expected 36 indices (6 faces * 2 tris * 3), got %d", len(out.Opaque.Indices))
	}
	if len(out.Opaque.Positions) != 24 {
		t.Errorf("expected 24 vertices (6 faces * 4 corners), got %d", len(out.Opaque.Positions))
	}
	if len(out.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", out.Warnings)
	}
}

func TestMeshAdjacentCubesCullSharedFace(t *testing.T) {
	pack := fullCubePack(t, "minecraft:stone", "block/stone")
	src := newMemSource()
	src.set(voxel.Position{X: 0}, voxel.Block{Name: "minecraft:stone"})
	src.set(voxel.Position{X: 1}, voxel.Block{Name: "minecraft:stone"})

	cfg := DefaultConfig()
	cfg.CullOccludedBlocks = false // two blocks in a line are never fully occluded; isolate the face-cull behavior
	out, err := Mesh(src, pack, nil, cfg)
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	// 6 faces each, minus the two touching faces (east of x=0, west of x=1).
	wantFaces := 10
	if got := len(out.Opaque.Positions) / 4; got != wantFaces {
		t.Errorf("expected %d faces after cull, got %d", wantFaces, got)
	}
}

func TestMeshOccludedInteriorBlockContributesNoFaces(t *testing.T) {
	pack := fullCubePack(t, "minecraft:stone", "block/stone")
	src := newMemSource()
	for x := int32(-1); x <= 1; x++ {
		for y := int32(-1); y <= 1; y++ {
			for z := int32(-1); z <= 1; z++ {
				src.set(voxel.Position{X: x, Y: y, Z: z}, voxel.Block{Name: "minecraft:stone"})
			}
		}
	}

	out, err := Mesh(src, pack, nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	// A 3x3x3 solid: every face touching another cube is culled and the
	// occluded center is skipped, leaving the 54 outer-shell faces. The
	// check here only asserts the total is below the naive 27*6 unmerged
	// count.
	naive := 27 * 6
	if got := len(out.Opaque.Positions) / 4; got >= naive {
		t.Errorf("expected fewer than %d faces once interior culling/occlusion applies, got %d", naive, got)
	}
}

func TestMeshUnknownBlockstateFallsBackToMissingCubeWithWarning(t *testing.T) {
	pack := blockmodel.NewMemoryPack()
	src := newMemSource()
	src.set(voxel.Position{}, voxel.Block{Name: "minecraft:nonexistent"})

	out, err := Mesh(src, pack, nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	if len(out.Warnings) != 1 {
		t.Fatalf("expected 1 warning for unresolved block, got %d", len(out.Warnings))
	}
	if len(out.Opaque.Positions) == 0 {
		t.Error("expected the missing-texture fallback cube to still emit geometry")
	}
}

func TestMeshSkipsAirByDefault(t *testing.T) {
	pack := blockmodel.NewMemoryPack()
	src := newMemSource()
	src.set(voxel.Position{}, voxel.Block{Name: "minecraft:air"})

	out, err := Mesh(src, pack, nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	if len(out.Opaque.Positions) != 0 || len(out.Warnings) != 0 {
		t.Errorf("expected air to contribute nothing, got %d vertices, %d warnings", len(out.Opaque.Positions), len(out.Warnings))
	}
}

func TestMeshBoundsCoversEveryEmittedVoxel(t *testing.T) {
	pack := fullCubePack(t, "minecraft:stone", "block/stone")
	src := newMemSource()
	src.set(voxel.Position{X: 2, Y: 3, Z: -1}, voxel.Block{Name: "minecraft:stone"})

	out, err := Mesh(src, pack, nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	want := voxel.BoundingBox{Min: [3]float32{2, 3, -1}, Max: [3]float32{3, 4, 0}}
	if out.Bounds != want {
		t.Errorf("expected bounds %v, got %v", want, out.Bounds)
	}
}

func TestMeshLiquidSourceEmitsTopQuad(t *testing.T) {
	pack := blockmodel.NewMemoryPack()
	pack.Textures["minecraft:block/water_still"] = opaqueTexture(16)
	src := newMemSource()
	src.set(voxel.Position{}, voxel.Block{Name: "minecraft:water", Properties: map[string]string{"level": "0"}})

	out, err := Mesh(src, pack, nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	if len(out.Transparent.Positions) == 0 {
		t.Error("expected the water source's top quad in the transparent layer")
	}
}
