package occlusion

import (
	"testing"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/voxel"
)

type memSource struct {
	blocks map[voxel.Position]voxel.Block
}

func (m memSource) Get(pos voxel.Position) (voxel.Block, bool) {
	b, ok := m.blocks[pos]
	return b, ok
}

func (m memSource) Iterate(yield func(voxel.Position, voxel.Block) bool) {
	for pos, b := range m.blocks {
		if !yield(pos, b) {
			return
		}
	}
}

func (m memSource) Bounds() voxel.BoundingBox { return voxel.BoundingBox{} }

func allOpaqueExcept(holes ...voxel.Position) OpaqueTest {
	holeSet := map[voxel.Position]bool{}
	for _, h := range holes {
		holeSet[h] = true
	}
	return func(pos voxel.Position) bool {
		return !holeSet[pos]
	}
}

func TestIsOccludedTrueWhenAllSixNeighborsOpaque(t *testing.T) {
	pos := voxel.Position{X: 0, Y: 0, Z: 0}
	if !IsOccluded(pos, allOpaqueExcept(), Config{Enabled: true}) {
		t.Error("expected fully surrounded voxel to be occluded")
	}
}

func TestIsOccludedFalseWhenOneNeighborIsNotOpaque(t *testing.T) {
	pos := voxel.Position{X: 0, Y: 0, Z: 0}
	hole := voxel.Position{X: 0, Y: 1, Z: 0}
	if IsOccluded(pos, allOpaqueExcept(hole), Config{Enabled: true}) {
		t.Error("expected voxel with one non-opaque neighbor to not be occluded")
	}
}

func TestIsOccludedFalseWhenDisabled(t *testing.T) {
	pos := voxel.Position{X: 0, Y: 0, Z: 0}
	if IsOccluded(pos, allOpaqueExcept(), Config{Enabled: false}) {
		t.Error("expected occlusion pre-pass to be a no-op when disabled")
	}
}

func TestScanFindsOnlyFullySurroundedBlocks(t *testing.T) {
	// A 3x1x1 strip: only the middle block can possibly be surrounded,
	// and even it isn't (no blocks above/below/sideways off the strip).
	src := memSource{blocks: map[voxel.Position]voxel.Block{
		{X: 0, Y: 0, Z: 0}: {Name: "minecraft:stone"},
		{X: 1, Y: 0, Z: 0}: {Name: "minecraft:stone"},
		{X: 2, Y: 0, Z: 0}: {Name: "minecraft:stone"},
	}}
	opaque := func(pos voxel.Position) bool {
		_, ok := src.blocks[pos]
		return ok
	}
	occluded := Scan(src, opaque, Config{Enabled: true})
	if len(occluded) != 0 {
		t.Errorf("expected no occluded blocks in a thin strip, got %d", len(occluded))
	}
}

func TestScanFindsInteriorBlockOfSolidCube(t *testing.T) {
	blocks := map[voxel.Position]voxel.Block{}
	for x := int32(0); x <= 2; x++ {
		for y := int32(0); y <= 2; y++ {
			for z := int32(0); z <= 2; z++ {
				blocks[voxel.Position{X: x, Y: y, Z: z}] = voxel.Block{Name: "minecraft:stone"}
			}
		}
	}
	src := memSource{blocks: blocks}
	opaque := func(pos voxel.Position) bool {
		_, ok := src.blocks[pos]
		return ok
	}
	occluded := Scan(src, opaque, Config{Enabled: true})
	if !occluded[voxel.Position{X: 1, Y: 1, Z: 1}] {
		t.Error("expected the center block of a solid 3x3x3 cube to be occluded")
	}
	if len(occluded) != 1 {
		t.Errorf("expected exactly one occluded block, got %d", len(occluded))
	}
}
