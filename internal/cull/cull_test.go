package cull

import (
	"testing"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/blockmodel"
)

func opaqueCube() *blockmodel.FlattenedModel {
	faces := map[string]blockmodel.Face{}
	for _, dir := range []string{"down", "up", "north", "south", "west", "east"} {
		faces[dir] = blockmodel.Face{Texture: "block/stone"}
	}
	return &blockmodel.FlattenedModel{
		Elements: []blockmodel.Element{{From: [3]float32{0, 0, 0}, To: [3]float32{16, 16, 16}, Faces: faces}},
	}
}

func allOpaque(string) bool { return true }

func TestCanCullNoFaceDeclaration(t *testing.T) {
	if CanCull("", true, "minecraft:stone", false, NeighborInfo{Exists: true, Flattened: opaqueCube()}, allOpaque) {
		t.Error("expected no cullface to never cull")
	}
}

func TestCanCullAgainstOpaqueFullCube(t *testing.T) {
	if !CanCull("north", true, "minecraft:stone", false, NeighborInfo{Exists: true, Flattened: opaqueCube()}, allOpaque) {
		t.Error("expected culling against an opaque full cube neighbor")
	}
}

func TestCanCullAgainstMissingNeighbor(t *testing.T) {
	if CanCull("north", true, "minecraft:stone", false, NeighborInfo{Exists: false}, allOpaque) {
		t.Error("expected no culling when neighbor does not exist")
	}
}

func TestCanCullDisabledByConfig(t *testing.T) {
	if CanCull("north", false, "minecraft:stone", false, NeighborInfo{Exists: true, Flattened: opaqueCube()}, allOpaque) {
		t.Error("expected culling disabled by config to always return false")
	}
}

func TestCanCullSameIdentifierTransparentPair(t *testing.T) {
	partial := &blockmodel.FlattenedModel{
		Elements: []blockmodel.Element{{To: [3]float32{16, 16, 16}, Faces: map[string]blockmodel.Face{"north": {Texture: "block/glass"}}}},
	}
	if !CanCull("north", true, "minecraft:glass", true, NeighborInfo{Exists: true, Identifier: "minecraft:glass", Flattened: partial}, allOpaque) {
		t.Error("expected same-identifier transparent neighbors to cull their shared face")
	}
}

func TestCanCullSameIdentifierCutoutPairNotCulled(t *testing.T) {
	partial := &blockmodel.FlattenedModel{
		Elements: []blockmodel.Element{{To: [3]float32{16, 16, 16}, Faces: map[string]blockmodel.Face{"north": {Texture: "block/leaves"}}}},
	}
	if CanCull("north", true, "minecraft:oak_leaves", false, NeighborInfo{Exists: true, Identifier: "minecraft:oak_leaves", Flattened: partial}, allOpaque) {
		t.Error("expected same-identifier cutout neighbors not to cull: the rule is scoped to transparent pairs only")
	}
}

func TestCanCullLiquidSourceFullHeight(t *testing.T) {
	if !CanCull("up", true, "minecraft:dirt", false, NeighborInfo{Exists: true, IsLiquidSource: true, LiquidCoversFull: true}, allOpaque) {
		t.Error("expected full-height liquid source neighbor to cull")
	}
}
