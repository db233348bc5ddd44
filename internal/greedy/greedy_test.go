package greedy

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/geometry"
)

// unitUpQuad returns a +Y face unit quad at integer grid cell (x,z),
// matching emitFace's own +Y corner winding and default UV square.
func unitUpQuad(x, z int32, material string, ao [4]int, light [4]int, layer geometry.Layer) geometry.Quad {
	fx, fz := float32(x), float32(z)
	return geometry.Quad{
		Positions: [4]mgl32.Vec3{
			{fx, 1, fz},
			{fx + 1, 1, fz},
			{fx + 1, 1, fz + 1},
			{fx, 1, fz + 1},
		},
		Normal:      mgl32.Vec3{0, 1, 0},
		UVs:         [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		AO:          ao,
		Light:       light,
		Layer:       layer,
		MaterialKey: material,
	}
}

func TestMergeDisabledReturnsInputUnchanged(t *testing.T) {
	quads := []geometry.Quad{unitUpQuad(0, 0, "stone", [4]int{3, 3, 3, 3}, [4]int{15, 15, 15, 15}, geometry.LayerOpaque)}
	rest, materials := Merge(quads, Config{Enabled: false})
	if len(rest) != 1 || len(materials) != 0 {
		t.Fatalf("expected pass-through when disabled, got rest=%d materials=%d", len(rest), len(materials))
	}
}

func TestMergeCollapsesUniformPlaneIntoOneQuad(t *testing.T) {
	var quads []geometry.Quad
	for x := int32(0); x < 4; x++ {
		for z := int32(0); z < 4; z++ {
			quads = append(quads, unitUpQuad(x, z, "block/stone", [4]int{3, 3, 3, 3}, [4]int{15, 15, 15, 15}, geometry.LayerOpaque))
		}
	}
	rest, materials := Merge(quads, Config{Enabled: true})
	if len(rest) != 0 {
		t.Errorf("expected no passthrough quads, got %d", len(rest))
	}
	if len(materials) != 1 {
		t.Fatalf("expected one greedy material, got %d", len(materials))
	}
	if len(materials[0].Opaque) != 1 {
		t.Fatalf("expected a uniform 4x4 slab to collapse to one quad, got %d", len(materials[0].Opaque))
	}
	merged := materials[0].Opaque[0]
	if merged.UVs[2][0] != 4 || merged.UVs[2][1] != 4 {
		t.Errorf("expected tiling UV [4,4] at the far corner, got %+v", merged.UVs[2])
	}
}

func TestMergeDoesNotCrossMaterialBoundary(t *testing.T) {
	quads := []geometry.Quad{
		unitUpQuad(0, 0, "block/stone", [4]int{3, 3, 3, 3}, [4]int{15, 15, 15, 15}, geometry.LayerOpaque),
		unitUpQuad(1, 0, "block/dirt", [4]int{3, 3, 3, 3}, [4]int{15, 15, 15, 15}, geometry.LayerOpaque),
	}
	_, materials := Merge(quads, Config{Enabled: true})
	if len(materials) != 2 {
		t.Fatalf("expected two separate materials, got %d", len(materials))
	}
}

func TestMergeDoesNotCrossAOBoundary(t *testing.T) {
	quads := []geometry.Quad{
		unitUpQuad(0, 0, "block/stone", [4]int{3, 3, 3, 3}, [4]int{15, 15, 15, 15}, geometry.LayerOpaque),
		unitUpQuad(1, 0, "block/stone", [4]int{2, 3, 3, 3}, [4]int{15, 15, 15, 15}, geometry.LayerOpaque),
	}
	_, materials := Merge(quads, Config{Enabled: true})
	if len(materials) != 1 {
		t.Fatalf("expected one material (same texture), got %d", len(materials))
	}
	if len(materials[0].Opaque) != 2 {
		t.Errorf("expected differing AO to block the merge, got %d quads", len(materials[0].Opaque))
	}
}

func TestMergeSkipsNonUnitUVQuads(t *testing.T) {
	q := unitUpQuad(0, 0, "block/stone", [4]int{3, 3, 3, 3}, [4]int{15, 15, 15, 15}, geometry.LayerOpaque)
	q.UVs = [4][2]float32{{0, 0}, {0.5, 0}, {0.5, 0.5}, {0, 0.5}}
	rest, materials := Merge([]geometry.Quad{q}, Config{Enabled: true})
	if len(rest) != 1 || len(materials) != 0 {
		t.Errorf("expected a non-default-UV quad to pass through ungrouped, got rest=%d materials=%d", len(rest), len(materials))
	}
}

func TestMergeSkipsNonAxisAlignedQuads(t *testing.T) {
	q := unitUpQuad(0, 0, "block/stone", [4]int{3, 3, 3, 3}, [4]int{15, 15, 15, 15}, geometry.LayerOpaque)
	q.Normal = mgl32.Vec3{0.7, 0.7, 0}
	rest, materials := Merge([]geometry.Quad{q}, Config{Enabled: true})
	if len(rest) != 1 || len(materials) != 0 {
		t.Errorf("expected a sloped-normal quad to pass through ungrouped, got rest=%d materials=%d", len(rest), len(materials))
	}
}

func TestMergeSeparatesTransparentIntoItsOwnSublayer(t *testing.T) {
	quads := []geometry.Quad{
		unitUpQuad(0, 0, "block/glass", [4]int{3, 3, 3, 3}, [4]int{15, 15, 15, 15}, geometry.LayerTransparent),
		unitUpQuad(1, 0, "block/glass", [4]int{3, 3, 3, 3}, [4]int{15, 15, 15, 15}, geometry.LayerTransparent),
	}
	_, materials := Merge(quads, Config{Enabled: true})
	if len(materials) != 1 {
		t.Fatalf("expected one material, got %d", len(materials))
	}
	if len(materials[0].Opaque) != 0 || len(materials[0].Transparent) != 1 {
		t.Errorf("expected the merge to land in Transparent, got opaque=%d transparent=%d",
			len(materials[0].Opaque), len(materials[0].Transparent))
	}
}
