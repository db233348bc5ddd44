// Package liquid builds liquid-surface geometry: per-corner flow-derived
// heights, trapezoidal side faces, and flow-direction-rotated top UVs for
// water/lava and waterlogged blocks.
package liquid

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/geometry"
)

// ColumnSample is one of the (up to) four diagonal voxels examined for a
// given top corner: the corner voxel itself and its three neighbors
// sharing that corner in the horizontal plane.
type ColumnSample struct {
	Present  bool
	IsSource bool // level == 0
	Level    int  // 1..7 flowing, 8..15 falling
}

// CornerHeight averages the levels of the (up to) four columns sharing a
// top corner into a height fraction. hasSameAbove reports whether the
// column directly above this corner (same x,z) holds the same liquid,
// which clamps the corner to full height.
func CornerHeight(samples [4]ColumnSample, hasSameAbove bool) (height float32, emitted bool) {
	anyPresent := false
	for _, s := range samples {
		if s.Present {
			anyPresent = true
			if s.IsSource {
				height = 14.0 / 16.0
				if hasSameAbove {
					height = 1.0
				}
				return height, true
			}
		}
	}
	if !anyPresent {
		return 0, false
	}

	sum, count := 0, 0
	for _, s := range samples {
		if s.Present {
			sum += s.Level
			count++
		}
	}
	avg := float32(sum) / float32(count)
	height = 1.0 - (avg+1)/9.0

	if hasSameAbove {
		height = 1.0
	}
	return height, true
}

// FlowDirection computes the horizontal flow angle (radians) as the atan2
// of the gradients between the four corner heights. Corners are ordered
// NW, SW, SE, NE. Returns 0 for still water (uniform heights).
func FlowDirection(nw, sw, se, ne float32) float32 {
	dx := (ne + se) - (nw + sw) // gradient along x
	dz := (sw + se) - (nw + ne) // gradient along z
	if dx == 0 && dz == 0 {
		return 0
	}
	return float32(math.Atan2(float64(dz), float64(dx)))
}

// TopQuad builds the top-face quad for one liquid voxel from its four
// corner heights (NW, SW, SE, NE), at local origin (x,y,z) in voxel
// units, rotated by flowDir.
func TopQuad(x, y, z float32, nw, sw, se, ne, flowDir float32, textureID string, transparent bool) geometry.Quad {
	positions := [4]mgl32.Vec3{
		{x, y + nw, z},         // NW
		{x, y + sw, z + 1},     // SW
		{x + 1, y + se, z + 1}, // SE
		{x + 1, y + ne, z},     // NE
	}
	uvs := rotatedUnitUV(flowDir)
	layer := geometry.LayerTransparent
	if !transparent {
		layer = geometry.LayerOpaque
	}
	return geometry.Quad{
		Positions:   positions,
		Normal:      mgl32.Vec3{0, 1, 0},
		UVs:         uvs,
		Colors:      [4][4]float32{{1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}},
		Layer:       layer,
		MaterialKey: textureID,
		Direction:   "up",
	}
}

func rotatedUnitUV(flowDir float32) [4][2]float32 {
	base := [4][2]float32{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	// Snap to the nearest 90-degree step, matching the discrete rotation
	// the glossary's liquid UVs are expected to render with (still water
	// at rotation 0).
	deg := mgl32.RadToDeg(flowDir)
	steps := int(math.Round(float64(deg)/90)) % 4
	if steps < 0 {
		steps += 4
	}
	for ; steps > 0; steps-- {
		base = [4][2]float32{base[3], base[0], base[1], base[2]}
	}
	return base
}

// SideQuad builds a trapezoidal side quad between two adjacent corners at
// heights h1/h2 along one edge of the voxel. p1/p2 are the two top-edge
// endpoints in world-local space; the bottom
// edge sits at y=0 (local voxel floor).
func SideQuad(p1, p2 mgl32.Vec3, h1, h2 float32, normal mgl32.Vec3, textureID string, transparent bool) geometry.Quad {
	top1 := mgl32.Vec3{p1.X(), h1, p1.Z()}
	top2 := mgl32.Vec3{p2.X(), h2, p2.Z()}
	bottom1 := mgl32.Vec3{p1.X(), 0, p1.Z()}
	bottom2 := mgl32.Vec3{p2.X(), 0, p2.Z()}
	layer := geometry.LayerTransparent
	if !transparent {
		layer = geometry.LayerOpaque
	}
	return geometry.Quad{
		Positions:   [4]mgl32.Vec3{top1, top2, bottom2, bottom1},
		Normal:      normal,
		UVs:         [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Colors:      [4][4]float32{{1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}},
		Layer:       layer,
		MaterialKey: textureID,
	}
}

// ShouldEmitSide reports whether a side face is needed between two
// columns: emit whenever their heights differ or the neighbor is
// non-liquid.
func ShouldEmitSide(selfHeight, neighborHeight float32, neighborIsLiquid bool) bool {
	if !neighborIsLiquid {
		return true
	}
	return selfHeight != neighborHeight
}
