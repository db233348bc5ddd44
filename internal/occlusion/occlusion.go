// Package occlusion is the occlusion-culling pre-pass: a voxel fully
// surrounded by six opaque full-cube neighbors can never contribute a
// visible face and is skipped entirely before geometry emission or face
// culling ever run on it.
package occlusion

import "github.com/Schem-at/Schematic-Mesher-sub001/internal/voxel"

// neighborOffsets enumerates the six boundary directions (up/down/
// north/south/west/east) checked against every voxel, not just elements
// touching their block's boundary.
var neighborOffsets = [6]voxel.Position{
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: 0, Y: 0, Z: -1},
	{X: 0, Y: 0, Z: 1},
	{X: -1, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
}

// OpaqueTest reports whether the block at pos is a full opaque cube that
// fully occludes the face touching it. Callers supply this from the
// already-flattened model data; occlusion itself has no notion of
// models.
type OpaqueTest func(pos voxel.Position) bool

// Config controls whether the pre-pass runs at all.
type Config struct {
	Enabled bool // cull_occluded_blocks, default true
}

// IsOccluded reports whether pos is surrounded on all six sides by an
// opaque full cube, and can therefore be skipped by the mesher without
// running geometry emission or face culling on it at all.
func IsOccluded(pos voxel.Position, opaque OpaqueTest, cfg Config) bool {
	if !cfg.Enabled {
		return false
	}
	for _, off := range neighborOffsets {
		neighbor := pos.Add(off.X, off.Y, off.Z)
		if !opaque(neighbor) {
			return false
		}
	}
	return true
}

// Scan runs the pre-pass over every block src iterates, returning the
// set of positions that can be skipped. O(N) in the number of blocks,
// each with a constant six neighbor lookups.
func Scan(src voxel.Source, opaque OpaqueTest, cfg Config) map[voxel.Position]bool {
	occluded := map[voxel.Position]bool{}
	if !cfg.Enabled {
		return occluded
	}
	src.Iterate(func(pos voxel.Position, _ voxel.Block) bool {
		if IsOccluded(pos, opaque, cfg) {
			occluded[pos] = true
		}
		return true
	})
	return occluded
}
