// Package cull is the face-culling oracle: it decides whether a declared
// face is hidden by its neighbor, so the mesher can skip emitting (or
// discard) that quad.
package cull

import "github.com/Schem-at/Schematic-Mesher-sub001/internal/blockmodel"

// NeighborInfo is what the oracle needs to know about the voxel on the
// other side of a face — resolved by the caller before calling CanCull,
// since computing it requires the full resolve+flatten pipeline.
type NeighborInfo struct {
	Exists           bool
	Identifier       string
	Flattened        *blockmodel.FlattenedModel
	IsLiquidSource   bool
	LiquidCoversFull bool
}

// IsOpaqueFullCube reports whether a flattened model is a single
// 0,0,0→16,16,16 element with all six faces present and none of them
// carrying a transparent texture. Exported so the occlusion pre-pass can
// reuse the same opacity test CanCull uses, rather than re-deriving it.
func IsOpaqueFullCube(m *blockmodel.FlattenedModel, opaqueTexture func(path string) bool) bool {
	if m == nil || len(m.Elements) != 1 {
		return false
	}
	e := m.Elements[0]
	if e.From != [3]float32{0, 0, 0} || e.To != [3]float32{16, 16, 16} {
		return false
	}
	for _, dir := range [6]string{"down", "up", "north", "south", "west", "east"} {
		face, ok := e.Faces[dir]
		if !ok {
			return false
		}
		if opaqueTexture != nil && !opaqueTexture(face.Texture) {
			return false
		}
	}
	return true
}

// CanCull decides whether a face can be skipped. cullFace is the
// declaring face's cullface attribute ("" means the face declared none,
// and the face can never be culled). selfTransparent reports whether the
// face being tested is itself classified transparent, scoping the
// same-identifier rule below to transparent/transparent pairs only (a
// cutout block like leaves sitting next to an identical cutout block must
// not have its interior faces culled, since the holes in its texture
// would then show through to nothing). opaqueTexture reports whether a
// resolved texture path is fully opaque (no transparent pixels), needed
// to evaluate "opaque-full-cube" on the neighbor.
func CanCull(cullFace string, cullingEnabled bool, selfIdentifier string, selfTransparent bool, neighbor NeighborInfo, opaqueTexture func(path string) bool) bool {
	if !cullingEnabled {
		return false
	}
	if cullFace == "" {
		return false
	}
	if !neighbor.Exists {
		return false
	}
	if IsOpaqueFullCube(neighbor.Flattened, opaqueTexture) {
		return true
	}
	if neighbor.IsLiquidSource && neighbor.LiquidCoversFull {
		return true
	}
	if selfTransparent && selfIdentifier != "" && selfIdentifier == neighbor.Identifier {
		// Two adjacent transparent blocks of the same identifier cull
		// their shared face (prevents doubled-up interior glass/water
		// surfaces).
		return true
	}
	return false
}
