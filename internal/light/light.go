// Package light is the per-corner ambient-occlusion and baked lighting
// sampler, plus the AO-aware quad triangulation rule it requires.
package light

// CornerNeighbors are the three voxels adjacent to one quad corner in the
// plane of its face: two edge-sharing "side" neighbors and the diagonal
// "corner" neighbor.
type CornerNeighbors struct {
	Side1Opaque, Side2Opaque, CornerOpaque bool
	Side1Light, Side2Light, CornerLight    int // block-light 0..15
	Side1Sky, Side2Sky, CornerSky          int
	SelfFaceLight, SelfFaceSky             int
}

// CornerAO computes the AO level for one quad corner: 0 (darkest) when
// both side neighbors are opaque, else 3 minus the sum of the three
// "opaque" indicators.
func CornerAO(n CornerNeighbors) int {
	if n.Side1Opaque && n.Side2Opaque {
		return 0
	}
	side1, side2, corner := 0, 0, 0
	if n.Side1Opaque {
		side1 = 1
	}
	if n.Side2Opaque {
		side2 = 1
	}
	if n.CornerOpaque {
		corner = 1
	}
	return 3 - (side1 + side2 + corner)
}

// AOMultiplier converts an AO level to its brightness multiplier.
func AOMultiplier(ao int, aoIntensity float32) float32 {
	return 1.0 - aoIntensity*float32(3-ao)/3.0
}

// Config holds the caller-configured lighting toggles.
type Config struct {
	AOIntensity       float32
	BlockLightEnabled bool
	SkyLightEnabled   bool
	SkyLightLevel     int // constant open-sky fallback, 0..15
}

func clamp15(v int) int {
	if v < 0 {
		return 0
	}
	if v > 15 {
		return 15
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// CornerLight combines the block-light and sky-light channels for one
// corner. hasOpaqueAbove reports whether any block above this column, at this
// corner, is opaque — used for the sky_light_level constant fallback.
func CornerLight(n CornerNeighbors, cfg Config, hasOpaqueAbove bool) int {
	var block, sky int
	if cfg.BlockLightEnabled {
		block = clamp15(max(max(n.Side1Light, n.Side2Light), max(n.CornerLight, n.SelfFaceLight)))
	}
	if cfg.SkyLightEnabled {
		if hasOpaqueAbove {
			sky = clamp15(max(max(n.Side1Sky, n.Side2Sky), max(n.CornerSky, n.SelfFaceSky)))
		} else {
			sky = clamp15(cfg.SkyLightLevel)
		}
	}
	return max(block, sky)
}

// LightMultiplier maps a combined 0..15 light level to a 0..1 multiplier.
func LightMultiplier(level int) float32 {
	return float32(level) / 15.0
}

// VertexIntensity is the final per-corner brightness: faceShade * ao *
// light. faceShade is computed by geometry.faceShadeFactor and passed in
// to avoid a cull/geometry/light import cycle.
func VertexIntensity(faceShade float32, ao int, lightLevel int, cfg Config) float32 {
	return faceShade * AOMultiplier(ao, cfg.AOIntensity) * LightMultiplier(lightLevel)
}

// TriangulateAODiagonal picks the quad's triangulation diagonal to avoid
// anisotropic shading artifacts: split along whichever diagonal's
// endpoints have the larger AO sum, keeping the 0-2 diagonal on a tie.
// Returns the two triangles as index triples into the quad's four
// corners (0,1,2,3 in the usual P00,P10,P11,P01 order).
func TriangulateAODiagonal(ao [4]int) (tri1, tri2 [3]int) {
	if ao[1]+ao[3] > ao[0]+ao[2] {
		return [3]int{1, 0, 3}, [3]int{1, 3, 2}
	}
	return [3]int{0, 2, 1}, [3]int{0, 3, 2}
}
