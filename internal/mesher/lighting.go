package mesher

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/geometry"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/light"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/voxel"
)

// snapAxis rounds a direction vector's components to their sign (-1, 0,
// +1), tolerant of the sub-unit magnitudes a partial (non-full-cube)
// element's in-plane edges carry. AO/light sampling works at voxel
// granularity regardless of how large the emitting element is, the same
// way Minecraft itself only ever samples whole-block neighbors.
func snapAxis(v mgl32.Vec3) [3]int32 {
	var out [3]int32
	for i := 0; i < 3; i++ {
		switch {
		case v[i] > 0.25:
			out[i] = 1
		case v[i] < -0.25:
			out[i] = -1
		}
	}
	return out
}

// cornerOffsets returns, for each of a quad's four corners (in the
// P00,P10,P11,P01 order faceCorners/autoUV produce), the in-plane (u, v)
// unit step pointing away from the quad's center toward that corner.
// Derived from the quad's own final world-space geometry rather than a
// pre-pose direction table, so it stays correct under element and pose
// rotation.
func cornerOffsets(q geometry.Quad) [4][2][3]int32 {
	uAxis := snapAxis(q.Positions[1].Sub(q.Positions[0]))
	vAxis := snapAxis(q.Positions[3].Sub(q.Positions[0]))
	uSigns := [4]int32{-1, 1, 1, -1}
	vSigns := [4]int32{-1, -1, 1, 1}
	var out [4][2][3]int32
	for i := 0; i < 4; i++ {
		for a := 0; a < 3; a++ {
			out[i][0][a] = uAxis[a] * uSigns[i]
			out[i][1][a] = vAxis[a] * vSigns[i]
		}
	}
	return out
}

func offsetPosition(p voxel.Position, off [3]int32) voxel.Position {
	return p.Add(off[0], off[1], off[2])
}

func addOffsets(a, b [3]int32) [3]int32 {
	return [3]int32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// lightingSampler bundles the collaborators apply needs to probe
// the neighborhood: an opacity test for AO and, when baked light is
// enabled, an opaque-above test for the sky-light constant fallback.
// The opaque-above test looks only at the one block directly above each
// corner neighbor, not at the rest of the column.
type lightingSampler struct {
	opaqueAt func(voxel.Position) bool
	cfg      light.Config
	ao       bool
	baked    bool
}

// apply fills a quad's per-corner AO and Light fields and folds
// their brightness into its vertex colors. emit.go already bakes the
// directional face_shade factor into Colors, so VertexIntensity is
// called with faceShade=1 here to avoid applying it twice; only the
// ao_multiplier * light_multiplier remainder is new.
func (s lightingSampler) apply(q geometry.Quad, pos voxel.Position) geometry.Quad {
	normalOff := snapAxis(q.Normal)
	offs := cornerOffsets(q)
	for i := 0; i < 4; i++ {
		side1 := offsetPosition(pos, addOffsets(normalOff, offs[i][0]))
		side2 := offsetPosition(pos, addOffsets(normalOff, offs[i][1]))
		corner := offsetPosition(pos, addOffsets(normalOff, addOffsets(offs[i][0], offs[i][1])))

		ao := 3
		n := light.CornerNeighbors{}
		if s.ao {
			n.Side1Opaque = s.opaqueAt(side1)
			n.Side2Opaque = s.opaqueAt(side2)
			n.CornerOpaque = s.opaqueAt(corner)
			ao = light.CornerAO(n)
		}
		q.AO[i] = ao

		level := 15
		if s.baked {
			above := offsetPosition(corner, [3]int32{0, 1, 0})
			hasOpaqueAbove := s.opaqueAt(above)
			level = light.CornerLight(n, s.cfg, hasOpaqueAbove)
		}
		q.Light[i] = level

		intensity := light.VertexIntensity(1.0, ao, level, s.cfg)
		c := q.Colors[i]
		q.Colors[i] = [4]float32{c[0] * intensity, c[1] * intensity, c[2] * intensity, c[3]}
	}
	return q
}
