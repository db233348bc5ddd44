// Package greedy is a planar face-merging post-pass: axis-aligned,
// full-tile quads sharing a material, light bucket, and AO pattern are
// fused into larger tiled-UV rectangles, the same per-direction
// mask-and-merge approach a greedy chunk mesher uses, generalized from a
// dense per-chunk array to an arbitrary quad buffer keyed by plane
// coordinates.
package greedy

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/geometry"
)

// GreedyMaterial is a synthesized material for one merged-face texture,
// sampled wrap-repeat so tiling UVs render seamlessly.
type GreedyMaterial struct {
	SourceTextureKey string
	Opaque           []geometry.Quad
	Transparent      []geometry.Quad
}

// Config controls whether the pass runs at all.
type Config struct {
	Enabled bool // greedy_meshing, default false
}

// axisInfo identifies which world axis a quad's normal is aligned to,
// plus its sign, so quads group into (axis, slice) planes.
type axisInfo struct {
	axis int // 0=X, 1=Y, 2=Z
	sign int
}

// eligible reports whether q is a candidate for greedy merging: its
// normal must be axis-aligned (a cube face, not a rotated/sloped one)
// and its face-local UVs must be exactly the default [0,0]-[1,1] square —
// a face with a non-default UV rectangle (a custom model's partial
// texture region, an entity model's box-UV unwrap) keeps its own
// identity instead of merging into a tiled rectangle.
func eligible(q geometry.Quad) (axisInfo, bool) {
	n := q.Normal
	const eps = 1e-3
	switch {
	case math.Abs(float64(n[0])) > 1-eps:
		return axisInfo{axis: 0, sign: sign(n[0])}, isUnitUV(q.UVs)
	case math.Abs(float64(n[1])) > 1-eps:
		return axisInfo{axis: 1, sign: sign(n[1])}, isUnitUV(q.UVs)
	case math.Abs(float64(n[2])) > 1-eps:
		return axisInfo{axis: 2, sign: sign(n[2])}, isUnitUV(q.UVs)
	default:
		return axisInfo{}, false
	}
}

func sign(v float32) int {
	if v < 0 {
		return -1
	}
	return 1
}

func isUnitUV(uvs [4][2]float32) bool {
	want := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	const eps = 1e-3
	for i := range uvs {
		if absf(uvs[i][0]-want[i][0]) > eps || absf(uvs[i][1]-want[i][1]) > eps {
			return false
		}
	}
	return true
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// label is the per-cell merge key: identical labels merge, distinct ones
// don't.
type label struct {
	material  string
	lightBkt  [4]int
	aoPattern [4]int
	layer     geometry.Layer
}

// lightBucket quantizes a 0-15 light level to 4 bits. Levels are already
// 0-15 in this pipeline, so this mask leaves them unchanged; kept
// as its own function so the quantization width is a single place to
// change if the light range ever grows.
func lightBucket(level int) int {
	return level & 0xF
}

func quantizeLights(l [4]int) [4]int {
	var out [4]int
	for i, v := range l {
		out[i] = lightBucket(v)
	}
	return out
}

// planeKey groups quads sharing one axis-aligned plane. The slice is the
// plane coordinate in 1/16-block steps, so faces on whole- and half-unit
// planes get distinct keys and equality on the rounded value is safe.
type planeKey struct {
	axis, sign int
	slice      int32
}

// cellKey is a quad's integer (u,v) position within its plane, derived
// from its P00 corner's two in-plane coordinates.
type cellKey struct{ u, v int32 }

type gridCell struct {
	lbl  label
	quad geometry.Quad
}

// Merge runs the greedy pass over quads, returning the quads that were
// not merge candidates (non-axis-aligned, non-default-UV) unchanged,
// plus one GreedyMaterial per distinct source texture with at least one
// merged rectangle.
func Merge(quads []geometry.Quad, cfg Config) (passthrough []geometry.Quad, materials []GreedyMaterial) {
	if !cfg.Enabled {
		return quads, nil
	}

	type plane struct {
		axis, sign int
		cells      map[cellKey]gridCell
	}
	planes := map[planeKey]*plane{}
	var rest []geometry.Quad

	for _, q := range quads {
		a, ok := eligible(q)
		if !ok {
			rest = append(rest, q)
			continue
		}
		u, v := inPlaneAxes(a.axis)
		p0 := q.Positions[0]
		pk := planeKey{axis: a.axis, sign: a.sign, slice: round(p0[a.axis] * 16)}
		pl, exists := planes[pk]
		if !exists {
			pl = &plane{axis: a.axis, sign: a.sign, cells: map[cellKey]gridCell{}}
			planes[pk] = pl
		}
		ck := cellKey{u: round(p0[u]), v: round(p0[v])}
		pl.cells[ck] = gridCell{
			lbl: label{
				material:  q.MaterialKey,
				lightBkt:  quantizeLights(q.Light),
				aoPattern: q.AO,
				layer:     q.Layer,
			},
			quad: q,
		}
	}

	byMaterial := map[string]*GreedyMaterial{}

	for pk, pl := range planes {
		visited := map[cellKey]bool{}
		for ck, c := range pl.cells {
			if visited[ck] {
				continue
			}
			w, h := growRectangle(pl.cells, visited, ck, c.lbl)
			merged := buildMergedQuad(c.quad, pk, w, h)

			gm, ok := byMaterial[c.lbl.material]
			if !ok {
				gm = &GreedyMaterial{SourceTextureKey: c.lbl.material}
				byMaterial[c.lbl.material] = gm
			}
			if c.lbl.layer == geometry.LayerTransparent {
				gm.Transparent = append(gm.Transparent, merged)
			} else {
				gm.Opaque = append(gm.Opaque, merged)
			}
		}
	}

	for _, gm := range byMaterial {
		materials = append(materials, *gm)
	}
	return rest, materials
}

func round(f float32) int32 {
	return int32(math.Round(float64(f)))
}

// inPlaneAxes returns the two axis indices spanning the plane
// perpendicular to axis.
func inPlaneAxes(axis int) (u, v int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// growRectangle implements the canonical greedy rule: grow rightward
// along u while the label matches, then grow downward along v while the
// whole row matches.
func growRectangle(cells map[cellKey]gridCell, visited map[cellKey]bool, start cellKey, lbl label) (w, h int32) {
	w = 1
	for {
		next := cellKey{u: start.u + w, v: start.v}
		c, ok := cells[next]
		if !ok || visited[next] || c.lbl != lbl {
			break
		}
		w++
	}

	h = 1
rowLoop:
	for {
		for du := int32(0); du < w; du++ {
			next := cellKey{u: start.u + du, v: start.v + h}
			c, ok := cells[next]
			if !ok || visited[next] || c.lbl != lbl {
				break rowLoop
			}
		}
		h++
	}

	for dv := int32(0); dv < h; dv++ {
		for du := int32(0); du < w; du++ {
			visited[cellKey{u: start.u + du, v: start.v + dv}] = true
		}
	}
	return w, h
}

// buildMergedQuad rebuilds a quad spanning w x h unit cells starting at
// base's position, carrying base's per-corner AO/light/color/normal
// (identical across the whole rectangle by construction) but with
// tiling UVs u in [0,w], v in [0,h].
func buildMergedQuad(base geometry.Quad, pk planeKey, w, h int32) geometry.Quad {
	u, v := inPlaneAxes(pk.axis)
	origin := base.Positions[0]

	extend := func(p mgl32.Vec3, du, dv int32) mgl32.Vec3 {
		out := p
		out[u] = origin[u] + float32(du)
		out[v] = origin[v] + float32(dv)
		return out
	}

	merged := base
	// Corner order mirrors the base quad's own winding: corner i keeps
	// its (du,dv) offset relative to P00, scaled by the rectangle size.
	offsets := cornerOffsets(base, u, v)
	for i := range merged.Positions {
		du := offsets[i][0] * w
		dv := offsets[i][1] * h
		merged.Positions[i] = extend(base.Positions[i], du, dv)
	}
	merged.UVs = rewindUV(offsets, w, h)
	return merged
}

// cornerOffsets returns, for each of the 4 corners, its (du,dv) unit
// offset from corner 0 as 0 or 1 — read directly off the base quad's own
// geometry rather than assumed, so it works regardless of which winding
// emitFace produced for this direction.
func cornerOffsets(q geometry.Quad, u, v int) [4][2]int32 {
	base := q.Positions[0]
	var out [4][2]int32
	for i, p := range q.Positions {
		out[i][0] = round(p[u] - base[u])
		out[i][1] = round(p[v] - base[v])
	}
	return out
}

func rewindUV(offsets [4][2]int32, w, h int32) [4][2]float32 {
	var out [4][2]float32
	for i, off := range offsets {
		out[i][0] = float32(off[0] * w)
		out[i][1] = float32(off[1] * h)
	}
	return out
}
