package mesher

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/geometry"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/liquid"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/voxel"
)

// liquidInfo is what the orchestrator needs to know about one voxel to
// treat it as a liquid source, extracted from its block properties:
// level 0 is source, 1-7 flowing, 8-15 falling.
type liquidInfo struct {
	identifier string
	level      int
}

func classifyLiquid(name string, properties map[string]string) (liquidInfo, bool) {
	_, id := voxel.SplitIdentifier(name)
	if id != "water" && id != "lava" {
		return liquidInfo{}, false
	}
	level := 0
	if lv, ok := properties["level"]; ok {
		level = parseLevel(lv)
	}
	return liquidInfo{identifier: id, level: level}, true
}

func parseLevel(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// diagonalOffsets are the four blocks sharing one lattice corner point,
// relative to that point, for the per-corner weighted height average.
var diagonalOffsets = [4][2]int32{{-1, -1}, {0, -1}, {-1, 0}, {0, 0}}

// cornerLatticePoints are the (dx,dz) offsets from a voxel's own origin
// to its four top-face corners, in NW/SW/SE/NE order.
var cornerLatticePoints = [4][2]int32{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

func sampleColumn(src voxel.Source, pos voxel.Position, id string) liquid.ColumnSample {
	b, ok := src.Get(pos)
	if !ok {
		return liquid.ColumnSample{}
	}
	info, isLiquid := classifyLiquid(b.Name, b.Properties)
	if !isLiquid || info.identifier != id {
		return liquid.ColumnSample{}
	}
	return liquid.ColumnSample{Present: true, IsSource: info.level == 0, Level: info.level}
}

func cornerHeight(src voxel.Source, pos voxel.Position, corner [2]int32, id string) float32 {
	cx, cz := pos.X+corner[0], pos.Z+corner[1]
	var samples [4]liquid.ColumnSample
	for i, off := range diagonalOffsets {
		samples[i] = sampleColumn(src, voxel.Position{X: cx + off[0], Y: pos.Y, Z: cz + off[1]}, id)
	}
	above := src
	hasSameAbove := false
	if b, ok := above.Get(voxel.Position{X: cx, Y: pos.Y + 1, Z: cz}); ok {
		if info, isLiquid := classifyLiquid(b.Name, b.Properties); isLiquid && info.identifier == id {
			hasSameAbove = true
		}
	}
	h, emitted := liquid.CornerHeight(samples, hasSameAbove)
	if !emitted {
		return 14.0 / 16.0
	}
	return h
}

// buildLiquidQuads emits one voxel's liquid surface: the top quad plus
// any side quad whose horizontal neighbor differs in height or isn't the
// same liquid.
func buildLiquidQuads(src voxel.Source, pos voxel.Position, info liquidInfo, textureStill string, transparent bool) []geometry.Quad {
	var corners [4]float32
	for i, c := range cornerLatticePoints {
		corners[i] = cornerHeight(src, pos, c, info.identifier)
	}
	nw, sw, se, ne := corners[0], corners[1], corners[2], corners[3]
	flowDir := liquid.FlowDirection(nw, sw, se, ne)

	fx, fy, fz := float32(pos.X), float32(pos.Y), float32(pos.Z)
	top := liquid.TopQuad(fx, fy, fz, nw, sw, se, ne, flowDir, textureStill, transparent)
	quads := []geometry.Quad{top}

	// SideQuad works in local voxel space (voxel floor at y=0); translate
	// its result into world space by (fx,fy,fz) afterward.
	type edge struct {
		dx, dz int32
		p1, p2 mgl32.Vec3 // local, x/z in {0,1}
		h1, h2 float32
		normal mgl32.Vec3
	}
	edges := [4]edge{
		{0, -1, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, nw, ne, mgl32.Vec3{0, 0, -1}},
		{0, 1, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 1}, sw, se, mgl32.Vec3{0, 0, 1}},
		{-1, 0, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, nw, sw, mgl32.Vec3{-1, 0, 0}},
		{1, 0, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 1}, ne, se, mgl32.Vec3{1, 0, 0}},
	}
	for _, e := range edges {
		neighborPos := voxel.Position{X: pos.X + e.dx, Y: pos.Y, Z: pos.Z + e.dz}
		neighborIsLiquid := false
		neighborHeight := float32(0)
		if b, ok := src.Get(neighborPos); ok {
			if ninfo, isLiquid := classifyLiquid(b.Name, b.Properties); isLiquid && ninfo.identifier == info.identifier {
				neighborIsLiquid = true
				for _, c := range cornerLatticePoints {
					neighborHeight += cornerHeight(src, neighborPos, c, info.identifier)
				}
				neighborHeight /= 4
			}
		}
		selfHeight := (e.h1 + e.h2) / 2
		if liquid.ShouldEmitSide(selfHeight, neighborHeight, neighborIsLiquid) {
			side := liquid.SideQuad(e.p1, e.p2, e.h1, e.h2, e.normal, textureStill, transparent)
			quads = append(quads, translateQuad(side, fx, fy, fz))
		}
	}
	return quads
}

func translateQuad(q geometry.Quad, dx, dy, dz float32) geometry.Quad {
	offset := mgl32.Vec3{dx, dy, dz}
	for i, p := range q.Positions {
		q.Positions[i] = p.Add(offset)
	}
	return q
}
