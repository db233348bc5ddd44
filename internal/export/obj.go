package export

import (
	"fmt"
	"strings"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/blockmodel"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/mesher"
)

// ObjExport holds the .obj and .mtl text, plus every PNG the .mtl's
// map_Kd lines reference, keyed by filename.
type ObjExport struct {
	OBJ      string
	MTL      string
	Textures map[string][]byte // filename -> PNG bytes, e.g. "{name}_atlas.png"
}

type objGroup struct {
	material string
	texture  string // filename referenced by this material's map_Kd
	indices  []uint32
}

// ExportOBJ assembles name.obj/name.mtl. OBJ has no per-layer transparency
// channel, so every layer is folded into vertex data and distinguished
// only by which usemtl group its faces fall under: one atlas-backed
// material for Opaque+Cutout+Transparent (the three layers share the one
// packed atlas texture), plus one material per non-empty greedy
// material.
func ExportOBJ(out mesher.MesherOutput, pack blockmodel.ResourcePack, name string) (ObjExport, error) {
	if isEmptyOutput(out) {
		return ObjExport{}, &Error{Kind: EmptyMesh, Msg: "cannot export empty mesh"}
	}

	var positions [][3]float32
	var uvs [][2]float32
	var normals [][3]float32
	var colors [][4]float32

	appendLayer := func(l mesher.MeshLayer) []uint32 {
		base := uint32(len(positions))
		positions = append(positions, l.Positions...)
		uvs = append(uvs, l.UVs...)
		normals = append(normals, l.Normals...)
		colors = append(colors, l.Colors...)
		idx := make([]uint32, len(l.Indices))
		for i, v := range l.Indices {
			idx[i] = v + base
		}
		return idx
	}

	var groups []objGroup
	textures := map[string][]byte{}

	var atlasIdx []uint32
	atlasIdx = append(atlasIdx, appendLayer(out.Opaque)...)
	atlasIdx = append(atlasIdx, appendLayer(out.Cutout)...)
	atlasIdx = append(atlasIdx, appendLayer(out.Transparent)...)
	if len(atlasIdx) > 0 {
		atlasFile := name + "_atlas.png"
		png, err := atlasPNG(out.Atlas)
		if err != nil {
			return ObjExport{}, err
		}
		textures[atlasFile] = png
		groups = append(groups, objGroup{material: name + "_atlas_material", texture: atlasFile, indices: atlasIdx})
	}

	for i, gm := range out.GreedyMaterials {
		var gidx []uint32
		gidx = append(gidx, appendLayer(gm.Opaque)...)
		gidx = append(gidx, appendLayer(gm.Transparent)...)
		if len(gidx) == 0 {
			continue
		}
		texFile := fmt.Sprintf("%s_greedy_%d.png", name, i)
		png, err := greedyMaterialPNG(pack, gm.TexturePNGKey)
		if err != nil {
			return ObjExport{}, err
		}
		textures[texFile] = png
		groups = append(groups, objGroup{
			material: fmt.Sprintf("%s_greedy_%d_material", name, i),
			texture:  texFile,
			indices:  gidx,
		})
	}

	obj := buildObjText(name, positions, uvs, normals, colors, groups)
	mtl := buildMtlText(groups)

	return ObjExport{OBJ: obj, MTL: mtl, Textures: textures}, nil
}

func buildObjText(name string, positions [][3]float32, uvs [][2]float32, normals [][3]float32, colors [][4]float32, groups []objGroup) string {
	var b strings.Builder
	triCount := 0
	for _, g := range groups {
		triCount += len(g.indices) / 3
	}

	fmt.Fprintln(&b, "# Schematic Mesher OBJ Export")
	fmt.Fprintf(&b, "# Vertices: %d\n", len(positions))
	fmt.Fprintf(&b, "# Triangles: %d\n\n", triCount)

	fmt.Fprintf(&b, "mtllib %s.mtl\n\n", name)
	fmt.Fprintf(&b, "o %s\n\n", name)

	for i, p := range positions {
		c := colors[i]
		fmt.Fprintf(&b, "v %v %v %v %v %v %v\n", p[0], p[1], p[2], c[0], c[1], c[2])
	}
	b.WriteByte('\n')

	for _, uv := range uvs {
		fmt.Fprintf(&b, "vt %v %v\n", uv[0], uv[1])
	}
	b.WriteByte('\n')

	for _, n := range normals {
		fmt.Fprintf(&b, "vn %v %v %v\n", n[0], n[1], n[2])
	}
	b.WriteByte('\n')

	for _, g := range groups {
		fmt.Fprintf(&b, "usemtl %s\n", g.material)
		for i := 0; i+2 < len(g.indices); i += 3 {
			i0, i1, i2 := g.indices[i]+1, g.indices[i+1]+1, g.indices[i+2]+1
			fmt.Fprintf(&b, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", i0, i0, i0, i1, i1, i1, i2, i2, i2)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func buildMtlText(groups []objGroup) string {
	var b strings.Builder
	fmt.Fprintln(&b, "# Schematic Mesher Material")
	b.WriteByte('\n')
	for _, g := range groups {
		fmt.Fprintf(&b, "newmtl %s\n", g.material)
		fmt.Fprintln(&b, "Ka 1.0 1.0 1.0")
		fmt.Fprintln(&b, "Kd 1.0 1.0 1.0")
		fmt.Fprintln(&b, "Ks 0.0 0.0 0.0")
		fmt.Fprintln(&b, "Ns 10.0")
		fmt.Fprintln(&b, "d 1.0")
		fmt.Fprintln(&b, "illum 1")
		fmt.Fprintf(&b, "map_Kd %s\n\n", g.texture)
	}
	return b.String()
}
