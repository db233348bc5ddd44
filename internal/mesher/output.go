package mesher

import (
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/atlas"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/blockmodel"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/geometry"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/greedy"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/light"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/voxel"
)

// missingCubeQuads emits the magenta/black fallback cube for a block
// whose resolution failed. It bypasses the normal texture-lookup path
// entirely: the sentinel texture is always opaque, so its TextureLookup
// always reports no transparency.
func missingCubeQuads(pos voxel.Position, missingTex *blockmodel.Texture) []geometry.Quad {
	elem := blockmodel.Element{
		From: [3]float32{0, 0, 0}, To: [3]float32{16, 16, 16},
		Faces: map[string]blockmodel.Face{
			"down": {Texture: blockmodel.MissingTexturePath}, "up": {Texture: blockmodel.MissingTexturePath},
			"north": {Texture: blockmodel.MissingTexturePath}, "south": {Texture: blockmodel.MissingTexturePath},
			"west": {Texture: blockmodel.MissingTexturePath}, "east": {Texture: blockmodel.MissingTexturePath},
		},
	}
	ctx := geometry.EmitContext{
		Tint:          blockmodel.DefaultTintProvider{},
		Identifier:    "minecraft:missing",
		TextureLookup: func(string) (bool, bool) { return false, false },
	}
	quads := geometry.EmitElement(elem, pos, 0, 0, false, ctx)
	for i := range quads {
		quads[i].AO = [4]int{3, 3, 3, 3}
		quads[i].Light = [4]int{15, 15, 15, 15}
	}
	return quads
}

// buildAtlas collects every distinct source texture the non-greedy quads
// reference and packs them, or reuses cfg.PreBuiltAtlas when supplied.
// Textures a greedy
// material also happens to use still need an atlas slot here: greedy
// merging only pulls out the quads eligible for it, and other quads
// sharing that same texture (non-axis-aligned faces, or faces on a plane
// that didn't merge) still render through the atlas path.
func buildAtlas(pack blockmodel.ResourcePack, quads []geometry.Quad, cfg Config, dynamic map[string]*blockmodel.Texture) (atlas.Result, error) {
	if cfg.PreBuiltAtlas != nil {
		return *cfg.PreBuiltAtlas, nil
	}

	seen := map[string]bool{blockmodel.MissingTexturePath: true}
	tiles := []atlas.TileRequest{{Path: blockmodel.MissingTexturePath, Image: toRGBAImage(missingTextureChecker(16))}}
	for _, q := range quads {
		if seen[q.MaterialKey] {
			continue
		}
		seen[q.MaterialKey] = true
		tex, ok := dynamic[q.MaterialKey]
		if !ok {
			tex, ok = pack.GetTexture(q.MaterialKey)
		}
		if !ok {
			continue
		}
		req := atlas.TileRequest{Path: q.MaterialKey, Image: toRGBAImage(tex)}
		if tex.Animation != nil {
			frames := make([]int, len(tex.Animation.Frames))
			for i, f := range tex.Animation.Frames {
				frames[i] = f.Index
			}
			req.Animation = &atlas.AnimationInput{FrameTime: tex.Animation.FrameTime, Interpolate: tex.Animation.Interpolate, Frames: frames}
		}
		tiles = append(tiles, req)
	}

	result, err := atlas.Build(tiles, atlas.Config{Padding: cfg.AtlasPadding, MaxSize: cfg.AtlasMaxSize})
	if err != nil {
		return atlas.Result{}, err
	}
	return result, nil
}

// regionFor resolves a material key to its placed atlas region, falling
// back to an animated texture's first frame when the key itself carries
// no static region (atlas.Build only ever places per-frame regions for
// animated tiles).
func regionFor(path string, regions map[string]atlas.Region) (atlas.Region, bool) {
	if r, ok := regions[path]; ok {
		return r, true
	}
	return atlas.AnimationFrameRegion(regions, path, 0)
}

// assembleLayers remaps every non-greedy quad's UVs into atlas space,
// triangulates it along the AO-preferred diagonal, and appends it to the
// matching output layer.
func assembleLayers(out *MesherOutput, quads []geometry.Quad, result atlas.Result) {
	atlasW, atlasH := result.Image.Bounds().Dx(), result.Image.Bounds().Dy()
	for _, q := range quads {
		region, ok := regionFor(q.MaterialKey, result.Regions)
		if !ok {
			region, _ = regionFor(blockmodel.MissingTexturePath, result.Regions)
		}
		uvs := atlas.RemapQuadUVs(q.UVs, region, atlasW, atlasH)

		var positions [4][3]float32
		for i, p := range q.Positions {
			positions[i] = [3]float32{p.X(), p.Y(), p.Z()}
		}
		normal := [3]float32{q.Normal.X(), q.Normal.Y(), q.Normal.Z()}
		tri1, tri2 := light.TriangulateAODiagonal(q.AO)

		layer := layerFor(out, q.Layer)
		layer.appendQuad(positions, normal, uvs, q.Colors, tri1, tri2)
	}
}

func layerFor(out *MesherOutput, l geometry.Layer) *MeshLayer {
	switch l {
	case geometry.LayerCutout:
		return &out.Cutout
	case geometry.LayerTransparent:
		return &out.Transparent
	default:
		return &out.Opaque
	}
}

// assembleGreedyMaterials triangulates every greedy-merged quad using its
// own tiling UVs directly — the atlas plays no part here, since these
// faces sample their source texture wrap-repeat.
func assembleGreedyMaterials(out *MesherOutput, mats []greedy.GreedyMaterial) {
	for _, m := range mats {
		gm := GreedyMaterialOutput{TexturePNGKey: m.SourceTextureKey}
		appendGreedyQuads(&gm.Opaque, m.Opaque)
		appendGreedyQuads(&gm.Transparent, m.Transparent)
		out.GreedyMaterials = append(out.GreedyMaterials, gm)
	}
}

func appendGreedyQuads(layer *MeshLayer, quads []geometry.Quad) {
	for _, q := range quads {
		var positions [4][3]float32
		for i, p := range q.Positions {
			positions[i] = [3]float32{p.X(), p.Y(), p.Z()}
		}
		normal := [3]float32{q.Normal.X(), q.Normal.Y(), q.Normal.Z()}
		tri1, tri2 := light.TriangulateAODiagonal(q.AO)
		layer.appendQuad(positions, normal, q.UVs, q.Colors, tri1, tri2)
	}
}
