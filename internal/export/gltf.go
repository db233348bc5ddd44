package export

import (
	"bytes"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/blockmodel"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/mesher"
)

// ExportGLB assembles a binary glTF: the atlas layers become up to three
// primitives, one per non-empty layer, each bound to that layer's material
// (OPAQUE/MASK 0.5/BLEND; all three materials are always created), and every
// non-empty greedy material gets its own texture and one or two
// primitives of its own. Built on github.com/qmuntal/gltf and its modeler
// helper, which appends to buffer 0 and returns a ready accessor index
// per call rather than requiring manual offset bookkeeping; the result is
// the standard two-chunk, 4-byte-aligned GLB layout.
func ExportGLB(out mesher.MesherOutput, pack blockmodel.ResourcePack) ([]byte, error) {
	if isEmptyOutput(out) {
		return nil, &Error{Kind: EmptyMesh, Msg: "cannot export empty mesh"}
	}

	doc := gltf.NewDocument()
	doc.Samplers = append(doc.Samplers, &gltf.Sampler{
		MagFilter: gltf.MagNearest,
		MinFilter: gltf.MinNearest,
		WrapS:     gltf.WrapRepeat,
		WrapT:     gltf.WrapRepeat,
	})
	const samplerIdx = 0

	atlasBytes, err := atlasPNG(out.Atlas)
	if err != nil {
		return nil, err
	}
	atlasTex := embedTexture(doc, samplerIdx, atlasBytes)

	opaqueMat := appendMaterial(doc, material(atlasTex, gltf.AlphaOpaque, 0))
	cutoutMat := appendMaterial(doc, material(atlasTex, gltf.AlphaMask, 0.5))
	transparentMat := appendMaterial(doc, material(atlasTex, gltf.AlphaBlend, 0))

	var mesh gltf.Mesh
	addPrimitive := func(layer mesher.MeshLayer, matIdx uint32) {
		if p := buildPrimitive(doc, layer, matIdx); p != nil {
			mesh.Primitives = append(mesh.Primitives, p)
		}
	}
	addPrimitive(out.Opaque, opaqueMat)
	addPrimitive(out.Cutout, cutoutMat)
	addPrimitive(out.Transparent, transparentMat)

	for _, gm := range out.GreedyMaterials {
		if len(gm.Opaque.Positions) == 0 && len(gm.Transparent.Positions) == 0 {
			continue
		}
		png, err := greedyMaterialPNG(pack, gm.TexturePNGKey)
		if err != nil {
			return nil, err
		}
		texIdx := embedTexture(doc, samplerIdx, png)
		if len(gm.Opaque.Positions) > 0 {
			matIdx := appendMaterial(doc, material(texIdx, gltf.AlphaOpaque, 0))
			addPrimitive(gm.Opaque, matIdx)
		}
		if len(gm.Transparent.Positions) > 0 {
			matIdx := appendMaterial(doc, material(texIdx, gltf.AlphaBlend, 0))
			addPrimitive(gm.Transparent, matIdx)
		}
	}

	if len(mesh.Primitives) == 0 {
		return nil, &Error{Kind: EmptyMesh, Msg: "cannot export empty mesh"}
	}

	doc.Meshes = append(doc.Meshes, &mesh)
	meshIdx := uint32(len(doc.Meshes) - 1)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Mesh: gltf.Index(meshIdx)})
	nodeIdx := uint32(len(doc.Nodes) - 1)
	doc.Scenes = append(doc.Scenes, &gltf.Scene{Nodes: []uint32{nodeIdx}})
	doc.Scene = gltf.Index(0)

	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, &Error{Kind: PNGEncode, Msg: err.Error(), Err: err}
	}
	return buf.Bytes(), nil
}

func buildPrimitive(doc *gltf.Document, layer mesher.MeshLayer, materialIdx uint32) *gltf.Primitive {
	if len(layer.Positions) == 0 {
		return nil
	}
	posAcc := modeler.WritePosition(doc, layer.Positions)
	normAcc := modeler.WriteNormal(doc, layer.Normals)
	uvAcc := modeler.WriteTextureCoord(doc, layer.UVs)
	colorAcc := modeler.WriteColor(doc, layer.Colors)
	idxAcc := modeler.WriteIndices(doc, layer.Indices)

	return &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION:   posAcc,
			gltf.NORMAL:     normAcc,
			gltf.TEXCOORD_0: uvAcc,
			gltf.COLOR_0:    colorAcc,
		},
		Indices:  gltf.Index(idxAcc),
		Material: gltf.Index(materialIdx),
		Mode:     gltf.PrimitiveTriangles,
	}
}

func material(textureIdx uint32, alphaMode gltf.AlphaMode, cutoff float32) *gltf.Material {
	mat := &gltf.Material{
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorTexture: &gltf.TextureInfo{Index: textureIdx},
			MetallicFactor:   gltf.Float(0),
			RoughnessFactor:  gltf.Float(1),
		},
		AlphaMode:   alphaMode,
		DoubleSided: true,
	}
	if alphaMode == gltf.AlphaMask {
		mat.AlphaCutoff = gltf.Float(cutoff)
	}
	return mat
}

func appendMaterial(doc *gltf.Document, mat *gltf.Material) uint32 {
	doc.Materials = append(doc.Materials, mat)
	return uint32(len(doc.Materials) - 1)
}

// embedTexture appends pngData to buffer 0 directly (rather than via a
// modeler helper, since modeler's Write* family targets typed vertex
// attributes, not opaque binary blobs) and wires up the
// Image/Texture/BufferView chain the glTF spec requires for an embedded,
// non-URI image.
func embedTexture(doc *gltf.Document, samplerIdx uint32, pngData []byte) uint32 {
	if len(doc.Buffers) == 0 {
		doc.Buffers = append(doc.Buffers, &gltf.Buffer{})
	}
	buf := doc.Buffers[0]
	offset := uint32(len(buf.Data))
	buf.Data = append(buf.Data, pngData...)
	buf.ByteLength = uint32(len(buf.Data))

	bvIdx := uint32(len(doc.BufferViews))
	doc.BufferViews = append(doc.BufferViews, &gltf.BufferView{
		Buffer:     0,
		ByteOffset: offset,
		ByteLength: uint32(len(pngData)),
	})

	imgIdx := uint32(len(doc.Images))
	doc.Images = append(doc.Images, &gltf.Image{
		MimeType:   "image/png",
		BufferView: gltf.Index(bvIdx),
	})

	texIdx := uint32(len(doc.Textures))
	doc.Textures = append(doc.Textures, &gltf.Texture{
		Source:  gltf.Index(imgIdx),
		Sampler: gltf.Index(samplerIdx),
	})
	return texIdx
}
