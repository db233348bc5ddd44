package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"hash/crc32"
	"sort"
	"strconv"
	"strings"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/blockmodel"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/mesher"
)

// UsdaExport holds the USDA text plus every texture its material shaders
// reference via @textures/...@ asset paths.
type UsdaExport struct {
	USDA           string
	AtlasPNG       []byte
	GreedyTextures map[string][]byte // "textures/greedy_N.png" -> PNG bytes
}

// ExportUSDA builds the ASCII USD scene description. USDA is a text
// format with no ecosystem encoder to reach for, so it is built entirely
// by string formatting.
func ExportUSDA(out mesher.MesherOutput, pack blockmodel.ResourcePack) (UsdaExport, error) {
	if isEmptyOutput(out) {
		return UsdaExport{}, &Error{Kind: EmptyMesh, Msg: "cannot export empty mesh"}
	}

	atlasBytes, err := atlasPNG(out.Atlas)
	if err != nil {
		return UsdaExport{}, err
	}

	var b strings.Builder
	fmt.Fprintln(&b, `#usda 1.0`)
	fmt.Fprintln(&b, `(`)
	fmt.Fprintln(&b, `    defaultPrim = "Root"`)
	fmt.Fprintln(&b, `    metersPerUnit = 1`)
	fmt.Fprintln(&b, `    upAxis = "Y"`)
	fmt.Fprintln(&b, `)`)
	b.WriteByte('\n')
	fmt.Fprintln(&b, `def Xform "Root"`)
	fmt.Fprintln(&b, `{`)

	writeUsdMaterial(&b, "atlas_opaque", "textures/atlas.png", "clamp", 1.0)
	writeUsdMaterial(&b, "atlas_cutout", "textures/atlas.png", "clamp", 0.0)
	writeUsdMaterial(&b, "atlas_transparent", "textures/atlas.png", "clamp", 0.0)

	greedyTextures := map[string][]byte{}
	for i, gm := range out.GreedyMaterials {
		if len(gm.Opaque.Positions) == 0 && len(gm.Transparent.Positions) == 0 {
			continue
		}
		texFile := fmt.Sprintf("textures/greedy_%d.png", i)
		if len(gm.Opaque.Positions) > 0 {
			writeUsdMaterial(&b, fmt.Sprintf("greedy_%d_opaque", i), texFile, "repeat", 1.0)
		}
		if len(gm.Transparent.Positions) > 0 {
			writeUsdMaterial(&b, fmt.Sprintf("greedy_%d_transparent", i), texFile, "repeat", 0.0)
		}
		png, err := greedyMaterialPNG(pack, gm.TexturePNGKey)
		if err != nil {
			return UsdaExport{}, err
		}
		greedyTextures[texFile] = png
	}

	if len(out.Opaque.Positions) > 0 {
		writeUsdMeshPrim(&b, "opaque", out.Opaque, "atlas_opaque")
	}
	if len(out.Cutout.Positions) > 0 {
		writeUsdMeshPrim(&b, "cutout", out.Cutout, "atlas_cutout")
	}
	if len(out.Transparent.Positions) > 0 {
		writeUsdMeshPrim(&b, "transparent", out.Transparent, "atlas_transparent")
	}

	for i, gm := range out.GreedyMaterials {
		if len(gm.Opaque.Positions) > 0 {
			name := fmt.Sprintf("greedy_%d_opaque", i)
			writeUsdMeshPrim(&b, name, gm.Opaque, name)
		}
		if len(gm.Transparent.Positions) > 0 {
			name := fmt.Sprintf("greedy_%d_transparent", i)
			writeUsdMeshPrim(&b, name, gm.Transparent, name)
		}
	}

	fmt.Fprintln(&b, `}`)

	return UsdaExport{USDA: b.String(), AtlasPNG: atlasBytes, GreedyTextures: greedyTextures}, nil
}

// writeUsdMaterial writes one UsdPreviewSurface material — a shader node
// reading diffuseColor (and, when opacity < 1, alpha) from a UsdUVTexture
// fed by a primvar reader, mirroring usd.rs's write_material exactly.
func writeUsdMaterial(b *strings.Builder, name, texturePath, wrap string, opacity float32) {
	fmt.Fprintf(b, "    def Material %q\n", name)
	fmt.Fprintln(b, "    {")
	fmt.Fprintf(b, "        token outputs:surface.connect = </Root/%s/shader.outputs:surface>\n", name)

	fmt.Fprintln(b, `        def Shader "shader"`)
	fmt.Fprintln(b, "        {")
	fmt.Fprintln(b, `            uniform token info:id = "UsdPreviewSurface"`)
	fmt.Fprintf(b, "            color3f inputs:diffuseColor.connect = </Root/%s/diffuse.outputs:rgb>\n", name)
	fmt.Fprintln(b, "            float inputs:metallic = 0")
	fmt.Fprintln(b, "            float inputs:roughness = 1")
	if opacity < 1.0 {
		fmt.Fprintf(b, "            float inputs:opacity.connect = </Root/%s/diffuse.outputs:a>\n", name)
	} else {
		fmt.Fprintln(b, "            float inputs:opacity = 1")
	}
	fmt.Fprintln(b, "            token outputs:surface")
	fmt.Fprintln(b, "        }")

	fmt.Fprintln(b, `        def Shader "diffuse"`)
	fmt.Fprintln(b, "        {")
	fmt.Fprintln(b, `            uniform token info:id = "UsdUVTexture"`)
	fmt.Fprintf(b, "            asset inputs:file = @%s@\n", texturePath)
	fmt.Fprintf(b, "            float2 inputs:st.connect = </Root/%s/st.outputs:result>\n", name)
	fmt.Fprintf(b, "            token inputs:wrapS = %q\n", wrap)
	fmt.Fprintf(b, "            token inputs:wrapT = %q\n", wrap)
	fmt.Fprintln(b, "            float3 outputs:rgb")
	if opacity < 1.0 {
		fmt.Fprintln(b, "            float outputs:a")
	}
	fmt.Fprintln(b, "        }")

	fmt.Fprintln(b, `        def Shader "st"`)
	fmt.Fprintln(b, "        {")
	fmt.Fprintln(b, `            uniform token info:id = "UsdPrimvarReader_float2"`)
	fmt.Fprintln(b, `            string inputs:varname = "st"`)
	fmt.Fprintln(b, "            float2 outputs:result")
	fmt.Fprintln(b, "        }")

	fmt.Fprintln(b, "    }")
	b.WriteByte('\n')
}

// writeUsdMeshPrim writes one triangle Mesh prim with vertex-interpolated
// normals/UVs, optional vertex colors/opacity, and a material binding —
// mirroring usd.rs's write_mesh_prim.
func writeUsdMeshPrim(b *strings.Builder, name string, layer mesher.MeshLayer, material string) {
	fmt.Fprintf(b, "    def Mesh %q\n", name)
	fmt.Fprintln(b, "    {")

	triCount := len(layer.Indices) / 3
	counts := make([]string, triCount)
	for i := range counts {
		counts[i] = "3"
	}
	fmt.Fprintf(b, "        int[] faceVertexCounts = [%s]\n", strings.Join(counts, ", "))

	idx := make([]string, len(layer.Indices))
	for i, v := range layer.Indices {
		idx[i] = strconv.FormatUint(uint64(v), 10)
	}
	fmt.Fprintf(b, "        int[] faceVertexIndices = [%s]\n", strings.Join(idx, ", "))

	points := make([]string, len(layer.Positions))
	for i, p := range layer.Positions {
		points[i] = fmt.Sprintf("(%v, %v, %v)", p[0], p[1], p[2])
	}
	fmt.Fprintf(b, "        point3f[] points = [%s]\n", strings.Join(points, ", "))

	normals := make([]string, len(layer.Normals))
	for i, n := range layer.Normals {
		normals[i] = fmt.Sprintf("(%v, %v, %v)", n[0], n[1], n[2])
	}
	fmt.Fprintf(b, "        normal3f[] normals = [%s] (\n", strings.Join(normals, ", "))
	fmt.Fprintln(b, `            interpolation = "vertex"`)
	fmt.Fprintln(b, "        )")

	uvs := make([]string, len(layer.UVs))
	for i, uv := range layer.UVs {
		uvs[i] = fmt.Sprintf("(%v, %v)", uv[0], uv[1])
	}
	fmt.Fprintf(b, "        texCoord2f[] primvars:st = [%s] (\n", strings.Join(uvs, ", "))
	fmt.Fprintln(b, `            interpolation = "vertex"`)
	fmt.Fprintln(b, "        )")

	hasNonWhite := false
	for _, c := range layer.Colors {
		if c[0] != 1 || c[1] != 1 || c[2] != 1 || c[3] != 1 {
			hasNonWhite = true
			break
		}
	}
	if hasNonWhite {
		colors := make([]string, len(layer.Colors))
		for i, c := range layer.Colors {
			colors[i] = fmt.Sprintf("(%v, %v, %v)", c[0], c[1], c[2])
		}
		fmt.Fprintf(b, "        color3f[] primvars:displayColor = [%s] (\n", strings.Join(colors, ", "))
		fmt.Fprintln(b, `            interpolation = "vertex"`)
		fmt.Fprintln(b, "        )")

		hasNonOpaque := false
		for _, c := range layer.Colors {
			if c[3] != 1 {
				hasNonOpaque = true
				break
			}
		}
		if hasNonOpaque {
			opacities := make([]string, len(layer.Colors))
			for i, c := range layer.Colors {
				opacities[i] = fmt.Sprintf("%v", c[3])
			}
			fmt.Fprintf(b, "        float[] primvars:displayOpacity = [%s] (\n", strings.Join(opacities, ", "))
			fmt.Fprintln(b, `            interpolation = "vertex"`)
			fmt.Fprintln(b, "        )")
		}
	}

	fmt.Fprintf(b, "        rel material:binding = </Root/%s>\n", material)
	fmt.Fprintln(b, "    }")
	b.WriteByte('\n')
}

// ExportUSDZ packages ExportUSDA's result into a zero-compression ZIP with
// every entry's data aligned to a 64-byte boundary — the format Apple's
// Quick Look and other USDZ consumers require (a plain .usda-in-zip with
// compression or unaligned entries will not open).
func ExportUSDZ(out mesher.MesherOutput, pack blockmodel.ResourcePack) ([]byte, error) {
	export, err := ExportUSDA(out, pack)
	if err != nil {
		return nil, err
	}
	return buildUSDZ(export)
}

type usdzFile struct {
	name string
	data []byte
}

func buildUSDZ(export UsdaExport) ([]byte, error) {
	files := []usdzFile{
		{"root.usda", []byte(export.USDA)},
		{"textures/atlas.png", export.AtlasPNG},
	}
	names := make([]string, 0, len(export.GreedyTextures))
	for n := range export.GreedyTextures {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		files = append(files, usdzFile{n, export.GreedyTextures[n]})
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		// Flush so buf.Len() is the true offset of the next local header.
		// CreateRaw with sizes and CRC known up front writes no data
		// descriptor, so nothing else lands between entries.
		if err := zw.Flush(); err != nil {
			return nil, &Error{Kind: PNGEncode, Msg: err.Error(), Err: err}
		}
		fh := &zip.FileHeader{
			Name:   f.name,
			Method: zip.Store,
			Extra:  usdzAlignmentPadding(buf.Len(), len(f.name), 64),
		}
		fh.CRC32 = crc32.ChecksumIEEE(f.data)
		fh.CompressedSize64 = uint64(len(f.data))
		fh.UncompressedSize64 = uint64(len(f.data))
		w, err := zw.CreateRaw(fh)
		if err != nil {
			return nil, &Error{Kind: PNGEncode, Msg: err.Error(), Err: err}
		}
		if _, err := w.Write(f.data); err != nil {
			return nil, &Error{Kind: PNGEncode, Msg: err.Error(), Err: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, &Error{Kind: PNGEncode, Msg: err.Error(), Err: err}
	}
	return buf.Bytes(), nil
}

// usdzAlignmentPadding returns a zip "extra field" sized so the file's
// data begins on a 64-byte boundary, the same padding trick Pixar's usdz
// tooling uses: a local file header is 30 fixed bytes plus the filename,
// so the extra field's length is chosen to bring the total up to the next
// multiple of align. Field ID 0x1986 is the conventional USDZ padding
// marker; compliant zip readers skip any extra-field ID they don't
// recognize.
func usdzAlignmentPadding(currentOffset, filenameLen, align int) []byte {
	const fixedLocalHeader = 30
	const subHeaderLen = 4 // 2-byte id + 2-byte size
	base := currentOffset + fixedLocalHeader + filenameLen + subHeaderLen
	pad := (align - base%align) % align
	extra := make([]byte, subHeaderLen+pad)
	extra[0], extra[1] = 0x86, 0x19 // id 0x1986, little-endian
	extra[2] = byte(pad)
	extra[3] = byte(pad >> 8)
	return extra
}
