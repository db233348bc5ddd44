// Package mesher is the meshing pipeline orchestrator and output
// assembler: it drives every other component in order and assembles the
// structure-of-arrays MesherOutput.
package mesher

import (
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/atlas"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/voxel"
)

// MeshLayer is one render bucket's geometry as structure-of-arrays,
// ready for GPU upload.
type MeshLayer struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Colors    [][4]float32
	Indices   []uint32
}

// appendQuad triangulates a quad using the AO-diagonal rule (tri1, tri2
// from internal/light) and appends both triangles' vertices and indices.
func (l *MeshLayer) appendQuad(positions [4][3]float32, normal [3]float32, uvs [4][2]float32, colors [4][4]float32, tri1, tri2 [3]int) {
	base := uint32(len(l.Positions))
	for i := 0; i < 4; i++ {
		l.Positions = append(l.Positions, positions[i])
		l.Normals = append(l.Normals, normal)
		l.UVs = append(l.UVs, uvs[i])
		l.Colors = append(l.Colors, colors[i])
	}
	for _, tri := range [2][3]int{tri1, tri2} {
		l.Indices = append(l.Indices, base+uint32(tri[0]), base+uint32(tri[1]), base+uint32(tri[2]))
	}
}

// Image is the packed atlas: width/height plus raw RGBA8 pixels and the
// placed-tile regions.
type Image struct {
	Width, Height int
	Pixels        []byte // RGBA8, row-major
	Regions       map[string]atlas.Region
}

// GreedyMaterialOutput is one merged-face material ready for export: its
// source texture (wrap-repeat sampled, not atlas-packed) plus its own
// opaque/transparent sub-layers.
type GreedyMaterialOutput struct {
	TexturePNGKey string // logical texture path; the export package resolves this to PNG bytes
	Opaque        MeshLayer
	Transparent   MeshLayer
}

// MesherOutput is the full result of one Mesh call.
type MesherOutput struct {
	Opaque           MeshLayer
	Cutout           MeshLayer
	Transparent      MeshLayer
	Atlas            Image
	AnimatedTextures []atlas.AnimatedTextureExport
	GreedyMaterials  []GreedyMaterialOutput
	Bounds           voxel.BoundingBox
	Warnings         []voxel.Warning
}

// Config is the exhaustive set of named mesher options.
type Config struct {
	CullHiddenFaces    bool
	CullOccludedBlocks bool
	GreedyMeshing      bool
	AtlasMaxSize       int
	AtlasPadding       int
	IncludeAir         bool
	AmbientOcclusion   bool
	AOIntensity        float32
	EnableBlockLight   bool
	EnableSkyLight     bool
	SkyLightLevel      int
	EnableParticles    bool
	PreBuiltAtlas      *atlas.Result
}

// DefaultConfig returns the documented default option values.
func DefaultConfig() Config {
	return Config{
		CullHiddenFaces:    true,
		CullOccludedBlocks: true,
		GreedyMeshing:      false,
		AtlasMaxSize:       4096,
		AtlasPadding:       1,
		IncludeAir:         false,
		AmbientOcclusion:   true,
		AOIntensity:        0.4,
		EnableBlockLight:   false,
		EnableSkyLight:     false,
		SkyLightLevel:      15,
		EnableParticles:    true,
	}
}
