package export

import (
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/blockmodel"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/mesher"
)

// triangleLayer returns a single upward-facing triangle fixture shared by
// every format's tests.
func triangleLayer() mesher.MeshLayer {
	return mesher.MeshLayer{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}},
		Normals:   [][3]float32{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}},
		UVs:       [][2]float32{{0, 0}, {1, 0}, {0, 1}},
		Colors:    [][4]float32{{1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}},
		Indices:   []uint32{0, 1, 2},
	}
}

func solidPixels(size int, r, g, b, a byte) []byte {
	pix := make([]byte, size*size*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
	return pix
}

// triangleOutput builds a minimal but non-empty MesherOutput: one opaque
// triangle backed by the atlas, plus one greedy-material triangle backed
// by its own texture, so every exporter's atlas and greedy-material paths
// both get exercised.
func triangleOutput() (mesher.MesherOutput, blockmodel.ResourcePack) {
	pack := blockmodel.NewMemoryPack()
	pack.Textures["minecraft:block/greedy_stone"] = &blockmodel.Texture{
		Width: 16, Height: 16, Pixels: solidPixels(16, 160, 160, 160, 255),
	}

	out := mesher.MesherOutput{
		Opaque: triangleLayer(),
		Atlas: mesher.Image{
			Width: 16, Height: 16, Pixels: solidPixels(16, 255, 255, 255, 255),
		},
		GreedyMaterials: []mesher.GreedyMaterialOutput{
			{TexturePNGKey: "minecraft:block/greedy_stone", Opaque: triangleLayer()},
		},
	}
	return out, pack
}

func emptyOutput() (mesher.MesherOutput, blockmodel.ResourcePack) {
	return mesher.MesherOutput{Atlas: mesher.Image{Width: 1, Height: 1, Pixels: make([]byte, 4)}}, blockmodel.NewMemoryPack()
}
