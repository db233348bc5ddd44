package export

import (
	"bytes"
	"image"
	"image/png"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/blockmodel"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/mesher"
)

// atlasPNG encodes the packed atlas image as PNG bytes, the form every
// export format embeds it in.
func atlasPNG(img mesher.Image) ([]byte, error) {
	rgba := &image.RGBA{
		Pix:    img.Pixels,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
	return encodePNG(rgba)
}

// greedyMaterialPNG resolves a GreedyMaterialOutput's source texture
// through the pack and encodes it as PNG.
func greedyMaterialPNG(pack blockmodel.ResourcePack, key string) ([]byte, error) {
	tex, ok := pack.GetTexture(key)
	if !ok {
		return nil, &Error{Kind: PNGEncode, Msg: "unresolved greedy material texture " + key}
	}
	rgba := &image.RGBA{
		Pix:    tex.Pixels,
		Stride: tex.Width * 4,
		Rect:   image.Rect(0, 0, tex.Width, tex.Height),
	}
	return encodePNG(rgba)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &Error{Kind: PNGEncode, Msg: err.Error(), Err: err}
	}
	return buf.Bytes(), nil
}

// isEmptyOutput reports whether out carries no geometry anywhere an
// exporter could export, the "nothing to export" guard every format
// checks up front.
func isEmptyOutput(out mesher.MesherOutput) bool {
	if len(out.Opaque.Positions) > 0 || len(out.Cutout.Positions) > 0 || len(out.Transparent.Positions) > 0 {
		return false
	}
	for _, gm := range out.GreedyMaterials {
		if len(gm.Opaque.Positions) > 0 || len(gm.Transparent.Positions) > 0 {
			return false
		}
	}
	return true
}
