package mesher

import (
	"image"
	"image/color"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/blockmodel"
)

// toRGBAImage decodes a pack texture's raw RGBA8 buffer into an
// image.RGBA for the atlas packer.
func toRGBAImage(tex *blockmodel.Texture) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, tex.Width, tex.Height))
	copy(img.Pix, tex.Pixels)
	return img
}

// alphaClassify reports whether a texture carries any fully transparent
// pixel (alpha==0) or any partially transparent one (0<alpha<255),
// driving quad layer classification. Only the first frame of an animated
// texture is examined; layer classification is static per tile.
func alphaClassify(tex *blockmodel.Texture) (hasFullyTransparent, hasPartialAlpha bool) {
	if tex == nil {
		return false, false
	}
	frameH := tex.Height
	if tex.Animation != nil {
		if n := tex.Animation.FrameCount(tex.Width, tex.Height); n > 0 {
			frameH = tex.Height / n
		}
	}
	for y := 0; y < frameH; y++ {
		for x := 0; x < tex.Width; x++ {
			i := (y*tex.Width + x) * 4
			if i+3 >= len(tex.Pixels) {
				continue
			}
			a := tex.Pixels[i+3]
			switch {
			case a == 0:
				hasFullyTransparent = true
			case a < 255:
				hasPartialAlpha = true
			}
		}
	}
	return hasFullyTransparent, hasPartialAlpha
}

// textureLookup builds the EmitContext.TextureLookup closure element
// emission needs, resolving a texture path through the pack once and
// caching the alpha-classification result for the lifetime of one Mesh
// call.
func textureLookup(pack blockmodel.ResourcePack) func(path string) (bool, bool) {
	cache := map[string][2]bool{}
	return func(path string) (bool, bool) {
		if v, ok := cache[path]; ok {
			return v[0], v[1]
		}
		tex, ok := pack.GetTexture(path)
		if !ok {
			// A missing texture resolves to the magenta/black checker,
			// which is fully opaque — never transparent or cutout.
			cache[path] = [2]bool{false, false}
			return false, false
		}
		full, partial := alphaClassify(tex)
		cache[path] = [2]bool{full, partial}
		return full, partial
	}
}

// missingTextureChecker returns the magenta/black RGBA8 checkerboard used
// as the fallback texture for unresolved blocks.
func missingTextureChecker(size int) *blockmodel.Texture {
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 4
			var c color.RGBA
			if (x/(size/2)+y/(size/2))%2 == 0 {
				c = color.RGBA{255, 0, 255, 255}
			} else {
				c = color.RGBA{0, 0, 0, 255}
			}
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return &blockmodel.Texture{Width: size, Height: size, Pixels: pix}
}
