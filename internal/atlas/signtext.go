package atlas

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CompositeText bakes up to four centered lines of text onto a copy of
// base, a sign's blank resource-pack texture. This runs before the
// texture is atlas-packed, so each distinct sign text ends up as its own
// tile. base is never mutated — callers may share one base texture
// across many sign instances with different text.
func CompositeText(base *image.RGBA, lines []string, textColor color.Color) *image.RGBA {
	out := image.NewRGBA(base.Bounds())
	draw.Draw(out, out.Bounds(), base, base.Bounds().Min, draw.Src)

	face := basicfont.Face7x13
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	totalHeight := lineHeight * len(lines)
	startY := (out.Bounds().Dy()-totalHeight)/2 + metrics.Ascent.Ceil()

	drawer := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(textColor),
		Face: face,
	}
	for i, line := range lines {
		if line == "" {
			continue
		}
		width := drawer.MeasureString(line).Ceil()
		x := (out.Bounds().Dx() - width) / 2
		drawer.Dot = fixed.P(x, startY+i*lineHeight)
		drawer.DrawString(line)
	}
	return out
}
