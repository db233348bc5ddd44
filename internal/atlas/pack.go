package atlas

import (
	"image"
	"image/draw"
	"sort"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/voxel"
)

// Config holds the atlas packer's tunables.
type Config struct {
	Padding     int // atlas_padding, default 1
	MaxSize     int // atlas_max_size
}

func (c Config) withDefaults() Config {
	if c.Padding <= 0 {
		c.Padding = 1
	}
	if c.MaxSize <= 0 {
		c.MaxSize = 4096
	}
	return c
}

// Result is the packed atlas: the composited image, every tile's placed
// region (including one region per animated frame, keyed "path#frame_i"),
// and the per-animated-texture export metadata.
type Result struct {
	Image     *image.RGBA
	Regions   map[string]Region
	Animated  []AnimatedTextureExport
}

type placedTile struct {
	key       string
	img       *image.RGBA
	animPath  string
	frameIdx  int
	isAnimFrame bool
}

// Build packs tiles with a shelf-packing algorithm: tiles sorted by
// descending height then width, placed on the current shelf if they fit,
// else a new shelf starts below the tallest tile on the current shelf. The atlas
// starts at the largest tile's width rounded to the next power of two and
// doubles (width then height) until everything fits or MaxSize is
// exceeded.
func Build(tiles []TileRequest, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()

	var items []placedTile
	for _, t := range tiles {
		if t.Animation != nil {
			frameCount := t.Image.Bounds().Dy() / t.Image.Bounds().Dx()
			frameW := t.Image.Bounds().Dx()
			for i := 0; i < frameCount; i++ {
				sub := image.NewRGBA(image.Rect(0, 0, frameW, frameW))
				draw.Draw(sub, sub.Bounds(), t.Image, image.Point{0, i * frameW}, draw.Src)
				items = append(items, placedTile{key: framePath(t.Path, i), img: sub, animPath: t.Path, frameIdx: i, isAnimFrame: true})
			}
		} else {
			items = append(items, placedTile{key: t.Path, img: t.Image})
		}
	}

	for _, it := range items {
		b := it.img.Bounds()
		if b.Dx()+2*cfg.Padding > cfg.MaxSize || b.Dy()+2*cfg.Padding > cfg.MaxSize {
			return Result{}, &voxel.AtlasError{Kind: voxel.Overflow}
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		hi, hj := items[i].img.Bounds().Dy(), items[j].img.Bounds().Dy()
		if hi != hj {
			return hi > hj
		}
		return items[i].img.Bounds().Dx() > items[j].img.Bounds().Dx()
	})

	width := nextPowerOfTwo(maxTileWidth(items) + 2*cfg.Padding)
	height := width

	var regions map[string]Region
	var placed bool
	for !placed {
		regions, placed = tryPack(items, width, height, cfg.Padding)
		if !placed {
			if width <= height {
				width *= 2
			} else {
				height *= 2
			}
			if width > cfg.MaxSize || height > cfg.MaxSize {
				return Result{}, &voxel.AtlasError{Kind: voxel.Overflow}
			}
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	animated := map[string]*AnimatedTextureExport{}
	for _, it := range items {
		r := regions[it.key]
		compositeTile(img, it.img, r, cfg.Padding)
		if it.isAnimFrame {
			exp, ok := animated[it.animPath]
			if !ok {
				exp = &AnimatedTextureExport{Path: it.animPath, AtlasX: r.X, AtlasY: r.Y, FrameW: r.W, FrameH: r.H}
				animated[it.animPath] = exp
			}
			exp.FrameCount++
			exp.FrameSequence = append(exp.FrameSequence, it.frameIdx)
		}
	}

	// Carry animation timing metadata from the originating request.
	byPath := map[string]*AnimationInput{}
	for _, t := range tiles {
		if t.Animation != nil {
			byPath[t.Path] = t.Animation
		}
	}
	var out []AnimatedTextureExport
	for _, exp := range animated {
		if in, ok := byPath[exp.Path]; ok {
			exp.FrameTime = in.FrameTime
			exp.Interpolate = in.Interpolate
			if len(in.Frames) > 0 {
				exp.FrameSequence = append([]int(nil), in.Frames...)
			}
		}
		out = append(out, *exp)
	}

	return Result{Image: img, Regions: regions, Animated: out}, nil
}

func framePath(path string, frame int) string {
	return path + "#frame_" + itoa(frame)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func maxTileWidth(items []placedTile) int {
	max := 0
	for _, it := range items {
		if w := it.img.Bounds().Dx(); w > max {
			max = w
		}
	}
	return max
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	if p < 1 {
		p = 1
	}
	return p
}

// tryPack attempts to place every item within width x height using the
// classic shelf algorithm: a running shelf (row) accumulates items left
// to right until one doesn't fit, at which point a new shelf starts
// below the tallest item placed on the current shelf.
func tryPack(items []placedTile, width, height, padding int) (map[string]Region, bool) {
	regions := make(map[string]Region, len(items))
	x, y, shelfHeight := padding, padding, 0

	for _, it := range items {
		b := it.img.Bounds()
		w, h := b.Dx(), b.Dy()

		if x+w+padding > width {
			x = padding
			y += shelfHeight + padding
			shelfHeight = 0
		}
		if y+h+padding > height {
			return nil, false
		}

		regions[it.key] = Region{Path: it.key, X: x, Y: y, W: w, H: h, IsAnimated: it.isAnimFrame, FrameCount: 1}
		x += w + padding
		if h > shelfHeight {
			shelfHeight = h
		}
	}
	return regions, true
}

// compositeTile draws a tile into the atlas at its region, then extends
// the tile's edge pixels into the surrounding padding so bilinear
// sampling never bleeds into a neighboring tile.
func compositeTile(dst *image.RGBA, src *image.RGBA, r Region, padding int) {
	dstRect := image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
	draw.Draw(dst, dstRect, src, image.Point{0, 0}, draw.Src)

	if padding <= 0 {
		return
	}
	for p := 1; p <= padding; p++ {
		// Left/right columns.
		for y := 0; y < r.H; y++ {
			dst.Set(r.X-p, r.Y+y, dst.At(r.X, r.Y+y))
			dst.Set(r.X+r.W-1+p, r.Y+y, dst.At(r.X+r.W-1, r.Y+y))
		}
		// Top/bottom rows, including corners.
		for x := -padding; x < r.W+padding; x++ {
			dst.Set(r.X+x, r.Y-p, dst.At(r.X+clampToRange(x, 0, r.W-1), r.Y))
			dst.Set(r.X+x, r.Y+r.H-1+p, dst.At(r.X+clampToRange(x, 0, r.W-1), r.Y+r.H-1))
		}
	}
}

func clampToRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
