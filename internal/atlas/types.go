// Package atlas packs the textures referenced by emitted quads into a
// single atlas: shelf-packing tiles, edge-extension padding,
// animated-frame placement, and UV remap into atlas space.
package atlas

import "image"

// Region is a placed tile.
type Region struct {
	Path       string
	X, Y, W, H int
	IsAnimated bool
	FrameCount int
}

// AnimatedTextureExport describes one animated texture's placement and
// timing so a viewer can cycle its frames at runtime.
type AnimatedTextureExport struct {
	Path          string
	AtlasX, AtlasY int
	FrameW, FrameH int
	FrameCount     int
	FrameTime      int
	Interpolate    bool
	FrameSequence  []int
}

// TileRequest is one texture the atlas must place: either a static tile
// or, for an animated texture, its full vertical frame strip (native
// size, every frame stacked).
type TileRequest struct {
	Path      string
	Image     *image.RGBA
	Animation *AnimationInput
}

// AnimationInput carries the animation metadata needed to slice a frame
// strip into individual placed frames.
type AnimationInput struct {
	FrameTime   int
	Interpolate bool
	Frames      []int // frame index order; empty means sequential 0..frameCount-1
}
