// Package entitymodel builds hierarchical cube-tree models (chests,
// signs, banners, display mobs) converted into world-space quads with
// box-UV texture unwrap.
package entitymodel

import "github.com/Schem-at/Schematic-Mesher-sub001/internal/geometry"

// Cube is one axis-aligned box within a Part, in Y-down model space
// (1 unit = 1/16 world-unit).
type Cube struct {
	Origin     [3]float32 // model-space origin, min corner
	Dimensions [3]float32 // w, h, d
	TexOffset  [2]int     // (u, v) into the part's texture
	Inflate    float32    // dilates the cube along each axis
	Mirror     bool       // flips the U axis of the box-UV unwrap
	SkipFaces  map[string]bool
	Cutout     bool // forces this cube's quads into the cutout layer
}

// Pose is a part's local transform relative to its parent, applied as
// translate then rotate (xyz order) then scale.
type Pose struct {
	Position [3]float32
	Rotation [3]float32 // radians, applied X then Y then Z
	Scale    [3]float32
}

// DefaultPose is the identity pose (zero translation/rotation, unit scale).
func DefaultPose() Pose {
	return Pose{Scale: [3]float32{1, 1, 1}}
}

// Part is one node of the model's cube tree.
type Part struct {
	Cubes    []Cube
	Pose     Pose
	Children []Part
}

// ModelDef is a complete entity model: a texture, its native size, and a
// forest of top-level parts.
type ModelDef struct {
	TexturePath  string
	TextureSize  [2]int
	Parts        []Part
	IsOpaque     bool
}

// BuildResult is the quad output of a model, already carried through the
// forced root transform (position (8,24,8), rotation (pi,0,0) mapping
// Y-down model space into world-up, block-centered space).
type BuildResult struct {
	Quads []geometry.Quad
}
