// Package blockmodel resolves a voxel's (identifier, properties) pair
// through the blockstate and model-flattening chain into a concrete model.
// It knows nothing about geometry emission, culling, or lighting — it
// only turns raw pack JSON into a FlattenedModel.
package blockmodel

// Model is the on-disk shape of a model JSON asset, after unmarshaling but
// before parent-chain flattening.
type Model struct {
	Parent           string             `json:"parent"`
	AmbientOcclusion *bool              `json:"ambientocclusion"`
	Textures         map[string]string  `json:"textures"`
	Elements         []Element          `json:"elements"`
	Display          map[string]Display `json:"display"` // carried, never interpreted
}

// Element is one axis-aligned box inside a model.
type Element struct {
	From     [3]float32      `json:"from"`
	To       [3]float32      `json:"to"`
	Rotation *ElementRotation `json:"rotation"`
	Shade    *bool            `json:"shade"`
	Faces    map[string]Face  `json:"faces"`
}

// ShadeOrDefault returns Shade, defaulting to true when unset.
func (e Element) ShadeOrDefault() bool {
	if e.Shade == nil {
		return true
	}
	return *e.Shade
}

// ElementRotation is a single rotation of an element about one axis.
type ElementRotation struct {
	Origin  [3]float32 `json:"origin"`
	Axis    string     `json:"axis"` // "x", "y", or "z"
	Angle   float32    `json:"angle"`
	Rescale bool       `json:"rescale"`
}

// Face is one of an element's six possible faces.
type Face struct {
	UV        *[4]float32 `json:"uv"`
	Texture   string      `json:"texture"`
	CullFace  string      `json:"cullface"`
	Rotation  int         `json:"rotation"`
	TintIndex *int        `json:"tintindex"`
}

// TintIndexOrNone returns the tint index, or -1 when the face carries none.
func (f Face) TintIndexOrNone() int {
	if f.TintIndex == nil {
		return -1
	}
	return *f.TintIndex
}

// Display is carried from the model JSON but never interpreted by the
// mesher.
type Display struct {
	Rotation    [3]float32 `json:"rotation"`
	Translation [3]float32 `json:"translation"`
	Scale       [3]float32 `json:"scale"`
}

// MissingTexturePath is the sentinel texture every unresolved #-chain
// root resolves to.
const MissingTexturePath = "builtin/missing"

// FlattenedModel is a Model after the parent chain has been merged and
// every texture variable resolved to a concrete path (or the sentinel).
type FlattenedModel struct {
	AmbientOcclusion bool
	Textures         map[string]string
	Elements         []Element
}

// ModelReference names a model plus the pose to apply to it.
type ModelReference struct {
	Model      string
	RotationX  int // one of 0, 90, 180, 270
	RotationY  int
	UVLock     bool
	Weight     int
}

// PosedModel is a flattened model bundled with the pose under which it
// was selected.
type PosedModel struct {
	Flattened *FlattenedModel
	RotationX int
	RotationY int
	UVLock    bool
	Weight    int
}
