// Package geometry turns a posed, flattened model into world-space quads.
// It knows the auto-UV projection table, element and pose rotation, and
// layer classification; it does not know about culling, lighting, or
// atlas placement — those are layered on by later pipeline stages.
package geometry

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Layer is one of the three render buckets a quad can land in.
type Layer int

const (
	LayerOpaque Layer = iota
	LayerCutout
	LayerTransparent
)

func (l Layer) String() string {
	switch l {
	case LayerOpaque:
		return "opaque"
	case LayerCutout:
		return "cutout"
	case LayerTransparent:
		return "transparent"
	default:
		return "unknown"
	}
}

// Bucket assigns a quad to its output index in MesherOutput's
// opaque/cutout/transparent layers.
func (l Layer) Bucket() int { return int(l) }

// Quad is one emitted face, in world-space, before greedy merging or
// atlas UV remap.
type Quad struct {
	Positions   [4]mgl32.Vec3
	Normal      mgl32.Vec3
	UVs         [4][2]float32
	Colors      [4][4]float32
	AO          [4]int
	Light       [4]int
	Layer       Layer
	MaterialKey string
	CullFace    string // "" when the source face declared none
	Direction   string // down/up/north/south/west/east, pre-pose
}

// forcedTransparent lists block ids (namespace stripped) that always
// classify as transparent regardless of their pixel data.
var forcedTransparent = map[string]bool{
	"glass":       true,
	"water":       true,
	"ice":         true,
	"slime_block": true,
	"honey_block": true,
}

// bareID strips a "namespace:" prefix from a block identifier, defaulting to
// the whole string when there is no namespace.
func bareID(identifier string) string {
	if i := strings.IndexByte(identifier, ':'); i >= 0 {
		return identifier[i+1:]
	}
	return identifier
}

// ClassifyLayer implements the opaque/cutout/transparent layering decision.
// hasFullyTransparentPixel and hasPartialAlphaPixel describe the resolved
// texture's alpha channel.
func ClassifyLayer(identifier string, hasFullyTransparentPixel, hasPartialAlphaPixel bool) Layer {
	id := bareID(identifier)
	if forcedTransparent[id] || strings.Contains(id, "stained_glass") {
		return LayerTransparent
	}
	if hasPartialAlphaPixel {
		return LayerTransparent
	}
	if hasFullyTransparentPixel {
		return LayerCutout
	}
	return LayerOpaque
}
