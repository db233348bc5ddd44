package entitymodel

// Sign models: standing, wall-mounted, and hanging variants, each a thin
// plank part plus (standing only) a post. A sign's text is composited
// onto its texture by the caller before the mesh is assembled; this
// package only shapes the geometry.

// SignKind selects among the sign geometries a resource pack can name.
type SignKind int

const (
	SignStanding SignKind = iota
	SignWall
	SignHanging
)

// SignModel builds a sign's geometry. rotationDegrees positions a
// standing sign's post rotation (0..315 in 22.5-degree steps, matching
// vanilla's 16 sign directions); ignored for wall/hanging signs.
func SignModel(kind SignKind, woodType string, rotationDegrees float32) ModelDef {
	texturePath := "entity/signs/" + woodType

	plank := Cube{Origin: [3]float32{1, 0, 7}, Dimensions: [3]float32{14, 12, 2}, TexOffset: [2]int{0, 0}}

	switch kind {
	case SignStanding:
		post := Cube{Origin: [3]float32{7, 12, 7}, Dimensions: [3]float32{2, 14, 2}, TexOffset: [2]int{0, 14}}
		return ModelDef{
			TexturePath: texturePath,
			TextureSize: [2]int{64, 32},
			Parts: []Part{{
				Cubes: []Cube{plank, post},
				Pose:  Pose{Rotation: [3]float32{0, degToRad(rotationDegrees), 0}, Scale: [3]float32{1, 1, 1}},
			}},
			IsOpaque: true,
		}
	case SignHanging:
		plank.Origin = [3]float32{1, 2, 7}
		chainLeft := Cube{Origin: [3]float32{2, 0, 7}, Dimensions: [3]float32{1, 2, 1}, TexOffset: [2]int{0, 12}}
		chainRight := Cube{Origin: [3]float32{13, 0, 7}, Dimensions: [3]float32{1, 2, 1}, TexOffset: [2]int{0, 12}}
		return ModelDef{
			TexturePath: texturePath,
			TextureSize: [2]int{64, 32},
			Parts:       []Part{{Cubes: []Cube{plank, chainLeft, chainRight}, Pose: DefaultPose()}},
			IsOpaque:    true,
		}
	default: // SignWall
		return ModelDef{
			TexturePath: texturePath,
			TextureSize: [2]int{64, 32},
			Parts:       []Part{{Cubes: []Cube{plank}, Pose: DefaultPose()}},
			IsOpaque:    true,
		}
	}
}

func degToRad(deg float32) float32 {
	return deg * 3.14159265358979 / 180
}
