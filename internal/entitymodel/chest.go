package entitymodel

// Chest models: bottom, lid, and lock, assembled from Part/Cube/Pose.

type ChestVariant int

const (
	ChestNormal ChestVariant = iota
	ChestTrapped
	ChestEnder
	ChestChristmas
)

func (v ChestVariant) texturePath() string {
	switch v {
	case ChestTrapped:
		return "entity/chest/trapped"
	case ChestEnder:
		return "entity/chest/ender"
	case ChestChristmas:
		return "entity/chest/christmas"
	default:
		return "entity/chest/normal"
	}
}

type DoubleChestSide int

const (
	DoubleChestLeft DoubleChestSide = iota
	DoubleChestRight
)

// ChestModel builds the single-chest model.
func ChestModel(variant ChestVariant) ModelDef {
	bottom := Part{
		Cubes: []Cube{{Origin: [3]float32{1, 0, 1}, Dimensions: [3]float32{14, 10, 14}, TexOffset: [2]int{0, 19}}},
		Pose:  DefaultPose(),
	}
	lid := Part{
		Cubes: []Cube{{Origin: [3]float32{1, 0, 0}, Dimensions: [3]float32{14, 5, 14}, TexOffset: [2]int{0, 0}}},
		Pose:  Pose{Position: [3]float32{0, 9, 1}, Scale: [3]float32{1, 1, 1}},
	}
	lock := Part{
		Cubes: []Cube{{Origin: [3]float32{7, -1, 15}, Dimensions: [3]float32{2, 4, 1}, TexOffset: [2]int{0, 0}}},
		Pose:  Pose{Position: [3]float32{0, 8, 0}, Scale: [3]float32{1, 1, 1}},
	}
	return ModelDef{
		TexturePath: variant.texturePath(),
		TextureSize: [2]int{64, 64},
		Parts:       []Part{bottom, lid, lock},
		IsOpaque:    true,
	}
}

// DoubleChestModel builds one half of a double chest. Each half is 15
// units wide with a 2-unit gap between halves — an intentional seam, not
// a bug.
func DoubleChestModel(variant ChestVariant, side DoubleChestSide) ModelDef {
	suffix := "_left"
	if side == DoubleChestRight {
		suffix = "_right"
	}

	var bottomOrigin, lidOrigin, lockOrigin [3]float32
	lockDims := [3]float32{1, 4, 1}
	switch side {
	case DoubleChestLeft:
		bottomOrigin = [3]float32{0, 0, 1}
		lidOrigin = [3]float32{0, 0, 0}
		lockOrigin = [3]float32{0, -1, 15}
	case DoubleChestRight:
		bottomOrigin = [3]float32{1, 0, 1}
		lidOrigin = [3]float32{1, 0, 0}
		lockOrigin = [3]float32{15, -1, 15}
	}

	bottom := Part{
		Cubes: []Cube{{Origin: bottomOrigin, Dimensions: [3]float32{15, 10, 14}, TexOffset: [2]int{0, 19}}},
		Pose:  DefaultPose(),
	}
	lid := Part{
		Cubes: []Cube{{Origin: lidOrigin, Dimensions: [3]float32{15, 5, 14}, TexOffset: [2]int{0, 0}}},
		Pose:  Pose{Position: [3]float32{0, 9, 1}, Scale: [3]float32{1, 1, 1}},
	}
	lock := Part{
		Cubes: []Cube{{Origin: lockOrigin, Dimensions: lockDims, TexOffset: [2]int{0, 0}}},
		Pose:  Pose{Position: [3]float32{0, 8, 0}, Scale: [3]float32{1, 1, 1}},
	}

	return ModelDef{
		TexturePath: variant.texturePath() + suffix,
		TextureSize: [2]int{64, 64},
		Parts:       []Part{bottom, lid, lock},
		IsOpaque:    true,
	}
}
