package entitymodel

// Concrete display-mob instances built from the templates in
// templates.go, plus ModelForIdentifier, the lookup the mesher uses to
// decide whether a block's identifier routes through the entity-model
// path at all.

func cowModel() ModelDef {
	return QuadrupedModel(QuadrupedParams{
		TexturePath:   "entity/cow/cow",
		TextureSize:   [2]int{64, 32},
		HeadDims:      [3]float32{8, 8, 6},
		HeadOrigin:    [3]float32{-4, -4, -6},
		HeadTexOffset: [2]int{0, 0},
		HeadPose:      Pose{Position: [3]float32{0, 4, -8}},
		BodyDims:      [3]float32{12, 18, 10},
		BodyOrigin:    [3]float32{-6, -9, -5},
		BodyTexOffset: [2]int{18, 4},
		BodyPose:      Pose{Position: [3]float32{0, 5, 2}, Rotation: [3]float32{1.5708, 0, 0}},
		LegDims:       [3]float32{4, 12, 4},
		LegTexOffset:  [2]int{0, 16},
		LegOrigins: [4][3]float32{
			{-5, 0, -7}, {1, 0, -7}, {-5, 0, 5}, {1, 0, 5},
		},
	})
}

func sheepModel() ModelDef {
	m := cowModel()
	m.TexturePath = "entity/sheep/sheep"
	return m
}

func wolfModel() ModelDef {
	m := cowModel()
	m.TexturePath = "entity/wolf/wolf"
	return m
}

func villagerModel() ModelDef {
	return BipedModel(BipedParams{
		TexturePath:    "entity/villager/villager",
		TextureSize:    [2]int{64, 64},
		HeadDims:       [3]float32{8, 10, 8},
		HeadOrigin:     [3]float32{-4, -10, -4},
		HeadTexOffset:  [2]int{0, 0},
		HeadPose:       Pose{Position: [3]float32{0, 0, 0}},
		BodyDims:       [3]float32{8, 12, 6},
		BodyOrigin:     [3]float32{-4, 0, -3},
		BodyTexOffset:  [2]int{16, 20},
		ArmDims:        [3]float32{4, 12, 4},
		ArmTexOffset:   [2]int{44, 22},
		LeftArmOrigin:  [3]float32{4, 0, -2},
		RightArmOrigin: [3]float32{-8, 0, -2},
		LegDims:        [3]float32{4, 12, 4},
		LegTexOffset:   [2]int{0, 22},
		LeftLegOrigin:  [3]float32{0, 12, -2},
		RightLegOrigin: [3]float32{-4, 12, -2},
	})
}

func ironGolemModel() ModelDef {
	m := villagerModel()
	m.TexturePath = "entity/iron_golem/iron_golem"
	m.TextureSize = [2]int{128, 128}
	return m
}

func spiderModel() ModelDef {
	return OctopodModel(OctopodParams{
		TexturePath:   "entity/spider/spider",
		TextureSize:   [2]int{64, 32},
		HeadDims:      [3]float32{8, 8, 8},
		HeadOrigin:    [3]float32{-4, -4, -11},
		HeadTexOffset: [2]int{32, 4},
		BodyDims:      [3]float32{12, 8, 10},
		BodyOrigin:    [3]float32{-6, -3, -3},
		BodyTexOffset: [2]int{0, 0},
		LegDims:       [3]float32{2, 2, 14},
		LegTexOffset:  [2]int{18, 0},
		LegRadius:     7,
		LegY:          -2,
	})
}

func slimeModel(size int) ModelDef {
	dim := float32(4 * size)
	half := dim / 2
	outer := Cube{Origin: [3]float32{-half, 0, -half}, Dimensions: [3]float32{dim, dim, dim}, TexOffset: [2]int{0, 0}}
	inner := Cube{Origin: [3]float32{-half + 1, 1, -half + 1}, Dimensions: [3]float32{dim - 2, dim - 2, dim - 2}, TexOffset: [2]int{0, 0}, Cutout: true}
	return ModelDef{
		TexturePath: "entity/slime/slime",
		TextureSize: [2]int{64, 32},
		Parts:       []Part{{Cubes: []Cube{outer, inner}, Pose: DefaultPose()}},
		IsOpaque:    false,
	}
}

// ModelForIdentifier returns the model def for identifiers whose
// geometry comes from this package rather than the block-model element
// path. ok is false for any identifier this package doesn't know.
func ModelForIdentifier(identifier string, properties map[string]string) (ModelDef, bool) {
	switch identifier {
	case "minecraft:chest":
		return ChestModel(ChestNormal), true
	case "minecraft:trapped_chest":
		return ChestModel(ChestTrapped), true
	case "minecraft:ender_chest":
		return ChestModel(ChestEnder), true
	case "minecraft:cow":
		return cowModel(), true
	case "minecraft:sheep":
		return sheepModel(), true
	case "minecraft:wolf":
		return wolfModel(), true
	case "minecraft:villager":
		return villagerModel(), true
	case "minecraft:iron_golem":
		return ironGolemModel(), true
	case "minecraft:spider", "minecraft:cave_spider":
		return spiderModel(), true
	case "minecraft:slime":
		return slimeModel(1), true
	case "minecraft:oak_sign", "minecraft:spruce_sign", "minecraft:birch_sign":
		woodType := properties["wood_type"]
		if woodType == "" {
			woodType = "oak"
		}
		return SignModel(SignStanding, woodType, 0), true
	case "minecraft:oak_wall_sign", "minecraft:spruce_wall_sign":
		woodType := properties["wood_type"]
		if woodType == "" {
			woodType = "oak"
		}
		return SignModel(SignWall, woodType, 0), true
	default:
		return ModelDef{}, false
	}
}
