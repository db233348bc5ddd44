package entitymodel

import "math"

// Generalized mob templates. Rather than one bespoke definition per mob,
// three parametrized templates (quadruped, biped, octopod) describe a
// shared body+head skeleton (±legs, ±arms, ±many-legs). catalog.go
// instantiates them for cow, sheep, wolf, villager, iron golem, spider and
// cave spider; slime is a hand-built cube pair, and no other display mob
// has a model. Per-mob dimensions are approximate box-model dumps
// expressed as template arguments instead of per-species literal cube
// tables.

// QuadrupedParams sizes a four-legged body+head template with no tail
// part (cow, sheep, wolf, pig-shaped mobs, horse).
type QuadrupedParams struct {
	TexturePath                string
	TextureSize                [2]int
	HeadDims, HeadOrigin       [3]float32
	HeadTexOffset              [2]int
	HeadPose                   Pose
	BodyDims, BodyOrigin       [3]float32
	BodyTexOffset              [2]int
	BodyPose                   Pose
	LegDims                    [3]float32
	LegTexOffset               [2]int
	LegOrigins                 [4][3]float32 // front-left, front-right, back-left, back-right
}

// QuadrupedModel builds a generic four-legged mob model.
func QuadrupedModel(p QuadrupedParams) ModelDef {
	head := Part{
		Cubes: []Cube{{Origin: p.HeadOrigin, Dimensions: p.HeadDims, TexOffset: p.HeadTexOffset}},
		Pose:  withScale(p.HeadPose),
	}
	body := Part{
		Cubes: []Cube{{Origin: p.BodyOrigin, Dimensions: p.BodyDims, TexOffset: p.BodyTexOffset}},
		Pose:  withScale(p.BodyPose),
	}
	parts := []Part{head, body}
	for _, origin := range p.LegOrigins {
		parts = append(parts, Part{
			Cubes: []Cube{{Origin: origin, Dimensions: p.LegDims, TexOffset: p.LegTexOffset}},
			Pose:  DefaultPose(),
		})
	}
	return ModelDef{TexturePath: p.TexturePath, TextureSize: p.TextureSize, Parts: parts, IsOpaque: true}
}

// BipedParams sizes a two-legged, two-armed body+head template
// (villager, iron golem, zombie-shaped mobs).
type BipedParams struct {
	TexturePath                              string
	TextureSize                              [2]int
	HeadDims, HeadOrigin                      [3]float32
	HeadTexOffset                            [2]int
	HeadPose                                  Pose
	BodyDims, BodyOrigin                      [3]float32
	BodyTexOffset                             [2]int
	ArmDims                                   [3]float32
	ArmTexOffset                              [2]int
	LeftArmOrigin, RightArmOrigin             [3]float32
	LegDims                                   [3]float32
	LegTexOffset                              [2]int
	LeftLegOrigin, RightLegOrigin             [3]float32
}

// BipedModel builds a generic two-legged, two-armed mob model.
func BipedModel(p BipedParams) ModelDef {
	parts := []Part{
		{Cubes: []Cube{{Origin: p.HeadOrigin, Dimensions: p.HeadDims, TexOffset: p.HeadTexOffset}}, Pose: withScale(p.HeadPose)},
		{Cubes: []Cube{{Origin: p.BodyOrigin, Dimensions: p.BodyDims, TexOffset: p.BodyTexOffset}}, Pose: DefaultPose()},
		{Cubes: []Cube{{Origin: p.LeftArmOrigin, Dimensions: p.ArmDims, TexOffset: p.ArmTexOffset}}, Pose: DefaultPose()},
		{Cubes: []Cube{{Origin: p.RightArmOrigin, Dimensions: p.ArmDims, TexOffset: p.ArmTexOffset, Mirror: true}}, Pose: DefaultPose()},
		{Cubes: []Cube{{Origin: p.LeftLegOrigin, Dimensions: p.LegDims, TexOffset: p.LegTexOffset}}, Pose: DefaultPose()},
		{Cubes: []Cube{{Origin: p.RightLegOrigin, Dimensions: p.LegDims, TexOffset: p.LegTexOffset, Mirror: true}}, Pose: DefaultPose()},
	}
	return ModelDef{TexturePath: p.TexturePath, TextureSize: p.TextureSize, Parts: parts, IsOpaque: true}
}

// OctopodParams sizes a many-legged body+head template (spider). Eight
// legs are generated symmetrically from one leg's dims and a radius.
type OctopodParams struct {
	TexturePath          string
	TextureSize          [2]int
	HeadDims, HeadOrigin [3]float32
	HeadTexOffset        [2]int
	BodyDims, BodyOrigin [3]float32
	BodyTexOffset        [2]int
	LegDims              [3]float32
	LegTexOffset         [2]int
	LegRadius            float32
	LegY                 float32
}

// OctopodModel builds a generic many-legged mob model (spider).
func OctopodModel(p OctopodParams) ModelDef {
	parts := []Part{
		{Cubes: []Cube{{Origin: p.HeadOrigin, Dimensions: p.HeadDims, TexOffset: p.HeadTexOffset}}, Pose: DefaultPose()},
		{Cubes: []Cube{{Origin: p.BodyOrigin, Dimensions: p.BodyDims, TexOffset: p.BodyTexOffset}}, Pose: DefaultPose()},
	}
	angles := [8]float32{0, 0.785, 1.57, 2.36, 3.14, 3.93, 4.71, 5.50}
	for _, a := range angles {
		dx := p.LegRadius * float32(math.Cos(float64(a)))
		dz := p.LegRadius * float32(math.Sin(float64(a)))
		origin := [3]float32{8 + dx - p.LegDims[0]/2, p.LegY, 8 + dz - p.LegDims[2]/2}
		parts = append(parts, Part{
			Cubes: []Cube{{Origin: origin, Dimensions: p.LegDims, TexOffset: p.LegTexOffset}},
			Pose:  DefaultPose(),
		})
	}
	return ModelDef{TexturePath: p.TexturePath, TextureSize: p.TextureSize, Parts: parts, IsOpaque: true}
}

func withScale(p Pose) Pose {
	if p.Scale == [3]float32{0, 0, 0} {
		p.Scale = [3]float32{1, 1, 1}
	}
	return p
}
