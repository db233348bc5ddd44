package entitymodel

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/geometry"
)

// rootPosition and rootRotation apply a root wrapper transform — position
// (8, 24, 8) and a pi rotation about X — mapping entity-model space into
// world-up, block-centered space.
var rootPosition = [3]float32{8, 24, 8}

const rootRotationX = 3.14159265358979

// Build walks a model's part tree and emits every cube's quads in final
// world space.
func Build(model ModelDef) BuildResult {
	root := mgl32.Translate3D(rootPosition[0]/16, rootPosition[1]/16, rootPosition[2]/16).
		Mul4(mgl32.HomogRotate3DX(rootRotationX))

	var quads []geometry.Quad
	for _, part := range model.Parts {
		quads = append(quads, buildPart(part, root, model)...)
	}
	return BuildResult{Quads: quads}
}

func buildPart(part Part, parentTransform mgl32.Mat4, model ModelDef) []geometry.Quad {
	local := composePose(part.Pose)
	world := parentTransform.Mul4(local)

	var quads []geometry.Quad
	for _, cube := range part.Cubes {
		quads = append(quads, buildCube(cube, world, model)...)
	}
	for _, child := range part.Children {
		quads = append(quads, buildPart(child, world, model)...)
	}
	return quads
}

// composePose builds translate*rotateX*rotateY*rotateZ*scale: translate,
// then rotate about x/y/z in turn, then scale.
func composePose(p Pose) mgl32.Mat4 {
	scale := p.Scale
	if scale == [3]float32{0, 0, 0} {
		scale = [3]float32{1, 1, 1}
	}
	t := mgl32.Translate3D(p.Position[0]/16, p.Position[1]/16, p.Position[2]/16)
	rx := mgl32.HomogRotate3DX(p.Rotation[0])
	ry := mgl32.HomogRotate3DY(p.Rotation[1])
	rz := mgl32.HomogRotate3DZ(p.Rotation[2])
	s := mgl32.Scale3D(scale[0], scale[1], scale[2])
	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}

var cubeDirections = [6]string{"down", "up", "north", "south", "west", "east"}

func buildCube(cube Cube, transform mgl32.Mat4, model ModelDef) []geometry.Quad {
	from := cube.Origin
	to := [3]float32{cube.Origin[0] + cube.Dimensions[0], cube.Origin[1] + cube.Dimensions[1], cube.Origin[2] + cube.Dimensions[2]}
	if cube.Inflate != 0 {
		for i := 0; i < 3; i++ {
			from[i] -= cube.Inflate
			to[i] += cube.Inflate
		}
	}

	uvRects := boxUV(cube)

	var quads []geometry.Quad
	for _, dir := range cubeDirections {
		if cube.SkipFaces[dir] {
			continue
		}
		corners := geometry.FaceCorners(dir, from, to)
		normal := geometry.DirectionNormal(dir)

		var positions [4]mgl32.Vec3
		for i, c := range corners {
			p := mgl32.Vec3{c[0] / 16, c[1] / 16, c[2] / 16}
			r := transform.Mul4x1(p.Vec4(1))
			positions[i] = mgl32.Vec3{r[0], r[1], r[2]}
		}
		nr := transform.Mul4x1(normal.Vec4(0))
		worldNormal := mgl32.Vec3{nr[0], nr[1], nr[2]}.Normalize()

		rect := uvRects[dir]
		u0 := float32(rect[0]) / float32(model.TextureSize[0])
		v0 := float32(rect[1]) / float32(model.TextureSize[1])
		u1 := float32(rect[2]) / float32(model.TextureSize[0])
		v1 := float32(rect[3]) / float32(model.TextureSize[1])
		if cube.Mirror {
			u0, u1 = u1, u0
		}
		uvs := [4][2]float32{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}

		candidate := positions[1].Sub(positions[0]).Cross(positions[3].Sub(positions[0]))
		if candidate.Dot(worldNormal) < 0 {
			positions[1], positions[3] = positions[3], positions[1]
			uvs[1], uvs[3] = uvs[3], uvs[1]
		}

		layer := geometry.LayerOpaque
		if !model.IsOpaque || cube.Cutout {
			layer = geometry.LayerCutout
		}

		quads = append(quads, geometry.Quad{
			Positions:   positions,
			Normal:      worldNormal,
			UVs:         uvs,
			Colors:      [4][4]float32{{1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}},
			Layer:       layer,
			MaterialKey: model.TexturePath,
			Direction:   dir,
		})
	}
	return quads
}

// boxUV implements the canonical box-net texture layout: given cube
// dimensions (w,h,d) at texture offset (u,v), returns each face's pixel
// rect [u0,v0,u1,v1]. "front"/"back" map to the south/north directions
// (a cube's front in entity-model convention faces +Z).
func boxUV(cube Cube) map[string][4]int {
	u, v := cube.TexOffset[0], cube.TexOffset[1]
	w := int(cube.Dimensions[0])
	h := int(cube.Dimensions[1])
	d := int(cube.Dimensions[2])

	return map[string][4]int{
		"up":    {u + d, v, u + d + w, v + d},
		"down":  {u + d + w, v, u + 2*d + w, v + d},
		"west":  {u, v + d, u + d, v + d + h},
		"south": {u + d, v + d, u + d + w, v + d + h},
		"east":  {u + d + w, v + d, u + 2*d + w, v + d + h},
		"north": {u + 2*d + w, v + d, u + 2*d + 2*w, v + d + h},
	}
}
