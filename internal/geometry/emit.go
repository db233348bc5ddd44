package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Schem-at/Schematic-Mesher-sub001/internal/blockmodel"
	"github.com/Schem-at/Schematic-Mesher-sub001/internal/voxel"
)

var directions = [6]string{"down", "up", "north", "south", "west", "east"}

// transformPoint and transformVector apply a Mat4 to a Vec3 by way of the
// homogeneous Vec4 form, since mgl32 has no direct Vec3-transform helper.
// Every rotation built in this file is orthogonal, so the same matrix is
// correct for both points (w=1) and direction vectors (w=0, no
// inverse-transpose needed).
func transformPoint(v mgl32.Vec3, m mgl32.Mat4) mgl32.Vec3 {
	r := m.Mul4x1(v.Vec4(1))
	return mgl32.Vec3{r[0], r[1], r[2]}
}

func transformVector(v mgl32.Vec3, m mgl32.Mat4) mgl32.Vec3 {
	r := m.Mul4x1(v.Vec4(0))
	return mgl32.Vec3{r[0], r[1], r[2]}
}

// FaceCorners and DirectionNormal expose the per-direction corner table
// and outward normal to other packages that build box geometry outside
// the Element/Face model (entitymodel's box-UV cubes), so the CCW-winding
// convention stays in one place.
func FaceCorners(dir string, from, to [3]float32) [4]mgl32.Vec3 { return faceCorners(dir, from, to) }
func DirectionNormal(dir string) mgl32.Vec3                     { return directionNormal(dir) }

func directionNormal(dir string) mgl32.Vec3 {
	switch dir {
	case "up":
		return mgl32.Vec3{0, 1, 0}
	case "down":
		return mgl32.Vec3{0, -1, 0}
	case "north":
		return mgl32.Vec3{0, 0, -1}
	case "south":
		return mgl32.Vec3{0, 0, 1}
	case "west":
		return mgl32.Vec3{-1, 0, 0}
	case "east":
		return mgl32.Vec3{1, 0, 0}
	default:
		return mgl32.Vec3{0, 0, 0}
	}
}

// faceCorners returns the element rectangle's four corners in model-space
// (0..16), ordered so index i carries the UV computed by autoUV's (u0/u1,
// v0/v1) at the matching corner: 0=(u0,v0), 1=(u1,v0), 2=(u1,v1), 3=(u0,v1).
func faceCorners(dir string, from, to [3]float32) [4]mgl32.Vec3 {
	switch dir {
	case "up":
		return [4]mgl32.Vec3{
			{from[0], to[1], from[2]}, {to[0], to[1], from[2]},
			{to[0], to[1], to[2]}, {from[0], to[1], to[2]},
		}
	case "down":
		return [4]mgl32.Vec3{
			{from[0], from[1], from[2]}, {to[0], from[1], from[2]},
			{to[0], from[1], to[2]}, {from[0], from[1], to[2]},
		}
	case "north":
		return [4]mgl32.Vec3{
			{to[0], to[1], from[2]}, {from[0], to[1], from[2]},
			{from[0], from[1], from[2]}, {to[0], from[1], from[2]},
		}
	case "south":
		return [4]mgl32.Vec3{
			{from[0], to[1], to[2]}, {to[0], to[1], to[2]},
			{to[0], from[1], to[2]}, {from[0], from[1], to[2]},
		}
	case "west":
		return [4]mgl32.Vec3{
			{from[0], to[1], to[2]}, {from[0], to[1], from[2]},
			{from[0], from[1], from[2]}, {from[0], from[1], to[2]},
		}
	case "east":
		return [4]mgl32.Vec3{
			{to[0], to[1], from[2]}, {to[0], to[1], to[2]},
			{to[0], from[1], to[2]}, {to[0], from[1], from[2]},
		}
	default:
		return [4]mgl32.Vec3{}
	}
}

// EmitContext bundles the per-emission collaborators element emission
// needs: a tint provider for vertex color and the identifier driving
// forced-transparent classification.
type EmitContext struct {
	Tint           blockmodel.TintProvider
	Biome          string
	Identifier     string
	TextureLookup  func(path string) (hasFullyTransparent, hasPartialAlpha bool)
}

// EmitElement expands one Element's faces into world-space Quads for a
// voxel at pos, under the given pose.
func EmitElement(elem blockmodel.Element, pos voxel.Position, rotationX, rotationY int, uvLock bool, ctx EmitContext) []Quad {
	quads := make([]Quad, 0, 6)
	for _, dir := range directions {
		face, ok := elem.Faces[dir]
		if !ok {
			continue
		}
		quads = append(quads, emitFace(elem, dir, face, pos, rotationX, rotationY, uvLock, ctx))
	}
	return quads
}

func emitFace(elem blockmodel.Element, dir string, face blockmodel.Face, pos voxel.Position, rotationX, rotationY int, uvLock bool, ctx EmitContext) Quad {
	corners := faceCorners(dir, elem.From, elem.To)
	normal := directionNormal(dir)

	var uvs [4][2]float32
	if face.UV != nil {
		u0, v0, u1, v1 := face.UV[0]/16, face.UV[1]/16, face.UV[2]/16, face.UV[3]/16
		uvs = [4][2]float32{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}
	} else {
		u0, v0, u1, v1 := autoUV(dir, elem.From, elem.To)
		uvs = [4][2]float32{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}
	}
	uvs = rotateUV(uvs, face.Rotation)

	if elem.Rotation != nil {
		corners, normal = applyElementRotation(corners, normal, *elem.Rotation)
	}

	corners, normal, uvs = applyPoseRotation(corners, normal, uvs, rotationY, rotationX, uvLock)

	var positions [4]mgl32.Vec3
	for i, c := range corners {
		positions[i] = mgl32.Vec3{
			(c[0] + float32(pos.X)*16) / 16,
			(c[1] + float32(pos.Y)*16) / 16,
			(c[2] + float32(pos.Z)*16) / 16,
		}
	}

	// Auto-correct winding so the front face is CCW viewed from outside,
	// independent of the corner-table orientation chosen above.
	candidate := positions[1].Sub(positions[0]).Cross(positions[3].Sub(positions[0]))
	if candidate.Dot(normal) < 0 {
		positions[1], positions[3] = positions[3], positions[1]
		uvs[1], uvs[3] = uvs[3], uvs[1]
	}

	var hasFullyTransparent, hasPartialAlpha bool
	if ctx.TextureLookup != nil {
		hasFullyTransparent, hasPartialAlpha = ctx.TextureLookup(face.Texture)
	}
	layer := ClassifyLayer(ctx.Identifier, hasFullyTransparent, hasPartialAlpha)

	shade := faceShadeFactor(normal, elem.ShadeOrDefault())
	color := [4]float32{1, 1, 1, 1}
	if ti := face.TintIndexOrNone(); ti >= 0 && ctx.Tint != nil {
		c := ctx.Tint.Tint(ti, ctx.Biome)
		color = [4]float32{c[0] * shade, c[1] * shade, c[2] * shade, 1}
	} else {
		color = [4]float32{shade, shade, shade, 1}
	}

	return Quad{
		Positions:   positions,
		Normal:      normal,
		UVs:         uvs,
		Colors:      [4][4]float32{color, color, color, color},
		Layer:       layer,
		MaterialKey: face.Texture,
		CullFace:    face.CullFace,
		Direction:   dir,
	}
}

// faceShadeFactor is the pre-AO directional shade: Y+=1.0, Y-=0.5, X=0.8,
// Z=0.6, only applied when shade=true.
func faceShadeFactor(normal mgl32.Vec3, shade bool) float32 {
	if !shade {
		return 1.0
	}
	switch {
	case normal.Y() > 0.5:
		return 1.0
	case normal.Y() < -0.5:
		return 0.5
	case normal.X() != 0:
		return 0.8
	default:
		return 0.6
	}
}

// applyElementRotation rotates an element's corners/normal about origin by
// angle around axis, with optional rescale of the two other axes by
// 1/cos(angle) to fill the unit cell it was stretched out of.
func applyElementRotation(corners [4]mgl32.Vec3, normal mgl32.Vec3, rot blockmodel.ElementRotation) ([4]mgl32.Vec3, mgl32.Vec3) {
	origin := mgl32.Vec3{rot.Origin[0], rot.Origin[1], rot.Origin[2]}
	rad := mgl32.DegToRad(rot.Angle)
	var axis mgl32.Vec3
	switch rot.Axis {
	case "x":
		axis = mgl32.Vec3{1, 0, 0}
	case "y":
		axis = mgl32.Vec3{0, 1, 0}
	case "z":
		axis = mgl32.Vec3{0, 0, 1}
	}
	m := mgl32.HomogRotate3D(rad, axis)

	scale := float32(1.0)
	if rot.Rescale {
		cos := float32(math.Cos(float64(rad)))
		if cos != 0 {
			scale = 1.0 / cos
		}
	}

	for i, c := range corners {
		v := c.Sub(origin)
		if rot.Rescale {
			switch rot.Axis {
			case "x":
				v[1] *= scale
				v[2] *= scale
			case "y":
				v[0] *= scale
				v[2] *= scale
			case "z":
				v[0] *= scale
				v[1] *= scale
			}
		}
		rotated := transformPoint(v, m)
		corners[i] = rotated.Add(origin)
	}
	newNormal := transformVector(normal, m)
	return corners, newNormal.Normalize()
}

// applyPoseRotation applies the posed model's rotation_y then rotation_x
// about the block center (8,8,8). Only multiples of 90 degrees are valid
// per ModelReference's contract, so UV-lock
// counter-rotation is exact: rotating the block by N*90 around an axis
// rotates the projected texture by N*90 on the faces perpendicular to that
// axis, so locking counter-rotates those faces' UVs by the same amount.
func applyPoseRotation(corners [4]mgl32.Vec3, normal mgl32.Vec3, uvs [4][2]float32, rotationY, rotationX int, uvLock bool) ([4]mgl32.Vec3, mgl32.Vec3, [4][2]float32) {
	center := mgl32.Vec3{8, 8, 8}
	my := mgl32.HomogRotate3DY(mgl32.DegToRad(float32(rotationY)))
	mx := mgl32.HomogRotate3DX(mgl32.DegToRad(float32(rotationX)))
	m := mx.Mul4(my)

	for i, c := range corners {
		rotated := transformPoint(c.Sub(center), m)
		corners[i] = rotated.Add(center)
	}
	normal = transformVector(normal, m).Normalize()

	if uvLock {
		if rotationY != 0 && (normal.Y() < -0.5 || normal.Y() > 0.5) {
			uvs = rotateUV(uvs, -rotationY)
		}
		if rotationX != 0 && (normal.X() < -0.5 || normal.X() > 0.5) {
			uvs = rotateUV(uvs, -rotationX)
		}
	}
	return corners, normal, uvs
}
