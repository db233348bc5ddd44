package geometry

// autoUV projects an element's [from,to] rectangle onto a face's plane,
// producing the UV each of the face's four corners would carry absent an
// explicit Face.uv.
//
// The per-direction formulas follow the same x/y/z-over-16 convention.
// The side faces are mirrored across the block so that opposite sides
// (north/south, west/east) produce mirrored texture orientation; down and
// up share one projection (see DESIGN.md for the derivation of the four
// not given verbatim by the source material).
func autoUV(dir string, from, to [3]float32) (u0, v0, u1, v1 float32) {
	switch dir {
	case "down", "up":
		return from[0] / 16, from[2] / 16, to[0] / 16, to[2] / 16
	case "north":
		return (16 - to[0]) / 16, (16 - to[1]) / 16, (16 - from[0]) / 16, (16 - from[1]) / 16
	case "south":
		return from[0] / 16, (16 - to[1]) / 16, to[0] / 16, (16 - from[1]) / 16
	case "west":
		return (16 - to[2]) / 16, (16 - to[1]) / 16, (16 - from[2]) / 16, (16 - from[1]) / 16
	case "east":
		return from[2] / 16, (16 - to[1]) / 16, to[2] / 16, (16 - from[1]) / 16
	default:
		return 0, 0, 1, 1
	}
}

// rotateUV rotates the four corner UVs 0/90/180/270 degrees about the
// face's center.
func rotateUV(uvs [4][2]float32, degrees int) [4][2]float32 {
	steps := (degrees / 90) % 4
	if steps < 0 {
		steps += 4
	}
	for ; steps > 0; steps-- {
		uvs = [4][2]float32{uvs[3], uvs[0], uvs[1], uvs[2]}
	}
	return uvs
}
