package atlas

// RemapUV maps a face-local UV in [0,1] (as produced by internal/geometry)
// into atlas pixel space for the given region, then normalizes back to
// [0,1] against the full atlas dimensions. A half-texel inward nudge
// keeps samples from landing exactly on the tile's padding seam.
func RemapUV(u, v float32, region Region, atlasW, atlasH int) (float32, float32) {
	const halfTexel = 0.5

	px := float32(region.X) + halfTexel + u*(float32(region.W)-2*halfTexel)
	py := float32(region.Y) + halfTexel + v*(float32(region.H)-2*halfTexel)

	return px / float32(atlasW), py / float32(atlasH)
}

// RemapQuadUVs rewrites all four corners of a face's UVs in place-style,
// returning the remapped array.
func RemapQuadUVs(uvs [4][2]float32, region Region, atlasW, atlasH int) [4][2]float32 {
	var out [4][2]float32
	for i, uv := range uvs {
		out[i][0], out[i][1] = RemapUV(uv[0], uv[1], region, atlasW, atlasH)
	}
	return out
}

// AnimationFrameRegion returns the region for a specific frame of an
// animated texture, keyed by the deterministic "path#frame_i" naming
// Build assigns.
func AnimationFrameRegion(regions map[string]Region, path string, frame int) (Region, bool) {
	r, ok := regions[framePath(path, frame)]
	return r, ok
}
