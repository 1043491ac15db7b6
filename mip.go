package retro3d

import "math"

func tanHalf(angleRadians float64) float64 {
	return math.Tan(angleRadians / 2)
}

// normalizeDepth maps a view-space depth to [0,1] against the render
// distance bounds (§4.2).
func normalizeDepth(depth float64) float64 {
	return (depth - Near) / (Far - Near)
}

// pickMipLevel maps a normalized depth to a mip level index (§4.2):
// level = min(floor((MIP_FACTOR + bias) * normalDepth), MipLevels-1).
// bias lets oblique plane rows and near-horizon slopes fall back to a
// coarser level than a wall at the same depth would (§4.4 step 2).
func pickMipLevel(normalDepth, bias float64) int {
	level := int((MipFactor + bias) * normalDepth)
	if level < 0 {
		level = 0
	}
	if level > MipLevels-1 {
		level = MipLevels - 1
	}
	return level
}

// focalDimensions derives focal_width and focal_height from the
// framebuffer half-dimensions and the horizontal/vertical FOV (§3).
func focalDimensions(halfWidth, halfHeight, hFovRadians, vFovRadians float64) (focalWidth, focalHeight float64) {
	return halfWidth / tanHalf(hFovRadians), halfHeight / tanHalf(vFovRadians)
}
