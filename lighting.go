package retro3d

import "github.com/jrdnrs/retro3d/internal/geom"

// lightIntensity is the fixed blend factor I between flat ambient light
// and the angle-based term in wallLighting (§4.3 step 10).
const lightIntensity = 0.7

// dirLight is the fixed world-space light direction used by wall
// lighting's angle term. original_source fixes this to a constant
// overhead-ish direction rather than deriving it from any per-frame
// state.
var dirLight = geom.V2(0, -1)

// wallAngleFactor is the angle-based lighting term for a wall with the
// given outward normal (§4.3 step 10):
// 0.5*(dirLight . (-normal)) + 0.5.
func wallAngleFactor(normal geom.Vec2) float64 {
	return 0.5*dirLight.Dot(normal.Neg()) + 0.5
}

// wallLighting combines the angle factor with the fixed intensity I
// (§4.3 step 10): lighting = (1-I) + I*angleFactor.
func wallLighting(normal geom.Vec2) float64 {
	return (1 - lightIntensity) + lightIntensity*wallAngleFactor(normal)
}

// diminishLighting is the depth-based attenuation term (§4.3 step 10,
// §12): min(1, 1.5*(1-normalDepth)^3).
func diminishLighting(normalDepth float64) float64 {
	t := 1 - normalDepth
	v := 1.5 * t * t * t
	if v > 1 {
		return 1
	}
	return v
}

// lightingByte converts a combined [0,1] lighting factor into the
// integer darken multiplier k used by BGRA.Darken (§4.1, §4.3 step 10).
func lightingByte(lighting float64) uint8 {
	if lighting <= 0 {
		return 0
	}
	if lighting >= 1 {
		return 255
	}
	return uint8(lighting * 255) //nolint:gosec // bounded to [0,255] above
}
