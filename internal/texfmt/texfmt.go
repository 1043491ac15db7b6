// Package texfmt validates and derives the power-of-two texture
// dimensions the renderer's mip pyramid and wrap-addressed sampling
// require (§9).
package texfmt

import "golang.org/x/image/math/f32"

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// NextPowerOfTwo returns the smallest power of two greater than or
// equal to v. v must be positive.
func NextPowerOfTwo(v int) int {
	n := 1
	for n < v {
		n <<= 1
	}
	return n
}

// ScaleFactor returns the (x,y) ratio between a destination and source
// extent, for driving a resampling draw.Scaler when an ingested image's
// dimensions are not already power-of-two.
func ScaleFactor(srcWidth, srcHeight, dstWidth, dstHeight int) f32.Vec2 {
	return f32.Vec2{
		float32(dstWidth) / float32(srcWidth),
		float32(dstHeight) / float32(srcHeight),
	}
}
