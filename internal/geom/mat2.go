package geom

import "math"

// Mat2 is a 2x2 linear transform, used by wall/plane texture descriptors
// for combined scale+rotation (world-space texture sampling never needs
// translation or shear beyond this).
type Mat2 struct {
	A, B float64
	C, D float64
}

// Identity2 returns the 2x2 identity matrix.
func Identity2() Mat2 {
	return Mat2{A: 1, B: 0, C: 0, D: 1}
}

// Scale2 returns a uniform-or-nonuniform scale matrix.
func Scale2(sx, sy float64) Mat2 {
	return Mat2{A: sx, B: 0, C: 0, D: sy}
}

// Rotate2 returns a rotation matrix for angle radians.
func Rotate2(angle float64) Mat2 {
	s, c := math.Sincos(angle)
	return Mat2{A: c, B: -s, C: s, D: c}
}

// Mul returns m*other (m applied after other).
func (m Mat2) Mul(other Mat2) Mat2 {
	return Mat2{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
	}
}

// Apply transforms v by m.
func (m Mat2) Apply(v Vec2) Vec2 {
	return Vec2{X: m.A*v.X + m.B*v.Y, Y: m.C*v.X + m.D*v.Y}
}
