package geom

import (
	"math"
	"testing"
)

func TestVec2RotateCachedMatchesRotate(t *testing.T) {
	v := V2(3, -4)
	angle := 0.37

	got := v.RotateCached(math.Sin(angle), math.Cos(angle))
	want := v.Rotate(angle)

	if !approxVec(got, want, 1e-9) {
		t.Errorf("RotateCached() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := V2(3, 4)
	n := v.Normalize()
	if math.Abs(n.Length()-1) > 1e-9 {
		t.Errorf("Normalize() length = %v, want 1", n.Length())
	}

	zero := Vec2{}.Normalize()
	if zero != (Vec2{}) {
		t.Errorf("Normalize() of zero vector = %v, want zero", zero)
	}
}

func TestVec2Perp(t *testing.T) {
	v := V2(1, 0)
	p := v.Perp()
	if math.Abs(v.Dot(p)) > 1e-12 {
		t.Errorf("Perp() not perpendicular: dot = %v", v.Dot(p))
	}
}

func TestMat2RotateApply(t *testing.T) {
	m := Rotate2(math.Pi / 2)
	got := m.Apply(V2(1, 0))
	want := V2(0, 1)
	if !approxVec(got, want, 1e-9) {
		t.Errorf("Rotate2(pi/2).Apply((1,0)) = %v, want %v", got, want)
	}
}

func TestMat2MulIdentity(t *testing.T) {
	m := Scale2(2, 3)
	got := m.Mul(Identity2())
	if got != m {
		t.Errorf("m * Identity = %v, want %v", got, m)
	}
}
