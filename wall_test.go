package retro3d

import (
	"math"
	"testing"

	"github.com/jrdnrs/retro3d/internal/geom"
)

func TestClipNearPlaneLeavesUnclippedSegmentUnchanged(t *testing.T) {
	a := geom.V2(0, 1)
	b := geom.V2(1, 1)
	texA := geom.V2(0, 0)
	texB := geom.V2(1, 1)

	gotA, gotB, gotTexA, gotTexB := clipNearPlane(a, b, texA, texB)
	if gotA != a || gotB != b || gotTexA != texA || gotTexB != texB {
		t.Errorf("expected no change for already-visible segment, got a=%+v b=%+v texA=%+v texB=%+v", gotA, gotB, gotTexA, gotTexB)
	}
}

func TestClipNearPlaneMovesClippedEndpointToNear(t *testing.T) {
	a := geom.V2(0, -1) // behind the near plane
	b := geom.V2(2, 3)
	texA := geom.V2(0, 0)
	texB := geom.V2(4, 0)

	gotA, _, gotTexA, _ := clipNearPlane(a, b, texA, texB)

	if math.Abs(gotA.Y-Near) > 1e-9 {
		t.Errorf("clipped endpoint Y = %v, want %v", gotA.Y, Near)
	}
	if gotTexA.X <= texA.X || gotTexA.X >= texB.X {
		t.Errorf("clipped tex coordinate %v should lie strictly between %v and %v", gotTexA.X, texA.X, texB.X)
	}
}

func TestWallInterpolatorStepXMatchesGradient(t *testing.T) {
	topA := geom.V2(0, 10)
	topB := geom.V2(10, 20)
	bottomA := geom.V2(0, 100)
	bottomB := geom.V2(10, 120)
	texA := geom.V2(0, 0)
	texB := geom.V2(10, 0)

	lerp := newWallInterpolator(topA, topB, bottomA, bottomB, texA, texB, 1, 1, 0, 0.1)

	startTopY := lerp.topY
	lerp.stepX()
	if math.Abs(lerp.topY-(startTopY+lerp.topYM)) > 1e-9 {
		t.Errorf("stepX did not advance topY by the gradient")
	}
}

func TestWallInterpolatorInitYStartsAtVStart(t *testing.T) {
	topA := geom.V2(0, 10)
	topB := geom.V2(10, 10)
	bottomA := geom.V2(0, 20)
	bottomB := geom.V2(10, 20)
	texA := geom.V2(0, 5)
	texB := geom.V2(10, 5)

	lerp := newWallInterpolator(topA, topB, bottomA, bottomB, texA, texB, 1, 1, 0, 0.1)
	lerp.initY(10)

	if math.Abs(lerp.v-5) > 1e-9 {
		t.Errorf("v after initY at top edge = %v, want 5", lerp.v)
	}
}

func TestClampInt(t *testing.T) {
	cases := []struct{ v, lo, hi, want int }{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, c := range cases {
		if got := geom.Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("geom.Clamp(%d,%d,%d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
}
