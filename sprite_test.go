package retro3d

import (
	"math"
	"testing"

	"github.com/jrdnrs/retro3d/internal/geom"
)

func TestSpriteInterpolatorClampsAtXMin(t *testing.T) {
	topLeft := geom.V2(0, 0)
	bottomRight := geom.V2(10, 10)
	texA := geom.V2(0, 0)
	texB := geom.V2(8, 8)

	lerp := newSpriteInterpolator(topLeft, bottomRight, texA, texB, 5)
	want := texA.X + lerp.uM*5
	if math.Abs(lerp.u-want) > 1e-9 {
		t.Errorf("u at xMin=5 = %v, want %v", lerp.u, want)
	}
}

func TestSpriteInterpolatorStepXAdvancesU(t *testing.T) {
	lerp := newSpriteInterpolator(geom.V2(0, 0), geom.V2(4, 4), geom.V2(0, 0), geom.V2(8, 8), 0)
	before := lerp.u
	lerp.stepX()
	if math.Abs(lerp.u-(before+lerp.uM)) > 1e-9 {
		t.Error("stepX should advance u by uM")
	}
}

func TestSpriteInterpolatorInitYUsesVStart(t *testing.T) {
	lerp := newSpriteInterpolator(geom.V2(0, 0), geom.V2(4, 4), geom.V2(0, 2), geom.V2(4, 10), 0)
	lerp.initY(0)
	if math.Abs(lerp.v-2) > 1e-9 {
		t.Errorf("v at yMin=topY = %v, want 2", lerp.v)
	}
}

func TestMinMaxInt(t *testing.T) {
	if geom.Min(3, 7) != 3 || geom.Min(7, 3) != 3 {
		t.Error("geom.Min incorrect")
	}
	if geom.Max(3, 7) != 7 || geom.Max(7, 3) != 7 {
		t.Error("geom.Max incorrect")
	}
}
