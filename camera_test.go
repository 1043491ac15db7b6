package retro3d

import (
	"math"
	"testing"

	"github.com/jrdnrs/retro3d/internal/geom"
)

func TestNewCameraClampsPitch(t *testing.T) {
	c := NewCamera(geom.V2(0, 0), 0, 0, math.Pi)
	if c.Pitch != pitchClamp {
		t.Errorf("Pitch = %v, want %v", c.Pitch, pitchClamp)
	}

	c = NewCamera(geom.V2(0, 0), 0, 0, -math.Pi)
	if c.Pitch != -pitchClamp {
		t.Errorf("Pitch = %v, want %v", c.Pitch, -pitchClamp)
	}
}

func TestCameraDirectionMatchesYaw(t *testing.T) {
	c := NewCamera(geom.V2(0, 0), 0, math.Pi/2, 0)
	d := c.Direction()
	if math.Abs(d.X+1) > 1e-9 || math.Abs(d.Y) > 1e-9 {
		t.Errorf("Direction() = %+v, want approximately (-1,0)", d)
	}
}

func TestCameraToViewRoundTrip(t *testing.T) {
	c := NewCamera(geom.V2(5, -3), 0, 0.4, 0)
	world := geom.V2(12, 7)

	view := c.ToView(world)
	back := view.RotateCached(c.YawSin, c.YawCos).Add(c.Position)

	if math.Abs(back.X-world.X) > 1e-9 || math.Abs(back.Y-world.Y) > 1e-9 {
		t.Errorf("round trip = %+v, want %+v", back, world)
	}
}

func TestCameraToViewOriginIsZero(t *testing.T) {
	c := NewCamera(geom.V2(1, 2), 0, 1.234, 0)
	view := c.ToView(c.Position)
	if view.Length() > 1e-9 {
		t.Errorf("ToView(Position) = %+v, want zero vector", view)
	}
}
