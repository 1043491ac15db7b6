package retro3d

import (
	"math"
	"testing"

	"github.com/jrdnrs/retro3d/internal/geom"
)

func TestNewWallDerivesWidthAndNormal(t *testing.T) {
	a := geom.V2(0, 0)
	b := geom.V2(4, 0)
	w := NewWall(a, b, TextureDescriptor{}, nil)

	if w.Width != 4 {
		t.Errorf("Width = %v, want 4", w.Width)
	}

	// NewWall uses the segment's left-hand normal, which points away
	// from the sector interior on the convention that walls wind with
	// their interior to the right of A->B.
	if math.Abs(w.Normal.X) > 1e-9 || w.Normal.Y <= 0 {
		t.Errorf("Normal = %+v, want roughly (0,1)", w.Normal)
	}
}

func TestNewWallNilPortalIsSolid(t *testing.T) {
	w := NewWall(geom.V2(0, 0), geom.V2(1, 0), TextureDescriptor{}, nil)
	if w.Portal != nil {
		t.Error("expected nil Portal for a solid wall")
	}
}
