package retro3d

import (
	"math"

	"github.com/jrdnrs/retro3d/internal/geom"
)

// pitchClamp bounds Camera.Pitch to keep the projected view from
// folding over itself (§6).
const pitchClamp = math.Pi / 4

// Camera is the collaborator-owned pose snapshot handed to Update each
// frame (§6). Yaw/pitch trig is cached by the caller rather than
// recomputed by the renderer, since a player controller typically only
// changes these once per frame too.
type Camera struct {
	Position geom.Vec2
	Z        float64
	Yaw      float64
	YawSin   float64
	YawCos   float64
	Pitch    float64
	PitchTan float64
}

// NewCamera builds a Camera from position, eye height, yaw and pitch,
// deriving the cached trig fields and clamping pitch to ±π/4 (§6).
func NewCamera(position geom.Vec2, z, yaw, pitch float64) Camera {
	if pitch > pitchClamp {
		pitch = pitchClamp
	} else if pitch < -pitchClamp {
		pitch = -pitchClamp
	}
	s, c := math.Sincos(yaw)
	return Camera{
		Position: position,
		Z:        z,
		Yaw:      yaw,
		YawSin:   s,
		YawCos:   c,
		Pitch:    pitch,
		PitchTan: math.Tan(pitch),
	}
}

// Direction returns the camera's unit facing vector in world space,
// derived from the cached yaw trig (SPEC_FULL §12): the world-space
// vector that ToView (§4.3 step 1) maps onto the view-space forward
// vector (0,1).
func (c Camera) Direction() geom.Vec2 {
	return geom.Vec2{X: -c.YawSin, Y: c.YawCos}
}

// ToView transforms a world-space point into this camera's view space,
// where +y points forward (§4.3 step 1).
func (c Camera) ToView(worldPoint geom.Vec2) geom.Vec2 {
	return worldPoint.Sub(c.Position).RotateCached(-c.YawSin, c.YawCos)
}

// Player is the collaborator snapshot naming the authoritative starting
// room for a frame's portal traversal (§6).
type Player struct {
	Camera      Camera
	SectorIndex int
}
