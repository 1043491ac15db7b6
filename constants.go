package retro3d

// Near and Far bound the view-space depth range a frame will render
// (§6). Geometry nearer than Near is clipped; geometry beyond Far is
// not drawn.
const (
	Near = 1e-5
	Far  = 512.0
)
