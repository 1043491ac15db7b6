package retro3d

import "github.com/jrdnrs/retro3d/internal/geom"

// TextureDescriptor names a texture and how it is sampled: which index
// into the TextureSet, a world-space texel offset, and a scale+rotation
// transform applied to texture coordinates before sampling (§3).
type TextureDescriptor struct {
	Index  int
	Offset geom.Vec2
	Scale  geom.Mat2
}

// Plane is a flat, infinite-in-extent floor or ceiling surface at a
// fixed world-space height (§3).
type Plane struct {
	Height  float64
	Texture TextureDescriptor
}

// Wall is one straight segment of a sector's boundary, running from A
// to B with the sector interior on its right, the winding that the wall
// rasterizer's back-face cull keeps visible from inside the sector
// (Normal points away from the interior, §3 invariants). A Wall with a
// non-nil Portal is an
// opening into NeighborSector rather than a solid surface.
type Wall struct {
	A, B    geom.Vec2
	Width   float64 // |B-A|, precomputed
	Normal  geom.Vec2
	Texture TextureDescriptor
	Portal  *Portal
}

// NewWall builds a Wall from its endpoints and texture, deriving Width
// and Normal. Width must be non-zero (§7: "Zero-length segments... must
// not be invoked").
func NewWall(a, b geom.Vec2, texture TextureDescriptor, portal *Portal) Wall {
	seg := geom.NewSegment(a, b)
	return Wall{
		A:       a,
		B:       b,
		Width:   seg.Length(),
		Normal:  seg.Normal(),
		Texture: texture,
		Portal:  portal,
	}
}

// Portal is the neighbor-sector link carried by a Wall, with its own
// upper-band and lower-band texture descriptors for the solid bands
// rasterized above/below the opening (§4.3).
type Portal struct {
	NeighborSector int
	UpperTexture   TextureDescriptor
	LowerTexture   TextureDescriptor
}

// Sector is a closed room: an ordered, simple (non-self-intersecting)
// polygon of walls plus a floor and ceiling plane (§3).
type Sector struct {
	ID      int
	Walls   []Wall
	Floor   Plane
	Ceiling Plane
}

// Sprite is a world-positioned, screen-facing billboard (§3).
type Sprite struct {
	Position    geom.Vec2
	SectorIndex int
	Width       float64
	Height      float64
	Texture     TextureDescriptor
}
