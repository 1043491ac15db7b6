package retro3d

import (
	"fmt"
	"math"

	"github.com/jrdnrs/retro3d/internal/geom"
)

// State exposes the renderer's per-frame derived state that callers may
// want to inspect, such as the Debug flag (§6).
type State struct {
	Debug bool
}

// Renderer draws a player's view of a collection of sectors and sprites
// into an owned Framebuffer (§6). It has exactly one output target, so
// unlike a general-purpose rasterizer it owns its Framebuffer directly
// rather than drawing into a caller-supplied render target.
type Renderer struct {
	framebuffer *Framebuffer
	camera      Camera
	frustum     geom.Polygon

	hFovRadians, vFovRadians float64

	focalWidth, focalHeight       float64
	invFocalWidth, invFocalHeight float64

	pitchShear float64

	state State

	portals *PortalTree
	wall    wallRenderer
	plane   planeRenderer
	sprite  spriteRenderer
}

// NewRenderer builds a Renderer for a width x height viewport with the
// given horizontal field of view in degrees (§6).
func NewRenderer(width, height int, hFovDegrees float64) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("retro3d: new renderer: %w", ErrViewportTooSmall)
	}

	r := &Renderer{
		framebuffer: NewFramebuffer(width, height),
		hFovRadians: hFovDegrees * math.Pi / 180,
	}
	r.vFovRadians = r.hFovRadians / r.aspectRatio()
	r.recomputeFocal()
	r.frustum = viewFrustum(r.hFovRadians)

	r.portals = NewPortalTree(width, height)
	r.wall = newWallRenderer(width, height)
	r.plane = newPlaneRenderer(height)
	r.sprite = newSpriteRenderer(width, height)

	return r, nil
}

func (r *Renderer) aspectRatio() float64 {
	return float64(r.framebuffer.Width()) / float64(r.framebuffer.Height())
}

func (r *Renderer) recomputeFocal() {
	halfWidth := float64(r.framebuffer.Width()) / 2
	halfHeight := float64(r.framebuffer.Height()) / 2
	r.focalWidth, r.focalHeight = focalDimensions(halfWidth, halfHeight, r.hFovRadians, r.vFovRadians)
	r.invFocalWidth = 1 / r.focalWidth
	r.invFocalHeight = 1 / r.focalHeight
}

// SetViewport resizes the framebuffer and every internal buffer that is
// sized to it. A no-op when the dimensions are unchanged (§6).
func (r *Renderer) SetViewport(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("retro3d: set viewport: %w", ErrViewportTooSmall)
	}
	if width == r.framebuffer.Width() && height == r.framebuffer.Height() {
		return nil
	}

	Logger().Debug("viewport resized", "width", width, "height", height)

	r.framebuffer.Resize(width, height)
	r.vFovRadians = r.hFovRadians / r.aspectRatio()
	r.recomputeFocal()

	r.portals.ResizeBounds(width, height)
	r.wall.resize(width, height)
	r.plane.resize(height)
	r.sprite.resize(width, height)

	return nil
}

// SetFov updates the horizontal field of view in degrees, recomputing
// the derived vertical FOV, focal scale and view frustum. A no-op when
// unchanged (§6).
func (r *Renderer) SetFov(hFovDegrees float64) {
	hFovRadians := hFovDegrees * math.Pi / 180
	if hFovRadians == r.hFovRadians {
		return
	}

	Logger().Debug("fov changed", "h_fov_degrees", hFovDegrees)

	r.hFovRadians = hFovRadians
	r.vFovRadians = r.hFovRadians / r.aspectRatio()
	r.recomputeFocal()
	r.frustum = viewFrustum(r.hFovRadians)
}

// Framebuffer returns the most recently rendered frame (§6).
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.framebuffer
}

// State returns the renderer's inspectable per-frame state (§6).
func (r *Renderer) State() *State {
	return &r.state
}

// transformView transforms a world-space point into view space, where
// +y points forward from the camera (§4.3 step 1).
func (r *Renderer) transformView(point geom.Vec2) geom.Vec2 {
	return r.camera.ToView(point)
}

// projectScreenSpace perspective-projects a view-space point at the
// given world-space height offset into screen space, returning the
// screen coordinate and its inverse depth (§4.3 steps 3-5).
func (r *Renderer) projectScreenSpace(point geom.Vec2, heightOffset float64) (geom.Vec2, float64) {
	z := point.Y
	assertf(z > 0, "projectScreenSpace: non-positive depth %v, wall was not near-clipped", z)
	invZ := 1 / z

	y := r.camera.Z - heightOffset

	halfWidth := float64(r.framebuffer.Width()) / 2
	halfHeight := float64(r.framebuffer.Height()) / 2

	screenX := (point.X * r.focalWidth) * invZ
	screenY := (y * r.focalHeight) * invZ
	screenY += r.pitchShear

	screenX += halfWidth
	screenY += halfHeight

	return geom.Vec2{X: screenX, Y: screenY}, invZ
}

// fromView maps a view-space point back into world space, the inverse
// of transformView (used by plane span reprojection, §4.4 step 3).
func (r *Renderer) fromView(point geom.Vec2) geom.Vec2 {
	return point.RotateCached(r.camera.YawSin, r.camera.YawCos).Add(r.camera.Position)
}

// viewFrustum builds the four-vertex view-space trapezoid used for
// frustum culling (§12): {(-near*t,near),(near*t,near),(far*t,far),(-far*t,far)}
// where t = tan(hFov/2).
func viewFrustum(hFovRadians float64) geom.Polygon {
	t := tanHalf(hFovRadians)
	oppFar := Far * t
	oppNear := Near * t

	return geom.NewPolygon([]geom.Vec2{
		{X: -oppFar, Y: Far},
		{X: oppFar, Y: Far},
		{X: oppNear, Y: Near},
		{X: -oppNear, Y: Near},
	})
}

// Update renders one frame for the given player, textures, sectors and
// sprites into the renderer's framebuffer (§6). It returns a wrapped
// sentinel error if player.SectorIndex, a wall's Portal.NeighborSector
// or a sprite's SectorIndex names an out-of-range sector, if a sector's
// ID does not match its slice index, or if a wall, portal band, plane or
// sprite names a texture index the TextureSet does not hold; other
// invariants are programmer errors checked via panics when debug
// assertions are enabled (§7).
func (r *Renderer) Update(player Player, textures TextureSet, sectors []Sector, sprites []Sprite) error {
	if player.SectorIndex < 0 || player.SectorIndex >= len(sectors) {
		return fmt.Errorf("retro3d: update: player sector %d: %w", player.SectorIndex, ErrInvalidSector)
	}

	r.camera = player.Camera
	r.pitchShear = r.camera.PitchTan * r.focalHeight

	r.portals.Reset()
	r.plane.update(r.framebuffer.Height(), r.focalHeight, r.pitchShear)

	r.portals.PushNode(PortalNode{
		TreeDepth:   0,
		SectorIndex: player.SectorIndex,
		XMin:        0,
		XMax:        r.framebuffer.Width(),
		DepthMin:    Near,
		DepthMax:    Near,
	})

	for portalIndex := 0; portalIndex < len(r.portals.Nodes); portalIndex++ {
		sectorIndex := r.portals.Nodes[portalIndex].SectorIndex
		if sectorIndex < 0 || sectorIndex >= len(sectors) {
			return fmt.Errorf("retro3d: update: sector %d: %w", sectorIndex, ErrInvalidSector)
		}
		sector := sectors[sectorIndex]
		if sector.ID != sectorIndex {
			return fmt.Errorf("retro3d: update: sectors[%d].ID is %d: %w", sectorIndex, sector.ID, ErrInvalidSector)
		}

		if err := r.drawSector(textures, sectors, sector, portalIndex); err != nil {
			return err
		}
	}

	for i := range sprites {
		sprite := &sprites[i]
		if sprite.SectorIndex < 0 || sprite.SectorIndex >= len(sectors) {
			return fmt.Errorf("retro3d: update: sprite %d sector %d: %w", i, sprite.SectorIndex, ErrInvalidSprite)
		}
		texture, ok := textures.Texture(sprite.Texture.Index)
		if !ok {
			return fmt.Errorf("retro3d: update: sprite %d texture %d: %w", i, sprite.Texture.Index, ErrInvalidSprite)
		}
		r.sprite.drawSprite(r, sprite, texture)
	}

	if r.state.Debug {
		r.debugDrawPortals()
	}

	return nil
}

func (r *Renderer) drawSector(textures TextureSet, sectors []Sector, sector Sector, portalIndex int) error {
	for i := range sector.Walls {
		wall := &sector.Walls[i]
		if err := r.wall.render(r, r.portals, sectors, textures, portalIndex, wall); err != nil {
			return err
		}
	}

	portal := r.portals.Nodes[portalIndex]
	minPortalBounds, maxPortalBounds := r.portals.Bounds(portal.TreeDepth)
	minWallBounds, maxWallBounds := r.wall.bounds()

	vsCeilingHeight := r.camera.Z - sector.Ceiling.Height
	vsFloorHeight := r.camera.Z - sector.Floor.Height

	ceilingTexture, ok := textures.Texture(sector.Ceiling.Texture.Index)
	if !ok {
		return fmt.Errorf("retro3d: update: sector %d ceiling texture %d: %w", sector.ID, sector.Ceiling.Texture.Index, ErrInvalidSector)
	}
	floorTexture, ok := textures.Texture(sector.Floor.Texture.Index)
	if !ok {
		return fmt.Errorf("retro3d: update: sector %d floor texture %d: %w", sector.ID, sector.Floor.Texture.Index, ErrInvalidSector)
	}

	r.plane.drawPlane(r, portal, minPortalBounds, minWallBounds, vsCeilingHeight, ceilingTexture, sector.Ceiling.Texture)
	r.plane.drawPlane(r, portal, maxWallBounds, maxPortalBounds, vsFloorHeight, floorTexture, sector.Floor.Texture)

	return nil
}

func (r *Renderer) debugDrawPortals() {
	for _, portal := range r.portals.Nodes {
		if portal.XMin == portal.XMax {
			continue
		}

		depth := uint8(portal.TreeDepth) //nolint:gosec // tree depth is below maxPortalDepth (64)
		colour := BGRA{
			R: 192*depth + 64,
			G: 64*depth + 32,
			B: 32*depth + 192,
			A: 160,
		}

		min, max := r.portals.Bounds(portal.TreeDepth)
		leftX := portal.XMin
		rightX := portal.XMax - 1

		for y := min[leftX]; y < max[leftX]; y++ {
			r.framebuffer.Blend(leftX, int(y), colour)
		}
		for y := min[rightX]; y < max[rightX]; y++ {
			r.framebuffer.Blend(rightX, int(y), colour)
		}

		for x := portal.XMin; x < portal.XMax; x++ {
			if min[x] == max[x] {
				continue
			}
			topY := int(min[x])
			bottomY := int(max[x]) - 1
			r.framebuffer.Blend(x, topY, colour)
			r.framebuffer.Blend(x, bottomY, colour)
		}
	}
}
