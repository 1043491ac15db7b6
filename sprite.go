package retro3d

import "github.com/jrdnrs/retro3d/internal/geom"

// spriteRenderer rasterizes billboard sprites: screen-facing quads that
// always interpolate texture coordinates linearly, since a billboard's
// depth is constant across its whole face (§4.5).
type spriteRenderer struct {
	clipMin []uint16
	clipMax []uint16
}

func newSpriteRenderer(width, height int) spriteRenderer {
	min := make([]uint16, width)
	max := make([]uint16, width)
	for x := range max {
		max[x] = uint16(height)
	}
	return spriteRenderer{clipMin: min, clipMax: max}
}

func (s *spriteRenderer) resize(width, height int) {
	s.clipMin = resizeUint16(s.clipMin, width, 0)
	s.clipMax = resizeUint16(s.clipMax, width, uint16(height))
}

func (s *spriteRenderer) drawSprite(r *Renderer, sprite *Sprite, texture *Texture) {
	vs := r.transformView(sprite.Position)
	depth := vs.Y

	vsA := vs.Sub(geom.V2(sprite.Width*0.5, 0))
	vsB := vs.Add(geom.V2(sprite.Width*0.5, 0))

	if !geom.NewSegment(vsA, vsB).OverlapsPolygon(r.frustum) {
		return
	}

	topLeft, _ := r.projectScreenSpace(vsA, sprite.Height)
	bottomRight, _ := r.projectScreenSpace(vsB, 0)

	height := float64(r.framebuffer.Height())
	if bottomRight.Y < 0 || topLeft.Y > height {
		return
	}

	width := r.framebuffer.Width()
	spriteXMin := geom.Clamp(int(topLeft.X), 0, width)
	spriteXMax := geom.Clamp(int(bottomRight.X), 0, width)

	portalsXMin := width
	portalsXMax := 0

	for _, portal := range r.portals.Nodes {
		if portal.SectorIndex != sprite.SectorIndex {
			continue
		}

		portalMin, portalMax := r.portals.Bounds(portal.TreeDepth)

		overlapXMin := geom.Max(spriteXMin, portal.XMin)
		overlapXMax := geom.Min(spriteXMax, portal.XMax)

		for x := overlapXMin; x < overlapXMax; x++ {
			s.clipMin[x] = portalMin[x]
			s.clipMax[x] = portalMax[x]
		}

		portalsXMin = geom.Min(portalsXMin, overlapXMin)
		portalsXMax = geom.Max(portalsXMax, overlapXMax)
	}

	spriteXMin = portalsXMin
	spriteXMax = portalsXMax
	if spriteXMin >= spriteXMax {
		return
	}

	texA := sprite.Texture.Offset
	texB := geom.V2(sprite.Width, sprite.Height).Add(sprite.Texture.Offset)
	texA = sprite.Texture.Scale.Apply(texA)
	texB = sprite.Texture.Scale.Apply(texB)

	lerp := newSpriteInterpolator(topLeft, bottomRight, texA, texB, float64(spriteXMin))

	s.rasteriseSprite(r, &lerp, texture, depth, spriteXMin, spriteXMax)
}

func (s *spriteRenderer) rasteriseSprite(r *Renderer, sprite *spriteInterpolator, texture *Texture, depth float64, xMin, xMax int) {
	normalDepth := normalizeDepth(depth)
	level := pickMipLevel(normalDepth, 0)
	scale := mipScale(level)

	darken := lightingByte(diminishLighting(normalDepth))

	for x := xMin; x < xMax; x++ {
		minBound := int(s.clipMin[x])
		maxBound := int(s.clipMax[x])

		yMin := geom.Clamp(int(sprite.topY), minBound, maxBound)
		yMax := geom.Clamp(int(sprite.bottomY), minBound, maxBound)

		s.rasteriseSpriteSpan(r, sprite, texture, level, scale, darken, x, yMin, yMax)

		sprite.stepX()
	}
}

func (s *spriteRenderer) rasteriseSpriteSpan(r *Renderer, sprite *spriteInterpolator, texture *Texture, level int, scale float64, darken uint8, x, yMin, yMax int) {
	sprite.initY(yMin)

	lvl := texture.Levels[level]
	widthMask := lvl.Width - 1
	heightMask := lvl.Height - 1

	textureX := int(sprite.u*scale) & widthMask

	for y := yMin; y < yMax; y++ {
		textureY := int(sprite.v*scale) & heightMask

		colour := texture.Sample(textureX, textureY, level).Darken(darken)
		// Sprites use alpha-test, not alpha-blend (§9): a transparent
		// texel leaves the destination pixel untouched.
		if colour.A != 0 {
			r.framebuffer.SetUnchecked(x, y, colour)
		}

		sprite.stepY()
	}
}

// spriteInterpolator tracks a billboard span's screen edges and texture
// coordinates, both interpolated linearly since a sprite face has
// constant depth (§4.5).
type spriteInterpolator struct {
	topY, bottomY float64
	u, uM         float64
	vStart, v, vM float64
}

func newSpriteInterpolator(topLeft, bottomRight, texA, texB geom.Vec2, xMin float64) spriteInterpolator {
	xDelta := bottomRight.X - topLeft.X
	yDelta := bottomRight.Y - topLeft.Y
	assertf(xDelta > 0, "newSpriteInterpolator: non-positive x delta %v", xDelta)
	assertf(yDelta > 0, "newSpriteInterpolator: non-positive y delta %v", yDelta)

	invXDelta := 1 / xDelta
	invYDelta := 1 / yDelta

	uM := (texB.X - texA.X) * invXDelta
	xClampOffset := xMin - topLeft.X
	u := texA.X + uM*xClampOffset

	vStart := texA.Y
	vM := (texB.Y - texA.Y) * invYDelta

	return spriteInterpolator{
		topY:    topLeft.Y,
		bottomY: bottomRight.Y,
		u:       u,
		uM:      uM,
		vStart:  vStart,
		v:       vStart,
		vM:      vM,
	}
}

func (s *spriteInterpolator) initY(yMin int) {
	yClampOffset := float64(yMin) - s.topY
	s.v = s.vStart + s.vM*yClampOffset
}

func (s *spriteInterpolator) stepX() {
	s.u += s.uM
}

func (s *spriteInterpolator) stepY() {
	s.v += s.vM
}
