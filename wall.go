package retro3d

import (
	"fmt"

	"github.com/jrdnrs/retro3d/internal/geom"
)

// wallRenderer rasterizes the solid and portal walls of a sector,
// tracking the per-column Y range it has already covered so the plane
// rasterizer can fill the remaining floor/ceiling spans (§4.3).
//
// wallBoundsMin/Max have no separate clear pass between frames: each
// wall writes the columns [xMin,xMax) it covers, and the walls of a
// closed sector seen from inside cover the current portal's column
// range without overlapping, so for the columns a node's planes read,
// the write itself acts as the reset.
type wallRenderer struct {
	wallBoundsMin []uint16
	wallBoundsMax []uint16
}

func newWallRenderer(width, height int) wallRenderer {
	min := make([]uint16, width)
	max := make([]uint16, width)
	for x := range max {
		max[x] = uint16(height)
	}
	return wallRenderer{wallBoundsMin: min, wallBoundsMax: max}
}

func (w *wallRenderer) resize(width, height int) {
	w.wallBoundsMin = resizeUint16(w.wallBoundsMin, width, 0)
	w.wallBoundsMax = resizeUint16(w.wallBoundsMax, width, uint16(height))
}

func (w *wallRenderer) bounds() (min, max []uint16) {
	return w.wallBoundsMin, w.wallBoundsMax
}

// render dispatches a Wall to the portal or solid rasterizer depending
// on whether it carries a Portal link (§4.3).
func (w *wallRenderer) render(r *Renderer, portals *PortalTree, sectors []Sector, textures TextureSet, portalIndex int, wall *Wall) error {
	if wall.Portal != nil {
		portal := portals.Nodes[portalIndex]
		sector := sectors[portal.SectorIndex]

		if wall.Portal.NeighborSector < 0 || wall.Portal.NeighborSector >= len(sectors) {
			return fmt.Errorf("retro3d: wall portal neighbor sector %d: %w", wall.Portal.NeighborSector, ErrInvalidSector)
		}
		nextSector := sectors[wall.Portal.NeighborSector]

		upperTexture, ok := textures.Texture(wall.Portal.UpperTexture.Index)
		if !ok {
			return fmt.Errorf("retro3d: wall portal upper texture %d: %w", wall.Portal.UpperTexture.Index, ErrInvalidSector)
		}
		lowerTexture, ok := textures.Texture(wall.Portal.LowerTexture.Index)
		if !ok {
			return fmt.Errorf("retro3d: wall portal lower texture %d: %w", wall.Portal.LowerTexture.Index, ErrInvalidSector)
		}

		w.drawPortalWall(r, portals, portalIndex, sector, nextSector, wall, upperTexture, lowerTexture)
		return nil
	}

	portal := &portals.Nodes[portalIndex]
	sector := sectors[portal.SectorIndex]
	texture, ok := textures.Texture(wall.Texture.Index)
	if !ok {
		return fmt.Errorf("retro3d: wall texture %d: %w", wall.Texture.Index, ErrInvalidSector)
	}
	yMin, yMax := portals.Bounds(portal.TreeDepth)

	w.drawWall(r, portal, yMin, yMax, sector, wall, texture)
	return nil
}

func (w *wallRenderer) drawWall(r *Renderer, portal *PortalNode, yBoundsMin, yBoundsMax []uint16, sector Sector, wall *Wall, texture *Texture) {
	vsA := r.transformView(wall.A)
	vsB := r.transformView(wall.B)

	if !geom.NewSegment(vsA, vsB).OverlapsPolygon(r.frustum) {
		return
	}

	texA := wall.Texture.Offset
	texB := geom.V2(wall.Width, sector.Ceiling.Height-sector.Floor.Height).Add(wall.Texture.Offset)
	texA = wall.Texture.Scale.Apply(texA)
	texB = wall.Texture.Scale.Apply(texB)

	vsA, vsB, texA, texB = clipNearPlane(vsA, vsB, texA, texB)

	topA, invDepthA := r.projectScreenSpace(vsA, sector.Ceiling.Height)
	topB, invDepthB := r.projectScreenSpace(vsB, sector.Ceiling.Height)
	bottomA, _ := r.projectScreenSpace(vsA, sector.Floor.Height)
	bottomB, _ := r.projectScreenSpace(vsB, sector.Floor.Height)

	if topA.X >= topB.X {
		return
	}
	if topB.X < float64(portal.XMin) || topA.X > float64(portal.XMax) {
		return
	}

	xMin := geom.Clamp(int(topA.X), portal.XMin, portal.XMax)
	xMax := geom.Clamp(int(topB.X), portal.XMin, portal.XMax)

	xDelta := topB.X - topA.X
	assertf(xDelta > 0, "drawWall: non-positive x delta %v after back-face cull", xDelta)
	invXDelta := 1 / xDelta

	lerp := newWallInterpolator(topA, topB, bottomA, bottomB, texA, texB, invDepthA, invDepthB, float64(xMin), invXDelta)

	depthA := vsA.Y
	depthB := vsB.Y
	depthGradient := (depthB - depthA) * invXDelta
	depthA += depthGradient * (float64(xMin) - topA.X)
	depthB += depthGradient * (float64(xMax) - topB.X)
	portal.DepthMax = geom.Max(portal.DepthMax, geom.Max(depthA, depthB))

	lighting := wallLighting(wall.Normal)

	w.rasteriseWall(r, &lerp, lighting, texture, yBoundsMin, yBoundsMax, xMin, xMax)
}

func (w *wallRenderer) drawPortalWall(r *Renderer, portals *PortalTree, portalIndex int, sector, nextSector Sector, wall *Wall, upperTexture, lowerTexture *Texture) {
	portal := &portals.Nodes[portalIndex]

	vsA := r.transformView(wall.A)
	vsB := r.transformView(wall.B)

	if !geom.NewSegment(vsA, vsB).OverlapsPolygon(r.frustum) {
		return
	}

	upperTexA := wall.Texture.Offset
	upperTexB := geom.V2(wall.Width, sector.Ceiling.Height-nextSector.Ceiling.Height).Add(wall.Texture.Offset)
	upperTexA = wall.Texture.Scale.Apply(upperTexA)
	upperTexB = wall.Texture.Scale.Apply(upperTexB)

	lowerTexA := geom.V2(0, sector.Ceiling.Height-nextSector.Floor.Height).Add(wall.Texture.Offset)
	lowerTexB := geom.V2(wall.Width, sector.Ceiling.Height-sector.Floor.Height).Add(wall.Texture.Offset)
	lowerTexA = wall.Texture.Scale.Apply(lowerTexA)
	lowerTexB = wall.Texture.Scale.Apply(lowerTexB)

	var clippedA, clippedB geom.Vec2
	clippedA, clippedB, upperTexA, upperTexB = clipNearPlane(vsA, vsB, upperTexA, upperTexB)
	_, _, lowerTexA, lowerTexB = clipNearPlane(vsA, vsB, lowerTexA, lowerTexB)
	vsA, vsB = clippedA, clippedB

	topA, invDepthA := r.projectScreenSpace(vsA, sector.Ceiling.Height)
	topB, invDepthB := r.projectScreenSpace(vsB, sector.Ceiling.Height)

	if topA.X >= topB.X {
		return
	}
	if topB.X < float64(portal.XMin) || topA.X > float64(portal.XMax) {
		return
	}

	bottomA, _ := r.projectScreenSpace(vsA, sector.Floor.Height)
	bottomB, _ := r.projectScreenSpace(vsB, sector.Floor.Height)
	nextTopA, _ := r.projectScreenSpace(vsA, nextSector.Ceiling.Height)
	nextTopB, _ := r.projectScreenSpace(vsB, nextSector.Ceiling.Height)
	nextBottomA, _ := r.projectScreenSpace(vsA, nextSector.Floor.Height)
	nextBottomB, _ := r.projectScreenSpace(vsB, nextSector.Floor.Height)

	xMin := geom.Clamp(int(topA.X), portal.XMin, portal.XMax)
	xMax := geom.Clamp(int(topB.X), portal.XMin, portal.XMax)

	xDelta := topB.X - topA.X
	assertf(xDelta > 0, "drawPortalWall: non-positive x delta %v after back-face cull", xDelta)
	invXDelta := 1 / xDelta

	upperLerp := newWallInterpolator(topA, topB, nextTopA, nextTopB, upperTexA, upperTexB, invDepthA, invDepthB, float64(xMin), invXDelta)
	lowerLerp := newWallInterpolator(nextBottomA, nextBottomB, bottomA, bottomB, lowerTexA, lowerTexB, invDepthA, invDepthB, float64(xMin), invXDelta)

	depthA := vsA.Y
	depthB := vsB.Y
	depthGradient := (depthB - depthA) * invXDelta
	depthA += depthGradient * (float64(xMin) - topA.X)
	depthB += depthGradient * (float64(xMax) - topB.X)
	minDepth := geom.Min(depthA, depthB)
	maxDepth := geom.Max(depthA, depthB)
	portal.DepthMax = geom.Max(portal.DepthMax, maxDepth)

	currentTreeDepth := portal.TreeDepth
	pushed := portals.PushNode(PortalNode{
		TreeDepth:   currentTreeDepth + 1,
		SectorIndex: nextSector.ID,
		XMin:        xMin,
		XMax:        xMax,
		DepthMin:    minDepth,
		DepthMax:    maxDepth,
	})
	if !pushed {
		return
	}

	readMin, readMax, writeMin, writeMax := portals.TwoDepthBounds(currentTreeDepth, currentTreeDepth+1)

	lighting := wallLighting(wall.Normal)

	w.rasterisePortalWall(r, &upperLerp, &lowerLerp, lighting, upperTexture, lowerTexture, readMin, readMax, writeMin, writeMax, xMin, xMax)
}

// clipNearPlane clips segment a-b (with parallel texture coordinates)
// against the near plane, moving whichever endpoint lies behind it
// (y < Near) onto it (§4.3 step 4).
func clipNearPlane(a, b, texA, texB geom.Vec2) (geom.Vec2, geom.Vec2, geom.Vec2, geom.Vec2) {
	if a.Y < Near {
		t := (Near - a.Y) / (b.Y - a.Y)
		a.X += (b.X - a.X) * t
		a.Y = Near
		texA.X += (texB.X - texA.X) * t
	} else if b.Y < Near {
		t := (Near - b.Y) / (a.Y - b.Y)
		b.X += (a.X - b.X) * t
		b.Y = Near
		texB.X += (texA.X - texB.X) * t
	}
	return a, b, texA, texB
}

func (w *wallRenderer) rasteriseWall(r *Renderer, wall *wallInterpolator, lighting float64, texture *Texture, yBoundsMin, yBoundsMax []uint16, xMin, xMax int) {
	for x := xMin; x < xMax; x++ {
		minBound := int(yBoundsMin[x])
		maxBound := int(yBoundsMax[x])

		yMin := geom.Clamp(int(wall.topY), minBound, maxBound)
		yMax := geom.Clamp(int(wall.bottomY), minBound, maxBound)

		w.rasteriseWallSpan(r, wall, lighting, texture, x, yMin, yMax)

		w.wallBoundsMin[x] = uint16(yMin)
		w.wallBoundsMax[x] = uint16(yMax)

		wall.stepX()
	}
}

func (w *wallRenderer) rasterisePortalWall(r *Renderer, upper, lower *wallInterpolator, lighting float64, upperTexture, lowerTexture *Texture, readMin, readMax, writeMin, writeMax []uint16, xMin, xMax int) {
	for x := xMin; x < xMax; x++ {
		minBound := int(readMin[x])
		maxBound := int(readMax[x])

		upperYMin := geom.Clamp(int(upper.topY), minBound, maxBound)
		upperYMax := geom.Clamp(int(upper.bottomY), minBound, maxBound)
		if upperYMax < upperYMin {
			upperYMax = upperYMin
		}

		lowerYMax := geom.Clamp(int(lower.bottomY), minBound, maxBound)
		lowerYMin := geom.Clamp(int(lower.topY), minBound, maxBound)
		if lowerYMin > lowerYMax {
			lowerYMin = lowerYMax
		}

		if lowerYMax < upperYMax {
			lowerYMax = upperYMax
		}
		if lowerYMin < upperYMax {
			lowerYMin = upperYMax
		}

		w.rasteriseWallSpan(r, upper, lighting, upperTexture, x, upperYMin, upperYMax)
		w.rasteriseWallSpan(r, lower, lighting, lowerTexture, x, lowerYMin, lowerYMax)

		w.wallBoundsMin[x] = uint16(upperYMin)
		w.wallBoundsMax[x] = uint16(lowerYMax)

		writeMin[x] = uint16(upperYMax)
		writeMax[x] = uint16(lowerYMin)

		upper.stepX()
		lower.stepX()
	}
}

func (w *wallRenderer) rasteriseWallSpan(r *Renderer, wall *wallInterpolator, lighting float64, texture *Texture, x, yMin, yMax int) {
	wall.initY(yMin)

	depth := 1 / wall.invDepth
	normalDepth := normalizeDepth(depth)
	level := pickMipLevel(normalDepth, 0)
	scale := mipScale(level)

	darken := lightingByte(diminishLighting(normalDepth) * lighting)

	u := wall.uDepth * depth

	lvl := texture.Levels[level]
	widthMask := lvl.Width - 1
	heightMask := lvl.Height - 1

	textureX := int(u*scale) & widthMask

	for y := yMin; y < yMax; y++ {
		textureY := int(wall.v*scale) & heightMask

		colour := texture.Sample(textureX, textureY, level).Darken(darken)
		r.framebuffer.SetUnchecked(x, y, colour)

		wall.stepY()
	}
}

// wallInterpolator tracks a wall span's screen-space top/bottom edges,
// perspective-correct U coordinate and linear V coordinate across a
// column range (§4.3).
type wallInterpolator struct {
	invDepth, topY, bottomY, uDepth     float64
	invDepthM, topYM, bottomYM, uDepthM float64
	vStart, vDelta, v, vM               float64
}

// newWallInterpolator builds a wallInterpolator for one wall span. U is
// stored divided by depth (perspective-correct); depth is constant down
// a single column, so V interpolates linearly in y, set up lazily in
// initY.
//
// The start value is anchored at whichever endpoint has the larger
// inverse depth (the nearer one): when a wall has been near-clipped,
// the X offset from the clipped vertex to x_min can be extremely large
// relative to NEAR, and interpolating from the clipped vertex would
// lose precision (§4.3 step 8).
func newWallInterpolator(topA, topB, bottomA, bottomB, texA, texB geom.Vec2, invDepthA, invDepthB, xMin, invXDelta float64) wallInterpolator {
	uDepthA := texA.X * invDepthA
	uDepthB := texB.X * invDepthB

	invDepthM := (invDepthB - invDepthA) * invXDelta
	topYM := (topB.Y - topA.Y) * invXDelta
	bottomYM := (bottomB.Y - bottomA.Y) * invXDelta
	uDepthM := (uDepthB - uDepthA) * invXDelta

	var invDepth, topY, bottomY, uDepth float64
	if invDepthA > invDepthB {
		offset := xMin - topA.X
		invDepth = invDepthA + invDepthM*offset
		topY = topA.Y + topYM*offset
		bottomY = bottomA.Y + bottomYM*offset
		uDepth = uDepthA + uDepthM*offset
	} else {
		offset := topB.X - xMin
		invDepth = invDepthB - invDepthM*offset
		topY = topB.Y - topYM*offset
		bottomY = bottomB.Y - bottomYM*offset
		uDepth = uDepthB - uDepthM*offset
	}

	return wallInterpolator{
		invDepth:  invDepth,
		topY:      topY,
		bottomY:   bottomY,
		uDepth:    uDepth,
		invDepthM: invDepthM,
		topYM:     topYM,
		bottomYM:  bottomYM,
		uDepthM:   uDepthM,
		vStart:    texA.Y,
		vDelta:    texB.Y - texA.Y,
	}
}

func (w *wallInterpolator) initY(yMin int) {
	yClampOffset := float64(yMin) - w.topY
	w.vM = w.vDelta / (w.bottomY - w.topY)
	w.v = w.vStart + w.vM*yClampOffset
}

func (w *wallInterpolator) stepX() {
	w.invDepth += w.invDepthM
	w.topY += w.topYM
	w.bottomY += w.bottomYM
	w.uDepth += w.uDepthM
}

func (w *wallInterpolator) stepY() {
	w.v += w.vM
}
