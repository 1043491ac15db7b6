package retro3d

import "github.com/jrdnrs/retro3d/internal/geom"

// planeRenderer rasterizes floor/ceiling planes span-by-span, sweeping
// the wall/portal bounds the wall rasterizer has already produced
// column by column and drawing each horizontal run once its Y range
// closes (§4.4).
type planeRenderer struct {
	// spanStart[y] is the starting column of the horizontal span
	// currently 'open' at row y.
	spanStart []uint16

	// focalHeightRatios[y] lets depth be recovered from a plane's
	// constant camera-space height with one multiply (§4.4 step 1).
	focalHeightRatios []float64
}

func newPlaneRenderer(height int) planeRenderer {
	return planeRenderer{
		spanStart:         make([]uint16, height),
		focalHeightRatios: make([]float64, height),
	}
}

func (p *planeRenderer) resize(height int) {
	p.spanStart = resizeUint16(p.spanStart, height, 0)
	if height <= len(p.focalHeightRatios) {
		p.focalHeightRatios = p.focalHeightRatios[:height]
	} else {
		grown := make([]float64, height)
		copy(grown, p.focalHeightRatios)
		p.focalHeightRatios = grown
	}
}

// update recomputes focalHeightRatios for the current pitch shear; it
// must run once per frame before any drawPlane call (§4.4 step 1).
func (p *planeRenderer) update(height int, focalHeight, pitchShear float64) {
	halfHeight := float64(height) / 2
	for y := 0; y < height; y++ {
		yOffset := float64(y) - halfHeight - pitchShear
		if yOffset == 0 {
			p.focalHeightRatios[y] = 0
			continue
		}
		p.focalHeightRatios[y] = focalHeight / yOffset
	}
}

// drawPlane sweeps the portal's column range, tracking the open Y range
// implied by yBoundsMin/Max and flushing closed horizontal spans as the
// range narrows (§4.4).
func (p *planeRenderer) drawPlane(r *Renderer, portal PortalNode, yBoundsMin, yBoundsMax []uint16, heightOffset float64, texture *Texture, desc TextureDescriptor) {
	yMin := yBoundsMin[portal.XMin]
	yMax := yMin

	for x := portal.XMin; x < portal.XMax; x++ {
		minBound := yBoundsMin[x]
		maxBound := yBoundsMax[x]

		for minBound < yMin {
			yMin--
			p.spanStart[yMin] = uint16(x)
		}
		for maxBound > yMax {
			p.spanStart[yMax] = uint16(x)
			yMax++
		}

		for minBound > yMin {
			p.rasterisePlaneSpan(r, texture, desc, heightOffset, int(yMin), int(p.spanStart[yMin]), x)
			yMin++
		}
		for maxBound < yMax {
			yMax--
			p.rasterisePlaneSpan(r, texture, desc, heightOffset, int(yMax), int(p.spanStart[yMax]), x)
		}
	}

	for y := yMin; y < yMax; y++ {
		p.rasterisePlaneSpan(r, texture, desc, heightOffset, int(y), int(p.spanStart[y]), portal.XMax)
	}
}

func (p *planeRenderer) rasterisePlaneSpan(r *Renderer, texture *Texture, desc TextureDescriptor, heightOffset float64, y, xMin, xMax int) {
	assertf(xMin <= xMax, "rasterisePlaneSpan: xMin %d greater than xMax %d", xMin, xMax)
	if xMax <= xMin {
		return
	}

	focalHeightRatio := p.focalHeightRatios[y]
	depth := focalHeightRatio * heightOffset

	if depth < Near || depth > Far {
		return
	}

	normalDepth := normalizeDepth(depth)
	level := pickMipLevel(normalDepth, absFloat(focalHeightRatio))
	scale := mipScale(level)

	darken := lightingByte(diminishLighting(normalDepth))

	halfWidth := float64(r.framebuffer.Width()) / 2
	wsA := viewToWorld(r, (float64(xMin)-halfWidth)*depth*r.invFocalWidth, depth)
	wsB := viewToWorld(r, (float64(xMax)-halfWidth)*depth*r.invFocalWidth, depth)

	texA := desc.Scale.Apply(wsA.Mul(scale)).Add(desc.Offset)
	texB := desc.Scale.Apply(wsB.Mul(scale)).Add(desc.Offset)

	invXDelta := 1 / float64(xMax-xMin)
	vM := (texB.Y - texA.Y) * invXDelta
	uM := (texB.X - texA.X) * invXDelta
	u := texA.X
	v := texA.Y

	lvl := texture.Levels[level]
	widthMask := lvl.Width - 1
	heightMask := lvl.Height - 1

	for x := xMin; x < xMax; x++ {
		textureX := wrapIndex(int(u), lvl.Width) & widthMask
		textureY := wrapIndex(int(v), lvl.Height) & heightMask

		colour := texture.Sample(textureX, textureY, level).Darken(darken)
		r.framebuffer.SetUnchecked(x, y, colour)

		u += uM
		v += vM
	}
}

// viewToWorld maps a view-space span-endpoint (x, depth) back to world
// space, the same inverse transform as Renderer.fromView (§4.4 step 3).
func viewToWorld(r *Renderer, x, depth float64) geom.Vec2 {
	return r.fromView(geom.V2(x, depth))
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
