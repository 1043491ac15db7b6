package retro3d

import (
	"encoding/binary"
	"image"
	"image/color"
)

// Framebuffer is a row-major BGRA8 pixel grid, the renderer's single
// output surface (§4.1). It implements image.Image so callers can hand
// it to the standard image/draw/png packages for presentation or
// debugging without the renderer depending on either.
type Framebuffer struct {
	width, height int
	pix           []uint8 // len = width*height*4, byte order B,G,R,A
}

var _ image.Image = (*Framebuffer)(nil)

// NewFramebuffer allocates a framebuffer of the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Resize reallocates the pixel buffer if the dimensions changed.
// Resizing to the current dimensions is a no-op, matching SetViewport's
// idempotence requirement (§8).
func (f *Framebuffer) Resize(width, height int) {
	if width == f.width && height == f.height {
		return
	}
	f.width = width
	f.height = height
	f.pix = make([]uint8, width*height*4)
}

func (f *Framebuffer) index(x, y int) int {
	return (y*f.width + x) * 4
}

func (f *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Fill sets every pixel to c.
func (f *Framebuffer) Fill(c BGRA) {
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i+0] = c.B
		f.pix[i+1] = c.G
		f.pix[i+2] = c.R
		f.pix[i+3] = c.A
	}
}

// Set writes a pixel after a bounds check. Out-of-range coordinates are
// silently ignored, matching Framebuffer's role as a collaborator-facing
// surface rather than an inner-loop primitive.
func (f *Framebuffer) Set(x, y int, c BGRA) {
	if !f.inBounds(x, y) {
		return
	}
	f.SetUnchecked(x, y, c)
}

// SetUnchecked writes a pixel without a bounds check. Callers in the
// wall/plane/sprite inner loops use this once column/row clipping has
// already proven the coordinate is in range.
func (f *Framebuffer) SetUnchecked(x, y int, c BGRA) {
	i := f.index(x, y)
	f.pix[i+0] = c.B
	f.pix[i+1] = c.G
	f.pix[i+2] = c.R
	f.pix[i+3] = c.A
}

// Get reads a pixel after a bounds check, returning the zero BGRA
// (transparent black) if out of range.
func (f *Framebuffer) Get(x, y int) BGRA {
	if !f.inBounds(x, y) {
		return transparent
	}
	return f.GetUnchecked(x, y)
}

// GetUnchecked reads a pixel without a bounds check.
func (f *Framebuffer) GetUnchecked(x, y int) BGRA {
	i := f.index(x, y)
	return BGRA{B: f.pix[i+0], G: f.pix[i+1], R: f.pix[i+2], A: f.pix[i+3]}
}

// Blend composites c over the destination pixel using c's alpha,
// preserving destination alpha (§4.1). Used by the debug portal
// overlay, which draws translucent outlines rather than opaque writes.
func (f *Framebuffer) Blend(x, y int, c BGRA) {
	if !f.inBounds(x, y) {
		return
	}
	f.BlendUnchecked(x, y, c)
}

// BlendUnchecked is Blend without a bounds check.
func (f *Framebuffer) BlendUnchecked(x, y int, c BGRA) {
	dst := f.GetUnchecked(x, y)
	f.SetUnchecked(x, y, c.Over(dst))
}

// Words reinterprets the pixel buffer as packed 32-bit little-endian
// BGRA words, for handing off to a host windowing layer. It allocates
// and copies rather than aliasing f's storage, since the four BGRA
// bytes and one little-endian uint32 are not guaranteed to share layout
// on a big-endian host.
func (f *Framebuffer) Words() []uint32 {
	words := make([]uint32, len(f.pix)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(f.pix[i*4 : i*4+4])
	}
	return words
}

// At implements image.Image.
func (f *Framebuffer) At(x, y int) color.Color {
	c := f.Get(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Bounds implements image.Image.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements image.Image.
func (f *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}
