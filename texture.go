package retro3d

import (
	"fmt"
	"image"
	stddraw "image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/jrdnrs/retro3d/internal/texfmt"
)

// MipLevels is the compile-time mip-pyramid depth fixed by §6.
const MipLevels = 3

// MipFactor scales the mip-level-selection formula in §4.2.
const MipFactor = 4.0

// mipScale returns MIP_SCALES[k] = 2^-k (§4.2, §6).
func mipScale(level int) float64 {
	return 1.0 / float64(uint(1)<<uint(level))
}

// MipLevel describes one level of a Texture's pyramid: its dimensions
// and pixel offset (an index into Pixels) within the texture's shared
// pixel array (§4.2).
type MipLevel struct {
	Width, Height int
	Offset        int
}

// Texture owns a single contiguous pixel array covering all of its mip
// levels, level 0 first (§4.2). Widths and heights must be powers of
// two so sampling can wrap via a bitwise mask (§9).
type Texture struct {
	Levels [MipLevels]MipLevel
	Pixels []BGRA
}

// NewTexture builds a Texture from a level-0 image, validating that its
// dimensions are powers of two (§9: "Non-power-of-two textures must be
// rejected at load") and generating the remaining mip levels with a
// wrap-addressed, alpha-weighted 3x3 box filter (§4.2).
func NewTexture(width, height int, level0 []BGRA) (*Texture, error) {
	if !texfmt.IsPowerOfTwo(width) || !texfmt.IsPowerOfTwo(height) {
		return nil, fmt.Errorf("retro3d: texture %dx%d is not power-of-two", width, height)
	}
	if len(level0) != width*height {
		return nil, fmt.Errorf("retro3d: texture pixel count %d does not match %dx%d", len(level0), width, height)
	}

	levels, total := computeMipLevels(width, height)
	pixels := make([]BGRA, total)
	copy(pixels, level0)

	tex := &Texture{Levels: levels, Pixels: pixels}
	tex.generateMipMaps()
	return tex, nil
}

// NewTextureFromImage builds a Texture from an arbitrary image.Image
// (§11). Images whose dimensions are already power-of-two are copied in
// directly; others are resampled with a high-quality Catmull-Rom
// scaler onto the next power-of-two canvas before NewTexture's own
// validation and mip generation run.
func NewTextureFromImage(img image.Image) (*Texture, error) {
	bounds := img.Bounds()
	srcWidth, srcHeight := bounds.Dx(), bounds.Dy()
	if srcWidth <= 0 || srcHeight <= 0 {
		return nil, fmt.Errorf("retro3d: new texture from image: empty bounds %v", bounds)
	}

	dstWidth := texfmt.NextPowerOfTwo(srcWidth)
	dstHeight := texfmt.NextPowerOfTwo(srcHeight)

	rgba := image.NewRGBA(image.Rect(0, 0, dstWidth, dstHeight))
	if dstWidth == srcWidth && dstHeight == srcHeight {
		stddraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, stddraw.Src)
	} else {
		scale := texfmt.ScaleFactor(srcWidth, srcHeight, dstWidth, dstHeight)
		Logger().Debug("resampling texture image to power-of-two", "scale_x", scale[0], "scale_y", scale[1])
		xdraw.CatmullRom.Scale(rgba, rgba.Bounds(), img, bounds, xdraw.Src, nil)
	}

	pixels := make([]BGRA, dstWidth*dstHeight)
	for y := 0; y < dstHeight; y++ {
		rowOffset := y * rgba.Stride
		for x := 0; x < dstWidth; x++ {
			i := rowOffset + x*4
			pixels[y*dstWidth+x] = BGRA{
				R: rgba.Pix[i+0],
				G: rgba.Pix[i+1],
				B: rgba.Pix[i+2],
				A: rgba.Pix[i+3],
			}
		}
	}

	return NewTexture(dstWidth, dstHeight, pixels)
}

func computeMipLevels(width, height int) ([MipLevels]MipLevel, int) {
	var levels [MipLevels]MipLevel
	w, h, offset := width, height, 0
	for i := 0; i < MipLevels; i++ {
		levels[i] = MipLevel{Width: w, Height: h, Offset: offset}
		offset += w * h
		w /= 2
		h /= 2
	}
	return levels, offset
}

// Sample returns the texel at (x,y) in the given mip level, wrapping
// both coordinates via a bitwise mask (§4.2, §9). level must be in
// [0,MipLevels).
func (t *Texture) Sample(x, y, level int) BGRA {
	lvl := t.Levels[level]
	x &= lvl.Width - 1
	y &= lvl.Height - 1
	return t.Pixels[lvl.Offset+y*lvl.Width+x]
}

func (t *Texture) generateMipMaps() {
	for i := 1; i < MipLevels; i++ {
		src := t.Levels[i-1]
		dst := t.Levels[i]
		downscale3x3BoxFilterWrap(
			t.Pixels[src.Offset:src.Offset+src.Width*src.Height],
			src.Width, src.Height,
			t.Pixels[dst.Offset:dst.Offset+dst.Width*dst.Height],
		)
	}
}

// downscale3x3BoxFilterWrap builds one mip level from the one above it:
// each destination pixel is the alpha-weighted mean of the nine source
// pixels centered at (2x,2y), sampled with wrap addressing, skipping
// samples with alpha=0; if all nine are transparent the destination
// pixel is left unchanged (§4.2). This wrap+alpha-weighted behavior is
// a deliberate divergence from original_source's literal clamp+
// unweighted filter — see SPEC_FULL.md §9.
func downscale3x3BoxFilterWrap(src []BGRA, srcWidth, srcHeight int, dst []BGRA) {
	dstWidth := srcWidth / 2
	dstHeight := srcHeight / 2

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx := dx * 2
			sy := dy * 2

			var r, g, b, weight uint32
			for oy := -1; oy <= 1; oy++ {
				for ox := -1; ox <= 1; ox++ {
					x := wrapIndex(sx+ox, srcWidth)
					y := wrapIndex(sy+oy, srcHeight)
					sample := src[y*srcWidth+x]
					if sample.A == 0 {
						continue
					}
					a := uint32(sample.A)
					r += uint32(sample.R) * a
					g += uint32(sample.G) * a
					b += uint32(sample.B) * a
					weight += a
				}
			}

			if weight == 0 {
				continue // all nine samples transparent: leave destination unchanged
			}

			dst[dy*dstWidth+dx] = BGRA{
				R: uint8(r / weight), //nolint:gosec // bounded by weighted average of uint8 channels
				G: uint8(g / weight), //nolint:gosec
				B: uint8(b / weight), //nolint:gosec
				A: 255,
			}
		}
	}
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// TextureSet is the collaborator-owned indexed texture collection (§6).
type TextureSet interface {
	Texture(index int) (*Texture, bool)
}

// Textures is a simple slice-backed TextureSet implementation.
type Textures []*Texture

// Texture implements TextureSet.
func (t Textures) Texture(index int) (*Texture, bool) {
	if index < 0 || index >= len(t) {
		return nil, false
	}
	return t[index], true
}
