package raster

import (
	"image"
	"image/color"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float64 // NDC depth per pixel, len = W*H, +inf when empty
}

// NewFrameBuffer allocates a cleared color buffer and +inf depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	depth := make([]float64, n)
	for i := range depth {
		depth[i] = math.Inf(1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		Depth:  depth,
	}
}

// Clear fills the color buffer with c and resets depth to +inf.
// Uses copy-doubling rather than a per-pixel loop.
func (fb *FrameBuffer) Clear(c color.NRGBA) {
	if len(fb.Color) < 4 {
		return
	}
	fb.Color[0] = c.R
	fb.Color[1] = c.G
	fb.Color[2] = c.B
	fb.Color[3] = c.A
	for i := 4; i < len(fb.Color); i *= 2 {
		copy(fb.Color[i:], fb.Color[:i])
	}

	fb.Depth[0] = math.Inf(1)
	for i := 1; i < len(fb.Depth); i *= 2 {
		copy(fb.Depth[i:], fb.Depth[:i])
	}
}

// Image wraps the color buffer as an NRGBA image sharing the same pixels.
func (fb *FrameBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    fb.Color,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}

// SetPixel writes one pixel, clipping out-of-bounds coordinates.
func (fb *FrameBuffer) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Color[i] = c.R
	fb.Color[i+1] = c.G
	fb.Color[i+2] = c.B
	fb.Color[i+3] = c.A
}
