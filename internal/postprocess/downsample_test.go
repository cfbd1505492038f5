package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func TestDownsampleSize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	out := Downsample(src, 64)
	if out.Bounds().Dx() != 64 || out.Bounds().Dy() != 64 {
		t.Fatalf("bounds = %v, want 64x64", out.Bounds())
	}
	if got := out.NRGBAAt(32, 32); got.A != 255 {
		t.Fatalf("opaque source lost alpha: %v", got)
	}
}

func TestDownsampleNoUpscale(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	if out := Downsample(src, 64); out != src {
		t.Fatalf("small images should pass through unchanged")
	}
}

func TestDownsampleTransparentStaysClean(t *testing.T) {
	// A fully transparent source must not gain color or alpha.
	src := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	out := Downsample(src, 64)
	if got := out.NRGBAAt(32, 32); got != (color.NRGBA{}) {
		t.Fatalf("transparent pixel became %v", got)
	}
}
