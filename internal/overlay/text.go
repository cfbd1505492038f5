// Package overlay draws screen-space text directly into the framebuffer
// image, after the 3D pass and before present.
package overlay

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/alchy/Head1919/internal/mathutil"
)

var (
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	face  = basicfont.Face7x13
)

// DrawString renders s at the pixel position (x, y), where y is the text
// baseline.
func DrawString(dst *image.NRGBA, x, y int, s string, c color.NRGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// CameraReadout formats the camera position line shown in the corner of
// the window.
func CameraReadout(pos mathutil.Vec3) string {
	return fmt.Sprintf("Camera: x=%.2f, y=%.2f, z=%.2f", pos[0], pos[1], pos[2])
}

// DrawCameraReadout draws the camera position in the top-left corner.
func DrawCameraReadout(dst *image.NRGBA, pos mathutil.Vec3) {
	DrawString(dst, 10, 10+face.Ascent, CameraReadout(pos), White)
}
