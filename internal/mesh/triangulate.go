// Package mesh converts polygonal faces into the flat triangle stream
// consumed by the rasterizer.
package mesh

import (
	"image/color"
	"math/rand/v2"

	"github.com/alchy/Head1919/internal/mathutil"
	"github.com/alchy/Head1919/internal/obj"
)

// Triangle is the atomic draw unit: three vertex positions and a flat
// fill color.
type Triangle struct {
	V     [3]mathutil.Vec3
	Color color.NRGBA
}

// ColorFunc selects the color of a source face by its position in the
// face list. All triangles fanned out of one face share its color.
type ColorFunc func(faceIndex int) color.NRGBA

// DefaultPalette is a small set of muted, harmonious colors.
var DefaultPalette = []color.NRGBA{
	{R: 179, G: 128, B: 77, A: 255},  // warm earth tone
	{R: 153, G: 140, B: 115, A: 255}, // soft beige
	{R: 166, G: 153, B: 128, A: 255}, // muted olive
	{R: 140, G: 140, B: 166, A: 255}, // cool gray-blue
	{R: 153, G: 179, B: 153, A: 255}, // gentle green
}

// ModelGreen is the single-color fallback fill.
var ModelGreen = color.NRGBA{R: 51, G: 153, B: 51, A: 255}

// UniformColor colors every face the same.
func UniformColor(c color.NRGBA) ColorFunc {
	return func(int) color.NRGBA { return c }
}

// PaletteColors cycles deterministically through the palette by face
// index, so a given file always renders the same way.
func PaletteColors(p []color.NRGBA) ColorFunc {
	if len(p) == 0 {
		return UniformColor(ModelGreen)
	}
	return func(i int) color.NRGBA { return p[i%len(p)] }
}

// RandomColors picks a palette entry per face from a process-seeded
// source. Runs are not reproducible.
func RandomColors(p []color.NRGBA) ColorFunc {
	if len(p) == 0 {
		return UniformColor(ModelGreen)
	}
	return func(int) color.NRGBA { return p[rand.IntN(len(p))] }
}

// ColorsForMode maps a color mode name ("fixed", "palette", "random")
// to a ColorFunc over the default palette. Unknown names fall back to
// the deterministic palette cycle.
func ColorsForMode(mode string) ColorFunc {
	switch mode {
	case "fixed":
		return UniformColor(ModelGreen)
	case "random":
		return RandomColors(DefaultPalette)
	default:
		return PaletteColors(DefaultPalette)
	}
}

// Triangulate flattens the mesh into an ordered triangle stream.
// Triangular faces pass through unchanged. Larger faces are fan-split
// around their first vertex: (0, i, i+1) for i in 1..N-2, which keeps
// the winding of convex faces. Faces are emitted in file order.
//
// The mesh must have load-validated indices; Triangulate does not
// re-check them.
func Triangulate(m *obj.Mesh, pick ColorFunc) []Triangle {
	if pick == nil {
		pick = UniformColor(ModelGreen)
	}

	total := 0
	for _, f := range m.Faces {
		total += len(f) - 2
	}

	tris := make([]Triangle, 0, total)
	for fi, face := range m.Faces {
		c := pick(fi)
		for i := 1; i < len(face)-1; i++ {
			tris = append(tris, Triangle{
				V: [3]mathutil.Vec3{
					m.Verts[face[0]],
					m.Verts[face[i]],
					m.Verts[face[i+1]],
				},
				Color: c,
			})
		}
	}
	return tris
}
