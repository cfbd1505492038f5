package raster

import (
	"image/color"
	"testing"

	"github.com/alchy/Head1919/internal/mathutil"
	"github.com/alchy/Head1919/internal/mesh"
)

var (
	testRed   = color.NRGBA{R: 255, A: 255}
	testGreen = color.NRGBA{G: 255, A: 255}
)

// tri builds a single-triangle stream at depth z, counter-clockwise when
// seen from +Z.
func tri(z float64, c color.NRGBA) []mesh.Triangle {
	return []mesh.Triangle{{
		V: [3]mathutil.Vec3{
			{-1, -1, z},
			{1, -1, z},
			{0, 1, z},
		},
		Color: c,
	}}
}

func testViewProj() mathutil.Mat4 {
	view := mathutil.LookAt(mathutil.Vec3{0, 0, 3}, mathutil.Vec3{}, mathutil.Vec3{0, 1, 0})
	proj := mathutil.Perspective(mathutil.Deg2Rad(90), 1, 0.1, 100)
	return mathutil.Mat4Mul(proj, view)
}

func TestCompileCounts(t *testing.T) {
	quad := []mesh.Triangle{
		{V: [3]mathutil.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}},
		{V: [3]mathutil.Vec3{{0, 0, 0}, {1, 1, 0}, {0, 1, 0}}},
	}
	cm := Compile(quad)
	if cm.TriangleCount() != 2 {
		t.Fatalf("TriangleCount = %d, want 2", cm.TriangleCount())
	}
	if len(cm.pos) != 6 {
		t.Fatalf("packed %d positions, want 6", len(cm.pos))
	}
}

func TestDrawFillsFrontFace(t *testing.T) {
	r := New(64, 64)
	r.Clear()
	r.Draw(Compile(tri(0, testRed)), testViewProj())

	if got := r.Image().NRGBAAt(32, 32); got != testRed {
		t.Fatalf("center pixel = %v, want %v", got, testRed)
	}
}

func TestDrawCullsBackFace(t *testing.T) {
	// Reversed winding faces away from the camera and must not touch the
	// framebuffer.
	back := []mesh.Triangle{{
		V: [3]mathutil.Vec3{
			{-1, -1, 0},
			{0, 1, 0},
			{1, -1, 0},
		},
		Color: testRed,
	}}

	r := New(64, 64)
	r.Clear()
	r.Draw(Compile(back), testViewProj())

	img := r.Image()
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if img.NRGBAAt(x, y) == testRed {
				t.Fatalf("back-facing triangle drew pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestDrawWireframe(t *testing.T) {
	r := New(64, 64)
	r.Mode = ModeWireframe
	r.Clear()
	r.Draw(Compile(tri(0, testRed)), testViewProj())

	img := r.Image()
	if got := img.NRGBAAt(32, 42); got != testRed {
		t.Fatalf("bottom edge pixel = %v, want %v", got, testRed)
	}
	if got := img.NRGBAAt(32, 32); got == testRed {
		t.Fatalf("wireframe filled the triangle interior")
	}
}

func TestDrawDepthTest(t *testing.T) {
	far := Compile(tri(0, testRed))
	near := Compile(tri(1, testGreen))
	vp := testViewProj()

	r := New(64, 64)
	for _, order := range [][2]*CompiledMesh{{far, near}, {near, far}} {
		r.Clear()
		r.Draw(order[0], vp)
		r.Draw(order[1], vp)
		if got := r.Image().NRGBAAt(32, 32); got != testGreen {
			t.Fatalf("center pixel = %v, want nearer triangle %v", got, testGreen)
		}
	}
}
