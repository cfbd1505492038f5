package mesh

import (
	"image/color"
	"testing"

	"github.com/alchy/Head1919/internal/mathutil"
	"github.com/alchy/Head1919/internal/obj"
)

func TestTriangulatePassthrough(t *testing.T) {
	// Already-triangular meshes come through unchanged, in order.
	m := &obj.Mesh{
		Verts: []mathutil.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		Faces: [][]int{{0, 1, 2}, {1, 3, 2}},
	}
	tris := Triangulate(m, nil)
	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2", len(tris))
	}
	if tris[0].V[0] != m.Verts[0] || tris[0].V[1] != m.Verts[1] || tris[0].V[2] != m.Verts[2] {
		t.Fatalf("first triangle reordered: %v", tris[0].V)
	}
	if tris[1].V[0] != m.Verts[1] || tris[1].V[1] != m.Verts[3] || tris[1].V[2] != m.Verts[2] {
		t.Fatalf("second triangle reordered: %v", tris[1].V)
	}
}

func TestTriangulateQuadFan(t *testing.T) {
	m := &obj.Mesh{
		Verts: []mathutil.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		Faces: [][]int{{0, 1, 2, 3}},
	}
	tris := Triangulate(m, nil)
	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2", len(tris))
	}
	// Fan anchored at the first vertex: (0,1,2) then (0,2,3).
	want := [][3]int{{0, 1, 2}, {0, 2, 3}}
	for ti, w := range want {
		for k := 0; k < 3; k++ {
			if tris[ti].V[k] != m.Verts[w[k]] {
				t.Fatalf("triangle %d = %v, want indices %v", ti, tris[ti].V, w)
			}
		}
	}
}

func TestTriangulateFanCount(t *testing.T) {
	// A single N-gon yields N-2 triangles, all sharing the anchor vertex.
	const n = 8
	verts := make([]mathutil.Vec3, n)
	face := make([]int, n)
	for i := range verts {
		verts[i] = mathutil.Vec3{float64(i), 0, 0}
		face[i] = i
	}
	m := &obj.Mesh{Verts: verts, Faces: [][]int{face}}

	tris := Triangulate(m, nil)
	if len(tris) != n-2 {
		t.Fatalf("got %d triangles, want %d", len(tris), n-2)
	}
	for i, tri := range tris {
		if tri.V[0] != verts[0] {
			t.Fatalf("triangle %d does not share anchor vertex: %v", i, tri.V)
		}
	}
}

func TestPaletteColorsDeterministic(t *testing.T) {
	pick := PaletteColors(DefaultPalette)
	for i := 0; i < 3*len(DefaultPalette); i++ {
		if pick(i) != DefaultPalette[i%len(DefaultPalette)] {
			t.Fatalf("face %d got %v", i, pick(i))
		}
	}
}

func TestTriangulateFaceColorShared(t *testing.T) {
	// All triangles fanned from one face carry that face's color.
	m := &obj.Mesh{
		Verts: []mathutil.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Faces: [][]int{{0, 1, 2, 3}},
	}
	red := color.NRGBA{R: 255, A: 255}
	tris := Triangulate(m, UniformColor(red))
	for i, tri := range tris {
		if tri.Color != red {
			t.Fatalf("triangle %d color = %v, want %v", i, tri.Color, red)
		}
	}
}
