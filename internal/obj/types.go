package obj

import "github.com/alchy/Head1919/internal/mathutil"

// Mesh holds the geometry parsed from one OBJ file: a vertex list and a
// face list. Face indices are 0-based and validated against the vertex
// count at load time.
type Mesh struct {
	Verts []mathutil.Vec3
	Faces [][]int // each face has >= 3 vertex indices, winding CCW
}

// Bounds returns the axis-aligned bounding box of the vertex list.
func (m *Mesh) Bounds() (min, max mathutil.Vec3) {
	if len(m.Verts) == 0 {
		return mathutil.Vec3{}, mathutil.Vec3{}
	}
	min, max = m.Verts[0], m.Verts[0]
	for _, v := range m.Verts[1:] {
		for k := 0; k < 3; k++ {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}
	return min, max
}
