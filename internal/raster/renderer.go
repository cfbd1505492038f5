// Package raster is a software rasterizer for flat-colored triangle
// streams. Geometry is compiled once into a CompiledMesh and drawn many
// times; there is no re-submission path.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/alchy/Head1919/internal/mathutil"
	"github.com/alchy/Head1919/internal/mesh"
)

// Mode selects how triangles reach the framebuffer.
type Mode uint8

const (
	ModeSolid Mode = iota
	ModeWireframe
)

// CompiledMesh is the cached draw form of a triangle stream: positions
// packed three per triangle plus one fill color per triangle. Opaque to
// callers; built by Compile and owned by the renderer side.
type CompiledMesh struct {
	pos []mathutil.Vec3
	col []color.NRGBA
}

// TriangleCount reports how many triangles the handle holds.
func (cm *CompiledMesh) TriangleCount() int { return len(cm.col) }

// Compile packs a triangle stream into a CompiledMesh. Call it once,
// with the complete stream, before the first Draw.
func Compile(tris []mesh.Triangle) *CompiledMesh {
	cm := &CompiledMesh{
		pos: make([]mathutil.Vec3, 0, len(tris)*3),
		col: make([]color.NRGBA, 0, len(tris)),
	}
	for _, t := range tris {
		cm.pos = append(cm.pos, t.V[0], t.V[1], t.V[2])
		cm.col = append(cm.col, t.Color)
	}
	return cm
}

// Renderer draws compiled meshes into its framebuffer. Counter-clockwise
// windings are front-facing; back faces are culled in both modes.
type Renderer struct {
	Mode       Mode
	ClearColor color.NRGBA

	fb *FrameBuffer
}

// New creates a renderer with a framebuffer of the given size.
func New(w, h int) *Renderer {
	return &Renderer{
		ClearColor: color.NRGBA{R: 26, G: 26, B: 26, A: 255},
		fb:         NewFrameBuffer(w, h),
	}
}

func (r *Renderer) Size() (w, h int) { return r.fb.Width, r.fb.Height }

// Clear resets color and depth. Call once at the top of each frame.
func (r *Renderer) Clear() {
	r.fb.Clear(r.ClearColor)
}

// Image returns the framebuffer as an image sharing the same pixels.
// Valid until the next Clear.
func (r *Renderer) Image() *image.NRGBA {
	return r.fb.Image()
}

// Draw rasterizes every triangle of the handle under the given combined
// view-projection transform.
func (r *Renderer) Draw(cm *CompiledMesh, viewProj mathutil.Mat4) {
	w, h := r.fb.Width, r.fb.Height
	if w <= 0 || h <= 0 {
		return
	}

	for t := 0; t < len(cm.col); t++ {
		v0, v1, v2 := cm.pos[t*3], cm.pos[t*3+1], cm.pos[t*3+2]

		c0 := viewProj.MulVec4(mathutil.Vec4{v0[0], v0[1], v0[2], 1})
		c1 := viewProj.MulVec4(mathutil.Vec4{v1[0], v1[1], v1[2], 1})
		c2 := viewProj.MulVec4(mathutil.Vec4{v2[0], v2[1], v2[2], 1})

		// Trivial near-plane reject: any vertex at or behind the camera
		// drops the whole triangle.
		if c0[3] <= 0 || c1[3] <= 0 || c2[3] <= 0 {
			continue
		}

		x0, y0, z0 := toScreen(c0, w, h)
		x1, y1, z1 := toScreen(c1, w, h)
		x2, y2, z2 := toScreen(c2, w, h)

		// Back-face cull. Screen Y grows downward, so a front-facing CCW
		// triangle has negative signed area here.
		area := (x1-x0)*(y2-y0) - (y1-y0)*(x2-x0)
		if area >= 0 {
			continue
		}

		c := cm.col[t]
		if r.Mode == ModeWireframe {
			r.drawLine(x0, y0, x1, y1, c)
			r.drawLine(x1, y1, x2, y2, c)
			r.drawLine(x2, y2, x0, y0, c)
			continue
		}
		r.fillTriangle(x0, y0, z0, x1, y1, z1, x2, y2, z2, c)
	}
}

func toScreen(c mathutil.Vec4, w, h int) (x, y, z float64) {
	invW := 1 / c[3]
	ndcX := c[0] * invW
	ndcY := c[1] * invW
	ndcZ := c[2] * invW
	x = (ndcX*0.5 + 0.5) * float64(w-1)
	y = (1 - (ndcY*0.5 + 0.5)) * float64(h-1)
	return x, y, ndcZ
}

// fillTriangle is the hot path: z-buffered barycentric fill with a flat
// color, zero allocation in the pixel loop.
func (r *Renderer) fillTriangle(x0, y0, z0, x1, y1, z1, x2, y2, z2 float64, c color.NRGBA) {
	fb := r.fb
	w, h := fb.Width, fb.Height

	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * w
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			idx := rowOff + sx
			if z >= fb.Depth[idx] {
				continue
			}
			fb.Depth[idx] = z

			pi := idx * 4
			fb.Color[pi] = c.R
			fb.Color[pi+1] = c.G
			fb.Color[pi+2] = c.B
			fb.Color[pi+3] = c.A
		}
	}
}

// drawLine draws a Bresenham segment, clipping per pixel.
func (r *Renderer) drawLine(fx0, fy0, fx1, fy1 float64, c color.NRGBA) {
	x0, y0 := int(fx0+0.5), int(fy0+0.5)
	x1, y1 := int(fx1+0.5), int(fy1+0.5)

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		r.fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
