// Package snapshot renders a triangle stream to still images off the
// interactive path: single stills and turntable frame sequences, written
// as WebP.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/HugoSmits86/nativewebp"

	"github.com/alchy/Head1919/internal/mathutil"
	"github.com/alchy/Head1919/internal/mesh"
	"github.com/alchy/Head1919/internal/postprocess"
	"github.com/alchy/Head1919/internal/raster"
)

// Options controls one still render. Zero values get sensible defaults.
type Options struct {
	Size        int     // output edge length, default 512
	Supersample int     // render at Size*N then downsample, default 2
	Yaw         float64 // model rotation around Y, degrees
	Pitch       float64 // model rotation around X, degrees
	Wireframe   bool
	FOV         float64 // degrees, default 45
	CamDist     float64 // camera distance on +Z; 0 derives it from the mesh bounds
}

func (o *Options) normalize() {
	if o.Size <= 0 {
		o.Size = 512
	}
	if o.Supersample <= 0 {
		o.Supersample = 2
	}
	if o.FOV <= 0 {
		o.FOV = 45
	}
}

// Render draws the stream once from a fixed camera on +Z against a
// transparent background and returns the finished image.
func Render(tris []mesh.Triangle, opt Options) *image.NRGBA {
	opt.normalize()
	renderSize := opt.Size * opt.Supersample

	rot := mathutil.Mat3Mul(
		mathutil.RotY(mathutil.Deg2Rad(opt.Yaw)),
		mathutil.RotX(mathutil.Deg2Rad(opt.Pitch)),
	)
	rotated := make([]mesh.Triangle, len(tris))
	radius := 0.0
	for i, t := range tris {
		rotated[i].Color = t.Color
		for k := 0; k < 3; k++ {
			v := rot.MulVec3(t.V[k])
			rotated[i].V[k] = v
			if l := v.Len(); l > radius {
				radius = l
			}
		}
	}

	dist := opt.CamDist
	if dist <= 0 {
		if radius < 0.001 {
			radius = 0.001
		}
		// Back off until the bounding sphere fits the vertical FOV,
		// then add the radius so the near side clears the camera.
		dist = radius/math.Tan(mathutil.Deg2Rad(opt.FOV)/2) + radius
	}

	ren := raster.New(renderSize, renderSize)
	ren.ClearColor = color.NRGBA{}
	if opt.Wireframe {
		ren.Mode = raster.ModeWireframe
	}

	view := mathutil.LookAt(mathutil.Vec3{0, 0, dist}, mathutil.Vec3{}, mathutil.Vec3{0, 1, 0})
	proj := mathutil.Perspective(mathutil.Deg2Rad(opt.FOV), 1, dist/100, dist*10)

	ren.Clear()
	ren.Draw(raster.Compile(rotated), mathutil.Mat4Mul(proj, view))

	// Detach from the renderer's framebuffer.
	src := ren.Image()
	img := image.NewNRGBA(src.Rect)
	copy(img.Pix, src.Pix)

	if opt.Supersample > 1 {
		img = postprocess.Downsample(img, opt.Size)
	}
	return img
}

// Write encodes the image as WebP, creating parent directories as needed.
func Write(path string, img *image.NRGBA) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("snapshot: mkdir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return nil
}

// Result holds the outcome of one turntable frame.
type Result struct {
	Frame int
	Path  string
	Err   error
}

// Turntable renders frames evenly spaced around the Y axis into outDir
// using a worker pool. The triangle stream is shared read-only across
// workers; each frame gets its own renderer.
func Turntable(tris []mesh.Triangle, opt Options, frames, workers int, outDir string) []Result {
	if frames <= 0 {
		frames = 1
	}
	if workers <= 0 {
		workers = 1
	}

	results := make([]Result, frames)
	jobs := make(chan int, workers*2)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				frameOpt := opt
				frameOpt.Yaw = opt.Yaw + 360*float64(i)/float64(frames)
				img := Render(tris, frameOpt)
				path := filepath.Join(outDir, fmt.Sprintf("frame_%03d.webp", i))
				results[i] = Result{Frame: i, Path: path, Err: Write(path, img)}
			}
		}()
	}

	for i := 0; i < frames; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
