// Package viewer runs the interactive frame loop: one input snapshot,
// one camera step, one clear/draw/overlay pass per tick.
package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/alchy/Head1919/internal/camera"
	"github.com/alchy/Head1919/internal/config"
	"github.com/alchy/Head1919/internal/mathutil"
	"github.com/alchy/Head1919/internal/mesh"
	"github.com/alchy/Head1919/internal/overlay"
	"github.com/alchy/Head1919/internal/raster"
)

const tickRate = 60

// App is the ebiten game driving the viewer.
type App struct {
	cfg   config.Config
	ren   *raster.Renderer
	model *raster.CompiledMesh
	cam   *camera.Controller
	proj  mathutil.Mat4
	frame *ebiten.Image
}

// New compiles the triangle stream and sets up the frame loop state.
// Compilation happens here, once, before the first Draw.
func New(cfg config.Config, tris []mesh.Triangle) *App {
	ren := raster.New(cfg.Width, cfg.Height)
	if cfg.Mode == config.ModeWireframe {
		ren.Mode = raster.ModeWireframe
	}

	aspect := float64(cfg.Width) / float64(cfg.Height)
	return &App{
		cfg:   cfg,
		ren:   ren,
		model: raster.Compile(tris),
		cam:   camera.New(mathutil.Vec3{0, 0, cfg.CameraZ}, cfg.Speed),
		proj:  mathutil.Perspective(mathutil.Deg2Rad(cfg.FOV), aspect, cfg.Near, cfg.Far),
		frame: ebiten.NewImage(cfg.Width, cfg.Height),
	}
}

// readInput snapshots the six directional keys. W/S fly toward/away from
// the model, Q/E move up/down, A/D move left/right.
func readInput() camera.InputState {
	return camera.InputState{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyW),
		Backward: ebiten.IsKeyPressed(ebiten.KeyS),
		Up:       ebiten.IsKeyPressed(ebiten.KeyQ),
		Down:     ebiten.IsKeyPressed(ebiten.KeyE),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

// Update advances the camera exactly once per tick.
func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	a.cam.Step(readInput())
	return nil
}

// Draw renders one frame: clear, model, camera readout, present.
func (a *App) Draw(screen *ebiten.Image) {
	a.ren.Clear()
	a.ren.Draw(a.model, mathutil.Mat4Mul(a.proj, a.cam.View()))

	img := a.ren.Image()
	overlay.DrawCameraReadout(img, a.cam.Position)

	a.frame.WritePixels(img.Pix)
	screen.DrawImage(a.frame, nil)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

// Run opens the window and blocks until it closes or Escape is pressed.
func Run(cfg config.Config, tris []mesh.Triangle) error {
	ebiten.SetWindowTitle("OBJ Viewer")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(tickRate)
	return ebiten.RunGame(New(cfg, tris))
}
