// Package camera holds the fly-camera state: a position orbit-free in
// space, always looking at the world origin with +Y up.
package camera

import "github.com/alchy/Head1919/internal/mathutil"

// DefaultSpeed is the camera displacement per tick, in world units.
const DefaultSpeed = 0.5

// InputState is the per-tick snapshot of the six directional inputs.
// Any combination may be held at once; none held is valid and moves
// nothing.
type InputState struct {
	Forward  bool
	Backward bool
	Up       bool
	Down     bool
	Left     bool
	Right    bool
}

// Controller advances the camera position once per tick. It is a pure
// function of (position, input, speed); nothing else feeds it.
type Controller struct {
	Position mathutil.Vec3
	Speed    float64
}

// New places the camera at pos with the given per-tick speed.
// A non-positive speed falls back to DefaultSpeed.
func New(pos mathutil.Vec3, speed float64) *Controller {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Controller{Position: pos, Speed: speed}
}

// Step applies one tick of movement. Forward/backward travel along the
// normalized direction to the origin; up/down and left/right are
// axis-aligned. With the camera exactly at the origin the direction is
// the zero vector, so only the axis-aligned inputs displace it.
func (c *Controller) Step(in InputState) {
	dir := mathutil.Vec3{}.Sub(c.Position).Normalize()

	if in.Forward {
		c.Position = c.Position.Add(dir.Scale(c.Speed))
	}
	if in.Backward {
		c.Position = c.Position.Sub(dir.Scale(c.Speed))
	}
	if in.Up {
		c.Position[1] += c.Speed
	}
	if in.Down {
		c.Position[1] -= c.Speed
	}
	if in.Left {
		c.Position[0] += c.Speed
	}
	if in.Right {
		c.Position[0] -= c.Speed
	}
}

// View returns the look-at matrix toward the origin with +Y up.
func (c *Controller) View() mathutil.Mat4 {
	return mathutil.LookAt(c.Position, mathutil.Vec3{}, mathutil.Vec3{0, 1, 0})
}
