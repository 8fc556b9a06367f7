package main

import (
	"math"

	"github.com/seqsense/glrotate/mat"
)

const fullTurn = 2 * math.Pi

type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

var rotationAxes = [3]mat.Vec3{mat.AxisX, mat.AxisY, mat.AxisZ}

func (a axis) String() string {
	return [...]string{"X", "Y", "Z"}[a]
}

// rotation holds the triangle orientation. While not animating, the angle
// of each axis whose key is held follows the vertical pointer position and
// the other axes are reset to zero.
type rotation struct {
	ang  [3]float64
	held [3]bool

	animating bool
	step      float64

	y, height int
}

func newRotation(stepDeg float64) *rotation {
	return &rotation{
		step: stepDeg * math.Pi / 180,
	}
}

func (r *rotation) angles() [3]float64 {
	return r.ang
}

// setAngles overrides the angles until the pointer or a key moves them.
func (r *rotation) setAngles(ang [3]float64) {
	r.ang = ang
}

func (r *rotation) press(a axis) {
	r.held[a] = true
	r.update()
}

func (r *rotation) release(a axis) {
	r.held[a] = false
	r.update()
}

func (r *rotation) pointer(y, height int) {
	r.y, r.height = y, height
	r.update()
}

// pointerAngle maps the pointer from the top of the canvas (one turn) to the
// bottom (minus one turn).
func pointerAngle(y, height int) float64 {
	if height <= 0 {
		return 0
	}
	return fullTurn * (1 - 2*float64(y)/float64(height))
}

func (r *rotation) update() {
	if r.animating {
		return
	}
	ang := pointerAngle(r.y, r.height)
	for i := range r.ang {
		if r.held[i] {
			r.ang[i] = ang
		} else {
			r.ang[i] = 0
		}
	}
}

func (r *rotation) toggleAnimation() {
	r.animating = !r.animating
	if !r.animating {
		r.update()
	}
}

func (r *rotation) reset() {
	r.animating = false
	r.held = [3]bool{}
	r.ang = [3]float64{}
}

// frame advances the animation by one step. Each angle stops once it reaches
// a full turn; the animation ends when no angle moved.
func (r *rotation) frame() bool {
	if !r.animating {
		return false
	}
	var modified bool
	for i := range r.ang {
		if r.ang[i] < fullTurn {
			r.ang[i] += r.step
			modified = true
		}
	}
	if !modified {
		r.animating = false
		r.update()
	}
	return modified
}

// model applies the X rotation first, then Y, then Z.
func (r *rotation) model() mat.Mat4 {
	m := mat.Identity()
	for i, a := range rotationAxes {
		m = m.Rotated(float32(r.ang[i]), a)
	}
	return m
}
