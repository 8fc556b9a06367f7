package main

import (
	"fmt"

	"github.com/seqsense/glrotate/mat"
)

// simulate runs the click-to-animate sequence without a canvas: animation
// starts at frame zero and fn receives the model matrix of every frame until
// the animation ends or maxFrames is reached. It returns the number of
// frames rendered.
func simulate(cfg *config, maxFrames int, fn func(i int, model mat.Mat4) error) (int, error) {
	rot := newRotation(cfg.AnimationStep)
	for _, a := range [...]axis{axisX, axisY, axisZ} {
		rot.press(a)
	}
	rot.toggleAnimation()

	for i := 0; i < maxFrames; i++ {
		m := rot.model()
		if err := m.Check(); err != nil {
			return i, fmt.Errorf("frame %d: %w", i, err)
		}
		if err := fn(i, m); err != nil {
			return i, err
		}
		if !rot.frame() {
			return i + 1, nil
		}
	}
	return maxFrames, nil
}

// projectTriangle returns the clip space position of the triangle vertices.
func projectTriangle(model mat.Mat4, width, height int) []mat.Vec3 {
	mvp := triangleProjection(width, height).Mul(model)
	out := make([]mat.Vec3, len(triangleVertices))
	for i, v := range triangleVertices {
		out[i] = mvp.Transform(v)
	}
	return out
}
