package mat

import (
	"math"
)

// Perspective builds a symmetric perspective projection.
// fov is the vertical field of view in degrees.
func Perspective(fov, aspect, near, far float32) Mat4 {
	yc := 1 / float32(math.Tan(float64(fov)/2*math.Pi/180))
	return Mat4{
		yc / aspect, 0, 0, 0,
		0, yc, 0, 0,
		0, 0, (near + far) / (near - far), -1,
		0, 0, 2 * far * near / (near - far), 0,
	}
}
