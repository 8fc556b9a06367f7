package mat

import (
	"math"
)

type Vec3 [3]float32

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

var (
	AxisX = Vec3{1, 0, 0}
	AxisY = Vec3{0, 1, 0}
	AxisZ = Vec3{0, 0, 1}
)

func (v Vec3) NormSq() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vec3) Norm() float32 {
	return float32(math.Sqrt(float64(v.NormSq())))
}

// Normalized returns v scaled to unit length.
// A zero vector gives NaN components.
func (v Vec3) Normalized() Vec3 {
	l := v.Norm()
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

func (v Vec3) Mul(a float32) Vec3 {
	return Vec3{v[0] * a, v[1] * a, v[2] * a}
}

func (v Vec3) Sub(a Vec3) Vec3 {
	return Vec3{v[0] - a[0], v[1] - a[1], v[2] - a[2]}
}

func (v Vec3) Add(a Vec3) Vec3 {
	return Vec3{v[0] + a[0], v[1] + a[1], v[2] + a[2]}
}

func (v Vec3) Dot(a Vec3) float32 {
	return v[0]*a[0] + v[1]*a[1] + v[2]*a[2]
}

func (v Vec3) Cross(a Vec3) Vec3 {
	return Vec3{
		v[1]*a[2] - v[2]*a[1],
		v[2]*a[0] - v[0]*a[2],
		v[0]*a[1] - v[1]*a[0],
	}
}

// Vec4 returns the homogeneous point of v.
func (v Vec3) Vec4() Vec4 {
	return Vec4{v[0], v[1], v[2], 1}
}
