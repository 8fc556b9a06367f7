package mat

import (
	"math"
)

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func TranslateVec(v Vec3) Mat4 {
	return Translate(v[0], v[1], v[2])
}

// Rotate returns the rotation of ang radians around axis.
// The axis is normalized unless its length is exactly 1.
func Rotate(ang float32, axis Vec3) Mat4 {
	u, v, w := axis[0], axis[1], axis[2]
	if l := axis.Norm(); l != 1 {
		u /= l
		v /= l
		w /= l
	}

	s64, c64 := math.Sincos(float64(ang))
	s, c := float32(s64), float32(c64)

	return Mat4{
		u*u + (v*v+w*w)*c, u*v*(1-c) + w*s, u*w*(1-c) - v*s, 0,
		u*v*(1-c) - w*s, v*v + (u*u+w*w)*c, v*w*(1-c) + u*s, 0,
		u*w*(1-c) + v*s, v*w*(1-c) - u*s, w*w + (u*u+v*v)*c, 0,
		0, 0, 0, 1,
	}
}

// Translated returns m followed by a translation of v.
func (m Mat4) Translated(v Vec3) Mat4 {
	return TranslateVec(v).Mul(m)
}

// Rotated returns m followed by a rotation of ang radians around axis.
func (m Mat4) Rotated(ang float32, axis Vec3) Mat4 {
	return Rotate(ang, axis).Mul(m)
}

// Transform applies m to the point a (w = 1).
func (m Mat4) Transform(a Vec3) Vec3 {
	var out Vec3
	out[0] = m[4*0+0]*a[0] + m[4*1+0]*a[1] + m[4*2+0]*a[2] + m[4*3+0]
	out[1] = m[4*0+1]*a[0] + m[4*1+1]*a[1] + m[4*2+1]*a[2] + m[4*3+1]
	out[2] = m[4*0+2]*a[0] + m[4*1+2]*a[1] + m[4*2+2]*a[2] + m[4*3+2]
	return out
}

func (m Mat4) Transform4(a Vec4) Vec4 {
	var out Vec4
	for i := 0; i < 4; i++ {
		out[i] = m[4*0+i]*a[0] + m[4*1+i]*a[1] + m[4*2+i]*a[2] + m[4*3+i]*a[3]
	}
	return out
}
