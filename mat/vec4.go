package mat

type Vec4 [4]float32

func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

func (v Vec4) Add(a Vec4) Vec4 {
	return Vec4{v[0] + a[0], v[1] + a[1], v[2] + a[2], v[3] + a[3]}
}

func (v Vec4) Mul(a float32) Vec4 {
	return Vec4{v[0] * a, v[1] * a, v[2] * a, v[3] * a}
}

// Div returns the cartesian point of the homogeneous v.
func (v Vec4) Div() Vec3 {
	return Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
}
