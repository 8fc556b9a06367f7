package mat

// Orthographic maps [left, right] to [-1, 1] and [top, bottom] to [1, -1],
// i.e. a screen space with the origin at the top left.
// Depth is not mapped: z is dropped and moved to -1.
func Orthographic(left, right, top, bottom float32) Mat4 {
	return Mat4{
		2 / (right - left), 0, 0, 0,
		0, -2 / (bottom - top), 0, 0,
		0, 0, 0, 0,
		-(right + left) / (right - left), (top + bottom) / (bottom - top), -1, 1,
	}
}
