package mat

// Mat4 is a 4x4 matrix stored in column-major order, so it can be passed to
// uniformMatrix4fv without transposing. Elements 12, 13 and 14 hold the
// translation.
type Mat4 [16]float32

func (m Mat4) Add(a Mat4) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return out
}

// Mul returns m × a. Applied to a vector, a acts first.
func (m Mat4) Mul(a Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[4*k+i] * a[4*j+k]
			}
			out[4*j+i] = sum
		}
	}
	return out
}

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[4*i+j] = m[4*j+i]
		}
	}
	return out
}

// Minor returns the 3x3 matrix left after deleting the row and the column
// containing the element at flat index i.
func (m Mat4) Minor(i int) Mat3 {
	col, row := i/4, i%4
	var out Mat3
	var n int
	for c := 0; c < 4; c++ {
		if c == col {
			continue
		}
		for r := 0; r < 4; r++ {
			if r == row {
				continue
			}
			out[n] = m[4*c+r]
			n++
		}
	}
	return out
}

func (m Mat4) Det() float32 {
	return m[0]*m.Minor(0).Det() - m[1]*m.Minor(1).Det() +
		m[2]*m.Minor(2).Det() - m[3]*m.Minor(3).Det()
}

// Inv returns the inverse of m computed from its adjugate.
// Singular input is not checked and gives Inf or NaN elements; use Check
// to detect it.
func (m Mat4) Inv() Mat4 {
	var cof Mat4
	for i := range cof {
		d := m.Minor(i).Det()
		if (i/4+i%4)%2 == 1 {
			d = -d
		}
		cof[i] = d
	}
	det := m[0]*cof[0] + m[1]*cof[1] + m[2]*cof[2] + m[3]*cof[3]

	adj := cof.Transpose()
	for i := range adj {
		adj[i] /= det
	}
	return adj
}
