package mat

// Mat3 is a 3x3 matrix stored in column-major order.
type Mat3 [9]float32

func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[3*i+j] = m[3*j+i]
		}
	}
	return out
}

// Minor returns the 2x2 matrix left after deleting the row and the column
// containing the element at flat index i.
func (m Mat3) Minor(i int) Mat2 {
	col, row := i/3, i%3
	var out Mat2
	var n int
	for c := 0; c < 3; c++ {
		if c == col {
			continue
		}
		for r := 0; r < 3; r++ {
			if r == row {
				continue
			}
			out[n] = m[3*c+r]
			n++
		}
	}
	return out
}

func (m Mat3) Det() float32 {
	return m[0]*m.Minor(0).Det() - m[1]*m.Minor(1).Det() + m[2]*m.Minor(2).Det()
}

// Inv returns the inverse of m. A singular matrix gives non-finite elements.
func (m Mat3) Inv() Mat3 {
	var cof Mat3
	for i := range cof {
		d := m.Minor(i).Det()
		if (i/3+i%3)%2 == 1 {
			d = -d
		}
		cof[i] = d
	}
	det := m[0]*cof[0] + m[1]*cof[1] + m[2]*cof[2]

	adj := cof.Transpose()
	for i := range adj {
		adj[i] /= det
	}
	return adj
}

func (m Mat3) Mul(a Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m[3*k+i] * a[3*j+k]
			}
			out[3*j+i] = sum
		}
	}
	return out
}
