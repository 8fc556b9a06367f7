package mat

// Mat2 is a 2x2 matrix, used as the base case of minor expansion.
type Mat2 [4]float32

func (m Mat2) Det() float32 {
	return m[0]*m[3] - m[1]*m[2]
}
