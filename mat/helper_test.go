package mat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func requireMat4InDelta(t *testing.T, expected, actual Mat4, delta float64) {
	t.Helper()
	require.InDeltaSlice(t, expected[:], actual[:], delta, "expected:\n%v\ngot:\n%v", expected, actual)
}

// rows builds a Mat4 from a row-major literal, which is easier to read in tests.
func rows(r ...float32) Mat4 {
	var m Mat4
	copy(m[:], r)
	return m.Transpose()
}

var testMatrices = map[string]Mat4{
	"Affine": Translate(0.1, 0.2, 0.3).
		Mul(Mat4{1.1, 0, 0, 0, 0, 1.2, 0, 0, 0, 0, 1.3, 0, 0, 0, 0, 1}).
		Mul(Rotate(0.5, AxisX)),
	"General": rows(
		2, 1, 0, 0,
		1, 3, 1, 0,
		0, 1, 4, 1,
		1, 0, 1, 5,
	),
	"Projective": Perspective(60, 1.5, 0.5, 50).Mul(Translate(1, -2, -6)),
}
