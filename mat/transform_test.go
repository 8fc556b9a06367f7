package mat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func transformNaive(m Mat4, a Vec3) Vec3 {
	var out Vec3
	in := [4]float32{a[0], a[1], a[2], 1}
	for i := 0; i < 3; i++ {
		var sum float32
		for k := 0; k < 4; k++ {
			sum += m[4*k+i] * in[k]
		}
		out[i] = sum
	}
	return out
}

func TestTransform(t *testing.T) {
	for name, m := range testMatrices {
		t.Run(name, func(t *testing.T) {
			in := NewVec3(1, 2, 3)
			v := m.Transform(in)
			vNaive := transformNaive(m, in)
			require.InDeltaSlice(t, vNaive[:], v[:], eps)

			v4 := m.Transform4(in.Vec4())
			require.InDeltaSlice(t, vNaive[:], v4[:3], eps)
		})
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(16, 16, 0)
	require.Equal(t, float32(16), m[12])
	require.Equal(t, float32(16), m[13])
	require.Equal(t, float32(0), m[14])
	require.Equal(t, Vec4{16, 16, 0, 1}, m.Transform4(Vec4{0, 0, 0, 1}))
	require.Equal(t, TranslateVec(Vec3{16, 16, 0}), m)

	t.Run("Direction", func(t *testing.T) {
		require.Equal(t, Vec4{1, 2, 3, 0}, m.Transform4(Vec4{1, 2, 3, 0}))
	})
	t.Run("Translated", func(t *testing.T) {
		m := Rotate(math.Pi/2, AxisZ).Translated(Vec3{1, 0, 0})
		v := m.Transform(Vec3{1, 0, 0})
		require.InDeltaSlice(t, []float32{1, 1, 0}, v[:], eps)
	})
}

func TestRotate(t *testing.T) {
	axes := map[string]Vec3{
		"X":        AxisX,
		"Y":        AxisY,
		"Z":        AxisZ,
		"NonUnit":  {1, 2, 3},
		"Negative": {-0.5, 0, 2},
	}

	t.Run("Zero", func(t *testing.T) {
		for _, axis := range axes {
			requireMat4InDelta(t, Identity(), Rotate(0, axis), eps)
		}
	})
	t.Run("Inverse", func(t *testing.T) {
		for name, axis := range axes {
			t.Run(name, func(t *testing.T) {
				const ang = 0.7
				requireMat4InDelta(t, Identity(), Rotate(ang, axis).Mul(Rotate(-ang, axis)), eps)
			})
		}
	})
	t.Run("Orthonormal", func(t *testing.T) {
		for name, axis := range axes {
			t.Run(name, func(t *testing.T) {
				m := Rotate(2.1, axis)
				requireMat4InDelta(t, m.Inv(), m.Transpose(), eps)
				requireMat4InDelta(t, Identity(), m.Mul(m.Transpose()), eps)
			})
		}
	})
	t.Run("QuarterTurn", func(t *testing.T) {
		v := Rotate(math.Pi/2, Vec3{0, 0, 1}).Transform4(Vec4{1, 0, 0, 1})
		require.InDeltaSlice(t, []float32{0, 1, 0, 1}, v[:], 1e-5)

		v = Rotate(math.Pi/2, AxisX).Transform4(Vec4{0, 1, 0, 1})
		require.InDeltaSlice(t, []float32{0, 0, 1, 1}, v[:], 1e-5)

		v = Rotate(math.Pi/2, AxisY).Transform4(Vec4{0, 0, 1, 1})
		require.InDeltaSlice(t, []float32{1, 0, 0, 1}, v[:], 1e-5)
	})
	t.Run("AxisLength", func(t *testing.T) {
		requireMat4InDelta(t, Rotate(0.3, AxisZ), Rotate(0.3, Vec3{0, 0, 5}), eps)
		requireMat4InDelta(t, Rotate(0.3, AxisZ), Rotate(0.3, Vec3{0, 0, 1.0000001}), eps)
	})
	t.Run("Formula", func(t *testing.T) {
		const ang = 0.4
		axis := Vec3{2, -1, 2}.Normalized()
		u, v, w := float64(axis[0]), float64(axis[1]), float64(axis[2])
		s, c := math.Sincos(ang)
		m := Rotate(ang, axis)
		require.InDelta(t, u*v*(1-c)+w*s, m[1], eps)
		require.InDelta(t, u*w*(1-c)-v*s, m[2], eps)
		require.InDelta(t, v*w*(1-c)-u*s, m[9], eps)
		require.InDelta(t, w*w+(u*u+v*v)*c, m[10], eps)
		require.Equal(t, float32(1), m[15])
		require.Equal(t, float32(0), m[3])
		require.Equal(t, float32(0), m[12])
	})
}

func TestRotated(t *testing.T) {
	const a, b, c = 0.3, -1.1, 2.4
	m := Identity().Rotated(a, AxisX).Rotated(b, AxisY).Rotated(c, AxisZ)

	p := Vec3{0.5, -0.25, 1}
	expected := Rotate(c, AxisZ).Transform(Rotate(b, AxisY).Transform(Rotate(a, AxisX).Transform(p)))
	v := m.Transform(p)
	require.InDeltaSlice(t, expected[:], v[:], eps)

	// Rotations about different axes do not commute; the order matters.
	swapped := Identity().Rotated(c, AxisZ).Rotated(b, AxisY).Rotated(a, AxisX).Transform(p)
	require.Greater(t, swapped.Sub(v).Norm(), float32(0.1))
}
