package mat

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite is returned by Check when a value holds Inf or NaN, which is
// how degenerate inputs (singular matrices, zero vectors, empty projection
// volumes) show up in results.
var ErrNonFinite = errors.New("non-finite element")

func firstNonFinite(v []float32) int {
	for i, f := range v {
		if math.IsInf(float64(f), 0) || math.IsNaN(float64(f)) {
			return i
		}
	}
	return -1
}

func check(v []float32) error {
	if i := firstNonFinite(v); i >= 0 {
		return fmt.Errorf("%w at %d: %v", ErrNonFinite, i, v[i])
	}
	return nil
}

func (m Mat2) IsFinite() bool { return firstNonFinite(m[:]) < 0 }
func (m Mat3) IsFinite() bool { return firstNonFinite(m[:]) < 0 }
func (m Mat4) IsFinite() bool { return firstNonFinite(m[:]) < 0 }
func (v Vec3) IsFinite() bool { return firstNonFinite(v[:]) < 0 }
func (v Vec4) IsFinite() bool { return firstNonFinite(v[:]) < 0 }

func (m Mat3) Check() error { return check(m[:]) }
func (m Mat4) Check() error { return check(m[:]) }
func (v Vec3) Check() error { return check(v[:]) }
func (v Vec4) Check() error { return check(v[:]) }
