// SPDX-License-Identifier: MIT
package check_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rigidcheck/check"
	"github.com/katalvlaran/rigidcheck/packed"
)

// TestCompareStrict_Scalars covers integers, floats, signed zero and NaN.
func TestCompareStrict_Scalars(t *testing.T) {
	require.NoError(t, check.CompareStrict(7, 7))
	require.NoError(t, check.CompareStrict(int64(-3), int64(-3)))
	require.NoError(t, check.CompareStrict(uint8(255), uint8(255)))
	require.NoError(t, check.CompareStrict(1.5, 1.5))
	require.NoError(t, check.CompareStrict(float32(0.1), float32(0.1)))
	require.NoError(t, check.CompareStrict(0.0, math.Copysign(0, -1))) // +0 == −0
	require.NoError(t, check.CompareStrict(math.Inf(1), math.Inf(1)))
	require.NoError(t, check.CompareStrict(math.NaN(), math.NaN())) // same bits

	err := check.CompareStrict(1, 2)
	require.ErrorIs(t, err, check.ErrComparisonMismatch)
	require.EqualError(t, err, "1 does not equal 2")

	// Smallest possible float difference still fails.
	err = check.CompareStrict(1.0, math.Nextafter(1, 2))
	require.ErrorIs(t, err, check.ErrComparisonMismatch)

	err = check.CompareStrict(math.NaN(), 0.0)
	require.ErrorIs(t, err, check.ErrComparisonMismatch)

	// Distinct NaN payloads are different values.
	nan1 := math.Float64frombits(0x7ff8000000000001)
	nan2 := math.Float64frombits(0x7ff8000000000002)
	require.Error(t, check.CompareStrict(nan1, nan2))
}

// TestCompareWeak_Boundary verifies the inclusive tolerance boundary.
func TestCompareWeak_Boundary(t *testing.T) {
	eps := check.DefaultEpsilon

	// |x−y| == eps exactly: 1 and 1+2^-52 are adjacent doubles.
	require.NoError(t, check.CompareWeak(1, 1+eps))
	require.NoError(t, check.CompareWeak(1+eps, 1))

	// eps + δ fails.
	err := check.CompareWeak(1, 1+2*eps)
	require.ErrorIs(t, err, check.ErrComparisonMismatch)

	var m *check.Mismatch
	require.True(t, errors.As(err, &m))
	require.False(t, m.Strict)
	require.Equal(t, 2*eps, m.Diff)
	require.Equal(t, eps, m.Eps)

	// Custom epsilon, exact binary fractions.
	require.NoError(t, check.CompareWeak(0.5, 0.75, check.WithEpsilon(0.25)))
	require.Error(t, check.CompareWeak(0.5, 0.75, check.WithEpsilon(0.125)))

	// eps = 0 degenerates to exact equality.
	require.NoError(t, check.CompareWeak(3, 3, check.WithEpsilon(0)))
	require.Error(t, check.CompareWeak(3, math.Nextafter(3, 4), check.WithEpsilon(0)))
}

// TestCompareWeak_NonFinite fixes the NaN/Inf policy.
func TestCompareWeak_NonFinite(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()

	require.NoError(t, check.CompareWeak(inf, inf))
	require.NoError(t, check.CompareWeak(-inf, -inf))
	require.NoError(t, check.CompareWeak(nan, nan))

	require.Error(t, check.CompareWeak(nan, 0))
	require.Error(t, check.CompareWeak(0, nan))
	require.Error(t, check.CompareWeak(inf, -inf))
	require.Error(t, check.CompareWeak(inf, math.MaxFloat64))
}

// TestMismatch_Messages pins the diagnostic formats.
func TestMismatch_Messages(t *testing.T) {
	err := check.CompareWeak(1, 2)
	require.EqualError(t, err, "1.000000 does not equal 2.000000 1.00000000000000000000e+00")

	err = check.CompareStrictValues(packed.Real3{X: 1, Y: 2, Z: 3}, packed.Real3{X: 1, Y: 2.5, Z: 3})
	require.EqualError(t, err, "packed.Real3.y: 2 does not equal 2.5")

	err = check.CompareWeakValues(packed.Identity33(), packed.Diag33(1, 1, 0.5))
	require.EqualError(t, err,
		"packed.Mat33.m33: 1.000000 does not equal 0.500000 5.00000000000000000000e-01")
}

// TestCompareValues_Reflexive checks v == v for every shape and any eps ≥ 0.
func TestCompareValues_Reflexive(t *testing.T) {
	v3 := packed.Real3{X: 1.25, Y: -7, Z: math.Pi}
	v4 := packed.Real4{W: 1, X: 2, Y: 3, Z: 4}
	q := packed.Quaternion{W: math.Sqrt2 / 2, Z: math.Sqrt2 / 2}
	m := packed.FromRows(v3, v3.Scale(2), v3.Cross(packed.Real3{X: 1}))
	s := packed.NormalEquations(m)

	for _, eps := range []float64{0, check.DefaultEpsilon, 1e-6, 1} {
		opt := check.WithEpsilon(eps)
		require.NoError(t, check.CompareWeakValues(v3, v3, opt))
		require.NoError(t, check.CompareWeakValues(v4, v4, opt))
		require.NoError(t, check.CompareWeakValues(q, q, opt))
		require.NoError(t, check.CompareWeakValues(m, m, opt))
		require.NoError(t, check.CompareWeakValues(s, s, opt))
		require.NoError(t, check.CompareWeakSymMat33(s, s.Full(), opt))
	}

	require.NoError(t, check.CompareStrictValues(v3, v3))
	require.NoError(t, check.CompareStrictValues(v4, v4))
	require.NoError(t, check.CompareStrictValues(q, q))
	require.NoError(t, check.CompareStrictValues(m, m))
	require.NoError(t, check.CompareStrictValues(s, s))
}

// TestCompareValues_FirstMismatchWins reports the earliest lane only.
func TestCompareValues_FirstMismatchWins(t *testing.T) {
	a := packed.Quaternion{W: 1, X: 2, Y: 3, Z: 4}
	b := packed.Quaternion{W: 1, X: 0, Y: 0, Z: 0}

	var m *check.Mismatch
	require.True(t, errors.As(check.CompareStrictValues(a, b), &m))
	require.Equal(t, "packed.Quaternion.x", m.Path)
	require.Equal(t, 2.0, m.X)
	require.Equal(t, 0.0, m.Y)
}

// TestCompareWeakValues_SameEpsilonEveryLane applies one tolerance to all lanes.
func TestCompareWeakValues_SameEpsilonEveryLane(t *testing.T) {
	a := packed.Real4{W: 1, X: 1, Y: 1, Z: 1}
	b := packed.Real4{W: 1.25, X: 0.75, Y: 1.25, Z: 0.75}
	require.NoError(t, check.CompareWeakValues(a, b, check.WithEpsilon(0.25)))

	b.Z = 0.5
	var m *check.Mismatch
	require.True(t, errors.As(check.CompareWeakValues(a, b, check.WithEpsilon(0.25)), &m))
	require.Equal(t, "packed.Real4.z", m.Path)
}
