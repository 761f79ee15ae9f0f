// SPDX-License-Identifier: MIT

// Package check - assertion facades.
//
// Each facade delegates to its Compare* kernel and reports the result via
// report. They return true when the values matched, so callers that pass a
// non-fatal TestingT can still branch on the outcome.

package check

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rigidcheck/packed"
)

type tHelper interface{ Helper() }

// report fails t with err's diagnostic and stops it; nil err is a pass.
func report(t require.TestingT, err error) bool {
	if err == nil {
		return true
	}
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	assert.Fail(t, err.Error())
	t.FailNow()

	return false
}

// ---------- Strict (exact) ----------

// StrictEqual fails t unless x and y are the same value (see CompareStrict).
func StrictEqual[T Scalar](t require.TestingT, x, y T) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, CompareStrict(x, y))
}

// StrictEqualValues fails t unless every lane of a equals the one in b.
func StrictEqualValues[D Decomposer](t require.TestingT, a, b D) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, CompareStrictValues(a, b))
}

// StrictEqualReal3 compares x, y, z exactly.
func StrictEqualReal3(t require.TestingT, a, b packed.Real3) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, CompareStrictValues(a, b))
}

// StrictEqualReal4 compares w, x, y, z exactly.
func StrictEqualReal4(t require.TestingT, a, b packed.Real4) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, CompareStrictValues(a, b))
}

// StrictEqualQuaternion compares w, x, y, z exactly.
func StrictEqualQuaternion(t require.TestingT, a, b packed.Quaternion) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, CompareStrictValues(a, b))
}

// StrictEqualMat33 compares the nine entries column by column.
func StrictEqualMat33(t require.TestingT, a, b packed.Mat33) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, CompareStrictValues(a, b))
}

// StrictEqualSymMat33 compares the six independent entries exactly.
func StrictEqualSymMat33(t require.TestingT, a, b packed.SymMat33) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, CompareStrictValues(a, b))
}

// ---------- Weak (tolerance) ----------

// WeakEqual fails t when |x − y| > eps (see CompareWeak).
func WeakEqual(t require.TestingT, x, y float64, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, CompareWeak(x, y, opts...))
}

// WeakEqualValues fails t when any lane pair differs by more than eps.
func WeakEqualValues[D Decomposer](t require.TestingT, a, b D, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, CompareWeakValues(a, b, opts...))
}

// WeakEqualReal3 compares x, y, z within eps.
func WeakEqualReal3(t require.TestingT, a, b packed.Real3, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, CompareWeakValues(a, b, opts...))
}

// WeakEqualReal4 compares w, x, y, z within eps.
func WeakEqualReal4(t require.TestingT, a, b packed.Real4, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, CompareWeakValues(a, b, opts...))
}

// WeakEqualQuaternion compares w, x, y, z within eps.
func WeakEqualQuaternion(t require.TestingT, a, b packed.Quaternion, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, CompareWeakValues(a, b, opts...))
}

// WeakEqualMat33 compares the nine used slots (flat 0,1,2,4,5,6,8,9,10).
func WeakEqualMat33(t require.TestingT, a, b packed.Mat33, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, CompareWeakValues(a, b, opts...))
}

// WeakEqualSymMat33 compares a symmetric matrix with the lower triangle of a
// dense one (see CompareWeakSymMat33).
func WeakEqualSymMat33(t require.TestingT, sym packed.SymMat33, dense packed.Mat33, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return report(t, CompareWeakSymMat33(sym, dense, opts...))
}
