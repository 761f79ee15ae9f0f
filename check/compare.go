// SPDX-License-Identifier: MIT

// Package check - comparison kernels.
//
// Every composite comparison is a zip over packed.Component lanes; the
// per-shape functions in assert.go only fix the shape. Lane order is the
// order returned by Components(), and the first failing lane wins.

package check

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rigidcheck/packed"
)

// Scalar is the set of types accepted by the scalar strict comparison.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Decomposer is a value that can be flattened into named scalar lanes.
// All packed types implement it.
type Decomposer interface {
	Components() []packed.Component
}

// laneCmp compares one pair of lanes; nil means equal.
type laneCmp func(x, y float64) *Mismatch

// CompareStrict reports whether x and y are the same value.
// Equal values pass (including +0 vs −0); two NaNs pass only when their bit
// patterns are identical, so every value equals itself.
func CompareStrict[T Scalar](x, y T) error {
	if strictEqual(x, y) {
		return nil
	}

	return &Mismatch{X: x, Y: y, Strict: true}
}

// strictEqual is the exact-equality rule shared by scalars and lanes.
func strictEqual[T Scalar](x, y T) bool {
	if x == y {
		return true
	}
	// Only floating-point NaN fails x == x.
	if x != x && y != y {
		return math.Float64bits(float64(x)) == math.Float64bits(float64(y))
	}

	return false
}

// strictLane adapts strictEqual to laneCmp.
func strictLane(x, y float64) *Mismatch {
	if strictEqual(x, y) {
		return nil
	}

	return &Mismatch{X: x, Y: y, Strict: true}
}

// CompareWeak reports whether |x − y| ≤ eps (default DefaultEpsilon).
// MAIN DESCRIPTION:
//   - Boundary is inclusive: |x − y| == eps passes, anything larger fails.
//
// Behavior highlights:
//   - Equal values pass without subtracting, so +Inf vs +Inf passes.
//   - Two NaNs pass; a NaN against a number fails (its difference is NaN,
//     which is not ≤ eps).
//
// Complexity:
//   - Time O(1), Space O(1).
func CompareWeak(x, y float64, opts ...Option) error {
	if m := weakLane(gatherOptions(opts...).eps)(x, y); m != nil {
		return m
	}

	return nil
}

// weakLane builds the tolerance comparison for a fixed eps.
func weakLane(eps float64) laneCmp {
	return func(x, y float64) *Mismatch {
		if x == y || (math.IsNaN(x) && math.IsNaN(y)) {
			return nil
		}
		diff := math.Abs(x - y)
		if diff <= eps {
			return nil
		}

		return &Mismatch{X: x, Y: y, Diff: diff, Eps: eps}
	}
}

// compareLanes zips the lanes of a and b and returns the first mismatch,
// tagged with "<type>.<lane>".
func compareLanes[D Decomposer](a, b D, cmp laneCmp) error {
	ca, cb := a.Components(), b.Components()
	kind := fmt.Sprintf("%T", a)
	for i := range ca {
		if m := cmp(ca[i].Value, cb[i].Value); m != nil {
			m.Path = kind + "." + ca[i].Name
			return m
		}
	}

	return nil
}

// CompareStrictValues compares every lane of a and b exactly.
func CompareStrictValues[D Decomposer](a, b D) error {
	return compareLanes(a, b, strictLane)
}

// CompareWeakValues compares every lane of a and b within the same eps.
func CompareWeakValues[D Decomposer](a, b D, opts ...Option) error {
	return compareLanes(a, b, weakLane(gatherOptions(opts...).eps))
}
