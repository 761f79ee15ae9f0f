// Package rigidcheck is the test-support layer for a parallel rigid-body
// math library: it lines up packed (SIMD-friendly) values with a dense
// reference library and asserts that both agree.
//
// Under the hood, everything is organized under three subpackages:
//
//	packed/  — Real3, Real4, Quaternion, Mat33 (padded column-major), SymMat33
//	convert/ — packed ↔ reference (golang/geo r3, gonum mat & quat, mathgl)
//	check/   — StrictEqual / WeakEqual assertions, exit reporter, debug printers
//
// Quick example:
//
//	ref := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 10})
//	m := convert.ToMat33(ref)               // column i ← reference column i
//	check.WeakEqualMat33(t, m, kernel(m))   // |Δ| ≤ packed.Epsilon per lane
//
// Pass a *testing.T to fail a single test, or check.Abort to print the first
// mismatch and exit the process with status 1.
package rigidcheck
