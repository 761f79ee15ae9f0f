// SPDX-License-Identifier: MIT

// Package check provides the equality assertions used to validate packed
// math kernels against a reference library.
//
// Two families are offered for every supported shape (scalar, Real3, Real4,
// Quaternion, Mat33, SymMat33):
//
//   - Strict: exact value equality, for integers and results expected to
//     match bit for bit.
//   - Weak: |x − y| ≤ eps per scalar lane, for floating-point results that
//     may diverge by rounding. The default eps is packed.Epsilon.
//
// Each family exists in two forms:
//
//   - Compare*: pure functions returning nil or a *Mismatch describing the
//     first failing lane (errors.Is(err, ErrComparisonMismatch)).
//   - StrictEqual* / WeakEqual*: assertions that report the first mismatch
//     to a require.TestingT and call FailNow. Composite comparisons stop at
//     the first failing lane, so output stays ordered to the first divergence.
//
// Pass a *testing.T to aggregate failures in a normal test run, or Abort to
// print the diagnostic on stdout and terminate the process with status 1.
//
// PrintMat33 and PrintColumn are debug printers for ad hoc inspection.
package check
