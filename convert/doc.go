// SPDX-License-Identifier: MIT

// Package convert maps packed values to and from the reference math types
// used as ground truth in tests.
//
// Reference types:
//
//   - r3.Vector (github.com/golang/geo/r3) for 3-vectors.
//   - quat.Number (gonum.org/v1/gonum/num/quat) for scalar-first quaternions;
//     Real, Imag, Jmag, Kmag play the role of e0..e3.
//   - mat.Matrix / *mat.Dense (gonum.org/v1/gonum/mat) for dense matrices of
//     any size; only a 3x3 block is read or written.
//   - mgl64 (github.com/go-gl/mathgl) types for render-side interop.
//
// Every conversion is a direct field copy: no scaling, no rounding, no
// reordering. Column i of a packed Mat33 is always column i of the reference
// block, in both directions.
//
// Block helpers (ClipVector, PasteVector, ClipMat33, PasteMat33) validate
// their offsets and return ErrOutOfRange instead of letting gonum panic.
// Fixed-size conversions (ToMat33, ToDense) are total for 3x3 inputs.
package convert
