// SPDX-License-Identifier: MIT

// Package convert - packed Mat33 ↔ gonum dense blocks.
//
// Determinism:
//   - Columns are visited 0→1→2 and rows 0→1→2; every lane is written once.
//
// AI-Hints:
//   - Use ToDense/ToMat33 for plain 3x3 round trips.
//   - Use PasteMat33/ClipMat33 when the 3x3 block lives inside a larger
//     system matrix (e.g. a block-diagonal mass matrix).

package convert

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rigidcheck/packed"
)

// ---------- error context tags ----------

const (
	ctxClipVector  = "ClipVector"
	ctxPasteVector = "PasteVector"
	ctxClipMat33   = "ClipMat33"
	ctxPasteMat33  = "PasteMat33"
)

// isNilMatrix reports a nil interface or a typed-nil *mat.Dense.
func isNilMatrix(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*mat.Dense)

	return ok && d == nil
}

// fits reports whether an h×w block at (row, col) lies inside an r×c matrix.
func fits(r, c, row, col, h, w int) bool {
	return row >= 0 && col >= 0 && row+h <= r && col+w <= c
}

// ClipVector reads the 3-row column segment starting at (row, col).
// MAIN DESCRIPTION:
//   - Returns (m[row,col], m[row+1,col], m[row+2,col]) as a packed Real3.
//
// Inputs:
//   - m: any reference matrix with at least row+3 rows and col+1 columns.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrOutOfRange when the segment does not fit.
//
// Complexity:
//   - Time O(1), Space O(1).
func ClipVector(m mat.Matrix, row, col int) (packed.Real3, error) {
	if isNilMatrix(m) {
		return packed.Real3{}, blockErrorf(ctxClipVector, row, col, ErrNilMatrix)
	}
	r, c := m.Dims()
	if !fits(r, c, row, col, packed.Real3Lanes, 1) {
		return packed.Real3{}, blockErrorf(ctxClipVector, row, col, ErrOutOfRange)
	}

	return packed.Real3{
		X: m.At(row, col),
		Y: m.At(row+1, col),
		Z: m.At(row+2, col),
	}, nil
}

// PasteVector writes v into the 3-row column segment starting at (row, col).
// Errors mirror ClipVector; dst is left untouched on error.
func PasteVector(dst *mat.Dense, v packed.Real3, row, col int) error {
	if dst == nil {
		return blockErrorf(ctxPasteVector, row, col, ErrNilMatrix)
	}
	r, c := dst.Dims()
	if !fits(r, c, row, col, packed.Real3Lanes, 1) {
		return blockErrorf(ctxPasteVector, row, col, ErrOutOfRange)
	}
	dst.Set(row, col, v.X)
	dst.Set(row+1, col, v.Y)
	dst.Set(row+2, col, v.Z)

	return nil
}

// ClipMat33 reads the 3x3 block whose top-left corner is (row, col).
// Column i of the result is ClipVector(m, row, col+i).
func ClipMat33(m mat.Matrix, row, col int) (packed.Mat33, error) {
	if isNilMatrix(m) {
		return packed.Mat33{}, blockErrorf(ctxClipMat33, row, col, ErrNilMatrix)
	}
	r, c := m.Dims()
	if !fits(r, c, row, col, 3, 3) {
		return packed.Mat33{}, blockErrorf(ctxClipMat33, row, col, ErrOutOfRange)
	}

	var out packed.Mat33
	var err error
	for i := 0; i < 3; i++ {
		if out.Cols[i], err = ClipVector(m, row, col+i); err != nil {
			return packed.Mat33{}, err // unreachable after the block check
		}
	}

	return out, nil
}

// PasteMat33 writes a into the 3x3 block whose top-left corner is (row, col).
// The block is validated up front, so dst is either fully written or untouched.
func PasteMat33(dst *mat.Dense, a packed.Mat33, row, col int) error {
	if dst == nil {
		return blockErrorf(ctxPasteMat33, row, col, ErrNilMatrix)
	}
	r, c := dst.Dims()
	if !fits(r, c, row, col, 3, 3) {
		return blockErrorf(ctxPasteMat33, row, col, ErrOutOfRange)
	}
	for i := 0; i < 3; i++ {
		if err := PasteVector(dst, a.Cols[i], row, col+i); err != nil {
			return err
		}
	}

	return nil
}

// ToMat33 converts the top-left 3x3 block of m into a packed Mat33.
// Column i is read from rows 0..2 of column i. Any extra rows or columns of
// m are ignored.
//
// Panics when m is nil or smaller than 3x3: the conversion is total over
// well-formed inputs and an undersized matrix is a programmer error.
func ToMat33(m mat.Matrix) packed.Mat33 {
	out, err := ClipMat33(m, 0, 0)
	if err != nil {
		panic(err)
	}

	return out
}

// ToDense converts a packed Mat33 into a fresh 3x3 *mat.Dense, pasting
// column i at (0, i).
func ToDense(a packed.Mat33) *mat.Dense {
	d := mat.NewDense(3, 3, nil)
	if err := PasteMat33(d, a, 0, 0); err != nil {
		panic(err) // 3x3 destination always fits
	}

	return d
}
