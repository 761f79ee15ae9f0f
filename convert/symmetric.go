// SPDX-License-Identifier: MIT

package convert

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rigidcheck/packed"
)

const ctxFromSymmetric = "FromSymmetric"

// ToSymDense converts s into a 3x3 *mat.SymDense.
// Each slot k is written at packed.SymPosition(k); SymDense mirrors it.
func ToSymDense(s packed.SymMat33) *mat.SymDense {
	d := mat.NewSymDense(3, nil)
	for k := 0; k < packed.SymMat33Slots; k++ {
		p := packed.SymPosition(k)
		d.SetSym(p.Row, p.Col, s.At(k))
	}

	return d
}

// FromSymmetric reads the lower triangle of the leading 3x3 block of m.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrOutOfRange when m is smaller than 3x3.
func FromSymmetric(m mat.Symmetric) (packed.SymMat33, error) {
	if m == nil {
		return packed.SymMat33{}, blockErrorf(ctxFromSymmetric, 0, 0, ErrNilMatrix)
	}
	if s, ok := m.(*mat.SymDense); ok && s == nil {
		return packed.SymMat33{}, blockErrorf(ctxFromSymmetric, 0, 0, ErrNilMatrix)
	}
	if m.SymmetricDim() < 3 {
		return packed.SymMat33{}, blockErrorf(ctxFromSymmetric, 0, 0, ErrOutOfRange)
	}

	var v [packed.SymMat33Slots]float64
	for k := range v {
		p := packed.SymPosition(k)
		v[k] = m.At(p.Row, p.Col)
	}

	return packed.SymMat33{
		X11: v[packed.SymX11],
		X21: v[packed.SymX21],
		X31: v[packed.SymX31],
		X22: v[packed.SymX22],
		X32: v[packed.SymX32],
		X33: v[packed.SymX33],
	}, nil
}

// SymToMat33 expands s into a full packed Mat33 (lower triangle mirrored).
func SymToMat33(s packed.SymMat33) packed.Mat33 { return s.Full() }
