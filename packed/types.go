// SPDX-License-Identifier: MIT

// Package packed: value types and their flat accessors.
//
// All types are plain values (no pointers, no hidden state); copying a value
// copies every lane. Component order returned by Components() is the
// canonical comparison order used by the check package.

package packed

import (
	"fmt"
	"strings"
)

// Epsilon is the machine epsilon of float64 (2^-52, C's DBL_EPSILON): the
// gap between 1.0 and the next representable value. It is the library-wide
// default tolerance for weak comparisons.
const Epsilon = 0x1p-52

// ---------- Formatting literals (same shape as matrix dumps elsewhere) ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Component is one named scalar lane of a packed value.
type Component struct {
	Name  string  // lane name, e.g. "y" or "m21"
	Value float64 // lane value
}

// Real3 is a packed 3-vector. In registers it occupies four lanes; the
// padding lane is not observable through this type.
type Real3 struct {
	X, Y, Z float64
}

// At returns lane i (0=x, 1=y, 2=z).
// Panics with ErrSlotRange for any other i.
func (v Real3) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(slotError("Real3.At", i))
}

// Components returns x, y, z in lane order.
func (v Real3) Components() []Component {
	return []Component{{"x", v.X}, {"y", v.Y}, {"z", v.Z}}
}

// String renders "(x, y, z)" with %g.
func (v Real3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Real4 is a packed 4-vector, scalar lane first (w, x, y, z).
type Real4 struct {
	W, X, Y, Z float64
}

// Components returns w, x, y, z.
func (v Real4) Components() []Component {
	return []Component{{"w", v.W}, {"x", v.X}, {"y", v.Y}, {"z", v.Z}}
}

// Quaternion is a packed rotation quaternion, scalar first (w, x, y, z).
// Zero value is the zero quaternion, not the identity; use IdentityQuaternion.
type Quaternion struct {
	W, X, Y, Z float64
}

// IdentityQuaternion returns (1, 0, 0, 0).
func IdentityQuaternion() Quaternion { return Quaternion{W: 1} }

// Components returns w, x, y, z.
func (q Quaternion) Components() []Component {
	return []Component{{"w", q.W}, {"x", q.X}, {"y", q.Y}, {"z", q.Z}}
}

// Mat33 is a packed 3x3 matrix stored as three column vectors.
//   - Cols[i] is column i.
//   - The flat view (At) exposes Mat33Slots padded slots in column-major order.
type Mat33 struct {
	Cols [3]Real3
}

// FromCols builds a matrix from its three columns.
func FromCols(c0, c1, c2 Real3) Mat33 {
	return Mat33{Cols: [3]Real3{c0, c1, c2}}
}

// FromRows builds a matrix from its three rows (transposing into columns).
func FromRows(r0, r1, r2 Real3) Mat33 {
	return FromCols(
		Real3{r0.X, r1.X, r2.X},
		Real3{r0.Y, r1.Y, r2.Y},
		Real3{r0.Z, r1.Z, r2.Z},
	)
}

// Identity33 returns I₃.
func Identity33() Mat33 { return Diag33(1, 1, 1) }

// Diag33 returns diag(x, y, z).
func Diag33(x, y, z float64) Mat33 {
	return FromCols(Real3{X: x}, Real3{Y: y}, Real3{Z: z})
}

// At returns flat slot k of the padded column-major storage.
// MAIN DESCRIPTION:
//   - Column k/Mat33Stride, row k%Mat33Stride; padding slots read as 0.
//
// Behavior highlights:
//   - Mirrors the memory the vectorized kernels see, so tests can address
//     entries by the same offsets.
//
// Errors:
//   - Panics with ErrSlotRange when k∉[0, Mat33Slots).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m Mat33) At(k int) float64 {
	if k < 0 || k >= Mat33Slots {
		panic(slotError("Mat33.At", k))
	}
	col, row := k/Mat33Stride, k%Mat33Stride
	if row == padRow {
		return 0 // padding lane
	}

	return m.Cols[col].At(row)
}

// Elem returns entry (row, col), both in [0, 3).
func (m Mat33) Elem(row, col int) float64 {
	if col < 0 || col >= 3 {
		panic(slotError("Mat33.Elem", col))
	}

	return m.Cols[col].At(row)
}

// Row returns row i as a Real3.
func (m Mat33) Row(i int) Real3 {
	return Real3{m.Cols[0].At(i), m.Cols[1].At(i), m.Cols[2].At(i)}
}

// Components returns the nine used slots in column-major order, named mRC
// (1-based), i.e. flat offsets 0,1,2,4,5,6,8,9,10.
func (m Mat33) Components() []Component {
	out := make([]Component, 0, 9)
	var row, col int
	for col = 0; col < 3; col++ {
		for row = 0; row < 3; row++ {
			out = append(out, Component{
				Name:  fmt.Sprintf("m%d%d", row+1, col+1),
				Value: m.Cols[col].At(row),
			})
		}
	}

	return out
}

// String renders the matrix row by row, "[a, b, c]\n" per row, %g values.
func (m Mat33) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < 3; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < 3; j++ {
			b.WriteString(fmt.Sprintf("%g", m.Cols[j].At(i)))
			if j+1 < 3 {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// SymMat33 is a packed symmetric 3x3 matrix holding only the lower triangle.
// Field order matches the slot order SymX11..SymX33.
type SymMat33 struct {
	X11, X21, X31, X22, X32, X33 float64
}

// At returns symmetric slot k (SymX11..SymX33).
// Panics with ErrSlotRange when k∉[0, SymMat33Slots).
func (s SymMat33) At(k int) float64 {
	switch k {
	case SymX11:
		return s.X11
	case SymX21:
		return s.X21
	case SymX31:
		return s.X31
	case SymX22:
		return s.X22
	case SymX32:
		return s.X32
	case SymX33:
		return s.X33
	}
	panic(slotError("SymMat33.At", k))
}

// Components returns the six independent entries in slot order.
func (s SymMat33) Components() []Component {
	return []Component{
		{"x11", s.X11}, {"x21", s.X21}, {"x31", s.X31},
		{"x22", s.X22}, {"x32", s.X32}, {"x33", s.X33},
	}
}

// Full expands s into a Mat33 by mirroring the lower triangle.
func (s SymMat33) Full() Mat33 {
	return FromCols(
		Real3{s.X11, s.X21, s.X31},
		Real3{s.X21, s.X22, s.X32},
		Real3{s.X31, s.X32, s.X33},
	)
}
