// SPDX-License-Identifier: MIT

// Package packed - flat slot layout of Mat33 and SymMat33.
//
// Mat33 columns are padded to Mat33Stride slots, so the dense flat offset of
// (row, col) is col*Mat33Stride + row:
//
//	col:    0        1        2
//	row 0: [0]      [4]      [8]
//	row 1: [1]      [5]      [9]
//	row 2: [2]      [6]      [10]
//	pad:   [3]      [7]      [11]
//
// SymMat33 keeps the lower triangle in column order, which lands on dense
// offsets 0, 1, 2, 5, 6, 10.

package packed

// Dense layout.
const (
	// Real3Lanes is the number of used lanes of a packed 3-vector.
	Real3Lanes = 3

	// Mat33Stride is the slot count of one padded column (3 used + 1 pad).
	Mat33Stride = 4

	// Mat33Slots is the flat length of a padded 3x3 matrix.
	Mat33Slots = 3 * Mat33Stride

	// padRow is the row index of the padding lane inside a column.
	padRow = Mat33Stride - 1
)

// Symmetric layout: slot numbers of the independent entries of SymMat33.
const (
	SymX11 = iota // (0,0)
	SymX21        // (1,0)
	SymX31        // (2,0)
	SymX22        // (1,1)
	SymX32        // (2,1)
	SymX33        // (2,2)

	// SymMat33Slots is the number of independent entries of a symmetric 3x3.
	SymMat33Slots
)

// Position is a (row, col) coordinate inside a 3x3 block.
type Position struct {
	Row, Col int
}

// Flat returns the padded column-major offset of p (see FlatIndex).
func (p Position) Flat() int { return FlatIndex(p.Row, p.Col) }

// symLayout maps each symmetric slot to its lower-triangle position.
var symLayout = [SymMat33Slots]Position{
	SymX11: {Row: 0, Col: 0},
	SymX21: {Row: 1, Col: 0},
	SymX31: {Row: 2, Col: 0},
	SymX22: {Row: 1, Col: 1},
	SymX32: {Row: 2, Col: 1},
	SymX33: {Row: 2, Col: 2},
}

// FlatIndex returns the offset of (row, col) in the 12-slot padded
// column-major storage of Mat33. It does not validate its arguments.
// Complexity: O(1).
func FlatIndex(row, col int) int {
	return col*Mat33Stride + row
}

// SymPosition returns the lower-triangle position of symmetric slot k.
// Panics with ErrSlotRange when k is outside [0, SymMat33Slots).
func SymPosition(k int) Position {
	if k < 0 || k >= SymMat33Slots {
		panic(slotError("SymPosition", k))
	}

	return symLayout[k]
}
