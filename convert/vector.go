// SPDX-License-Identifier: MIT

package convert

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/rigidcheck/packed"
)

// ToReal3 copies a reference vector into a packed Real3 (x, y, z in order).
func ToReal3(v r3.Vector) packed.Real3 {
	return packed.Real3{X: v.X, Y: v.Y, Z: v.Z}
}

// ToVector copies a packed Real3 into a reference vector.
func ToVector(v packed.Real3) r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

// ToQuaternion copies a reference quaternion into a packed one.
// Real→W, Imag→X, Jmag→Y, Kmag→Z; both sides are scalar-first.
func ToQuaternion(q quat.Number) packed.Quaternion {
	return packed.Quaternion{W: q.Real, X: q.Imag, Y: q.Jmag, Z: q.Kmag}
}

// ToNumber copies a packed quaternion into a reference one.
func ToNumber(q packed.Quaternion) quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// ToReal4 reads a reference quaternion as a packed 4-vector (w, x, y, z).
func ToReal4(q quat.Number) packed.Real4 {
	return packed.Real4{W: q.Real, X: q.Imag, Y: q.Jmag, Z: q.Kmag}
}

// Real4ToNumber is the inverse of ToReal4.
func Real4ToNumber(v packed.Real4) quat.Number {
	return quat.Number{Real: v.W, Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}
