// SPDX-License-Identifier: MIT

package convert

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/rigidcheck/packed"
)

// ToMglVec3 copies v into an mgl64.Vec3.
func ToMglVec3(v packed.Real3) mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

// FromMglVec3 copies an mgl64.Vec3 into a packed Real3.
func FromMglVec3(v mgl64.Vec3) packed.Real3 { return packed.Real3{X: v[0], Y: v[1], Z: v[2]} }

// ToMglQuat copies q into an mgl64.Quat (W scalar, V vector part).
func ToMglQuat(q packed.Quaternion) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// FromMglQuat copies an mgl64.Quat into a packed quaternion.
func FromMglQuat(q mgl64.Quat) packed.Quaternion {
	return packed.Quaternion{W: q.W, X: q.V[0], Y: q.V[1], Z: q.V[2]}
}

// ToMglMat3 copies a into an mgl64.Mat3. Both layouts are column-major, so
// column i maps to column i; mgl64 simply has no padding lane.
func ToMglMat3(a packed.Mat33) mgl64.Mat3 {
	return mgl64.Mat3FromCols(ToMglVec3(a.Cols[0]), ToMglVec3(a.Cols[1]), ToMglVec3(a.Cols[2]))
}

// FromMglMat3 copies an mgl64.Mat3 into a packed Mat33.
func FromMglMat3(m mgl64.Mat3) packed.Mat33 {
	return packed.FromCols(FromMglVec3(m.Col(0)), FromMglVec3(m.Col(1)), FromMglVec3(m.Col(2)))
}
