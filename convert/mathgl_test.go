// SPDX-License-Identifier: MIT
package convert_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rigidcheck/check"
	"github.com/katalvlaran/rigidcheck/convert"
	"github.com/katalvlaran/rigidcheck/packed"
)

// TestMgl_RoundTrips keeps every lane across mgl64 types.
func TestMgl_RoundTrips(t *testing.T) {
	v := packed.Real3{X: 1, Y: -2, Z: 3.5}
	require.Equal(t, mgl64.Vec3{1, -2, 3.5}, convert.ToMglVec3(v))
	check.StrictEqualReal3(t, v, convert.FromMglVec3(convert.ToMglVec3(v)))

	q := packed.Quaternion{W: 0.9, X: 0.1, Y: -0.3, Z: 0.2}
	mq := convert.ToMglQuat(q)
	require.Equal(t, 0.9, mq.W)
	require.Equal(t, mgl64.Vec3{0.1, -0.3, 0.2}, mq.V)
	check.StrictEqualQuaternion(t, q, convert.FromMglQuat(mq))

	m := sample()
	mm := convert.ToMglMat3(m)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.Equal(t, m.Elem(r, c), mm.At(r, c))
		}
	}
	check.StrictEqualMat33(t, m, convert.FromMglMat3(mm))
}

// TestMgl_RotationParity compares packed rotation with mgl64.
func TestMgl_RotationParity(t *testing.T) {
	axis := mgl64.Vec3{1, 2, -1}.Normalize()
	mq := mgl64.QuatRotate(math.Pi/5, axis)
	q := convert.FromMglQuat(mq)

	v := packed.Real3{X: 0.3, Y: -1.1, Z: 2.4}
	want := convert.FromMglVec3(mq.Rotate(convert.ToMglVec3(v)))
	check.WeakEqualReal3(t, want, q.Rotate(v), check.WithEpsilon(1e-14))

	// Rotation matrix from mgl64 maps v the same way.
	rot := convert.FromMglMat3(mq.Mat4().Mat3())
	check.WeakEqualReal3(t, want, rot.MulVec(v), check.WithEpsilon(1e-14))
}
