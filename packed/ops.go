// SPDX-License-Identifier: MIT

// Package packed - minimal kernel set.
//
// These are the scalar reference forms of the lane-parallel kernels. Loop
// orders are fixed so results are bit-reproducible across runs.

package packed

import "math"

// Add returns a + b.
func (a Real3) Add(b Real3) Real3 { return Real3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a − b.
func (a Real3) Sub(b Real3) Real3 { return Real3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Scale returns s·a.
func (a Real3) Scale(s float64) Real3 { return Real3{a.X * s, a.Y * s, a.Z * s} }

// Dot returns a·b.
func (a Real3) Dot(b Real3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns a × b.
func (a Real3) Cross(b Real3) Real3 {
	return Real3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns |a|.
func (a Real3) Length() float64 { return math.Sqrt(a.Dot(a)) }

// Mul returns the Hamilton product q·r.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Conjugate returns (w, −x, −y, −z).
func (q Quaternion) Conjugate() Quaternion { return Quaternion{q.W, -q.X, -q.Y, -q.Z} }

// Rotate returns v rotated by the unit quaternion q, i.e. vec(q·(0,v)·q*).
// Uses the expanded form v + 2w(u×v) + 2u×(u×v), u = (x, y, z).
func (q Quaternion) Rotate(v Real3) Real3 {
	u := Real3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)

	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// MulVec returns m·v.
func (m Mat33) MulVec(v Real3) Real3 {
	return m.Cols[0].Scale(v.X).Add(m.Cols[1].Scale(v.Y)).Add(m.Cols[2].Scale(v.Z))
}

// Mul returns m·n, computed column by column (column j = m·n.Cols[j]).
func (m Mat33) Mul(n Mat33) Mat33 {
	return FromCols(m.MulVec(n.Cols[0]), m.MulVec(n.Cols[1]), m.MulVec(n.Cols[2]))
}

// Transpose returns mᵀ.
func (m Mat33) Transpose() Mat33 {
	return FromCols(m.Row(0), m.Row(1), m.Row(2))
}

// Det returns det(m) as the scalar triple product c0·(c1×c2).
func (m Mat33) Det() float64 {
	return m.Cols[0].Dot(m.Cols[1].Cross(m.Cols[2]))
}

// NormalEquations returns the symmetric product AᵀA, keeping only the lower
// triangle. Entry (i, j) is the dot product of columns i and j.
func NormalEquations(a Mat33) SymMat33 {
	c0, c1, c2 := a.Cols[0], a.Cols[1], a.Cols[2]

	return SymMat33{
		X11: c0.Dot(c0),
		X21: c1.Dot(c0),
		X31: c2.Dot(c0),
		X22: c1.Dot(c1),
		X32: c2.Dot(c1),
		X33: c2.Dot(c2),
	}
}
