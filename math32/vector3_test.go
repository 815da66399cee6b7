// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/Umain-Vision-Pro/UmainSpatialGestures/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func tolAssertEqualVector(t *testing.T, tol float32, vt, va Vector3) {
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{5, 10, 2}, Vec3(5, 10, 2))
	assert.Equal(t, Vector3{20, 20, 20}, Vector3Scalar(20))
	assert.Equal(t, Vector3{1, 2, 3}, Vector3FromVector4(Vec4(1, 2, 3, 9)))

	v := Vector3{}
	v.Set(-1, 7, 3)
	assert.Equal(t, Vector3{-1, 7, 3}, v)

	v.SetScalar(4.25)
	assert.Equal(t, Vector3{4.25, 4.25, 4.25}, v)

	v.SetZero()
	assert.Equal(t, Vector3{}, v)

	v.SetDim(X, 1)
	v.SetDim(Y, 2)
	v.SetDim(Z, 3)
	assert.Equal(t, Vector3{1, 2, 3}, v)
	assert.Equal(t, float32(3), v.Dim(Z))

	sl := make([]float32, 5)
	v.ToSlice(sl, 1)
	assert.Equal(t, []float32{0, 1, 2, 3, 0}, sl)
	nv := Vector3{}
	nv.FromSlice(sl, 1)
	assert.Equal(t, v, nv)
}

func TestVector3Math(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, -5, 6)

	assert.Equal(t, Vec3(5, -3, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, 7, -3), a.Sub(b))
	assert.Equal(t, Vec3(4, -10, 18), a.Mul(b))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vec3(0.5, 1, 1.5), a.DivScalar(2))
	assert.Equal(t, Vector3{}, a.DivScalar(0))
	assert.Equal(t, Vec3(-1, -2, -3), a.Negate())
	assert.Equal(t, Vec3(4, 5, 6), b.Abs())

	assert.Equal(t, float32(12), a.Dot(b))
	assert.Equal(t, float32(14), a.LengthSquared())
	tolassert.EqualTol(t, Sqrt(14), a.Length(), StandardTol)

	c := Vec3(3, 4, 0)
	n := c.Normal()
	tolAssertEqualVector(t, StandardTol, Vec3(0.6, 0.8, 0), n)
	c.SetNormal()
	tolAssertEqualVector(t, StandardTol, Vec3(0.6, 0.8, 0), c)

	assert.Equal(t, float32(5), Vec3(0, 0, 0).DistanceTo(Vec3(0, 3, 4)))

	// right-handed basis
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	assert.Equal(t, Vec3(1, 0, 0), Vec3(0, 1, 0).Cross(Vec3(0, 0, 1)))

	assert.Equal(t, Vec3(1, 1, 1), Vec3(0, 0, 0).Lerp(Vec3(2, 2, 2), 0.5))
}

func TestVector3MulQuat(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90))
	tolAssertEqualVector(t, 1.0e-6, Vec3(0, 1, 0), Vec3(1, 0, 0).MulQuat(q))

	q = NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(90))
	tolAssertEqualVector(t, 1.0e-6, Vec3(0, 0, -1), Vec3(1, 0, 0).MulQuat(q))

	// identity leaves the vector unchanged
	id := Quat{}
	id.SetIdentity()
	assert.Equal(t, Vec3(1, 2, 3), Vec3(1, 2, 3).MulQuat(id))
}

func TestVector3MulMatrix4(t *testing.T) {
	var m Matrix4
	m.SetTranslation(1, 2, 3)
	assert.Equal(t, Vec3(2, 2, 3), Vec3(1, 0, 0).MulMatrix4(&m))

	// w = 0 transforms as a direction, ignoring translation
	assert.Equal(t, Vec3(1, 0, 0), Vec3(1, 0, 0).MulMatrix4AsVector4(&m, 0))
	// w = 1 transforms as a point
	assert.Equal(t, Vec3(2, 2, 3), Vec3(1, 0, 0).MulMatrix4AsVector4(&m, 1))

	pos := Vector3{}
	pos.SetFromMatrixPos(&m)
	assert.Equal(t, Vec3(1, 2, 3), pos)
}
