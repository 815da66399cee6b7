// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/Umain-Vision-Pro/UmainSpatialGestures/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestQuatBasics(t *testing.T) {
	q := NewQuat(1, 2, 3, 4)
	assert.Equal(t, Quat{1, 2, 3, 4}, q)

	q.SetIdentity()
	assert.True(t, q.IsIdentity())
	assert.False(t, q.IsNil())

	var nq Quat
	assert.True(t, nq.IsNil())

	q = NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90))
	tolassert.EqualTol(t, Sqrt2/2, q.Z, StandardTol)
	tolassert.EqualTol(t, Sqrt2/2, q.W, StandardTol)
	tolassert.EqualTol(t, 1, q.Length(), StandardTol)

	aa := q.ToAxisAngle()
	tolassert.EqualTol(t, 0, aa.X, 1.0e-5)
	tolassert.EqualTol(t, 0, aa.Y, 1.0e-5)
	tolassert.EqualTol(t, 1, aa.Z, 1.0e-5)
	tolassert.EqualTol(t, DegToRad(90), aa.W, 1.0e-5)
}

func TestQuatEuler(t *testing.T) {
	// a single-axis euler angle is the same as the axis-angle rotation
	qe := NewQuatEuler(Vec3(0, DegToRad(45), 0))
	qa := NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(45))
	tolassert.EqualTol(t, qa.X, qe.X, StandardTol)
	tolassert.EqualTol(t, qa.Y, qe.Y, StandardTol)
	tolassert.EqualTol(t, qa.Z, qe.Z, StandardTol)
	tolassert.EqualTol(t, qa.W, qe.W, StandardTol)
}

func TestQuatMul(t *testing.T) {
	qz := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90))
	qx := NewQuatAxisAngle(Vec3(1, 0, 0), DegToRad(90))

	// qz.Mul(qx) applies qx first, then qz
	q := qz.Mul(qx)
	v := Vec3(0, 0, 1).MulQuat(q)
	tolAssertEqualVector(t, 1.0e-6, Vec3(1, 0, 0), v)

	// composing a rotation with its inverse is the identity
	qi := qz.Mul(qz.Inverse())
	tolassert.EqualTol(t, 0, qi.X, StandardTol)
	tolassert.EqualTol(t, 0, qi.Y, StandardTol)
	tolassert.EqualTol(t, 0, qi.Z, StandardTol)
	tolassert.EqualTol(t, 1, qi.W, StandardTol)

	// 4 quarter turns about the same axis is a full turn
	full := qz.Mul(qz)
	full = full.Mul(qz)
	full = full.Mul(qz)
	v = Vec3(1, 0, 0).MulQuat(full)
	tolAssertEqualVector(t, 1.0e-5, Vec3(1, 0, 0), v)
}

func TestQuatSetFromRotationMatrix(t *testing.T) {
	src := NewQuatAxisAngle(Vec3(0, 1, 0).Normal(), DegToRad(30))
	var m Matrix4
	m.SetRotationFromQuat(src)

	var q Quat
	q.SetFromRotationMatrix(&m)

	// the extracted quaternion must rotate vectors the same way
	for _, v := range []Vector3{Vec3(1, 0, 0), Vec3(0, 1, 0), Vec3(1, 2, 3)} {
		tolAssertEqualVector(t, 1.0e-5, v.MulQuat(src), v.MulQuat(q))
	}
}

func TestQuatSetFromUnitVectors(t *testing.T) {
	var q Quat
	q.SetFromUnitVectors(Vec3(1, 0, 0), Vec3(0, 1, 0))
	tolAssertEqualVector(t, 1.0e-6, Vec3(0, 1, 0), Vec3(1, 0, 0).MulQuat(q))

	// opposite vectors use a perpendicular axis
	q.SetFromUnitVectors(Vec3(1, 0, 0), Vec3(-1, 0, 0))
	tolAssertEqualVector(t, 1.0e-5, Vec3(-1, 0, 0), Vec3(1, 0, 0).MulQuat(q))
}

func TestQuatSlerp(t *testing.T) {
	qa := Quat{}
	qa.SetIdentity()
	qb := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90))

	q := qa
	q.Slerp(qb, 0.5)
	half := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(45))
	tolassert.EqualTol(t, half.Z, q.Z, 1.0e-5)
	tolassert.EqualTol(t, half.W, q.W, 1.0e-5)

	q = qa
	q.Slerp(qb, 0)
	assert.True(t, q.IsEqual(qa))

	q = qa
	q.Slerp(qb, 1)
	assert.True(t, q.IsEqual(qb))
}

func TestQuatNormalize(t *testing.T) {
	q := NewQuat(0, 0, 3, 4)
	q.Normalize()
	tolassert.EqualTol(t, 0.6, q.Z, StandardTol)
	tolassert.EqualTol(t, 0.8, q.W, StandardTol)

	var zq Quat
	zq.Normalize()
	assert.True(t, zq.IsIdentity())
}
