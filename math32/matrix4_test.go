// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/Umain-Vision-Pro/UmainSpatialGestures/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func tolAssertEqualMatrix(t *testing.T, tol float32, mt, ma *Matrix4) {
	for i := range mt {
		tolassert.EqualTol(t, mt[i], ma[i], tol)
	}
}

func TestMatrix4Identity(t *testing.T) {
	m := Identity4()
	assert.Equal(t, float32(1), m[0])
	assert.Equal(t, float32(1), m[5])
	assert.Equal(t, float32(1), m[10])
	assert.Equal(t, float32(1), m[15])
	assert.Equal(t, float32(1), m.Determinant())

	v := Vec3(3, -2, 7)
	assert.Equal(t, v, v.MulMatrix4(m))
}

func TestMatrix4Translation(t *testing.T) {
	var m Matrix4
	m.SetTranslation(5, -2, 10)
	assert.Equal(t, Vec3(5, -2, 10), m.Pos())
	assert.Equal(t, Vec3(6, -1, 11), Vec3(1, 1, 1).MulMatrix4(&m))

	m.SetPos(Vec3(1, 2, 3))
	assert.Equal(t, Vec3(1, 2, 3), m.Pos())
}

func TestMatrix4MulMatrices(t *testing.T) {
	var tr, sc Matrix4
	tr.SetTranslation(1, 2, 3)
	sc.SetScale(2, 2, 2)

	// translate * scale: scales first, then translates
	var m Matrix4
	m.MulMatrices(&tr, &sc)
	assert.Equal(t, Vec3(3, 4, 5), Vec3(1, 1, 1).MulMatrix4(&m))

	// scale * translate: translates first, then scales
	m.MulMatrices(&sc, &tr)
	assert.Equal(t, Vec3(4, 6, 8), Vec3(1, 1, 1).MulMatrix4(&m))
}

func TestMatrix4Transform(t *testing.T) {
	pos := Vec3(1, 2, 3)
	quat := NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(90))
	scale := Vec3(2, 2, 2)

	var m Matrix4
	m.SetTransform(pos, quat, scale)

	// (1, 0, 0) is scaled to (2, 0, 0), rotated to (0, 0, -2), then translated
	res := Vec3(1, 0, 0).MulMatrix4(&m)
	tolAssertEqualVector(t, 1.0e-5, Vec3(1, 2, 1), res)

	var dpos, dscale Vector3
	var dquat Quat
	m.Decompose(&dpos, &dquat, &dscale)
	tolAssertEqualVector(t, 1.0e-5, pos, dpos)
	tolAssertEqualVector(t, 1.0e-5, scale, dscale)
	tolassert.EqualTol(t, quat.Y, dquat.Y, 1.0e-5)
	tolassert.EqualTol(t, quat.W, dquat.W, 1.0e-5)
}

func TestMatrix4Inverse(t *testing.T) {
	var m Matrix4
	m.SetTransform(Vec3(1, 2, 3), NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(40)), Vec3(2, 1, 0.5))

	inv, err := m.Inverse()
	assert.NoError(t, err)

	prod := m.Mul(inv)
	tolAssertEqualMatrix(t, 1.0e-5, Identity4(), prod)

	// a point through the matrix and back is unchanged
	p := Vec3(0.5, -1, 2)
	back := p.MulMatrix4(&m).MulMatrix4(inv)
	tolAssertEqualVector(t, 1.0e-5, p, back)

	var zm Matrix4
	zm.SetZero()
	_, err = zm.Inverse()
	assert.Error(t, err)
}

func TestMatrix4LookAt(t *testing.T) {
	// looking down -Z from +Z is the identity rotation
	m := NewLookAt(Vec3(0, 0, 10), Vec3(0, 0, 0), Vec3(0, 1, 0))
	tolAssertEqualMatrix(t, 1.0e-6, Identity4(), m)

	var q Quat
	q.SetFromRotationMatrix(m)
	tolassert.EqualTol(t, 1, q.W, StandardTol)

	// looking down +X rotates the view 90 degrees about Y
	m = NewLookAt(Vec3(0, 0, 0), Vec3(1, 0, 0), Vec3(0, 1, 0))
	q.SetFromRotationMatrix(m)
	exp := NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(-90))
	tolassert.EqualTol(t, exp.Y, q.Y, 1.0e-5)
	tolassert.EqualTol(t, exp.W, q.W, 1.0e-5)
}

func TestMatrix4Perspective(t *testing.T) {
	var proj Matrix4
	proj.SetPerspective(90, 1, 1, 10)

	// a point on the near plane maps to NDC z = -1
	near := Vec4(0, 0, -1, 1).MulMatrix4(&proj).PerspDiv()
	tolAssertEqualVector(t, 1.0e-5, Vec3(0, 0, -1), near)

	// a point on the far plane maps to NDC z = 1
	far := Vec4(0, 0, -10, 1).MulMatrix4(&proj).PerspDiv()
	tolAssertEqualVector(t, 1.0e-5, Vec3(0, 0, 1), far)

	// a point at the top right edge of the near plane maps to NDC (1, 1)
	edge := Vec4(1, 1, -1, 1).MulMatrix4(&proj).PerspDiv()
	tolAssertEqualVector(t, 1.0e-5, Vec3(1, 1, -1), edge)
}
