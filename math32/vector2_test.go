// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/Umain-Vision-Pro/UmainSpatialGestures/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	v.SetZero()
	assert.Equal(t, Vector2{}, v)

	v.SetDim(X, 3)
	v.SetDim(Y, 4)
	assert.Equal(t, Vector2{3, 4}, v)
	assert.Equal(t, float32(3), v.Dim(X))
	assert.Equal(t, float32(4), v.Dim(Y))
}

func TestVector2Math(t *testing.T) {
	a := Vec2(3, 4)
	b := Vec2(1, -2)

	assert.Equal(t, Vec2(4, 2), a.Add(b))
	assert.Equal(t, Vec2(2, 6), a.Sub(b))
	assert.Equal(t, Vec2(3, -8), a.Mul(b))
	assert.Equal(t, Vec2(6, 8), a.MulScalar(2))
	assert.Equal(t, Vec2(1.5, 2), a.DivScalar(2))
	assert.Equal(t, Vector2{}, a.DivScalar(0))
	assert.Equal(t, Vec2(-3, -4), a.Negate())
	assert.Equal(t, Vec2(1, 2), b.Abs())

	assert.Equal(t, float32(-5), a.Dot(b))
	assert.Equal(t, float32(5), a.Length())
	assert.Equal(t, float32(25), a.LengthSquared())

	n := a.Normal()
	tolassert.EqualTol(t, 0.6, n.X, StandardTol)
	tolassert.EqualTol(t, 0.8, n.Y, StandardTol)

	assert.Equal(t, float32(5), Vec2(0, 0).DistanceTo(Vec2(3, 4)))
	assert.Equal(t, float32(25), Vec2(0, 0).DistanceToSquared(Vec2(3, 4)))
}

func TestVector2Angle(t *testing.T) {
	tolassert.EqualTol(t, 0, Vec2(1, 0).Angle(), StandardTol)
	tolassert.EqualTol(t, Pi/2, Vec2(0, 1).Angle(), StandardTol)
	tolassert.EqualTol(t, Pi, Vec2(-1, 0).Angle(), 1.0e-5)
	tolassert.EqualTol(t, -Pi/2, Vec2(0, -1).Angle(), StandardTol)

	// cross of parallel vectors is 0, perpendicular is the area
	assert.Equal(t, float32(0), Vec2(2, 2).Cross(Vec2(1, 1)))
	assert.Equal(t, float32(2), Vec2(2, 0).Cross(Vec2(0, 1)))
}
