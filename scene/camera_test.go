// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/Umain-Vision-Pro/UmainSpatialGestures/base/tolassert"
	"github.com/Umain-Vision-Pro/UmainSpatialGestures/math32"
	"github.com/stretchr/testify/assert"
)

func TestCameraDefaults(t *testing.T) {
	var cm Camera
	cm.Defaults()

	assert.Equal(t, float32(30), cm.FOV)
	assert.Equal(t, math32.Vec3(0, 0, 10), cm.Pose.Pos)
	assert.Equal(t, math32.Vector3{}, cm.Target)
	assert.Equal(t, math32.Vec3(0, 1, 0), cm.UpDir)

	// looking at the origin from +Z is the default orientation
	assert.True(t, cm.Pose.Quat.IsIdentity())
}

func TestCameraViewMatrix(t *testing.T) {
	var cm Camera
	cm.Defaults()
	cm.UpdateMatrix()

	// the view matrix brings world positions into camera-centered coords
	v := cm.Target.MulMatrix4(&cm.ViewMatrix)
	tolAssertEqualVector(t, 1.0e-5, math32.Vec3(0, 0, -10), v)
}

func TestCameraViewMainAxis(t *testing.T) {
	var cm Camera
	cm.Defaults()

	dim, sign := cm.ViewMainAxis()
	assert.Equal(t, math32.Z, dim)
	assert.Equal(t, float32(1), sign)

	cm.Pose.Pos.Set(-5, 0, 0)
	cm.LookAtTarget()
	dim, sign = cm.ViewMainAxis()
	assert.Equal(t, math32.X, dim)
	assert.Equal(t, float32(-1), sign)
}

func TestCameraOrbit(t *testing.T) {
	var cm Camera
	cm.Defaults()

	cm.Orbit(90, 0)
	tolAssertEqualVector(t, 1.0e-4, math32.Vec3(10, 0, 0), cm.Pose.Pos)

	// distance to target is preserved
	tolassert.EqualTol(t, 10, cm.ViewVector().Length(), 1.0e-4)

	dim, sign := cm.ViewMainAxis()
	assert.Equal(t, math32.X, dim)
	assert.Equal(t, float32(1), sign)
}

func TestCameraPanZoom(t *testing.T) {
	var cm Camera
	cm.Defaults()

	cm.Pan(1, 0)
	tolAssertEqualVector(t, 1.0e-6, math32.Vec3(-1, 0, 10), cm.Pose.Pos)
	tolAssertEqualVector(t, 1.0e-6, math32.Vec3(-1, 0, 0), cm.Target)

	cm.Defaults()
	cm.Zoom(0.1)
	tolAssertEqualVector(t, 1.0e-5, math32.Vec3(0, 0, 11), cm.Pose.Pos)
	cm.Zoom(-0.5)
	tolAssertEqualVector(t, 1.0e-5, math32.Vec3(0, 0, 5.5), cm.Pose.Pos)
}
