// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"github.com/Umain-Vision-Pro/UmainSpatialGestures/math32"
)

// Camera defines the properties of the viewpoint on the scene.
type Camera struct {

	// Pose is the overall position and orientation of the camera,
	// relative to pointing at the negative Z axis with up as positive Y.
	Pose Pose

	// Target is the location the camera is pointing at. It defaults to
	// the origin, moves with panning movements, and is reset by a call
	// to [Camera.LookAt].
	Target math32.Vector3

	// UpDir is the up direction for the camera. It defaults to the
	// positive Y axis, and is reset by a call to [Camera.LookAt].
	UpDir math32.Vector3

	// FOV is the field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width / height).
	Aspect float32

	// Near is the near plane z coordinate.
	Near float32

	// Far is the far plane z coordinate.
	Far float32

	// ViewMatrix is the view matrix (inverse of the Pose.Matrix).
	ViewMatrix math32.Matrix4

	// ProjMatrix is the perspective projection matrix.
	ProjMatrix math32.Matrix4
}

// Defaults sets the default camera parameters and pose.
func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Aspect = 1.5
	cm.Near = 0.01
	cm.Far = 1000
	cm.DefaultPose()
}

// DefaultPose resets the camera pose to the default location and orientation,
// looking at the origin from 0, 0, 10, with up as the Y axis.
func (cm *Camera) DefaultPose() {
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 0, 10)
	cm.LookAtOrigin()
}

// UpdateMatrix updates the view and projection matrices.
func (cm *Camera) UpdateMatrix() {
	cm.Pose.UpdateMatrix()
	view, err := cm.Pose.Matrix.Inverse()
	if err != nil {
		slog.Error("scene.Camera.UpdateMatrix: pose matrix is not invertible", "err", err)
	}
	cm.ViewMatrix.CopyFrom(view)
	cm.ProjMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
}

// LookAt points the camera at the given target location, using the given up
// direction, and sets the Target and UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
	cm.UpdateMatrix()
}

// LookAtOrigin points the camera at the origin with the Y axis pointing up.
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// LookAtTarget points the camera at the current target using the current
// up direction.
func (cm *Camera) LookAtTarget() {
	cm.LookAt(cm.Target, cm.UpDir)
}

// ViewVector is the vector between the camera position and target.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pose.Pos.Sub(cm.Target)
}

// ViewMainAxis returns the dimension along which the view vector is largest,
// along with the sign of that axis (+1 for positive, -1 for negative).
// This is useful for determining how screen-space motion should map into
// the scene, for example.
func (cm *Camera) ViewMainAxis() (dim math32.Dims, sign float32) {
	vv := cm.ViewVector()
	va := vv.Abs()
	switch {
	case va.X > va.Y && va.X > va.Z:
		return math32.X, math32.Sign(vv.X)
	case va.Y > va.X && va.Y > va.Z:
		return math32.Y, math32.Sign(vv.Y)
	default:
		return math32.Z, math32.Sign(vv.Z)
	}
}

// Orbit moves the camera along the given 2D axes in degrees
// (delX = left/right, delY = up/down), relative to current position and
// orientation, keeping the same distance from the Target, and rotating the
// camera and the up direction vector to keep looking at the target.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir == (math32.Vector3{}) {
		ctdir.Set(0, 0, 1)
	}
	up := cm.UpDir
	right := cm.UpDir.Cross(ctdir).Normal()

	// delX rotates around the up vector
	dxq := math32.NewQuatAxisAngle(up, math32.DegToRad(delX))
	dx := ctdir.MulQuat(dxq).Sub(ctdir)
	// delY rotates around the right vector
	dyq := math32.NewQuatAxisAngle(right, math32.DegToRad(delY))
	dy := ctdir.MulQuat(dyq).Sub(ctdir)

	cm.Pose.Pos = cm.Pose.Pos.Add(dx).Add(dy)
	cm.UpDir = cm.UpDir.MulQuat(dyq)

	cm.LookAtTarget()
}

// Pan moves the camera along the given 2D axes (left/right, up/down),
// relative to current position and orientation (i.e., in the plane of the
// current view), and moves the target by the same increment.
func (cm *Camera) Pan(delX, delY float32) {
	dx := math32.Vec3(-delX, 0, 0).MulQuat(cm.Pose.Quat)
	dy := math32.Vec3(0, -delY, 0).MulQuat(cm.Pose.Quat)
	td := dx.Add(dy)
	cm.Pose.Pos.SetAdd(td)
	cm.Target.SetAdd(td)
}

// Zoom moves the camera along the view axis the given percent further from
// (positive) or closer to (negative) the target. When zooming in close,
// it also moves the target back to keep it in front of the camera.
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	if ctaxis == (math32.Vector3{}) {
		ctaxis.Set(0, 0, 1)
	}
	dist := ctaxis.Length()
	del := ctaxis.MulScalar(zoomPct)
	cm.Pose.Pos.SetAdd(del)
	if zoomPct < 0 && dist < 1 {
		cm.Target.SetAdd(del)
	}
}
