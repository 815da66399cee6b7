// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/Umain-Vision-Pro/UmainSpatialGestures/math32"

// Pose contains the full specification of position, orientation and scale,
// always relative to the parent element.
type Pose struct {

	// position of center of element, relative to parent
	Pos math32.Vector3

	// scale, relative to parent
	Scale math32.Vector3

	// rotation specified as a quaternion, relative to parent
	Quat math32.Quat

	// Local transform matrix, which contains all position, rotation and
	// scale information, relative to parent
	Matrix math32.Matrix4

	// Parent's world transform matrix, cached here so that this pose can
	// independently recompute its own world matrix
	ParMatrix math32.Matrix4

	// World transform matrix, which contains all absolute position,
	// rotation and scale information (i.e., relative to the top parent,
	// generally the scene)
	WorldMatrix math32.Matrix4
}

// Defaults sets defaults only if current values are nil.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// CopyFrom copies just the pose information from the other pose, critically
// not copying the ParMatrix so that is preserved in the receiver.
func (ps *Pose) CopyFrom(op *Pose) {
	ps.Pos = op.Pos
	ps.Scale = op.Scale
	ps.Quat = op.Quat
	ps.UpdateMatrix()
}

// UpdateMatrix updates the local transform matrix based on its position,
// quaternion, and scale. Also checks for degenerate nil values.
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix updates the world transform matrix based on Matrix and
// the parent's WorldMatrix. Does NOT call UpdateMatrix so that can include
// other factors as needed.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld != nil {
		ps.ParMatrix.CopyFrom(parWorld)
	}
	ps.WorldMatrix.MulMatrices(&ps.ParMatrix, &ps.Matrix)
}

/////////////////////////////////////////////////////////
//  Moving

// Note: you can just directly add to .Pos too.

// MoveOnAxis moves (translates) the specified distance on the specified local
// axis, relative to the current rotation orientation.
func (ps *Pose) MoveOnAxis(x, y, z, dist float32) {
	ps.Pos.SetAdd(math32.Vec3(x, y, z).Normal().MulQuat(ps.Quat).MulScalar(dist))
}

// MoveOnAxisAbs moves (translates) the specified distance on the specified
// local axis, in absolute X, Y, Z coordinates.
func (ps *Pose) MoveOnAxisAbs(x, y, z, dist float32) {
	ps.Pos.SetAdd(math32.Vec3(x, y, z).Normal().MulScalar(dist))
}

/////////////////////////////////////////////////////////
//  Rotating

// SetEulerRotation sets the rotation in Euler angles (degrees).
func (ps *Pose) SetEulerRotation(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z).MulScalar(math32.DegToRadFactor))
}

// SetEulerRotationRad sets the rotation in Euler angles (radians).
func (ps *Pose) SetEulerRotationRad(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z))
}

// SetAxisRotation sets rotation from local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle))
}

// SetAxisRotationRad sets rotation from local axis and angle in radians.
func (ps *Pose) SetAxisRotationRad(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), angle)
}

// RotateOnAxis rotates around the specified local axis the specified angle
// in degrees.
func (ps *Pose) RotateOnAxis(x, y, z, angle float32) {
	ps.Quat.SetMul(math32.NewQuatAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle)))
}

// RotateOnAxisRad rotates around the specified local axis the specified angle
// in radians.
func (ps *Pose) RotateOnAxisRad(x, y, z, angle float32) {
	ps.Quat.SetMul(math32.NewQuatAxisAngle(math32.Vec3(x, y, z), angle))
}

// RotateEuler rotates by given Euler angles (in degrees) relative to existing
// rotation.
func (ps *Pose) RotateEuler(x, y, z float32) {
	ps.Quat.SetMul(math32.NewQuatEuler(math32.Vec3(x, y, z).MulScalar(math32.DegToRadFactor)))
}

// LookAt points the element at given target location using given up direction.
func (ps *Pose) LookAt(target, upDir math32.Vector3) {
	ps.Quat.SetFromRotationMatrix(math32.NewLookAt(ps.Pos, target, upDir))
}

/////////////////////////////////////////////////////////
//  World values

// WorldPos returns the current world position.
func (ps *Pose) WorldPos() math32.Vector3 {
	pos := math32.Vector3{}
	pos.SetFromMatrixPos(&ps.WorldMatrix)
	return pos
}

// WorldQuat returns the current world quaternion.
func (ps *Pose) WorldQuat() math32.Quat {
	var pos, scale math32.Vector3
	var quat math32.Quat
	ps.WorldMatrix.Decompose(&pos, &quat, &scale)
	return quat
}

// WorldScale returns the current world scale.
func (ps *Pose) WorldScale() math32.Vector3 {
	var pos, scale math32.Vector3
	var quat math32.Quat
	ps.WorldMatrix.Decompose(&pos, &quat, &scale)
	return scale
}
