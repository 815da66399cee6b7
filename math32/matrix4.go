// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit spatial gesture functionality.

package math32

import "errors"

// Matrix4 is a 4x4 matrix organized internally as column matrix,
// as used in graphics contexts.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// Set sets all the elements of the matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) {
	m[0] = n11
	m[4] = n12
	m[8] = n13
	m[12] = n14
	m[1] = n21
	m[5] = n22
	m[9] = n23
	m[13] = n24
	m[2] = n31
	m[6] = n32
	m[10] = n33
	m[14] = n34
	m[3] = n41
	m[7] = n42
	m[11] = n43
	m[15] = n44
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetZero sets this matrix as the zero matrix.
func (m *Matrix4) SetZero() {
	m.Set(
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	)
}

// CopyFrom copies from source matrix into this matrix
// (a regular = assign does not work for matrix references).
func (m *Matrix4) CopyFrom(src *Matrix4) {
	copy(m[:], src[:])
}

// Pos returns the position (translation) components of this matrix.
func (m *Matrix4) Pos() Vector3 {
	return Vector3{m[12], m[13], m[14]}
}

// SetPos sets the position (translation) components of this matrix.
func (m *Matrix4) SetPos(v Vector3) {
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
}

// SetTranslation sets this matrix to a translation matrix for the given offsets.
func (m *Matrix4) SetTranslation(x, y, z float32) {
	m.Set(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// SetScale sets this matrix to a scale transformation matrix
// using the scale factors for each dimension.
func (m *Matrix4) SetScale(x, y, z float32) {
	m.Set(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// SetRotationFromQuat sets this matrix as a rotation matrix from the given quaternion.
func (m *Matrix4) SetRotationFromQuat(q Quat) {
	m.SetTransform(Vector3{}, q, Vec3(1, 1, 1))
}

// SetTransform sets this matrix to the transform combining the given
// position, quaternion rotation and scale.
func (m *Matrix4) SetTransform(pos Vector3, quat Quat, scale Vector3) {
	x := quat.X
	y := quat.Y
	z := quat.Z
	w := quat.W

	x2 := x + x
	y2 := y + y
	z2 := z + z
	xx := x * x2
	xy := x * y2
	xz := x * z2
	yy := y * y2
	yz := y * z2
	zz := z * z2
	wx := w * x2
	wy := w * y2
	wz := w * z2

	sx := scale.X
	sy := scale.Y
	sz := scale.Z

	m[0] = (1 - (yy + zz)) * sx
	m[1] = (xy + wz) * sx
	m[2] = (xz - wy) * sx
	m[3] = 0

	m[4] = (xy - wz) * sy
	m[5] = (1 - (xx + zz)) * sy
	m[6] = (yz + wx) * sy
	m[7] = 0

	m[8] = (xz + wy) * sz
	m[9] = (yz - wx) * sz
	m[10] = (1 - (xx + yy)) * sz
	m[11] = 0

	m[12] = pos.X
	m[13] = pos.Y
	m[14] = pos.Z
	m[15] = 1
}

// Decompose updates the pos position vector, quat quaternion and
// scale vector from this transformation matrix.
func (m *Matrix4) Decompose(pos *Vector3, quat *Quat, scale *Vector3) {
	sx := Vec3(m[0], m[1], m[2]).Length()
	sy := Vec3(m[4], m[5], m[6]).Length()
	sz := Vec3(m[8], m[9], m[10]).Length()

	// if determinant is negative, we need to invert one scale
	if m.Determinant() < 0 {
		sx = -sx
	}

	pos.X = m[12]
	pos.Y = m[13]
	pos.Z = m[14]

	// scale the rotation part
	invSX := 1 / sx
	invSY := 1 / sy
	invSZ := 1 / sz

	nm := *m
	nm[0] *= invSX
	nm[1] *= invSX
	nm[2] *= invSX
	nm[4] *= invSY
	nm[5] *= invSY
	nm[6] *= invSY
	nm[8] *= invSZ
	nm[9] *= invSZ
	nm[10] *= invSZ

	quat.SetFromRotationMatrix(&nm)

	scale.X = sx
	scale.Y = sy
	scale.Z = sz
}

// Mul returns this matrix times the other matrix (this matrix is first).
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// SetMul sets this matrix to this matrix times the other matrix (this matrix is first).
func (m *Matrix4) SetMul(other *Matrix4) {
	m.MulMatrices(m, other)
}

// MulMatrices sets this matrix as the matrix multiplication of
// the two given matrices (a times b).
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	a11 := a[0]
	a12 := a[4]
	a13 := a[8]
	a14 := a[12]
	a21 := a[1]
	a22 := a[5]
	a23 := a[9]
	a24 := a[13]
	a31 := a[2]
	a32 := a[6]
	a33 := a[10]
	a34 := a[14]
	a41 := a[3]
	a42 := a[7]
	a43 := a[11]
	a44 := a[15]

	b11 := b[0]
	b12 := b[4]
	b13 := b[8]
	b14 := b[12]
	b21 := b[1]
	b22 := b[5]
	b23 := b[9]
	b24 := b[13]
	b31 := b[2]
	b32 := b[6]
	b33 := b[10]
	b34 := b[14]
	b41 := b[3]
	b42 := b[7]
	b43 := b[11]
	b44 := b[15]

	m[0] = a11*b11 + a12*b21 + a13*b31 + a14*b41
	m[4] = a11*b12 + a12*b22 + a13*b32 + a14*b42
	m[8] = a11*b13 + a12*b23 + a13*b33 + a14*b43
	m[12] = a11*b14 + a12*b24 + a13*b34 + a14*b44

	m[1] = a21*b11 + a22*b21 + a23*b31 + a24*b41
	m[5] = a21*b12 + a22*b22 + a23*b32 + a24*b42
	m[9] = a21*b13 + a22*b23 + a23*b33 + a24*b43
	m[13] = a21*b14 + a22*b24 + a23*b34 + a24*b44

	m[2] = a31*b11 + a32*b21 + a33*b31 + a34*b41
	m[6] = a31*b12 + a32*b22 + a33*b32 + a34*b42
	m[10] = a31*b13 + a32*b23 + a33*b33 + a34*b43
	m[14] = a31*b14 + a32*b24 + a33*b34 + a34*b44

	m[3] = a41*b11 + a42*b21 + a43*b31 + a44*b41
	m[7] = a41*b12 + a42*b22 + a43*b32 + a44*b42
	m[11] = a41*b13 + a42*b23 + a43*b33 + a44*b43
	m[15] = a41*b14 + a42*b24 + a43*b34 + a44*b44
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix4) Determinant() float32 {
	n11 := m[0]
	n12 := m[4]
	n13 := m[8]
	n14 := m[12]
	n21 := m[1]
	n22 := m[5]
	n23 := m[9]
	n24 := m[13]
	n31 := m[2]
	n32 := m[6]
	n33 := m[10]
	n34 := m[14]
	n41 := m[3]
	n42 := m[7]
	n43 := m[11]
	n44 := m[15]

	return n41*(n14*n23*n32-n13*n24*n32-n14*n22*n33+n12*n24*n33+n13*n22*n34-n12*n23*n34) +
		n42*(n11*n23*n34-n11*n24*n33+n14*n21*n33-n13*n21*n34+n13*n24*n31-n14*n23*n31) +
		n43*(n11*n24*n32-n11*n22*n34-n14*n21*n32+n12*n21*n34+n14*n22*n31-n12*n24*n31) +
		n44*(-n13*n22*n31-n11*n23*n32+n11*n22*n33+n13*n21*n32-n12*n21*n33+n12*n23*n31)
}

// Transpose returns the transpose of this matrix.
func (m *Matrix4) Transpose() *Matrix4 {
	nm := *m
	nm[1], nm[4] = nm[4], nm[1]
	nm[2], nm[8] = nm[8], nm[2]
	nm[6], nm[9] = nm[9], nm[6]
	nm[3], nm[12] = nm[12], nm[3]
	nm[7], nm[13] = nm[13], nm[7]
	nm[11], nm[14] = nm[14], nm[11]
	return &nm
}

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted it returns the zero matrix and an error.
func (m *Matrix4) Inverse() (*Matrix4, error) {
	// based on http://www.euclideanspace.com/maths/algebra/matrix/functions/inverse/fourD/index.htm
	n11 := m[0]
	n12 := m[4]
	n13 := m[8]
	n14 := m[12]
	n21 := m[1]
	n22 := m[5]
	n23 := m[9]
	n24 := m[13]
	n31 := m[2]
	n32 := m[6]
	n33 := m[10]
	n34 := m[14]
	n41 := m[3]
	n42 := m[7]
	n43 := m[11]
	n44 := m[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	det := n11*t11 + n21*t12 + n31*t13 + n41*t14
	if det == 0 {
		return &Matrix4{}, errors.New("math32.Matrix4: can't invert matrix, determinant is 0")
	}

	detInv := 1 / det
	nm := &Matrix4{}

	nm[0] = t11 * detInv
	nm[1] = (n24*n33*n41 - n23*n34*n41 - n24*n31*n43 + n21*n34*n43 + n23*n31*n44 - n21*n33*n44) * detInv
	nm[2] = (n22*n34*n41 - n24*n32*n41 + n24*n31*n42 - n21*n34*n42 - n22*n31*n44 + n21*n32*n44) * detInv
	nm[3] = (n23*n32*n41 - n22*n33*n41 - n23*n31*n42 + n21*n33*n42 + n22*n31*n43 - n21*n32*n43) * detInv

	nm[4] = t12 * detInv
	nm[5] = (n13*n34*n41 - n14*n33*n41 + n14*n31*n43 - n11*n34*n43 - n13*n31*n44 + n11*n33*n44) * detInv
	nm[6] = (n14*n32*n41 - n12*n34*n41 - n14*n31*n42 + n11*n34*n42 + n12*n31*n44 - n11*n32*n44) * detInv
	nm[7] = (n12*n33*n41 - n13*n32*n41 + n13*n31*n42 - n11*n33*n42 - n12*n31*n43 + n11*n32*n43) * detInv

	nm[8] = t13 * detInv
	nm[9] = (n14*n23*n41 - n13*n24*n41 - n14*n21*n43 + n11*n24*n43 + n13*n21*n44 - n11*n23*n44) * detInv
	nm[10] = (n12*n24*n41 - n14*n22*n41 + n14*n21*n42 - n11*n24*n42 - n12*n21*n44 + n11*n22*n44) * detInv
	nm[11] = (n13*n22*n41 - n12*n23*n41 - n13*n21*n42 + n11*n23*n42 + n12*n21*n43 - n11*n22*n43) * detInv

	nm[12] = t14 * detInv
	nm[13] = (n14*n23*n31 - n13*n24*n31 - n14*n21*n33 + n11*n24*n33 + n13*n21*n34 - n11*n23*n34) * detInv
	nm[14] = (n12*n24*n31 - n14*n22*n31 + n14*n21*n32 - n11*n24*n32 - n12*n21*n34 + n11*n22*n34) * detInv
	nm[15] = (n13*n22*n31 - n12*n23*n31 - n13*n21*n32 + n11*n23*n32 + n12*n21*n33 - n11*n22*n33) * detInv

	return nm, nil
}

// NewLookAt returns a new [Matrix4] rotation matrix with the rotation
// of a camera at the given eye position looking at the given target
// position, with the given up direction.
func NewLookAt(eye, target, up Vector3) *Matrix4 {
	rotMat := &Matrix4{}
	rotMat.SetLookAt(eye, target, up)
	return rotMat
}

// SetLookAt sets this matrix as a rotation matrix with the rotation
// of a camera at the given eye position looking at the given target
// position, with the given up direction.
func (m *Matrix4) SetLookAt(eye, target, up Vector3) {
	z := eye.Sub(target)
	if z.LengthSquared() == 0 {
		// eye and target are in the same position
		z.Z = 1
	}
	z.SetNormal()

	x := up.Cross(z)
	if x.LengthSquared() == 0 {
		// up and z are parallel
		if Abs(up.Z) == 1 {
			z.X += 0.0001
		} else {
			z.Z += 0.0001
		}
		z.SetNormal()
		x = up.Cross(z)
	}
	x.SetNormal()

	y := z.Cross(x)

	m[0] = x.X
	m[1] = x.Y
	m[2] = x.Z
	m[3] = 0
	m[4] = y.X
	m[5] = y.Y
	m[6] = y.Z
	m[7] = 0
	m[8] = z.X
	m[9] = z.Y
	m[10] = z.Z
	m[11] = 0
	m[12] = 0
	m[13] = 0
	m[14] = 0
	m[15] = 1
}

// SetFrustum sets this matrix to a projection frustum matrix bounded
// by the given planes.
func (m *Matrix4) SetFrustum(left, right, bottom, top, near, far float32) {
	fmn := far - near
	m.SetZero()
	m[0] = 2 * near / (right - left)
	m[5] = 2 * near / (top - bottom)
	m[8] = (right + left) / (right - left)
	m[9] = (top + bottom) / (top - bottom)
	m[10] = -(far + near) / fmn
	m[11] = -1
	m[14] = -(2 * far * near) / fmn
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the given field of view in degrees,
// aspect ratio (width/height) and near and far planes.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	ymax := near * Tan(DegToRad(fov*0.5))
	ymin := -ymax
	xmin := ymin * aspect
	xmax := ymax * aspect
	m.SetFrustum(xmin, xmax, ymin, ymax, near, far)
}
