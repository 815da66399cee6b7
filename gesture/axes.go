// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"fmt"
	"strings"

	"github.com/Umain-Vision-Pro/UmainSpatialGestures/math32"
)

//go:generate stringer -type=RotationAxes

// RotationAxes restricts which axis a rotation gesture may act about.
// It is pass-through configuration: the recognizer producing rotation
// values applies it, and consumers apply whatever rotation arrives.
type RotationAxes int32

const (
	// FreeAxis is the default: rotation is unconstrained.
	FreeAxis RotationAxes = iota

	// XAxis constrains rotation to the X axis.
	XAxis

	// YAxis constrains rotation to the Y axis.
	YAxis

	// ZAxis constrains rotation to the Z axis.
	ZAxis

	RotationAxesN
)

// Vector returns the unit vector along the constraint axis,
// or the zero vector for FreeAxis.
func (ra RotationAxes) Vector() math32.Vector3 {
	switch ra {
	case XAxis:
		return math32.Vec3(1, 0, 0)
	case YAxis:
		return math32.Vec3(0, 1, 0)
	case ZAxis:
		return math32.Vec3(0, 0, 1)
	}
	return math32.Vector3{}
}

// MarshalText implements [encoding.TextMarshaler].
func (ra RotationAxes) MarshalText() ([]byte, error) {
	return []byte(ra.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (ra *RotationAxes) UnmarshalText(text []byte) error {
	s := string(text)
	for i := RotationAxes(0); i < RotationAxesN; i++ {
		if strings.EqualFold(s, i.String()) {
			*ra = i
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type RotationAxes", s)
}
