// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointer

import "github.com/Umain-Vision-Pro/UmainSpatialGestures/base/iox"

// Params are tuning parameters for pointer gesture recognition.
type Params struct {

	// DeadZone is the distance in pixels a pointer must travel from its
	// press position before a drag engages.
	DeadZone float32 `default:"4"`

	// DragSpeed converts screen pixels into scene units. It is multiplied
	// by the camera distance so that dragging tracks at any zoom level.
	DragSpeed float32 `default:"0.0005"`

	// RotateSpeed multiplies the pinch angle to produce the rotation angle.
	RotateSpeed float32 `default:"1"`

	// MagnifySpeed scales how strongly the pinch distance ratio changes
	// the magnification factor.
	MagnifySpeed float32 `default:"1"`
}

// Defaults sets default parameter values.
func (pr *Params) Defaults() {
	pr.DeadZone = 4
	pr.DragSpeed = 0.0005
	pr.RotateSpeed = 1
	pr.MagnifySpeed = 1
}

// Open loads the parameters from the given JSON, TOML, or YAML file.
func (pr *Params) Open(filename string) error {
	return iox.Open(pr, filename)
}

// Save writes the parameters to the given JSON, TOML, or YAML file.
func (pr *Params) Save(filename string) error {
	return iox.Save(pr, filename)
}
