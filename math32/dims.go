// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

//go:generate stringer -type=Dims

// Dims is a list of vector dimension (component) names.
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W
	DimsN
)

// OtherDim returns the other 2D dimension for X and Y.
func OtherDim(d Dims) Dims {
	switch d {
	case X:
		return Y
	default:
		return X
	}
}
