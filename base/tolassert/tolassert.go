// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (ie: almost equal).
package tolassert

import "github.com/stretchr/testify/assert"

// Number is the set of number types supported by the assert functions.
type Number interface {
	~float32 | ~float64
}

// Equal asserts that the two given numbers are within a standard
// tolerance of 0.001 of each other.
func Equal[T Number](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol asserts that the two given numbers are within the
// given tolerance of each other.
func EqualTol[T Number](t assert.TestingT, expected T, actual T, tol T, msgAndArgs ...any) bool {
	return assert.InDelta(t, expected, actual, float64(tol), msgAndArgs...)
}
