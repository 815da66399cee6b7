// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gesture defines the value-stream model for continuous spatial
// gestures: the gesture kinds, their configuration (rotation axis constraint,
// activation behavior), and the Event and Stream types that carry per-tick
// gesture values from a recognizer to consumers such as the manipulators in
// the manip package.
//
// A gesture interaction is a press-move-release sequence reported as a series
// of Change events followed by exactly one End event. Change values are
// cumulative since the start of the interaction, not per-tick increments, so
// consumers combine them with a baseline captured on the first Change.
package gesture

import (
	"fmt"
	"strings"
)

//go:generate stringer -type=Kinds

// Kinds are the supported composite gesture kinds. The combined kinds
// (DragRotate, DragMagnify, Full) deliver the values of their constituent
// gestures over a single stream, with at most one value component per
// Change event.
type Kinds int32

const (
	// Drag translates the target by the gesture's 3D translation delta.
	Drag Kinds = iota

	// Rotate rotates the target by the gesture's rotation delta,
	// optionally constrained to a single axis.
	Rotate

	// Magnify scales the target uniformly by the gesture's
	// magnification factor.
	Magnify

	// DragRotate combines Drag and Rotate.
	DragRotate

	// DragMagnify combines Drag and Magnify.
	DragMagnify

	// Full combines Drag, Rotate, and Magnify.
	Full

	KindsN
)

// HasDrag returns whether this kind includes drag translation.
func (k Kinds) HasDrag() bool {
	return k == Drag || k == DragRotate || k == DragMagnify || k == Full
}

// HasRotate returns whether this kind includes rotation.
func (k Kinds) HasRotate() bool {
	return k == Rotate || k == DragRotate || k == Full
}

// HasMagnify returns whether this kind includes magnification.
func (k Kinds) HasMagnify() bool {
	return k == Magnify || k == DragMagnify || k == Full
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kinds) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kinds) UnmarshalText(text []byte) error {
	s := string(text)
	for i := Kinds(0); i < KindsN; i++ {
		if strings.EqualFold(s, i.String()) {
			*k = i
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Kinds", s)
}
