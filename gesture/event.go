// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"fmt"
	"strings"
	"time"

	"github.com/Umain-Vision-Pro/UmainSpatialGestures/math32"
)

// ValueFlags indicate which value components a Change event carries.
// A well-formed recognizer sets at most one flag per event. When several
// are set, consumers apply exactly one component per event, checking
// HasRotation first, then HasTranslation, then HasMagnification.
type ValueFlags int32

const (
	// HasTranslation indicates the event carries a translation value.
	HasTranslation ValueFlags = 1 << iota

	// HasRotation indicates the event carries a rotation value.
	HasRotation

	// HasMagnification indicates the event carries a magnification value.
	HasMagnification
)

// Has returns whether all of the given flags are set.
func (vf ValueFlags) Has(f ValueFlags) bool {
	return vf&f == f
}

func (vf ValueFlags) String() string {
	var strs []string
	if vf.Has(HasTranslation) {
		strs = append(strs, "HasTranslation")
	}
	if vf.Has(HasRotation) {
		strs = append(strs, "HasRotation")
	}
	if vf.Has(HasMagnification) {
		strs = append(strs, "HasMagnification")
	}
	if len(strs) == 0 {
		return "0"
	}
	return strings.Join(strs, "|")
}

// Event is one tick of a gesture value stream. Change events carry the
// cumulative gesture value since the start of the interaction in the
// component(s) selected by Flags; End events carry no value.
type Event struct {

	// Typ is the type of this event.
	Typ Types

	// Kind is the gesture kind that produced this event.
	Kind Kinds

	// Time is when this event was generated.
	Time time.Time

	// Flags select which value components are present.
	Flags ValueFlags

	// Translation is the total scene-space translation since the start of
	// the interaction. Present when Flags has HasTranslation.
	Translation math32.Vector3

	// Rotation is the total rotation since the start of the interaction.
	// Present when Flags has HasRotation.
	Rotation math32.Quat

	// Magnification is the total uniform scale factor since the start of
	// the interaction (1 = unchanged). Present when Flags has
	// HasMagnification.
	Magnification float32

	// handled stops propagation to any remaining listeners.
	handled bool
}

// NewEvent returns a new event of the given type and kind,
// stamped with the current time.
func NewEvent(typ Types, kind Kinds) *Event {
	return &Event{Typ: typ, Kind: kind, Time: time.Now()}
}

// NewTranslation returns a Change event of the given kind carrying the
// total scene-space translation since the start of the interaction.
func NewTranslation(kind Kinds, del math32.Vector3) *Event {
	return NewEvent(Change, kind).SetTranslation(del)
}

// NewRotation returns a Change event of the given kind carrying the
// total rotation since the start of the interaction.
func NewRotation(kind Kinds, rot math32.Quat) *Event {
	return NewEvent(Change, kind).SetRotation(rot)
}

// NewMagnification returns a Change event of the given kind carrying the
// total uniform scale factor since the start of the interaction.
func NewMagnification(kind Kinds, mag float32) *Event {
	return NewEvent(Change, kind).SetMagnification(mag)
}

// NewEnd returns an End event for the given kind.
func NewEnd(kind Kinds) *Event {
	return NewEvent(End, kind)
}

// SetTranslation sets the translation value and flags it as present.
func (e *Event) SetTranslation(del math32.Vector3) *Event {
	e.Translation = del
	e.Flags |= HasTranslation
	return e
}

// SetRotation sets the rotation value and flags it as present.
func (e *Event) SetRotation(rot math32.Quat) *Event {
	e.Rotation = rot
	e.Flags |= HasRotation
	return e
}

// SetMagnification sets the magnification value and flags it as present.
func (e *Event) SetMagnification(mag float32) *Event {
	e.Magnification = mag
	e.Flags |= HasMagnification
	return e
}

// IsHandled returns whether this event has been marked as handled.
func (e *Event) IsHandled() bool {
	return e.handled
}

// SetHandled marks the event as handled, stopping propagation to any
// remaining listeners.
func (e *Event) SetHandled() {
	e.handled = true
}

func (e *Event) String() string {
	switch {
	case e.Typ != Change || e.Flags == 0:
		return fmt.Sprintf("%v{Kind: %v}", e.Typ, e.Kind)
	case e.Flags.Has(HasRotation):
		return fmt.Sprintf("%v{Kind: %v, Rotation: %v}", e.Typ, e.Kind, e.Rotation)
	case e.Flags.Has(HasTranslation):
		return fmt.Sprintf("%v{Kind: %v, Translation: %v}", e.Typ, e.Kind, e.Translation)
	default:
		return fmt.Sprintf("%v{Kind: %v, Magnification: %g}", e.Typ, e.Kind, e.Magnification)
	}
}
