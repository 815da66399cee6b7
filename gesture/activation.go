// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"fmt"
	"strings"
)

//go:generate stringer -type=ActivationBehaviors

// ActivationBehaviors control when a drag gesture is considered engaged by
// pointer or hand input. The policy is pass-through configuration applied
// by the recognizer; consumers never interpret it.
type ActivationBehaviors int32

const (
	// ActivateAutomatically is the default: a single press engages the
	// gesture as soon as movement exceeds the dead zone.
	ActivateAutomatically ActivationBehaviors = iota

	// ActivateOnPinch engages the gesture only while a pinch grip is held
	// (two pointers down).
	ActivateOnPinch

	ActivationBehaviorsN
)

// MarshalText implements [encoding.TextMarshaler].
func (ab ActivationBehaviors) MarshalText() ([]byte, error) {
	return []byte(ab.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (ab *ActivationBehaviors) UnmarshalText(text []byte) error {
	s := string(text)
	for i := ActivationBehaviors(0); i < ActivationBehaviorsN; i++ {
		if strings.EqualFold(s, i.String()) {
			*ab = i
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type ActivationBehaviors", s)
}
