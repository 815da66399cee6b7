// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

//go:generate stringer -type=Types

// Types determines the type of gesture event, and is the level at which
// listeners select which events to receive.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Change is a per-tick update while the gesture is active, carrying
	// the cumulative value since the start of the interaction.
	Change

	// End terminates an interaction, whether released or cancelled.
	// It carries no value. Exactly one End follows the Changes of an
	// engaged interaction, and an End with no preceding Change is valid
	// (a tap with no movement).
	End

	TypesN
)
