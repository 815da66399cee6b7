// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/Umain-Vision-Pro/UmainSpatialGestures/gesture"
	"github.com/Umain-Vision-Pro/UmainSpatialGestures/math32"
)

// SceneFile describes the entity tree to build before replaying.
type SceneFile struct {
	Entities []Entity
}

// Entity describes one scene node and its initial pose.
type Entity struct {

	// Name identifies the entity. It must be unique within the scene.
	Name string

	// Parent is the name of the parent entity, which must be declared
	// earlier in the list. Empty parents to the scene root.
	Parent string

	// Pos is the initial position, relative to the parent.
	Pos math32.Vector3

	// Axis and Angle give the initial rotation, in degrees about the
	// axis. A zero axis or angle leaves the identity rotation.
	Axis  math32.Vector3
	Angle float32

	// Scale is the initial scale. Zero means (1, 1, 1).
	Scale math32.Vector3
}

// Script describes the manipulators to attach and the gesture events to
// replay against them, in order.
type Script struct {
	Attachments []Attachment
	Events      []Record
}

// Attachment binds a manipulator of the given kind to a target entity.
type Attachment struct {

	// Target is the name of the entity to manipulate.
	Target string

	// Kind is the gesture kind, such as Drag or Full.
	Kind gesture.Kinds

	// Axis is the rotation axis constraint.
	Axis gesture.RotationAxes

	// Activation is the activation behavior to pass through.
	Activation gesture.ActivationBehaviors
}

// Record is one scripted gesture event, dispatched on Op.
type Record struct {

	// Target names the entity whose stream receives the event.
	Target string

	// Op is the event operation: translate, rotate, magnify, or end.
	Op string

	// Value holds the cumulative value for the op: X, Y, Z for translate,
	// axis X, Y, Z and degrees for rotate, and the factor for magnify.
	Value []float32 `json:",omitempty" toml:",omitempty" yaml:",omitempty"`
}

// Event converts the record into a gesture event of the given kind.
func (rc *Record) Event(kind gesture.Kinds) (*gesture.Event, error) {
	switch strings.ToLower(rc.Op) {
	case "end":
		return gesture.NewEnd(kind), nil
	case "translate":
		if len(rc.Value) != 3 {
			return nil, fmt.Errorf("translate needs 3 values, got %d", len(rc.Value))
		}
		return gesture.NewTranslation(kind, math32.Vec3(rc.Value[0], rc.Value[1], rc.Value[2])), nil
	case "rotate":
		if len(rc.Value) != 4 {
			return nil, fmt.Errorf("rotate needs axis and degrees values, got %d", len(rc.Value))
		}
		axis := math32.Vec3(rc.Value[0], rc.Value[1], rc.Value[2])
		if axis == (math32.Vector3{}) {
			return nil, fmt.Errorf("rotate axis is zero")
		}
		rot := math32.NewQuatAxisAngle(axis.Normal(), math32.DegToRad(rc.Value[3]))
		return gesture.NewRotation(kind, rot), nil
	case "magnify":
		if len(rc.Value) != 1 {
			return nil, fmt.Errorf("magnify needs 1 value, got %d", len(rc.Value))
		}
		return gesture.NewMagnification(kind, rc.Value[0]), nil
	}
	return nil, fmt.Errorf("unknown op %q", rc.Op)
}
