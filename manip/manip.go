// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manip attaches composite gestures to 3D scene entities, mutating
// each entity's pose (translation, rotation, scale) in response to gesture
// value streams. A Manipulator is the binding of one gesture kind to one
// target entity: construct one with New or a per-kind constructor, configure
// it with SetAxis and SetActivation, and Bind it to the gesture.Stream of a
// recognizer or bound view.
//
// Within one interaction the target's pose is always computed against the
// pose captured at the interaction's first Change, so gesture values are
// absolute with respect to the interaction start and ticks never accumulate
// rounding from one another.
package manip

import (
	"errors"
	"fmt"

	"github.com/Umain-Vision-Pro/UmainSpatialGestures/gesture"
	"github.com/Umain-Vision-Pro/UmainSpatialGestures/math32"
	"github.com/Umain-Vision-Pro/UmainSpatialGestures/scene"
)

// Manipulator binds one gesture kind to one target entity, applying the
// gesture's value stream to the target's pose. Each manipulator owns its
// interaction state exclusively, and all event handling runs synchronously
// within the stream's Send, so no locking is involved. Binding several
// manipulators to the same target at once is not supported: the last
// writer wins.
type Manipulator struct {

	// Target is the entity whose pose is written.
	Target scene.Node

	// Kind selects which transform components the gesture drives.
	Kind gesture.Kinds

	// Axis constrains rotation for rotate-family kinds. It is handed to
	// the stream's producer at bind time and never interpreted here.
	Axis gesture.RotationAxes

	// Activation is the engagement policy for drag-family kinds. It is
	// handed to the stream's producer at bind time and never
	// interpreted here.
	Activation gesture.ActivationBehaviors

	// baseline is the target's pose captured at the first Change of the
	// current interaction; nil between interactions.
	baseline *scene.Pose

	stream   *gesture.Stream
	onChange gesture.Handle
	onEnd    gesture.Handle
}

// New returns a manipulator of the given kind for the given target.
func New(target scene.Node, kind gesture.Kinds) *Manipulator {
	return &Manipulator{Target: target, Kind: kind}
}

// NewDrag returns a manipulator that translates the target by the
// gesture's translation values.
func NewDrag(target scene.Node) *Manipulator {
	return New(target, gesture.Drag)
}

// NewRotate returns a manipulator that rotates the target by the
// gesture's rotation values, optionally constrained via SetAxis.
func NewRotate(target scene.Node) *Manipulator {
	return New(target, gesture.Rotate)
}

// NewMagnify returns a manipulator that scales the target uniformly by
// the gesture's magnification values.
func NewMagnify(target scene.Node) *Manipulator {
	return New(target, gesture.Magnify)
}

// NewDragRotate returns a manipulator that both translates and rotates
// the target.
func NewDragRotate(target scene.Node) *Manipulator {
	return New(target, gesture.DragRotate)
}

// NewDragMagnify returns a manipulator that both translates and scales
// the target.
func NewDragMagnify(target scene.Node) *Manipulator {
	return New(target, gesture.DragMagnify)
}

// NewFull returns a manipulator that translates, rotates, and scales
// the target.
func NewFull(target scene.Node) *Manipulator {
	return New(target, gesture.Full)
}

// SetAxis sets the rotation axis constraint.
func (mn *Manipulator) SetAxis(axis gesture.RotationAxes) *Manipulator {
	mn.Axis = axis
	return mn
}

// SetActivation sets the activation behavior.
func (mn *Manipulator) SetActivation(ab gesture.ActivationBehaviors) *Manipulator {
	mn.Activation = ab
	return mn
}

// Bind attaches this manipulator to the given stream, registering for its
// Change and End events and handing the stream's producer the gesture kind
// with its pass-through configuration. Any previous binding is detached.
// It returns an error for configuration that can never produce correct
// updates: a nil target, or a drag-family kind on a target without a
// parent, which makes converting drag deltas into parent space impossible.
// The target must be added to a scene before drag gestures are bound.
func (mn *Manipulator) Bind(st *gesture.Stream) error {
	if mn.Target == nil {
		return errors.New("manip.Manipulator: target is nil")
	}
	nb := mn.Target.AsNodeBase()
	if mn.Kind.HasDrag() && nb.Parent == nil {
		return fmt.Errorf("manip.Manipulator: target %q has no parent to convert drag deltas into", nb.Name)
	}
	mn.Detach()
	mn.stream = st
	st.Config = gesture.Config{Kind: mn.Kind, Axis: mn.Axis, Activation: mn.Activation}
	mn.onChange = st.OnChange(mn.change)
	mn.onEnd = st.OnEnd(mn.end)
	return nil
}

// Detach removes this manipulator's listeners from its stream and discards
// any in-progress interaction state. It is safe to call when not bound.
func (mn *Manipulator) Detach() {
	mn.onChange.Remove()
	mn.onEnd.Remove()
	mn.onChange = gesture.Handle{}
	mn.onEnd = gesture.Handle{}
	mn.stream = nil
	mn.baseline = nil
}

// IsActive returns whether an interaction is in progress,
// i.e., a baseline pose has been captured.
func (mn *Manipulator) IsActive() bool {
	return mn.baseline != nil
}

// change applies one Change event to the target. The first change of an
// interaction captures the baseline pose; capture is idempotent, so events
// arriving in unexpected order never recapture mid-interaction (recapturing
// after partial movement would make the target jump). Exactly one value
// component is applied per event, rotation first, then translation, then
// magnification.
func (mn *Manipulator) change(e *gesture.Event) {
	if mn.baseline == nil {
		bl := mn.Target.AsNodeBase().Pose
		mn.baseline = &bl
	}
	switch {
	case e.Flags.Has(gesture.HasRotation) && mn.Kind.HasRotate():
		mn.rotate(e.Rotation)
	case e.Flags.Has(gesture.HasTranslation) && mn.Kind.HasDrag():
		mn.translate(e.Translation)
	case e.Flags.Has(gesture.HasMagnification) && mn.Kind.HasMagnify():
		mn.magnify(e.Magnification)
	}
}

// end closes the current interaction. Clearing the baseline is
// unconditional, so a tap with no movement still resets the session, and
// a repeated End is a no-op that leaves the pose untouched.
func (mn *Manipulator) end(e *gesture.Event) {
	mn.baseline = nil
}

// rotate composes the baseline rotation with the total gesture rotation,
// baseline first, so the delta happens in the frame the interaction
// started in.
func (mn *Manipulator) rotate(rot math32.Quat) {
	mn.Target.AsNodeBase().Pose.Quat = mn.baseline.Quat.Mul(rot)
}

// translate converts the total scene-space drag delta into the target's
// parent space and adds it to the baseline position.
func (mn *Manipulator) translate(del math32.Vector3) {
	nb := mn.Target.AsNodeBase()
	inv, _ := nb.Pose.ParMatrix.Inverse() // undo parent's transform
	mv := del.MulMatrix4AsVector4(inv, 0)
	nb.Pose.Pos = mn.baseline.Pos.Add(mv)
}

// magnify scales the baseline uniformly by the magnification factor.
func (mn *Manipulator) magnify(mag float32) {
	mn.Target.AsNodeBase().Pose.Scale = mn.baseline.Scale.MulScalar(mag)
}

func (mn *Manipulator) String() string {
	if mn.Target == nil {
		return mn.Kind.String() + " (no target)"
	}
	return mn.Kind.String() + " on " + mn.Target.AsNodeBase().Path()
}
