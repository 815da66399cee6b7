// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pointer turns raw pointer input into the gesture value streams
// consumed by manipulators, so scenes are drivable from a plain mouse or
// touch screen without a host gesture system. The host feeds a
// [Recognizer] with Down, Move, and Up calls as input arrives, and the
// recognizer emits Change and End events on its stream per the stream's
// configuration, mapping screen movement into scene space through the
// camera.
package pointer

import (
	"github.com/Umain-Vision-Pro/UmainSpatialGestures/gesture"
	"github.com/Umain-Vision-Pro/UmainSpatialGestures/math32"
	"github.com/Umain-Vision-Pro/UmainSpatialGestures/scene"
)

// maxPointers is the number of simultaneously tracked pointers.
// Pointer 0 is the mouse, 1-9 are touches.
const maxPointers = 10

// pointerState tracks one pointer through an interaction.
type pointerState struct {
	down     bool
	start    math32.Vector2
	last     math32.Vector2
	dragging bool

	// spent is set when this pointer's pinch partner is released;
	// movement while spent produces no values until the next press.
	spent bool
}

// pinchState tracks a two-pointer grip, relative to the distance, angle,
// and center of the pointers when the grip formed.
type pinchState struct {
	active       bool
	pointer0     int
	pointer1     int
	initialDist  float32
	initialAngle float32
	startCenter  math32.Vector2
	prevDist     float32
	prevAngle    float32
	prevCenter   math32.Vector2
}

// Recognizer converts a raw pointer event feed into gesture values on a
// stream. An interaction spans from the first press to the last release,
// across any single-pointer and pinch phases in between, and produces at
// most one Change per Move and exactly one End at the last release.
// Values are cumulative totals since the interaction started, as
// manipulators require.
type Recognizer struct {

	// Camera maps screen movement into scene space.
	Camera *scene.Camera

	// Stream receives the recognized gesture values. Its Config selects
	// which values are produced and how recognition engages.
	Stream *gesture.Stream

	// Params are the recognition tuning parameters.
	Params Params

	pointers [maxPointers]pointerState
	pinch    pinchState

	// active is true from the first press until the last release.
	active bool

	// totals folded in from completed phases of this interaction, so that
	// values stay relative to the interaction start across phase changes.
	baseTrans math32.Vector2
	baseAngle float32
	baseMag   float32
}

// NewRecognizer returns a recognizer feeding the given stream, using the
// given camera for scene-space mapping, with default parameters.
func NewRecognizer(cam *scene.Camera, st *gesture.Stream) *Recognizer {
	rc := &Recognizer{Camera: cam, Stream: st}
	rc.Params.Defaults()
	return rc
}

// ActivePointers returns the number of pointers currently held down.
func (rc *Recognizer) ActivePointers() int {
	n := 0
	for i := range rc.pointers {
		if rc.pointers[i].down {
			n++
		}
	}
	return n
}

// Down records a pointer press at the given screen position. The first
// press starts an interaction; a second concurrent press forms a pinch
// grip. Presses never emit events.
func (rc *Recognizer) Down(id int, pos math32.Vector2) {
	if id < 0 || id >= maxPointers {
		return
	}
	ps := &rc.pointers[id]
	ps.down = true
	ps.start = pos
	ps.last = pos
	ps.dragging = false
	ps.spent = false
	if !rc.active {
		rc.active = true
		rc.baseTrans = math32.Vector2{}
		rc.baseAngle = 0
		rc.baseMag = 1
	}
	if !rc.pinch.active {
		rc.detectPinch()
	}
}

// Move records pointer movement, emitting at most one Change on the
// stream. When a pinch grip is held, rotation takes precedence over
// translation, which takes precedence over magnification.
func (rc *Recognizer) Move(id int, pos math32.Vector2) {
	if id < 0 || id >= maxPointers {
		return
	}
	ps := &rc.pointers[id]
	if !ps.down {
		return
	}
	ps.last = pos
	if rc.pinch.active {
		if id == rc.pinch.pointer0 || id == rc.pinch.pointer1 {
			rc.pinchMove()
		}
		return
	}
	if !ps.spent {
		rc.dragMove(ps, pos)
	}
}

// Up records a pointer release. Releasing a grip pointer ends the pinch;
// releasing the last pointer ends the interaction with exactly one End,
// even if no Change was ever produced.
func (rc *Recognizer) Up(id int, pos math32.Vector2) {
	if id < 0 || id >= maxPointers {
		return
	}
	ps := &rc.pointers[id]
	if !ps.down {
		return
	}
	ps.last = pos
	ps.down = false
	ps.dragging = false
	ps.spent = false
	if rc.pinch.active && (id == rc.pinch.pointer0 || id == rc.pinch.pointer1) {
		rc.endPinch()
	}
	for i := range rc.pointers {
		if rc.pointers[i].down {
			return
		}
	}
	rc.finish()
}

// Cancel aborts recognition, releasing all pointers and emitting End if
// an interaction was in progress.
func (rc *Recognizer) Cancel() {
	for i := range rc.pointers {
		rc.pointers[i] = pointerState{}
	}
	rc.pinch = pinchState{}
	rc.finish()
}

// detectPinch forms a pinch grip when exactly two pointers are down,
// capturing the baseline distance, angle, and center between them.
// Any engaged drag is folded into the translation base first so the
// translation total stays continuous across the phase change.
func (rc *Recognizer) detectPinch() {
	n := 0
	p0, p1 := -1, -1
	for i := range rc.pointers {
		if !rc.pointers[i].down {
			continue
		}
		switch n {
		case 0:
			p0 = i
		case 1:
			p1 = i
		}
		n++
	}
	if n != 2 {
		return
	}
	for _, i := range [2]int{p0, p1} {
		ps := &rc.pointers[i]
		if ps.dragging {
			rc.baseTrans = rc.baseTrans.Add(ps.last.Sub(ps.start))
		}
		ps.start = ps.last
		ps.dragging = false
		ps.spent = false
	}
	a := rc.pointers[p0].last
	b := rc.pointers[p1].last
	d := b.Sub(a)
	rc.pinch = pinchState{
		active:       true,
		pointer0:     p0,
		pointer1:     p1,
		initialDist:  d.Length(),
		initialAngle: d.Angle(),
		startCenter:  a.Add(b).MulScalar(0.5),
	}
	rc.pinch.prevDist = rc.pinch.initialDist
	rc.pinch.prevAngle = rc.pinch.initialAngle
	rc.pinch.prevCenter = rc.pinch.startCenter
}

// endPinch folds the grip's totals into the interaction bases and marks
// any remaining grip pointer as spent, so its movement does not resume a
// drag mid-air.
func (rc *Recognizer) endPinch() {
	pn := &rc.pinch
	rc.baseTrans = rc.baseTrans.Add(pn.prevCenter.Sub(pn.startCenter))
	rc.baseAngle += (pn.prevAngle - pn.initialAngle) * rc.Params.RotateSpeed
	rc.baseMag *= rc.magRatio(pn.prevDist)
	for _, i := range [2]int{pn.pointer0, pn.pointer1} {
		ps := &rc.pointers[i]
		if ps.down {
			ps.spent = true
			ps.start = ps.last
		}
	}
	rc.pinch = pinchState{}
}

// dragMove handles single-pointer movement, which produces drag values
// once the pointer travels beyond the dead zone. Under ActivateOnPinch,
// single-pointer movement produces nothing.
func (rc *Recognizer) dragMove(ps *pointerState, pos math32.Vector2) {
	cfg := rc.Stream.Config
	if !cfg.Kind.HasDrag() || cfg.Activation == gesture.ActivateOnPinch {
		return
	}
	del := pos.Sub(ps.start)
	if !ps.dragging {
		if del.Length() < rc.Params.DeadZone {
			return
		}
		ps.dragging = true
	}
	total := rc.baseTrans.Add(del)
	rc.Stream.Send(gesture.NewTranslation(cfg.Kind, rc.sceneDelta(total)))
}

// pinchMove handles movement of a grip pointer, emitting at most one of
// the kind's values. Only values that actually changed this tick are
// candidates, in rotation, translation, magnification order.
func (rc *Recognizer) pinchMove() {
	cfg := rc.Stream.Config
	pn := &rc.pinch
	a := rc.pointers[pn.pointer0].last
	b := rc.pointers[pn.pointer1].last
	d := b.Sub(a)
	dist := d.Length()
	angle := d.Angle()
	center := a.Add(b).MulScalar(0.5)
	switch {
	case cfg.Kind.HasRotate() && angle != pn.prevAngle:
		total := rc.baseAngle + (angle-pn.initialAngle)*rc.Params.RotateSpeed
		rot := math32.NewQuatAxisAngle(rc.rotationAxis(), total)
		rc.Stream.Send(gesture.NewRotation(cfg.Kind, rot))
	case cfg.Kind.HasDrag() && center != pn.prevCenter:
		total := rc.baseTrans.Add(center.Sub(pn.startCenter))
		rc.Stream.Send(gesture.NewTranslation(cfg.Kind, rc.sceneDelta(total)))
	case cfg.Kind.HasMagnify() && dist != pn.prevDist:
		rc.Stream.Send(gesture.NewMagnification(cfg.Kind, rc.baseMag*rc.magRatio(dist)))
	}
	pn.prevDist = dist
	pn.prevAngle = angle
	pn.prevCenter = center
}

// finish ends the interaction, emitting exactly one End.
func (rc *Recognizer) finish() {
	if !rc.active {
		return
	}
	rc.active = false
	rc.Stream.Send(gesture.NewEnd(rc.Stream.Config.Kind))
}

// rotationAxis is the axis rotation values are produced about: the
// stream's constraint axis, or the camera's dominant view axis when
// unconstrained.
func (rc *Recognizer) rotationAxis() math32.Vector3 {
	axis := rc.Stream.Config.Axis.Vector()
	if axis == (math32.Vector3{}) {
		dim, sgn := rc.Camera.ViewMainAxis()
		axis.SetDim(dim, sgn)
	}
	return axis
}

// magRatio converts a grip distance into a magnification factor relative
// to the grip's initial distance, scaled by MagnifySpeed.
func (rc *Recognizer) magRatio(dist float32) float32 {
	if rc.pinch.initialDist == 0 {
		return 1
	}
	return 1 + (dist/rc.pinch.initialDist-1)*rc.Params.MagnifySpeed
}

// sceneDelta maps a screen-space delta in pixels into a scene-space
// translation in the plane facing the camera, scaled by DragSpeed and
// the camera distance so the drag tracks at any zoom.
func (rc *Recognizer) sceneDelta(del math32.Vector2) math32.Vector3 {
	dx := del.X
	dy := del.Y
	dim, sgn := rc.Camera.ViewMainAxis()
	var dd math32.Vector3
	switch dim {
	case math32.X:
		dd.Z = -sgn * dx
		dd.Y = -dy
	case math32.Y:
		dd.X = dx
		dd.Z = sgn * dy
	case math32.Z:
		dd.X = sgn * dx
		dd.Y = -dy
	}
	return dd.MulScalar(rc.Params.DragSpeed * rc.Camera.ViewVector().Length())
}
