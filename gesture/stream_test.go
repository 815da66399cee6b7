// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"testing"

	"github.com/Umain-Vision-Pro/UmainSpatialGestures/math32"
	"github.com/stretchr/testify/assert"
)

func TestStreamSend(t *testing.T) {
	st := NewStream("test")

	changes := 0
	ends := 0
	var last math32.Vector3
	st.OnChange(func(e *Event) {
		changes++
		last = e.Translation
	})
	st.OnEnd(func(e *Event) {
		ends++
	})

	st.Send(NewTranslation(Drag, math32.Vec3(1, 0, 0)))
	st.Send(NewTranslation(Drag, math32.Vec3(2, 0, 0)))
	st.Send(NewEnd(Drag))

	assert.Equal(t, 2, changes)
	assert.Equal(t, 1, ends)
	assert.Equal(t, math32.Vec3(2, 0, 0), last)
}

func TestStreamReverseOrder(t *testing.T) {
	st := NewStream("order")
	var order []int
	st.OnChange(func(e *Event) { order = append(order, 1) })
	st.OnChange(func(e *Event) { order = append(order, 2) })
	st.Send(NewTranslation(Drag, math32.Vector3{}))
	assert.Equal(t, []int{2, 1}, order)
}

func TestStreamHandled(t *testing.T) {
	st := NewStream("handled")
	var got []string
	st.OnChange(func(e *Event) { got = append(got, "first") })
	st.OnChange(func(e *Event) {
		got = append(got, "second")
		e.SetHandled()
	})
	st.Send(NewTranslation(Drag, math32.Vector3{}))

	// the last added runs first and stops propagation
	assert.Equal(t, []string{"second"}, got)
}

func TestHandleRemove(t *testing.T) {
	st := NewStream("remove")
	n := 0
	h := st.OnChange(func(e *Event) { n++ })
	st.Send(NewTranslation(Drag, math32.Vector3{}))
	h.Remove()
	st.Send(NewTranslation(Drag, math32.Vector3{}))
	assert.Equal(t, 1, n)

	// removing again or removing a zero handle is a no-op
	h.Remove()
	var zero Handle
	zero.Remove()

	// later registrations are unaffected by the removal
	m := 0
	st.OnChange(func(e *Event) { m++ })
	st.Send(NewTranslation(Drag, math32.Vector3{}))
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, m)
}

func TestStreamEndWithoutChange(t *testing.T) {
	st := NewStream("tap")
	ends := 0
	st.OnEnd(func(e *Event) { ends++ })
	st.Send(NewEnd(Drag))
	st.Send(NewEnd(Drag))
	assert.Equal(t, 2, ends)
}
