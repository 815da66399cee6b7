// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import "time"

// Config is the producer-facing configuration of a stream: the gesture
// kind to recognize and its pass-through options. The consumer attaching
// to a stream sets it at bind time; the stream's producer reads it when
// recognition begins and applies it as given, without validation.
type Config struct {

	// Kind is the gesture kind to recognize and deliver.
	Kind Kinds

	// Axis constrains rotation for rotate-family kinds.
	Axis RotationAxes

	// Activation is the engagement policy for drag-family kinds.
	Activation ActivationBehaviors
}

// Stream is a pipe of gesture events for one attached interaction source,
// such as one recognizer region or one bound view. Producers Send events;
// consumers register listener functions with On and its shortcuts.
// A Stream is not safe for concurrent use: all events of an interaction
// are delivered serially on the producer's goroutine.
type Stream struct {

	// Name is an optional label for identifying the stream.
	Name string

	// Config is set by the attached consumer and read by the producer.
	Config Config

	listeners Listeners
	lastID    int
}

// NewStream returns a new stream with the given name.
func NewStream(name string) *Stream {
	return &Stream{Name: name}
}

// On registers a function to be called for events of the given type,
// returning a Handle that can remove the registration.
func (st *Stream) On(typ Types, fun func(e *Event)) Handle {
	st.lastID++
	st.listeners.Add(typ, st.lastID, fun)
	return Handle{stream: st, typ: typ, id: st.lastID}
}

// OnChange registers a function for Change events.
func (st *Stream) OnChange(fun func(e *Event)) Handle {
	return st.On(Change, fun)
}

// OnEnd registers a function for End events.
func (st *Stream) OnEnd(fun func(e *Event)) Handle {
	return st.On(End, fun)
}

// Send delivers the given event to the listeners registered for its type,
// stamping the event time if it has not been set.
func (st *Stream) Send(e *Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	st.listeners.Call(e)
}

// Handle identifies one listener registration on a Stream.
type Handle struct {
	stream *Stream
	typ    Types
	id     int
}

// Remove unregisters the listener this handle was returned for.
// It is safe to call on a zero handle or more than once.
func (h Handle) Remove() {
	if h.stream == nil {
		return
	}
	h.stream.listeners.Remove(h.typ, h.id)
}
