// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

// listener is one registered callback and the id it was registered under.
type listener struct {
	id  int
	fun func(e *Event)
}

// Listeners registers lists of gesture event listener functions
// to receive different event types.
// Listeners are closure methods with all context captured,
// registered on specific objects.
type Listeners map[Types][]listener

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]listener)
}

// Add adds a function for the given type under the given id,
// which can later be passed to Remove.
func (ls *Listeners) Add(typ Types, id int, fun func(e *Event)) {
	ls.Init()
	ets := (*ls)[typ]
	ets = append(ets, listener{id: id, fun: fun})
	(*ls)[typ] = ets
}

// Remove removes the function registered for the given type under the
// given id. It is a no-op if no such registration exists.
func (ls *Listeners) Remove(typ Types, id int) {
	ets := (*ls)[typ]
	for i, l := range ets {
		if l.id == id {
			(*ls)[typ] = append(ets[:i], ets[i+1:]...)
			return
		}
	}
}

// Call calls all functions registered for the given event.
// It goes in _reverse_ order so the last functions added are the first
// called, and it stops when the event is marked as Handled. This allows
// for a natural and optional override behavior, without requiring more
// complex priority-based mechanisms.
func (ls *Listeners) Call(e *Event) {
	if e.IsHandled() {
		return
	}
	ets := (*ls)[e.Typ]
	n := len(ets)
	if n == 0 {
		return
	}
	for i := n - 1; i >= 0; i-- {
		l := ets[i]
		l.fun(e)
		if e.IsHandled() {
			break
		}
	}
}
