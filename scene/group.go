// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Group is a container of other nodes in the scene tree.
// It has its own transform that all of its children are relative to.
type Group struct {
	NodeBase
}

// NewGroup returns a new [Group] with the given name, added to the
// given parent if non-nil.
func NewGroup(parent Node, name string) *Group {
	gp := &Group{}
	gp.Name = name
	gp.Pose.Defaults()
	if parent != nil {
		parent.AsNodeBase().AddChild(gp)
	}
	return gp
}
