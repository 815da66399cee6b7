// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/Umain-Vision-Pro/UmainSpatialGestures/math32"
	"github.com/stretchr/testify/assert"
)

func TestNodeTree(t *testing.T) {
	sc := NewScene("scene")
	gp := NewGroup(sc, "group")
	obj := NewNodeBase(gp, "object")

	assert.Equal(t, 1, sc.NumChildren())
	assert.True(t, sc.HasChildren())
	assert.Same(t, gp, sc.ChildByName("group"))
	assert.Nil(t, sc.ChildByName("nope"))
	assert.Same(t, Node(gp), obj.Parent)
	assert.Same(t, obj, gp.Child(0).(*NodeBase))
	assert.Nil(t, gp.Child(3))

	assert.Equal(t, "/scene/group/object", obj.Path())
	assert.Equal(t, "/scene/group/object", obj.String())

	names := []string{}
	sc.WalkDown(func(n Node) bool {
		names = append(names, n.AsNodeBase().Name)
		return true
	})
	assert.Equal(t, []string{"scene", "group", "object"}, names)

	assert.True(t, gp.DeleteChild(obj))
	assert.Nil(t, obj.Parent)
	assert.False(t, gp.DeleteChild(obj))
	assert.False(t, gp.HasChildren())
}

func TestNodeAddChildExistingParent(t *testing.T) {
	sc := NewScene("scene")
	gp := NewGroup(sc, "group")
	obj := NewNodeBase(gp, "object")

	// adding a node that already has a parent is rejected
	other := NewGroup(sc, "other")
	other.AddChild(obj)
	assert.Equal(t, 0, other.NumChildren())
	assert.Same(t, Node(gp), obj.Parent)
}

func TestNodeWorldMatrix(t *testing.T) {
	sc := NewScene("scene")
	gp := NewGroup(sc, "group")
	obj := NewNodeBase(gp, "object")

	gp.Pose.Pos = math32.Vec3(1, 0, 0)
	gp.Pose.SetAxisRotation(0, 0, 1, 90)
	obj.Pose.Pos = math32.Vec3(1, 0, 0)
	sc.Update()

	// object local +X is rotated to +Y by the group, offset by its position
	tolAssertEqualVector(t, 1.0e-5, math32.Vec3(1, 1, 0), obj.Pose.WorldPos())

	// the cached parent matrix matches the group world matrix
	assert.Equal(t, gp.Pose.WorldMatrix, obj.Pose.ParMatrix)

	// moving the group moves the object world position
	gp.Pose.Pos = math32.Vec3(2, 0, 0)
	sc.Update()
	tolAssertEqualVector(t, 1.0e-5, math32.Vec3(2, 1, 0), obj.Pose.WorldPos())
}

func TestNodeCopyFieldsFrom(t *testing.T) {
	sc := NewScene("scene")
	src := NewNodeBase(sc, "src")
	src.Pose.Pos = math32.Vec3(1, 2, 3)
	src.Pose.Scale = math32.Vec3(2, 2, 2)

	dst := NewNodeBase(sc, "dst")
	dst.CopyFieldsFrom(src)

	assert.Equal(t, math32.Vec3(1, 2, 3), dst.Pose.Pos)
	assert.Equal(t, math32.Vec3(2, 2, 2), dst.Pose.Scale)
	// tree fields are not copied
	assert.Equal(t, "dst", dst.Name)
	assert.Same(t, Node(sc), dst.Parent)
}
