// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a minimal 3D scene tree of posed entities,
// with parent-relative transforms and cached world matrices,
// and a camera defining the viewpoint on the scene.
package scene

import (
	"log/slog"
	"strings"

	"github.com/Umain-Vision-Pro/UmainSpatialGestures/math32"
	"github.com/jinzhu/copier"
)

// Node is the interface for all nodes in the scene tree.
type Node interface {

	// AsNodeBase returns the [NodeBase] for this node, which gives
	// access to all the base-level tree and pose functionality.
	AsNodeBase() *NodeBase
}

// NodeBase implements the [Node] interface and provides the core
// functionality for scene tree nodes. Use NodeBase as an embedded
// struct in higher-level node types.
type NodeBase struct {

	// Name is the name of this node, which is used for paths.
	// It should be unique among the children of a given parent.
	Name string `copier:"-"`

	// Parent is the parent of this node, which is nil for a root
	// or an unparented node.
	Parent Node `copier:"-"`

	// Children is the list of children of this node.
	Children []Node `copier:"-"`

	// Pose is the complete specification of position, orientation and
	// scale of this node, relative to the parent, along with the cached
	// local and world transform matrices derived from it.
	Pose Pose
}

// NewNodeBase returns a new [NodeBase] with the given name, added to the
// given parent if non-nil, with default pose values.
func NewNodeBase(parent Node, name string) *NodeBase {
	nb := &NodeBase{Name: name}
	nb.Pose.Defaults()
	if parent != nil {
		parent.AsNodeBase().AddChild(nb)
	}
	return nb
}

// AsNodeBase returns the [NodeBase] for this node.
func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

// String implements the [fmt.Stringer] interface by returning the path
// of the node.
func (nb *NodeBase) String() string {
	return nb.Path()
}

// SetName sets the name of this node and returns it.
func (nb *NodeBase) SetName(name string) *NodeBase {
	nb.Name = name
	return nb
}

// Parents:

// WalkUp calls the given function on this node and all of its parents,
// sequentially, stopping if the function returns false.
func (nb *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := Node(nb)
	for {
		if !fun(cur) {
			return false
		}
		parent := cur.AsNodeBase().Parent
		if parent == nil {
			return true
		}
		cur = parent
	}
}

// Path returns the path to this node from the tree root,
// using node names separated by / delimiters.
func (nb *NodeBase) Path() string {
	names := []string{}
	nb.WalkUp(func(n Node) bool {
		names = append(names, n.AsNodeBase().Name)
		return true
	})
	sb := strings.Builder{}
	for i := len(names) - 1; i >= 0; i-- {
		sb.WriteString("/")
		sb.WriteString(names[i])
	}
	return sb.String()
}

// Children:

// HasChildren returns whether this node has any children.
func (nb *NodeBase) HasChildren() bool {
	return len(nb.Children) > 0
}

// NumChildren returns the number of children this node has.
func (nb *NodeBase) NumChildren() int {
	return len(nb.Children)
}

// Child returns the child of this node at the given index,
// and nil if the index is out of range.
func (nb *NodeBase) Child(i int) Node {
	if i >= len(nb.Children) || i < 0 {
		return nil
	}
	return nb.Children[i]
}

// ChildByName returns the first child of this node that has the given
// name, and nil if none does.
func (nb *NodeBase) ChildByName(name string) Node {
	for _, kid := range nb.Children {
		if kid.AsNodeBase().Name == name {
			return kid
		}
	}
	return nil
}

// AddChild adds the given node as a child of this node, setting its
// parent accordingly. The node must not already have a parent.
func (nb *NodeBase) AddChild(kid Node) {
	kb := kid.AsNodeBase()
	if kb.Parent != nil {
		slog.Error("scene.NodeBase.AddChild: node already has a parent", "node", kb.Name, "parent", kb.Parent.AsNodeBase().Name)
		return
	}
	kb.Parent = nb
	nb.Children = append(nb.Children, kid)
}

// DeleteChild removes the given node from the children of this node,
// clearing its parent. It returns whether the node was found.
func (nb *NodeBase) DeleteChild(kid Node) bool {
	for i, c := range nb.Children {
		if c == kid {
			nb.Children = append(nb.Children[:i], nb.Children[i+1:]...)
			kid.AsNodeBase().Parent = nil
			return true
		}
	}
	return false
}

// WalkDown calls the given function on this node and all of its children
// in a depth-first manner, stopping descent into a branch if the function
// returns false for its node.
func (nb *NodeBase) WalkDown(fun func(n Node) bool) {
	walkDown(nb, fun)
}

func walkDown(n Node, fun func(n Node) bool) {
	if !fun(n) {
		return
	}
	for _, kid := range n.AsNodeBase().Children {
		walkDown(kid, fun)
	}
}

// Pose updating:

// UpdateWorldMatrix updates the world matrix of this node based on the given
// parent world matrix, and recursively for all of its children. A nil
// parent world matrix keeps the currently cached one, which is the identity
// for a root node.
func (nb *NodeBase) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	nb.Pose.UpdateMatrix()
	nb.Pose.UpdateWorldMatrix(parWorld)
	for _, kid := range nb.Children {
		kid.AsNodeBase().UpdateWorldMatrix(&nb.Pose.WorldMatrix)
	}
}

// CopyFieldsFrom copies the non-tree fields of the given node to this node,
// notably the pose, using a deep copy. Fields with a `copier:"-"` struct
// tag, including the name and tree structure, are not copied.
func (nb *NodeBase) CopyFieldsFrom(from Node) {
	err := copier.CopyWithOption(nb, from.AsNodeBase(), copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("scene.NodeBase.CopyFieldsFrom", "err", err)
	}
	nb.Pose.UpdateMatrix()
}
