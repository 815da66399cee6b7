// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Scene is the root of a scene tree. It holds the camera that defines
// the viewpoint on the scene, and manages the update of the cached
// world matrices of all nodes under it.
type Scene struct {
	NodeBase

	// Camera defines the viewpoint on the scene, which determines how
	// screen-space motion maps into scene space.
	Camera Camera
}

// NewScene returns a new [Scene] with the given name,
// with default pose and camera values.
func NewScene(name string) *Scene {
	sc := &Scene{}
	sc.Name = name
	sc.Pose.Defaults()
	sc.Camera.Defaults()
	return sc
}

// Update updates the local and world matrices of all nodes in the scene,
// and the camera view and projection matrices. Call it after mutating
// poses, before reading any world-space values.
func (sc *Scene) Update() {
	sc.Pose.UpdateMatrix()
	sc.Pose.WorldMatrix.CopyFrom(&sc.Pose.Matrix)
	for _, kid := range sc.Children {
		kid.AsNodeBase().UpdateWorldMatrix(&sc.Pose.WorldMatrix)
	}
	sc.Camera.UpdateMatrix()
}
