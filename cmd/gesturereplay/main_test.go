// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/Umain-Vision-Pro/UmainSpatialGestures/base/iox"
	"github.com/Umain-Vision-Pro/UmainSpatialGestures/gesture"
	"github.com/Umain-Vision-Pro/UmainSpatialGestures/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSession saves the given scene and script to files and loads them
// back, exercising the same path as the command line.
func writeSession(t *testing.T, sf *SceneFile, scr *Script) *session {
	t.Helper()
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.toml")
	scriptPath := filepath.Join(dir, "script.yaml")
	require.NoError(t, iox.Save(sf, scenePath))
	require.NoError(t, iox.Save(scr, scriptPath))
	ss, err := load(scenePath, scriptPath)
	require.NoError(t, err)
	return ss
}

func TestReplay(t *testing.T) {
	sf := &SceneFile{Entities: []Entity{
		{Name: "group"},
		{Name: "obj", Parent: "group", Pos: math32.Vec3(1, 0, 0)},
		{Name: "spin"},
	}}
	scr := &Script{
		Attachments: []Attachment{
			{Target: "obj", Kind: gesture.Full},
			{Target: "spin", Kind: gesture.Rotate, Axis: gesture.YAxis},
		},
		Events: []Record{
			{Target: "obj", Op: "translate", Value: []float32{1, 0, 0}},
			{Target: "obj", Op: "translate", Value: []float32{2, 0, 0}},
			{Target: "obj", Op: "end"},
			{Target: "obj", Op: "magnify", Value: []float32{2}},
			{Target: "obj", Op: "end"},
			{Target: "spin", Op: "rotate", Value: []float32{0, 1, 0, 90}},
			{Target: "spin", Op: "end"},
		},
	}
	ss := writeSession(t, sf, scr)

	var out bytes.Buffer
	require.NoError(t, ss.play(&out, true))
	assert.Contains(t, out.String(), "translate")

	obj := ss.nodes["obj"].AsNodeBase()
	assert.Equal(t, math32.Vec3(3, 0, 0), obj.Pose.Pos)
	assert.Equal(t, math32.Vec3(2, 2, 2), obj.Pose.Scale)

	spin := ss.nodes["spin"].AsNodeBase()
	want := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(90))
	assert.Equal(t, want, spin.Pose.Quat)

	out.Reset()
	ss.printPoses(&out)
	assert.Contains(t, out.String(), "/replay/group/obj: pos=(3, 0, 0)")
}

func TestReplayErrors(t *testing.T) {
	sf := &SceneFile{Entities: []Entity{{Name: "obj", Parent: "group"}}}
	scr := &Script{}
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.json")
	scriptPath := filepath.Join(dir, "script.json")
	require.NoError(t, iox.Save(sf, scenePath))
	require.NoError(t, iox.Save(scr, scriptPath))
	_, err := load(scenePath, scriptPath)
	assert.ErrorContains(t, err, "unknown parent")

	sf = &SceneFile{Entities: []Entity{
		{Name: "group"},
		{Name: "obj", Parent: "group"},
	}}
	scr = &Script{
		Attachments: []Attachment{{Target: "obj", Kind: gesture.Drag}},
		Events:      []Record{{Target: "obj", Op: "warp"}},
	}
	ss := writeSession(t, sf, scr)
	var out bytes.Buffer
	assert.ErrorContains(t, ss.play(&out, false), "unknown op")

	scr.Events = []Record{{Target: "nothing", Op: "end"}}
	ss = writeSession(t, sf, scr)
	assert.ErrorContains(t, ss.play(&out, false), "no manipulator")
}

func TestRecordEvent(t *testing.T) {
	rec := Record{Op: "rotate", Value: []float32{0, 0, 0, 90}}
	_, err := rec.Event(gesture.Rotate)
	assert.ErrorContains(t, err, "axis is zero")

	rec = Record{Op: "translate", Value: []float32{1}}
	_, err = rec.Event(gesture.Drag)
	assert.ErrorContains(t, err, "3 values")

	rec = Record{Op: "End"}
	ev, err := rec.Event(gesture.Full)
	require.NoError(t, err)
	assert.Equal(t, gesture.End, ev.Typ)
}
