// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gesturereplay replays a recorded gesture script against a
// scene description and prints the resulting transforms. It is the
// headless debugging tool for manipulator behavior: author a scene and a
// script in any iox format, replay them, and inspect what moved where.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Umain-Vision-Pro/UmainSpatialGestures/base/iox"
	"github.com/Umain-Vision-Pro/UmainSpatialGestures/gesture"
	"github.com/Umain-Vision-Pro/UmainSpatialGestures/manip"
	"github.com/Umain-Vision-Pro/UmainSpatialGestures/math32"
	"github.com/Umain-Vision-Pro/UmainSpatialGestures/scene"
)

func main() {
	var (
		scenePath  = flag.String("scene", "", "Scene description file (.json, .toml, or .yaml).")
		scriptPath = flag.String("script", "", "Gesture script file (.json, .toml, or .yaml).")
		verbose    = flag.Bool("verbose", false, "Print the target pose after every event.")
	)
	flag.Parse()

	if *scenePath == "" || *scriptPath == "" {
		fatalf("usage: gesturereplay -scene scene.toml -script script.toml [-verbose]")
	}
	ss, err := load(*scenePath, *scriptPath)
	if err != nil {
		fatalf("gesturereplay: %v", err)
	}
	if err := ss.play(os.Stdout, *verbose); err != nil {
		fatalf("gesturereplay: %v", err)
	}
	ss.printPoses(os.Stdout)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// session is a loaded scene with its scripted manipulators attached.
type session struct {
	scene   *scene.Scene
	nodes   map[string]scene.Node
	streams map[string]*gesture.Stream
	script  *Script
}

// load reads the scene and script files, builds the entity tree, and
// binds the scripted manipulators.
func load(scenePath, scriptPath string) (*session, error) {
	var sf SceneFile
	if err := iox.Open(&sf, scenePath); err != nil {
		return nil, err
	}
	var scr Script
	if err := iox.Open(&scr, scriptPath); err != nil {
		return nil, err
	}
	ss := &session{
		scene:   scene.NewScene("replay"),
		nodes:   map[string]scene.Node{},
		streams: map[string]*gesture.Stream{},
		script:  &scr,
	}
	for _, ent := range sf.Entities {
		if _, ok := ss.nodes[ent.Name]; ok || ent.Name == "" {
			return nil, fmt.Errorf("entity name %q is empty or already used", ent.Name)
		}
		var parent scene.Node = ss.scene
		if ent.Parent != "" {
			pn, ok := ss.nodes[ent.Parent]
			if !ok {
				return nil, fmt.Errorf("entity %q: unknown parent %q", ent.Name, ent.Parent)
			}
			parent = pn
		}
		gp := scene.NewGroup(parent, ent.Name)
		gp.Pose.Pos = ent.Pos
		if ent.Angle != 0 && ent.Axis != (math32.Vector3{}) {
			gp.Pose.Quat = math32.NewQuatAxisAngle(ent.Axis.Normal(), math32.DegToRad(ent.Angle))
		}
		if ent.Scale != (math32.Vector3{}) {
			gp.Pose.Scale = ent.Scale
		}
		ss.nodes[ent.Name] = gp
	}
	ss.scene.Update()
	for _, at := range scr.Attachments {
		nd, ok := ss.nodes[at.Target]
		if !ok {
			return nil, fmt.Errorf("attachment: unknown target %q", at.Target)
		}
		mn := manip.New(nd, at.Kind).SetAxis(at.Axis).SetActivation(at.Activation)
		st := gesture.NewStream(at.Target)
		if err := mn.Bind(st); err != nil {
			return nil, err
		}
		ss.streams[at.Target] = st
	}
	return ss, nil
}

// play sends the script's events through the attached streams in order,
// printing the target pose after each one when verbose.
func (ss *session) play(w io.Writer, verbose bool) error {
	for i, rec := range ss.script.Events {
		st, ok := ss.streams[rec.Target]
		if !ok {
			return fmt.Errorf("event %d: no manipulator attached to %q", i, rec.Target)
		}
		ev, err := rec.Event(st.Config.Kind)
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		st.Send(ev)
		if verbose {
			fmt.Fprintf(w, "%3d %-9s %s\n", i, rec.Op, poseString(ss.nodes[rec.Target]))
		}
	}
	return nil
}

// printPoses prints the final pose of every scripted target.
func (ss *session) printPoses(w io.Writer) {
	ss.scene.Update()
	for _, at := range ss.script.Attachments {
		fmt.Fprintln(w, poseString(ss.nodes[at.Target]))
	}
}

func poseString(nd scene.Node) string {
	nb := nd.AsNodeBase()
	ps := &nb.Pose
	return fmt.Sprintf("%s: pos=(%g, %g, %g) rot=(%g, %g, %g, %g) scale=(%g, %g, %g)",
		nb.Path(), ps.Pos.X, ps.Pos.Y, ps.Pos.Z,
		ps.Quat.X, ps.Quat.Y, ps.Quat.Z, ps.Quat.W,
		ps.Scale.X, ps.Scale.Y, ps.Scale.Z)
}
