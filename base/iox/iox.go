// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox reads and writes structured values in JSON, TOML, and YAML,
// dispatching on the filename extension so callers do not need to care
// which format a given file uses.
package iox

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Open reads the given value from the given file, in the format implied
// by the filename extension (.json, .toml, .yaml, or .yml).
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(v, f, filepath.Ext(filename))
}

// Read reads the given value from the given reader, in the format implied
// by the given filename extension.
func Read(v any, r io.Reader, ext string) error {
	switch strings.ToLower(ext) {
	case ".json":
		return json.NewDecoder(r).Decode(v)
	case ".toml":
		return toml.NewDecoder(r).Decode(v)
	case ".yaml", ".yml":
		return yaml.NewDecoder(r).Decode(v)
	}
	return fmt.Errorf("iox.Read: unsupported file extension %q", ext)
}

// Save writes the given value to the given file, in the format implied
// by the filename extension (.json, .toml, .yaml, or .yml).
func Save(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(v, f, filepath.Ext(filename))
}

// Write writes the given value to the given writer, in the format implied
// by the given filename extension.
func Write(v any, w io.Writer, ext string) error {
	switch strings.ToLower(ext) {
	case ".json":
		e := json.NewEncoder(w)
		e.SetIndent("", "\t")
		return e.Encode(v)
	case ".toml":
		return toml.NewEncoder(w).Encode(v)
	case ".yaml", ".yml":
		e := yaml.NewEncoder(w)
		if err := e.Encode(v); err != nil {
			return err
		}
		return e.Close()
	}
	return fmt.Errorf("iox.Write: unsupported file extension %q", ext)
}
