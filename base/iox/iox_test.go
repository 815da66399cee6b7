// Copyright (c) 2026, The Umain Spatial Gestures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSettings struct {
	Name  string
	Speed float32
	Tags  []string
}

func TestSaveOpen(t *testing.T) {
	in := testSettings{Name: "drag", Speed: 0.5, Tags: []string{"a", "b"}}
	for _, ext := range []string{".json", ".toml", ".yaml"} {
		fn := filepath.Join(t.TempDir(), "settings"+ext)
		require.NoError(t, Save(&in, fn))
		var out testSettings
		require.NoError(t, Open(&out, fn))
		assert.Equal(t, in, out, ext)
	}
}

func TestReadWrite(t *testing.T) {
	in := testSettings{Name: "rotate", Speed: 2}
	var b bytes.Buffer
	require.NoError(t, Write(&in, &b, ".yml"))
	var out testSettings
	require.NoError(t, Read(&out, &b, ".yml"))
	assert.Equal(t, in, out)
}

func TestUnsupportedExtension(t *testing.T) {
	var v testSettings
	assert.Error(t, Read(&v, &bytes.Buffer{}, ".ini"))
	assert.Error(t, Write(&v, &bytes.Buffer{}, ""))
	assert.Error(t, Open(&v, filepath.Join(t.TempDir(), "missing.json")))
}
