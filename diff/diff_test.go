package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	path    = "src/App.java"
	oldText = "package com.pail.app;\n\nimport java.util.List;\n\nclass App {}\n"
	newText = "package com.naufal.app;\n\nimport java.util.List;\n\nclass App {}\n"
	want    = "diff --git a/src/App.java b/src/App.java\n--- a/src/App.java\n+++ b/src/App.java\n@@ -1,4 +1,4 @@\n-package com.pail.app;\n+package com.naufal.app;\n \n import java.util.List;\n \n"
)

func TestUnified(t *testing.T) {
	out, err := Unified(path, []byte(oldText), []byte(newText))
	require.NoError(t, err)
	assert.Equal(t, want, out)
}

func TestUnifiedIdentical(t *testing.T) {
	out, err := Unified(path, []byte(oldText), []byte(oldText))
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestStat(t *testing.T) {
	out, err := Unified(path, []byte(oldText), []byte(newText))
	require.NoError(t, err)

	added, removed, err := Stat(out)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)
}

func TestStatEmpty(t *testing.T) {
	added, removed, err := Stat("")
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Zero(t, removed)
}

func TestStatMalformedHunk(t *testing.T) {
	_, _, err := Stat("diff --git a/x.txt b/x.txt\n--- a/x.txt\n+++ b/x.txt\n@@ -one +two @@\n-a\n+b\n")
	assert.Error(t, err)
}
