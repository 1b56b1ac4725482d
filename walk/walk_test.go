package walk

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}

func collect(t *testing.T, input Input) []string {
	t.Helper()
	var visited []string
	input.Visit = func(path string, name string) {
		assert.Equal(t, filepath.Base(path), name)
		rel, err := filepath.Rel(input.Root, path)
		require.NoError(t, err)
		visited = append(visited, filepath.ToSlash(rel))
	}
	require.NoError(t, Walk(input))
	sort.Strings(visited)
	return visited
}

func TestWalkPrunesIgnoredDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.java":                  "",
		"src/main/b.xml":          "",
		"target/classes/c.xml":    "",
		"src/target/d.txt":        "",
		".git/config":             "",
		"docs/.idea/workspace.md": "",
		"targets/e.txt":           "",
	})

	got := collect(t, Input{Root: root, IgnoreDirs: []string{"target", ".git", ".idea", ".vscode"}})
	assert.Equal(t, []string{"a.java", "src/main/b.xml", "targets/e.txt"}, got)
}

func TestWalkVisitsEveryFileOnce(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"one.txt":     "",
		"x/two.txt":   "",
		"x/y/three":   "",
		"x/y/z/four":  "",
		"empty/.keep": "",
	})

	got := collect(t, Input{Root: root})
	assert.Equal(t, []string{"empty/.keep", "one.txt", "x/two.txt", "x/y/three", "x/y/z/four"}, got)
}

func TestWalkDoesNotPruneRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "target")
	writeTree(t, root, map[string]string{"a.txt": "", "target/b.txt": ""})

	got := collect(t, Input{Root: root, IgnoreDirs: []string{"target"}})
	assert.Equal(t, []string{"a.txt"}, got)
}

func TestWalkSkipsSymlinkedDirs(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": ""})
	writeTree(t, other, map[string]string{"b.txt": ""})
	require.NoError(t, os.Symlink(other, filepath.Join(root, "linked")))
	require.NoError(t, os.Symlink(filepath.Join(root, "a.txt"), filepath.Join(root, "alias.txt")))

	got := collect(t, Input{Root: root})
	assert.Equal(t, []string{"a.txt", "alias.txt"}, got)
}

func TestWalkSymlinkedRoot(t *testing.T) {
	target := t.TempDir()
	writeTree(t, target, map[string]string{"a.java": "", "sub/b.txt": ""})
	link := filepath.Join(t.TempDir(), "link")
	require.NoError(t, os.Symlink(target, link))

	var visited []string
	require.NoError(t, Walk(Input{Root: link, Visit: func(path string, name string) {
		visited = append(visited, path)
	}}))
	sort.Strings(visited)
	assert.Equal(t, []string{filepath.Join(link, "a.java"), filepath.Join(link, "sub", "b.txt")}, visited)
}

func TestWalkReportsUnreadableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "", "locked/b.txt": "", "z/c.txt": ""})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	var failed []string
	input := Input{Root: root, OnError: func(path string, err error) {
		assert.Error(t, err)
		failed = append(failed, path)
	}}
	got := collect(t, input)
	assert.Equal(t, []string{"a.txt", "z/c.txt"}, got)
	assert.Equal(t, []string{locked}, failed)
}

func TestJoin(t *testing.T) {
	sep := string(os.PathSeparator)
	tests := []struct {
		root, rel, want string
	}{
		{".", "a.java", "." + sep + "a.java"},
		{"." + sep, "a.java", "." + sep + "a.java"},
		{"src", filepath.Join("x", "b.txt"), "src" + sep + filepath.Join("x", "b.txt")},
		{"src", ".", "src"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, join(tt.root, tt.rel))
	}
}

func TestWalkMissingRoot(t *testing.T) {
	err := Walk(Input{Root: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}
