// Package walk visits the files below a root directory, pruning ignored
// directories before descending into them.
package walk

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Clever/treesub/match"
	"github.com/karrick/godirwalk"
)

// Input to Walk
type Input struct {
	// Root is the directory the walk starts from. It is never pruned, even if its
	// own name is in IgnoreDirs. It may be a symbolic link to a directory.
	Root string
	// IgnoreDirs are directory names skipped at any depth, with their subtrees
	IgnoreDirs []string
	// Visit is called once for every non-directory entry
	Visit func(path string, name string)
	// OnError is called for entries that could not be read. The walk goes on.
	OnError func(path string, err error)
}

// Walk traverses input.Root. Symbolic links below the root are reported as files
// unless they resolve to a directory, in which case they are neither visited nor
// followed. Paths handed to Visit and OnError start with input.Root as given, so
// a root of "." yields "./src/a.java". Order is unspecified.
func Walk(input Input) error {
	root, err := filepath.EvalSymlinks(input.Root)
	if err != nil {
		return err
	}
	root = filepath.Clean(root)
	rebase := func(osPathname string) string {
		rel, err := filepath.Rel(root, osPathname)
		if err != nil {
			return osPathname
		}
		return join(input.Root, rel)
	}

	return godirwalk.Walk(root, &godirwalk.Options{
		Unsorted: true,
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				if osPathname != root && match.Ignored(de.Name(), input.IgnoreDirs) {
					return godirwalk.SkipThis
				}
				return nil
			}
			if de.IsSymlink() {
				if isDir, err := de.IsDirOrSymlinkToDir(); err == nil && isDir {
					return nil
				}
			}
			if input.Visit != nil {
				input.Visit(rebase(osPathname), de.Name())
			}
			return nil
		},
		ErrorCallback: func(osPathname string, err error) godirwalk.ErrorAction {
			if input.OnError != nil {
				input.OnError(rebase(osPathname), err)
			}
			return godirwalk.SkipNode
		},
	})
}

// join appends rel to root, keeping root exactly as given.
func join(root, rel string) string {
	if rel == "." {
		return root
	}
	if strings.HasSuffix(root, string(os.PathSeparator)) {
		return root + rel
	}
	return root + string(os.PathSeparator) + rel
}
