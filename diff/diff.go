// Package diff renders the change made to a file as a unified diff and
// summarizes it.
package diff

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/waigani/diffparser"
)

// Unified returns a git style unified diff between old and new for the file at
// path. It returns "" when the two are identical.
func Unified(path string, old, new []byte) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(old)),
		B:        difflib.SplitLines(string(new)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	}
	body, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", err
	}
	if body == "" {
		return "", nil
	}
	return fmt.Sprintf("diff --git a/%s b/%s\n%s", path, path, body), nil
}

// Stat counts the lines added and removed by a unified diff.
func Stat(unified string) (added int, removed int, err error) {
	if unified == "" {
		return 0, 0, nil
	}
	d, err := diffparser.Parse(unified)
	if err != nil {
		return 0, 0, err
	}
	for _, f := range d.Files {
		for _, h := range f.Hunks {
			for _, l := range h.WholeRange.Lines {
				switch l.Mode {
				case diffparser.ADDED:
					added++
				case diffparser.REMOVED:
					removed++
				}
			}
		}
	}
	return added, removed, nil
}
