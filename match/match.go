// Package match decides which files are rewritten and which directories are
// descended into. Decisions depend on names only, never on content or full paths.
package match

import "strings"

// Eligible reports whether a file called name should be considered for
// substitution: its name ends with one of exts or equals one of names.
func Eligible(name string, exts []string, names []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	for _, n := range names {
		if name == n {
			return true
		}
	}
	return false
}

// Ignored reports whether a directory called name is in the ignore list.
func Ignored(name string, ignore []string) bool {
	for _, i := range ignore {
		if name == i {
			return true
		}
	}
	return false
}
