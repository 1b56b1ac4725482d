package rewrite

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/Clever/treesub/codec"
	"github.com/Clever/treesub/diff"
	"go4.org/bytereplacer"
)

// Input to Rewrite
type Input struct {
	// Path of the file to rewrite in place
	Path string
	// Search is the literal to replace. Must not be empty.
	Search string
	// Replace is written in place of every occurrence of Search
	Replace string
	// Codec decodes and encodes the file. The zero Codec is strict UTF-8.
	Codec codec.Codec
	// WithDiff asks for a unified diff of the change in the Output
	WithDiff bool
}

// Output from Rewrite()
type Output struct {
	Path         string
	Changed      bool
	Replacements int
	Diff         string `json:",omitempty"`
	LinesAdded   int    `json:",omitempty"`
	LinesRemoved int    `json:",omitempty"`
}

// Error and details from Rewrite()
type Error struct {
	error
	Details string
}

func (e Error) Unwrap() error {
	return e.error
}

// Rewrite replaces every non-overlapping occurrence of input.Search in the file at
// input.Path, left to right. A file without any occurrence is never opened for
// writing.
func Rewrite(input Input) (Output, error) {
	out := Output{Path: input.Path}
	if input.Search == "" {
		return out, Error{error: fmt.Errorf("empty search literal"), Details: "nothing to search for"}
	}

	raw, err := os.ReadFile(input.Path)
	if err != nil {
		return out, Error{error: err, Details: "read failed"}
	}
	text, err := input.Codec.Decode(raw)
	if err != nil {
		return out, Error{error: err, Details: "decode failed"}
	}

	n := bytes.Count(text, []byte(input.Search))
	if n == 0 {
		return out, nil
	}

	// bytereplacer may work in place, so hand it a copy when text aliases raw.
	updated := bytereplacer.New(input.Search, input.Replace).Replace(append([]byte(nil), text...))
	encoded, err := input.Codec.Encode(updated)
	if err != nil {
		return out, Error{error: err, Details: "encode failed"}
	}

	info, err := os.Stat(input.Path)
	if err != nil {
		return out, Error{error: err, Details: "stat failed"}
	}
	if err := writeFile(input.Path, encoded, info.Mode().Perm()); err != nil {
		return out, Error{error: err, Details: "write failed"}
	}

	out.Changed = true
	out.Replacements = n
	if input.WithDiff {
		// the file is already rewritten, so a failed diff is only a diagnostic
		if out.Diff, err = diff.Unified(input.Path, text, updated); err != nil {
			log.Printf("%s - diff error: %s", input.Path, err)
			return out, nil
		}
		if out.LinesAdded, out.LinesRemoved, err = diff.Stat(out.Diff); err != nil {
			log.Printf("%s - diff stat error: %s", input.Path, err)
		}
	}
	return out, nil
}

// writeFile truncates and rewrites path, reporting a failed Close as well.
func writeFile(path string, data []byte, perm os.FileMode) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}
