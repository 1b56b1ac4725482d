// Package replace rewrites every eligible file below a root directory, replacing
// one literal with another, and reports what it changed.
package replace

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Clever/treesub/codec"
	"github.com/Clever/treesub/lib"
	"github.com/Clever/treesub/match"
	"github.com/Clever/treesub/rewrite"
	"github.com/Clever/treesub/walk"
	"github.com/fatih/color"
)

var (
	updatedColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	summaryColor = color.New(color.Bold)
)

// Input to Run
type Input struct {
	Config lib.Config
	// Stdout receives the progress lines. Defaults to os.Stdout.
	Stdout io.Writer
}

// FileError describes a file that could not be processed
type FileError struct {
	Path  string
	Error string
}

// Output from Run()
type Output struct {
	Root    string
	Search  string
	Replace string
	// Count is the number of files whose content changed
	Count   int
	Updated []rewrite.Output
	Errors  []FileError `json:",omitempty"`
}

// Run walks input.Config.Root and rewrites eligible files. Failures on single files
// are reported and skipped; only a root that is missing or not a directory, or an
// unknown encoding, makes Run return an error.
func Run(input Input) (Output, error) {
	cfg := input.Config
	stdout := input.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	out := Output{
		Root:    cfg.Root,
		Search:  cfg.Search,
		Replace: cfg.Replace,
		Updated: []rewrite.Output{},
	}

	if err := cfg.Validate(); err != nil {
		return out, err
	}
	c, err := codec.Lookup(cfg.Encoding)
	if err != nil {
		return out, err
	}
	if err := validateRoot(cfg.Root); err != nil {
		return out, err
	}

	fmt.Fprintf(stdout, "Starting replacement: '%s' -> '%s'\n", cfg.Search, cfg.Replace)

	reportError := func(path string, err error) {
		errorColor.Fprintf(stdout, "Error processing %s: %s\n", path, err)
		out.Errors = append(out.Errors, FileError{Path: path, Error: err.Error()})
	}

	err = walk.Walk(walk.Input{
		Root:       cfg.Root,
		IgnoreDirs: cfg.IgnoreDirs,
		OnError:    reportError,
		Visit: func(path string, name string) {
			if !match.Eligible(name, cfg.Extensions, cfg.Filenames) {
				return
			}
			result, err := rewrite.Rewrite(rewrite.Input{
				Path:     path,
				Search:   cfg.Search,
				Replace:  cfg.Replace,
				Codec:    c,
				WithDiff: cfg.ShowDiff || cfg.Stats,
			})
			if err != nil {
				reportError(path, err)
				return
			}
			if !result.Changed {
				return
			}
			updatedColor.Fprintf(stdout, "Updated: %s\n", path)
			if cfg.ShowDiff {
				fmt.Fprint(stdout, result.Diff)
			} else {
				result.Diff = ""
			}
			out.Updated = append(out.Updated, result)
			out.Count++
		},
	})
	if err != nil {
		return out, fmt.Errorf("error walking %s: %w", cfg.Root, err)
	}

	if cfg.Stats {
		printStats(stdout, out.Updated)
	}
	summaryColor.Fprintf(stdout, "Replacement complete. Updated %d files.\n", out.Count)
	return out, nil
}

func validateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("root directory %s is not accessible: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %s is not a directory", root)
	}
	return nil
}

func joinWithTab(s ...string) string {
	return strings.Join(s, "\t")
}

func printStats(w io.Writer, updated []rewrite.Output) {
	tw := tabwriter.NewWriter(w, 0, 8, 3, ' ', 0)
	fmt.Fprintln(tw, joinWithTab("PATH", "REPLACEMENTS", "ADDED", "REMOVED"))
	for _, u := range updated {
		fmt.Fprintln(tw, joinWithTab(u.Path, strconv.Itoa(u.Replacements), strconv.Itoa(u.LinesAdded), strconv.Itoa(u.LinesRemoved)))
	}
	tw.Flush()
}
