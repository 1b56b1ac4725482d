package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var docsCmd = &cobra.Command{
	Use:   "docs [path]",
	Short: "Generates markdown docs for each command",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "docs/"
		if len(args) == 1 {
			path = args[0]
		}

		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("error creating docs dir: %w", err)
		}
		return doc.GenMarkdownTree(rootCmd, path)
	},
}
