package cmd

import (
	"github.com/Clever/treesub/lib"
	"github.com/Clever/treesub/replace"
	"github.com/spf13/cobra"
)

var cliVersion string

var rootCmd = &cobra.Command{
	Use:   "treesub",
	Short: "Replace a literal string in every eligible file of a directory tree",
	Long: `treesub walks a directory tree and rewrites, in place, every file whose
name ends with one of the configured extensions or equals one of the configured
file names, replacing each occurrence of the search literal with the replacement
literal. Files without a match are never written. Directories named in the ignore
list are skipped together with everything below them.

Defaults can be overridden with TREESUB_* environment variables (optionally read
from --env-file) and then with flags.`,
	Args:          cobra.ExactArgs(0),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromFlags(cmd)
		if err != nil {
			return err
		}

		output, err := replace.Run(replace.Input{Config: cfg, Stdout: cmd.OutOrStdout()})
		if err != nil {
			return err
		}

		if cfg.ReportPath != "" {
			return writeReport(output, cfg.ReportPath)
		}
		return nil
	},
}

func init() {
	addFlags(rootCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(docsCmd)
}

func addFlags(cmd *cobra.Command) {
	defaults := lib.DefaultConfig()
	flags := cmd.Flags()
	flags.StringP("root", "d", defaults.Root, "directory to walk")
	flags.StringP("search", "s", defaults.Search, "literal to search for (case-sensitive)")
	flags.StringP("replace", "r", defaults.Replace, "literal to replace it with")
	flags.StringSlice("ext", defaults.Extensions, "file name suffixes of eligible files")
	flags.StringSlice("filename", defaults.Filenames, "exact file names of eligible files")
	flags.StringSlice("ignore-dir", defaults.IgnoreDirs, "directory names to skip, with their subtrees")
	flags.String("encoding", defaults.Encoding, "character encoding of the files")
	flags.String("env-file", "", "dotenv file with TREESUB_* variables to load first")
	flags.Bool("show-diff", false, "print a unified diff of every updated file")
	flags.Bool("stats", false, "print a table of per-file replacement counts before the summary")
	flags.String("report", "", "write the run result as JSON to this path")
}

// Execute starts the CLI
func Execute(version string) error {
	cliVersion = version
	return rootCmd.Execute()
}
