package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Clever/treesub/lib"
	"github.com/Clever/treesub/replace"
	"github.com/spf13/cobra"
)

func writeJSON(obj interface{}, path string) error {
	b, err := json.MarshalIndent(obj, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func writeReport(output replace.Output, path string) error {
	if err := writeJSON(output, path); err != nil {
		return fmt.Errorf("error writing report %s: %w", path, err)
	}
	log.Printf("report written to %s", path)
	return nil
}

// configFromFlags layers the defaults, the environment and any flag the user set
// explicitly, in that order.
func configFromFlags(cmd *cobra.Command) (lib.Config, error) {
	flags := cmd.Flags()

	envFile, err := flags.GetString("env-file")
	if err != nil {
		return lib.Config{}, err
	}
	cfg, err := lib.LoadEnv(lib.DefaultConfig(), envFile)
	if err != nil {
		return lib.Config{}, err
	}

	stringFlags := map[string]*string{
		"root":     &cfg.Root,
		"search":   &cfg.Search,
		"replace":  &cfg.Replace,
		"encoding": &cfg.Encoding,
		"report":   &cfg.ReportPath,
	}
	for name, dst := range stringFlags {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetString(name); err != nil {
			return lib.Config{}, err
		}
	}

	sliceFlags := map[string]*[]string{
		"ext":        &cfg.Extensions,
		"filename":   &cfg.Filenames,
		"ignore-dir": &cfg.IgnoreDirs,
	}
	for name, dst := range sliceFlags {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetStringSlice(name); err != nil {
			return lib.Config{}, err
		}
	}

	if cfg.ShowDiff, err = flags.GetBool("show-diff"); err != nil {
		return lib.Config{}, err
	}
	if cfg.Stats, err = flags.GetBool("stats"); err != nil {
		return lib.Config{}, err
	}
	return cfg, nil
}
