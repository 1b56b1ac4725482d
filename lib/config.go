package lib

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config contains every parameter of a run. It is built once at startup and not
// modified afterwards.
type Config struct {
	// Root is the directory the walk starts from
	Root string
	// Search is the literal to look for, matched case-sensitively
	Search string
	// Replace is the literal written in place of every match
	Replace string
	// Extensions are file name suffixes that make a file eligible, e.g. ".java"
	Extensions []string
	// Filenames are bare file names that make a file eligible, e.g. "Dockerfile"
	Filenames []string
	// IgnoreDirs are directory names whose whole subtree is skipped
	IgnoreDirs []string
	// Encoding names the character encoding used to decode and encode files
	Encoding string

	ShowDiff   bool
	Stats      bool
	ReportPath string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Root:       ".",
		Search:     "com.pail",
		Replace:    "com.naufal",
		Extensions: []string{".java", ".xml", ".yml", ".yaml", ".properties", ".md", ".txt"},
		Filenames:  []string{"Jenkinsfile", "Dockerfile"},
		IgnoreDirs: []string{"target", ".git", ".idea", ".vscode"},
		Encoding:   "utf-8",
	}
}

// Environment variables read by LoadEnv
const (
	EnvRoot       = "TREESUB_ROOT"
	EnvSearch     = "TREESUB_SEARCH"
	EnvReplace    = "TREESUB_REPLACE"
	EnvExtensions = "TREESUB_EXTENSIONS"
	EnvFilenames  = "TREESUB_FILENAMES"
	EnvIgnoreDirs = "TREESUB_IGNORE_DIRS"
	EnvEncoding   = "TREESUB_ENCODING"
)

// LoadEnv overlays TREESUB_* environment variables onto cfg. If envFile is set it
// is loaded into the environment first; variables already set in the process win.
func LoadEnv(cfg Config, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return cfg, fmt.Errorf("error loading env file %s: %w", envFile, err)
		}
	}

	if v, ok := os.LookupEnv(EnvRoot); ok {
		cfg.Root = v
	}
	if v, ok := os.LookupEnv(EnvSearch); ok {
		cfg.Search = v
	}
	if v, ok := os.LookupEnv(EnvReplace); ok {
		cfg.Replace = v
	}
	if v, ok := os.LookupEnv(EnvExtensions); ok {
		cfg.Extensions = splitList(v)
	}
	if v, ok := os.LookupEnv(EnvFilenames); ok {
		cfg.Filenames = splitList(v)
	}
	if v, ok := os.LookupEnv(EnvIgnoreDirs); ok {
		cfg.IgnoreDirs = splitList(v)
	}
	if v, ok := os.LookupEnv(EnvEncoding); ok {
		cfg.Encoding = v
	}
	return cfg, nil
}

// Validate checks the parts of a Config that cannot be fixed up later.
func (c Config) Validate() error {
	if c.Search == "" {
		return fmt.Errorf("invalid config: search literal is empty")
	}
	if c.Root == "" {
		return fmt.Errorf("invalid config: root directory is empty")
	}
	if c.Encoding == "" {
		return fmt.Errorf("invalid config: encoding is empty")
	}
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
