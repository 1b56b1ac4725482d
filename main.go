package main

import (
	"fmt"
	"os"

	"github.com/Clever/treesub/cmd"
)

// version is set during build with -ldflags "-X main.version=..."
var version string

func main() {
	if err := cmd.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
