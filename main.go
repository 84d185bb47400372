// Command tree prints the contents of a directory and all its subdirectories in tree form.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/tree/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals // Build-time variable
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
