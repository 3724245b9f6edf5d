// Command wxlookup looks up stored weather records from a terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rshade/wxlookup/internal/cli"
	"github.com/rshade/wxlookup/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stderr io.Writer) int {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
