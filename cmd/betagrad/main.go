// Command betagrad evaluates the regularized incomplete beta function and
// the Student's t CDF from the command line, optionally with partial
// derivatives.
package main

import (
	"os"

	"github.com/betagrad/betagrad/internal/cli"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
