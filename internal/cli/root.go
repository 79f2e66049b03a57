package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags at build
// time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the betagrad CLI and returns an error if any command fails.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "betagrad",
		Short:        "Differentiable incomplete beta function and Student's t CDF",
		Long:         `Betagrad evaluates the regularized incomplete beta function and the Student's t cumulative distribution function, optionally with exact partial derivatives via reverse-mode automatic differentiation.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("betagrad %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBetaincCmd())
	root.AddCommand(newTCDFCmd())

	return root.ExecuteContext(context.Background())
}

// precisionFlags holds the shared convergence flags.
type precisionFlags struct {
	epsilon   float64
	minApprox int
	maxApprox int
}

func (f *precisionFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.epsilon, "epsilon", 1e-14, "convergence tolerance for the continued fraction")
	cmd.Flags().IntVar(&f.minApprox, "min-approx", 3, "minimum continued-fraction iterations")
	cmd.Flags().IntVar(&f.maxApprox, "max-approx", 500, "maximum continued-fraction iterations")
}
