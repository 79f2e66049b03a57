package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/betagrad/betagrad/internal/autodiff"
	"github.com/betagrad/betagrad/internal/backend/cpu"
	"github.com/betagrad/betagrad/internal/distribution"
	"github.com/betagrad/betagrad/internal/special"
	"github.com/betagrad/betagrad/internal/tensor"
)

// newTCDFCmd evaluates the Student's t CDF at scalar arguments.
func newTCDFCmd() *cobra.Command {
	var prec precisionFlags
	var loc, scale float64
	var withGrad bool

	cmd := &cobra.Command{
		Use:   "tcdf <x> <df>",
		Short: "Evaluate the Student's t cumulative distribution function",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			x, df := vals[0], vals[1]
			if scale <= 0 {
				return fmt.Errorf("scale must be positive, got %v", scale)
			}

			logger := loggerFromContext(cmd.Context())
			p := special.Precision{Epsilon: prec.epsilon, MinIters: prec.minApprox, MaxIters: prec.maxApprox}
			logger.Debug("evaluating tcdf", "x", x, "df", df, "loc", loc, "scale", scale,
				"epsilon", p.Epsilon, "minApprox", p.MinIters, "maxApprox", p.MaxIters)

			if !withGrad {
				backend := cpu.New()
				out := distribution.CDFTWithPrecision(
					tensor.Scalar(x, backend), tensor.Scalar(df, backend),
					tensor.Scalar(loc, backend), tensor.Scalar(scale, backend), p)
				fmt.Fprintf(cmd.OutOrStdout(), "%.15g\n", out.Item())
				return nil
			}

			backend := autodiff.New(cpu.New())
			backend.Tape().StartRecording()

			tx := tensor.Scalar(x, backend).RequireGrad()
			tdf := tensor.Scalar(df, backend).RequireGrad()
			tloc := tensor.Scalar(loc, backend).RequireGrad()
			tscale := tensor.Scalar(scale, backend).RequireGrad()

			out := distribution.CDFTWithPrecision(tx, tdf, tloc, tscale, p)
			grads := autodiff.Backward(out, backend)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "value    %.15g\n", out.Item())
			fmt.Fprintf(w, "dF/dx    %.15g\n", gradValue(grads, tx))
			fmt.Fprintf(w, "dF/ddf   %.15g\n", gradValue(grads, tdf))
			fmt.Fprintf(w, "dF/dloc  %.15g\n", gradValue(grads, tloc))
			fmt.Fprintf(w, "dF/dscale %.15g\n", gradValue(grads, tscale))
			return nil
		},
	}

	prec.register(cmd)
	cmd.Flags().Float64Var(&loc, "loc", 0, "location parameter")
	cmd.Flags().Float64Var(&scale, "scale", 1, "scale parameter")
	cmd.Flags().BoolVar(&withGrad, "grad", false, "also print partial derivatives")
	return cmd
}
