package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/betagrad/betagrad/internal/autodiff"
	"github.com/betagrad/betagrad/internal/backend/cpu"
	"github.com/betagrad/betagrad/internal/distribution"
	"github.com/betagrad/betagrad/internal/special"
	"github.com/betagrad/betagrad/internal/tensor"
)

// newBetaincCmd evaluates I_x(a, b) at scalar arguments.
func newBetaincCmd() *cobra.Command {
	var prec precisionFlags
	var withGrad bool

	cmd := &cobra.Command{
		Use:   "betainc <a> <b> <x>",
		Short: "Evaluate the regularized incomplete beta function I_x(a, b)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			a, b, x := vals[0], vals[1], vals[2]

			logger := loggerFromContext(cmd.Context())
			p := special.Precision{Epsilon: prec.epsilon, MinIters: prec.minApprox, MaxIters: prec.maxApprox}
			logger.Debug("evaluating betainc", "a", a, "b", b, "x", x,
				"epsilon", p.Epsilon, "minApprox", p.MinIters, "maxApprox", p.MaxIters)

			if !withGrad {
				backend := cpu.New()
				out := distribution.BetaincWithPrecision(
					tensor.Scalar(a, backend), tensor.Scalar(b, backend), tensor.Scalar(x, backend), p)
				fmt.Fprintf(cmd.OutOrStdout(), "%.15g\n", out.Item())
				return nil
			}

			backend := autodiff.New(cpu.New())
			backend.Tape().StartRecording()

			ta := tensor.Scalar(a, backend).RequireGrad()
			tb := tensor.Scalar(b, backend).RequireGrad()
			tx := tensor.Scalar(x, backend).RequireGrad()

			out := distribution.BetaincWithPrecision(ta, tb, tx, p)
			grads := autodiff.Backward(out, backend)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "value  %.15g\n", out.Item())
			fmt.Fprintf(w, "dI/da  %.15g\n", gradValue(grads, ta))
			fmt.Fprintf(w, "dI/db  %.15g\n", gradValue(grads, tb))
			fmt.Fprintf(w, "dI/dx  %.15g\n", gradValue(grads, tx))
			return nil
		},
	}

	prec.register(cmd)
	cmd.Flags().BoolVar(&withGrad, "grad", false, "also print partial derivatives")
	return cmd
}

// parseFloats parses every argument as a float64.
func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}

// gradValue extracts a scalar gradient, defaulting to 0 when no gradient
// flowed.
func gradValue[B tensor.Backend](grads map[*tensor.RawTensor]*tensor.RawTensor, t *tensor.Tensor[float64, B]) float64 {
	grad, ok := grads[t.Raw()]
	if !ok {
		return 0
	}
	return grad.AsFloat64()[0]
}
