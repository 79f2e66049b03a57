// Package distribution provides tensor-level special functions and the
// Student's t distribution built on top of them.
//
// Everything here is expressed through the tensor.Backend operation set, so
// running on an autodiff backend makes every result differentiable with
// respect to its tensor inputs.
package distribution

import (
	"fmt"

	"github.com/betagrad/betagrad/internal/special"
	"github.com/betagrad/betagrad/internal/tensor"
)

// Betainc computes the regularized incomplete beta function I_x(a, b)
// elementwise over the broadcast of its arguments, with default convergence
// parameters.
//
// The backend must implement tensor.BetaincBackend; the CPU backend and any
// autodiff decorator around it do.
func Betainc[T tensor.Float, B tensor.Backend](a, b, x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return BetaincWithPrecision(a, b, x, special.DefaultPrecision())
}

// BetaincWithPrecision is Betainc with explicit convergence parameters.
// Zero-valued fields of p fall back to the defaults.
func BetaincWithPrecision[T tensor.Float, B tensor.Backend](a, b, x *tensor.Tensor[T, B], p special.Precision) *tensor.Tensor[T, B] {
	backend := a.Backend()
	bi, ok := any(backend).(tensor.BetaincBackend)
	if !ok {
		panic(fmt.Sprintf("betainc: backend %s does not implement it", backend.Name()))
	}

	raw := bi.Betainc(a.Raw(), b.Raw(), x.Raw(), p.Epsilon, p.MinIters, p.MaxIters)
	return tensor.New[T](raw, backend)
}
