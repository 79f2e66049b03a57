package distribution

import (
	"github.com/betagrad/betagrad/internal/special"
	"github.com/betagrad/betagrad/internal/tensor"
)

// CDFT computes the cumulative distribution function of the standard
// Student's t distribution with df degrees of freedom, elementwise over the
// broadcast of x and df.
func CDFT[T tensor.Float, B tensor.Backend](x, df *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return CDFTWithPrecision(x, df, nil, nil, special.DefaultPrecision())
}

// CDFTWithPrecision computes the Student's t CDF with location and scale
// reparameterization: the CDF is evaluated at t = (x - loc) / scale. A nil
// loc defaults to 0 and a nil scale to 1.
//
// The computation runs entirely through tensor operations:
//
//	x_beta = df / (df + t²)
//	ib     = I_{x_beta}(df/2, 1/2)
//	cdf    = 1 - ib/2  where t >= 0, else ib/2
//
// At t == 0, x_beta is exactly 1 and the incomplete beta short-circuits to
// exactly 1, so the CDF is exactly 0.5. The final result is clipped to
// [0, 1] against float round-off.
func CDFTWithPrecision[T tensor.Float, B tensor.Backend](x, df, loc, scale *tensor.Tensor[T, B], p special.Precision) *tensor.Tensor[T, B] {
	backend := x.Backend()

	// Pin the caller's tensors so the backend's inplace fast path cannot
	// overwrite them while they are still needed below.
	defer x.Raw().ForceNonUnique()()
	defer df.Raw().ForceNonUnique()()

	t := x
	if loc != nil {
		t = t.Sub(loc)
	}
	if scale != nil {
		t = t.Div(scale)
	}
	defer t.Raw().ForceNonUnique()()

	tsq := t.Mul(t)
	xBeta := df.Div(df.Add(tsq))

	a := df.DivScalar(2)
	b := tensor.Full(tensor.Shape{}, T(0.5), backend)

	ib := BetaincWithPrecision(a, b, xBeta, p)
	half := ib.MulScalar(T(0.5))

	one := tensor.Full(tensor.Shape{}, T(1), backend)
	upper := one.Sub(half)

	zero := tensor.Zeros[T](tensor.Shape{}, backend)
	cond := t.GreaterEqual(zero)

	return tensor.Where(cond, upper, half).Clamp(0, 1)
}

// StudentT is a Student's t distribution with df degrees of freedom,
// optionally shifted by Loc and stretched by Scale (both nil-able, meaning
// 0 and 1).
type StudentT[T tensor.Float, B tensor.Backend] struct {
	Df    *tensor.Tensor[T, B]
	Loc   *tensor.Tensor[T, B]
	Scale *tensor.Tensor[T, B]

	precision special.Precision
}

// NewStudentT constructs a Student's t distribution with default
// convergence parameters.
func NewStudentT[T tensor.Float, B tensor.Backend](df, loc, scale *tensor.Tensor[T, B]) *StudentT[T, B] {
	return &StudentT[T, B]{
		Df:        df,
		Loc:       loc,
		Scale:     scale,
		precision: special.DefaultPrecision(),
	}
}

// WithPrecision returns a copy of the distribution using the given
// convergence parameters.
func (d *StudentT[T, B]) WithPrecision(p special.Precision) *StudentT[T, B] {
	clone := *d
	clone.precision = p
	return &clone
}

// CDF evaluates the cumulative distribution function at x.
func (d *StudentT[T, B]) CDF(x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return CDFTWithPrecision(x, d.Df, d.Loc, d.Scale, d.precision)
}
