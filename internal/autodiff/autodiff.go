// Package autodiff implements automatic differentiation using the decorator
// pattern.
//
// AutodiffBackend wraps any Backend implementation and adds gradient
// tracking through a GradientTape:
//   - Decorator pattern: AutodiffBackend[B] wraps any tensor.Backend
//   - GradientTape: records operations during the forward pass
//   - Operation interface: each op implements its own backward pass
//   - Reverse-mode AD: gradients flow backwards through the chain rule
//
// Gradient intent is tracked on the tensors themselves: leaves are marked
// with RequireGrad, and every recorded operation marks its output when any
// input is marked. Operations with expensive backward passes (Betainc)
// consult the marks to skip gradients nobody asked for.
//
// Usage:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//
//	x := tensor.Scalar(0.5, backend).RequireGrad()
//	y := x.Mul(x)
//
//	grads := autodiff.Backward(y, backend)
//	grads[x.Raw()] // dy/dx = 2x = 1.0
package autodiff

import (
	"fmt"

	"github.com/betagrad/betagrad/internal/autodiff/ops"
	"github.com/betagrad/betagrad/internal/special"
	"github.com/betagrad/betagrad/internal/tensor"
)

// AutodiffBackend wraps a Backend and adds automatic differentiation.
// It implements the tensor.Backend interface (and tensor.BetaincBackend
// when the wrapped backend does) and records operations in a GradientTape.
type AutodiffBackend[B tensor.Backend] struct {
	inner B
	tape  *GradientTape
}

// New creates a new AutodiffBackend wrapping the given backend.
func New[B tensor.Backend](backend B) *AutodiffBackend[B] {
	return &AutodiffBackend[B]{
		inner: backend,
		tape:  NewGradientTape(),
	}
}

// Tape returns the gradient tape for manual control: starting and stopping
// recording, clearing between iterations, inspecting recorded operations.
func (b *AutodiffBackend[B]) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped backend for direct access.
func (b *AutodiffBackend[B]) Inner() B {
	return b.inner
}

// Name returns the backend name.
func (b *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Device returns the compute device.
func (b *AutodiffBackend[B]) Device() tensor.Device {
	return b.inner.Device()
}

// markGrad propagates gradient intent: the output requires a gradient when
// any input does.
func markGrad(out *tensor.RawTensor, inputs ...*tensor.RawTensor) {
	for _, in := range inputs {
		if in.RequiresGrad() {
			out.SetRequiresGrad(true)
			return
		}
	}
}

// Add performs element-wise addition and records the operation.
func (b *AutodiffBackend[B]) Add(a, c *tensor.RawTensor) *tensor.RawTensor {
	// Prevent inplace modification that would corrupt the recorded graph:
	// pinning the refcount forces the inner backend off its inplace path.
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Add(a, c)
	markGrad(result, a, c)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewAddOp(a, c, result))
	}

	return result
}

// Sub performs element-wise subtraction and records the operation.
func (b *AutodiffBackend[B]) Sub(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Sub(a, c)
	markGrad(result, a, c)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSubOp(a, c, result))
	}

	return result
}

// Mul performs element-wise multiplication and records the operation.
func (b *AutodiffBackend[B]) Mul(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Mul(a, c)
	markGrad(result, a, c)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMulOp(a, c, result))
	}

	return result
}

// Div performs element-wise division and records the operation.
func (b *AutodiffBackend[B]) Div(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Div(a, c)
	markGrad(result, a, c)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewDivOp(a, c, result))
	}

	return result
}

// AddScalar adds a scalar to each element and records the operation.
func (b *AutodiffBackend[B]) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := b.inner.AddScalar(x, scalar)
	markGrad(result, x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewAddScalarOp(x, result))
	}

	return result
}

// SubScalar subtracts a scalar from each element and records the operation.
func (b *AutodiffBackend[B]) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := b.inner.SubScalar(x, scalar)
	markGrad(result, x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSubScalarOp(x, result))
	}

	return result
}

// MulScalar multiplies each element by a scalar and records the operation.
func (b *AutodiffBackend[B]) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := b.inner.MulScalar(x, scalar)
	markGrad(result, x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMulScalarOp(x, result, scalarValue(scalar)))
	}

	return result
}

// DivScalar divides each element by a scalar and records the operation.
func (b *AutodiffBackend[B]) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := b.inner.DivScalar(x, scalar)
	markGrad(result, x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewDivScalarOp(x, result, scalarValue(scalar)))
	}

	return result
}

// scalarValue widens a scalar operand for the recorded operation.
func scalarValue(scalar any) float64 {
	switch v := scalar.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	default:
		panic(fmt.Sprintf("unsupported scalar type %T", scalar))
	}
}

// Exp computes element-wise exponential and records the operation.
func (b *AutodiffBackend[B]) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Exp(x)
	markGrad(result, x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewExpOp(x, result))
	}

	return result
}

// Log computes element-wise natural logarithm and records the operation.
func (b *AutodiffBackend[B]) Log(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Log(x)
	markGrad(result, x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewLogOp(x, result))
	}

	return result
}

// Sqrt computes element-wise square root and records the operation.
func (b *AutodiffBackend[B]) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Sqrt(x)
	markGrad(result, x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSqrtOp(x, result))
	}

	return result
}

// Lgamma computes element-wise log-gamma and records the operation.
func (b *AutodiffBackend[B]) Lgamma(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Lgamma(x)
	markGrad(result, x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewLgammaOp(x, result))
	}

	return result
}

// Clamp limits every element to [lo, hi] and records the operation.
func (b *AutodiffBackend[B]) Clamp(x *tensor.RawTensor, lo, hi float64) *tensor.RawTensor {
	result := b.inner.Clamp(x, lo, hi)
	markGrad(result, x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewClampOp(x, result, lo, hi))
	}

	return result
}

// Comparison operations pass through unrecorded: their boolean outputs are
// not differentiable, and gradients flow around them via Where.

// Greater returns a > b element-wise.
func (b *AutodiffBackend[B]) Greater(a, c *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.Greater(a, c)
}

// Lower returns a < b element-wise.
func (b *AutodiffBackend[B]) Lower(a, c *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.Lower(a, c)
}

// GreaterEqual returns a >= b element-wise.
func (b *AutodiffBackend[B]) GreaterEqual(a, c *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.GreaterEqual(a, c)
}

// LowerEqual returns a <= b element-wise.
func (b *AutodiffBackend[B]) LowerEqual(a, c *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.LowerEqual(a, c)
}

// Equal returns a == b element-wise.
func (b *AutodiffBackend[B]) Equal(a, c *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.Equal(a, c)
}

// Where performs conditional element selection and records the operation.
func (b *AutodiffBackend[B]) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()
	defer y.ForceNonUnique()()

	result := b.inner.Where(condition, x, y)
	markGrad(result, x, y)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewWhereOp(condition, x, y, result))
	}

	return result
}

// Betainc evaluates the regularized incomplete beta function and records
// the operation. The wrapped backend must implement tensor.BetaincBackend.
func (b *AutodiffBackend[B]) Betainc(a, c, x *tensor.RawTensor, epsilon float64, minIters, maxIters int) *tensor.RawTensor {
	inner, ok := any(b.inner).(tensor.BetaincBackend)
	if !ok {
		panic(fmt.Sprintf("betainc: backend %s does not implement it", b.inner.Name()))
	}

	result := inner.Betainc(a, c, x, epsilon, minIters, maxIters)
	markGrad(result, a, c, x)

	if b.tape.IsRecording() {
		p := special.Precision{Epsilon: epsilon, MinIters: minIters, MaxIters: maxIters}
		b.tape.Record(ops.NewBetaincOp(a, c, x, result, p))
	}

	return result
}
