package ops

import (
	"fmt"

	"github.com/betagrad/betagrad/internal/special"
	"github.com/betagrad/betagrad/internal/tensor"
)

// LgammaOp represents the log-gamma operation: y = ln|Γ(x)|.
//
// Backward pass:
//   - d(lgamma(x))/dx = psi(x) (the digamma function), so
//     grad_input = outputGrad * psi(x)
type LgammaOp struct {
	input  *tensor.RawTensor // x
	output *tensor.RawTensor // lgamma(x)
}

// NewLgammaOp creates a new LgammaOp.
func NewLgammaOp(input, output *tensor.RawTensor) *LgammaOp {
	return &LgammaOp{
		input:  input,
		output: output,
	}
}

// Backward computes the input gradient for lgamma via the digamma function.
func (op *LgammaOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	psi, err := tensor.NewRaw(op.input.Shape(), op.input.DType(), op.input.Device())
	if err != nil {
		panic(fmt.Sprintf("lgamma backward: %v", err))
	}

	switch op.input.DType() {
	case tensor.Float32:
		src, dst := op.input.AsFloat32(), psi.AsFloat32()
		for i, v := range src {
			dst[i] = float32(special.Digamma(float64(v)))
		}
	case tensor.Float64:
		src, dst := op.input.AsFloat64(), psi.AsFloat64()
		for i, v := range src {
			dst[i] = special.Digamma(v)
		}
	default:
		panic(fmt.Sprintf("lgamma backward: unsupported dtype %s", op.input.DType()))
	}

	gradInput := backend.Mul(outputGrad, psi)
	return []*tensor.RawTensor{gradInput}
}

// Inputs returns the input tensor [x].
func (op *LgammaOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor lgamma(x).
func (op *LgammaOp) Output() *tensor.RawTensor {
	return op.output
}
