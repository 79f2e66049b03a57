package ops

import (
	"fmt"

	"github.com/betagrad/betagrad/internal/tensor"
)

// ClampOp represents interval clipping: y = min(max(x, lo), hi).
//
// Backward pass: the gradient passes through where the input was inside
// [lo, hi] and is zero where the input was clipped. The boundary itself
// passes the gradient through (subgradient convention).
type ClampOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	lo, hi float64
}

// NewClampOp creates a new ClampOp.
func NewClampOp(input, output *tensor.RawTensor, lo, hi float64) *ClampOp {
	return &ClampOp{
		input:  input,
		output: output,
		lo:     lo,
		hi:     hi,
	}
}

// Backward masks the output gradient to the interior of the interval.
func (op *ClampOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradInput, err := tensor.NewRaw(op.input.Shape(), op.input.DType(), op.input.Device())
	if err != nil {
		panic(fmt.Sprintf("clamp backward: %v", err))
	}

	switch op.input.DType() {
	case tensor.Float32:
		src, og, dst := op.input.AsFloat32(), outputGrad.AsFloat32(), gradInput.AsFloat32()
		lo, hi := float32(op.lo), float32(op.hi)
		for i, v := range src {
			if v >= lo && v <= hi {
				dst[i] = og[i]
			}
		}
	case tensor.Float64:
		src, og, dst := op.input.AsFloat64(), outputGrad.AsFloat64(), gradInput.AsFloat64()
		for i, v := range src {
			if v >= op.lo && v <= op.hi {
				dst[i] = og[i]
			}
		}
	default:
		panic(fmt.Sprintf("clamp backward: unsupported dtype %s", op.input.DType()))
	}

	return []*tensor.RawTensor{gradInput}
}

// Inputs returns the input tensor [x].
func (op *ClampOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the clipped output tensor.
func (op *ClampOp) Output() *tensor.RawTensor {
	return op.output
}
