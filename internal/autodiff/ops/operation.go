// Package ops defines the differentiable operations recorded on the
// gradient tape.
//
// Each operation stores its raw input and output tensors during the forward
// pass and computes input gradients during the backward pass:
//   - AddOp/SubOp/MulOp/DivOp: element-wise arithmetic with broadcasting
//   - AddScalarOp/SubScalarOp/MulScalarOp/DivScalarOp: scalar arithmetic
//   - ExpOp, LogOp, SqrtOp, LgammaOp: unary math
//   - ClampOp: interval clipping (zero gradient outside the interval)
//   - WhereOp: conditional selection (no gradient for the condition)
//   - BetaincOp: regularized incomplete beta (analytic d/dx, finite
//     differences for d/da and d/db)
package ops

import "github.com/betagrad/betagrad/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
// Each operation records its inputs and output during the forward pass,
// and computes input gradients during the backward pass.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns a slice of gradients corresponding to each input tensor; a
	// nil entry means no gradient flows to that input.
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}
