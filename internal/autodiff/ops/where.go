package ops

import "github.com/betagrad/betagrad/internal/tensor"

// WhereOp represents a conditional selection: output = where(cond, x, y).
//
// Backward pass:
//
//	grad_x = where(cond, grad_out, 0)  -- gradient flows only where cond is true
//	grad_y = where(cond, 0, grad_out)  -- gradient flows only where cond is false
//
// The condition tensor is boolean and receives no gradient.
type WhereOp struct {
	condition *tensor.RawTensor // bool tensor
	x         *tensor.RawTensor // "true" branch values
	y         *tensor.RawTensor // "false" branch values
	output    *tensor.RawTensor
}

// NewWhereOp creates a new WhereOp.
func NewWhereOp(condition, x, y, output *tensor.RawTensor) *WhereOp {
	return &WhereOp{
		condition: condition,
		x:         x,
		y:         y,
		output:    output,
	}
}

// Backward computes gradients for the two value branches.
func (op *WhereOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	zeros := zerosLike(outputGrad)

	gradX := backend.Where(op.condition, outputGrad, zeros)
	gradX = reduceBroadcast(gradX, op.x.Shape(), backend)

	gradY := backend.Where(op.condition, zeros, outputGrad)
	gradY = reduceBroadcast(gradY, op.y.Shape(), backend)

	return []*tensor.RawTensor{gradX, gradY}
}

// Inputs returns the input tensors [x, y]; the condition has no gradient.
func (op *WhereOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.x, op.y}
}

// Output returns the output tensor.
func (op *WhereOp) Output() *tensor.RawTensor {
	return op.output
}
