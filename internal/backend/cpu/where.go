package cpu

import (
	"fmt"

	"github.com/betagrad/betagrad/internal/tensor"
)

// Where performs conditional element selection: out[i] = x[i] if
// condition[i] else y[i], over the broadcast of all three arguments.
func (cpu *CPUBackend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	if condition.DType() != tensor.Bool {
		panic(fmt.Sprintf("where: condition must be bool, got %s", condition.DType()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: x and y must have same dtype, got %s and %s",
			x.DType(), y.DType()))
	}

	outShape, err := tensor.BroadcastShapes3(condition.Shape(), x.Shape(), y.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("where: failed to create result tensor: %v", err))
	}

	outStrides := outShape.ComputeStrides()
	condStrides := tensor.BroadcastStrides(condition.Shape(), outShape)
	xStrides := tensor.BroadcastStrides(x.Shape(), outShape)
	yStrides := tensor.BroadcastStrides(y.Shape(), outShape)
	cond := condition.AsBool()

	switch x.DType() {
	case tensor.Float32:
		dst, xv, yv := result.AsFloat32(), x.AsFloat32(), y.AsFloat32()
		for i := range dst {
			if cond[tensor.FlatIndex(i, outStrides, condStrides)] {
				dst[i] = xv[tensor.FlatIndex(i, outStrides, xStrides)]
			} else {
				dst[i] = yv[tensor.FlatIndex(i, outStrides, yStrides)]
			}
		}
	case tensor.Float64:
		dst, xv, yv := result.AsFloat64(), x.AsFloat64(), y.AsFloat64()
		for i := range dst {
			if cond[tensor.FlatIndex(i, outStrides, condStrides)] {
				dst[i] = xv[tensor.FlatIndex(i, outStrides, xStrides)]
			} else {
				dst[i] = yv[tensor.FlatIndex(i, outStrides, yStrides)]
			}
		}
	default:
		panic(fmt.Sprintf("where: unsupported dtype %s", x.DType()))
	}

	return result
}
