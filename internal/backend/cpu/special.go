package cpu

import (
	"fmt"

	"github.com/betagrad/betagrad/internal/special"
	"github.com/betagrad/betagrad/internal/tensor"
)

// Betainc evaluates the regularized incomplete beta function I_x(a, b)
// elementwise over the broadcast of its three arguments.
//
// The scalar evaluation always runs in float64; float32 tensors are widened
// per element and the result narrowed back. Out-of-domain elements (a <= 0,
// b <= 0, x outside [0, 1]) and NaN inputs produce NaN in the corresponding
// output element without affecting their neighbours.
func (cpu *CPUBackend) Betainc(a, b, x *tensor.RawTensor, epsilon float64, minIters, maxIters int) *tensor.RawTensor {
	if a.DType() != b.DType() || a.DType() != x.DType() {
		panic(fmt.Sprintf("betainc: mixed dtypes %s/%s/%s", a.DType(), b.DType(), x.DType()))
	}

	outShape, err := tensor.BroadcastShapes3(a.Shape(), b.Shape(), x.Shape())
	if err != nil {
		panic(fmt.Sprintf("betainc: %v", err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("betainc: failed to create result tensor: %v", err))
	}

	p := special.Precision{Epsilon: epsilon, MinIters: minIters, MaxIters: maxIters}
	outStrides := outShape.ComputeStrides()
	aStrides := tensor.BroadcastStrides(a.Shape(), outShape)
	bStrides := tensor.BroadcastStrides(b.Shape(), outShape)
	xStrides := tensor.BroadcastStrides(x.Shape(), outShape)

	switch a.DType() {
	case tensor.Float32:
		av, bv, xv, dst := a.AsFloat32(), b.AsFloat32(), x.AsFloat32(), result.AsFloat32()
		for i := range dst {
			dst[i] = float32(special.RegIncompleteBeta(
				float64(av[tensor.FlatIndex(i, outStrides, aStrides)]),
				float64(bv[tensor.FlatIndex(i, outStrides, bStrides)]),
				float64(xv[tensor.FlatIndex(i, outStrides, xStrides)]),
				p))
		}
	case tensor.Float64:
		av, bv, xv, dst := a.AsFloat64(), b.AsFloat64(), x.AsFloat64(), result.AsFloat64()
		for i := range dst {
			dst[i] = special.RegIncompleteBeta(
				av[tensor.FlatIndex(i, outStrides, aStrides)],
				bv[tensor.FlatIndex(i, outStrides, bStrides)],
				xv[tensor.FlatIndex(i, outStrides, xStrides)],
				p)
		}
	default:
		panic(fmt.Sprintf("betainc: unsupported dtype %s (only float32/float64 supported)", a.DType()))
	}

	return result
}
