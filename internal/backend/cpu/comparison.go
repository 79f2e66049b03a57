package cpu

import (
	"fmt"

	"github.com/betagrad/betagrad/internal/tensor"
)

// Comparison operations - return bool tensors.

// Greater returns a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("greater", a, b,
		func(x, y float32) bool { return x > y },
		func(x, y float64) bool { return x > y })
}

// Lower returns a < b element-wise.
func (cpu *CPUBackend) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("lower", a, b,
		func(x, y float32) bool { return x < y },
		func(x, y float64) bool { return x < y })
}

// GreaterEqual returns a >= b element-wise.
func (cpu *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("greaterEqual", a, b,
		func(x, y float32) bool { return x >= y },
		func(x, y float64) bool { return x >= y })
}

// LowerEqual returns a <= b element-wise.
func (cpu *CPUBackend) LowerEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("lowerEqual", a, b,
		func(x, y float32) bool { return x <= y },
		func(x, y float64) bool { return x <= y })
}

// Equal returns a == b element-wise. NaN compares unequal to everything,
// including itself.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare("equal", a, b,
		func(x, y float32) bool { return x == y },
		func(x, y float64) bool { return x == y })
}

// compare evaluates a predicate over the broadcast of a and b into a Bool
// tensor.
func (cpu *CPUBackend) compare(name string, a, b *tensor.RawTensor,
	cmp32 func(x, y float32) bool, cmp64 func(x, y float64) bool,
) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	dst := result.AsBool()

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		switch a.DType() {
		case tensor.Float32:
			av, bv := a.AsFloat32(), b.AsFloat32()
			for i := range dst {
				dst[i] = cmp32(av[i], bv[i])
			}
		case tensor.Float64:
			av, bv := a.AsFloat64(), b.AsFloat64()
			for i := range dst {
				dst[i] = cmp64(av[i], bv[i])
			}
		default:
			panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
		}
		return result
	}

	outStrides := outShape.ComputeStrides()
	aStrides := tensor.BroadcastStrides(a.Shape(), outShape)
	bStrides := tensor.BroadcastStrides(b.Shape(), outShape)

	switch a.DType() {
	case tensor.Float32:
		av, bv := a.AsFloat32(), b.AsFloat32()
		for i := range dst {
			dst[i] = cmp32(av[tensor.FlatIndex(i, outStrides, aStrides)], bv[tensor.FlatIndex(i, outStrides, bStrides)])
		}
	case tensor.Float64:
		av, bv := a.AsFloat64(), b.AsFloat64()
		for i := range dst {
			dst[i] = cmp64(av[tensor.FlatIndex(i, outStrides, aStrides)], bv[tensor.FlatIndex(i, outStrides, bStrides)])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}
