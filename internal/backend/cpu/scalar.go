package cpu

import (
	"fmt"

	"github.com/betagrad/betagrad/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.
//
// The scalar may be any Go numeric type; it is coerced to the tensor's
// dtype before the kernel runs.

// scalarToFloat64 coerces a scalar of any supported numeric type.
func scalarToFloat64(scalar any) float64 {
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

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("addScalar: failed to create result tensor: %v", err))
	}

	s := scalarToFloat64(scalar)
	switch x.DType() {
	case tensor.Float32:
		src, dst, sv := x.AsFloat32(), result.AsFloat32(), float32(s)
		for i, v := range src {
			dst[i] = v + sv
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i, v := range src {
			dst[i] = v + s
		}
	default:
		panic(fmt.Sprintf("addScalar: unsupported dtype %v", x.DType()))
	}

	return result
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("subScalar: failed to create result tensor: %v", err))
	}

	s := scalarToFloat64(scalar)
	switch x.DType() {
	case tensor.Float32:
		src, dst, sv := x.AsFloat32(), result.AsFloat32(), float32(s)
		for i, v := range src {
			dst[i] = v - sv
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i, v := range src {
			dst[i] = v - s
		}
	default:
		panic(fmt.Sprintf("subScalar: unsupported dtype %v", x.DType()))
	}

	return result
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("mulScalar: failed to create result tensor: %v", err))
	}

	s := scalarToFloat64(scalar)
	switch x.DType() {
	case tensor.Float32:
		src, dst, sv := x.AsFloat32(), result.AsFloat32(), float32(s)
		for i, v := range src {
			dst[i] = v * sv
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i, v := range src {
			dst[i] = v * s
		}
	default:
		panic(fmt.Sprintf("mulScalar: unsupported dtype %v", x.DType()))
	}

	return result
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("divScalar: failed to create result tensor: %v", err))
	}

	s := scalarToFloat64(scalar)
	switch x.DType() {
	case tensor.Float32:
		src, dst, sv := x.AsFloat32(), result.AsFloat32(), float32(s)
		for i, v := range src {
			dst[i] = v / sv
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i, v := range src {
			dst[i] = v / s
		}
	default:
		panic(fmt.Sprintf("divScalar: unsupported dtype %v", x.DType()))
	}

	return result
}
