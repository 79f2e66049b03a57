package tensor

import (
	"fmt"
	"math"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing this package without
// importing a real backend (which would create an import cycle). It
// implements all operations naively over float64 tensors.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition with broadcasting.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (m *MockBackend) Div(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x / y })
}

// AddScalar adds a scalar to each element.
func (m *MockBackend) AddScalar(x *RawTensor, scalar any) *RawTensor {
	s := mockScalar(scalar)
	return m.unary(x, func(v float64) float64 { return v + s })
}

// SubScalar subtracts a scalar from each element.
func (m *MockBackend) SubScalar(x *RawTensor, scalar any) *RawTensor {
	s := mockScalar(scalar)
	return m.unary(x, func(v float64) float64 { return v - s })
}

// MulScalar multiplies each element by a scalar.
func (m *MockBackend) MulScalar(x *RawTensor, scalar any) *RawTensor {
	s := mockScalar(scalar)
	return m.unary(x, func(v float64) float64 { return v * s })
}

// DivScalar divides each element by a scalar.
func (m *MockBackend) DivScalar(x *RawTensor, scalar any) *RawTensor {
	s := mockScalar(scalar)
	return m.unary(x, func(v float64) float64 { return v / s })
}

// Exp computes e^x element-wise.
func (m *MockBackend) Exp(x *RawTensor) *RawTensor {
	return m.unary(x, math.Exp)
}

// Log computes the natural logarithm element-wise.
func (m *MockBackend) Log(x *RawTensor) *RawTensor {
	return m.unary(x, math.Log)
}

// Sqrt computes the square root element-wise.
func (m *MockBackend) Sqrt(x *RawTensor) *RawTensor {
	return m.unary(x, math.Sqrt)
}

// Lgamma computes the log-gamma function element-wise.
func (m *MockBackend) Lgamma(x *RawTensor) *RawTensor {
	return m.unary(x, func(v float64) float64 {
		lg, _ := math.Lgamma(v)
		return lg
	})
}

// Clamp limits every element to [lo, hi].
func (m *MockBackend) Clamp(x *RawTensor, lo, hi float64) *RawTensor {
	return m.unary(x, func(v float64) float64 {
		return math.Min(math.Max(v, lo), hi)
	})
}

// Greater returns a Bool tensor with a > b.
func (m *MockBackend) Greater(a, b *RawTensor) *RawTensor {
	return m.compare(a, b, func(x, y float64) bool { return x > y })
}

// Lower returns a Bool tensor with a < b.
func (m *MockBackend) Lower(a, b *RawTensor) *RawTensor {
	return m.compare(a, b, func(x, y float64) bool { return x < y })
}

// GreaterEqual returns a Bool tensor with a >= b.
func (m *MockBackend) GreaterEqual(a, b *RawTensor) *RawTensor {
	return m.compare(a, b, func(x, y float64) bool { return x >= y })
}

// LowerEqual returns a Bool tensor with a <= b.
func (m *MockBackend) LowerEqual(a, b *RawTensor) *RawTensor {
	return m.compare(a, b, func(x, y float64) bool { return x <= y })
}

// Equal returns a Bool tensor with a == b.
func (m *MockBackend) Equal(a, b *RawTensor) *RawTensor {
	return m.compare(a, b, func(x, y float64) bool { return x == y })
}

// Where selects x where condition is true, y otherwise.
func (m *MockBackend) Where(condition, x, y *RawTensor) *RawTensor {
	outShape, err := BroadcastShapes3(condition.Shape(), x.Shape(), y.Shape())
	if err != nil {
		panic(err)
	}
	result := mustNewRaw(outShape, x.DType())

	outStrides := outShape.ComputeStrides()
	condStrides := BroadcastStrides(condition.Shape(), outShape)
	xStrides := BroadcastStrides(x.Shape(), outShape)
	yStrides := BroadcastStrides(y.Shape(), outShape)

	cond := condition.AsBool()
	xData, yData, out := x.AsFloat64(), y.AsFloat64(), result.AsFloat64()
	for i := range out {
		if cond[FlatIndex(i, outStrides, condStrides)] {
			out[i] = xData[FlatIndex(i, outStrides, xStrides)]
		} else {
			out[i] = yData[FlatIndex(i, outStrides, yStrides)]
		}
	}
	return result
}

func (m *MockBackend) elementWise(a, b *RawTensor, op func(float64, float64) float64) *RawTensor {
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}
	result := mustNewRaw(outShape, a.DType())

	outStrides := outShape.ComputeStrides()
	aStrides := BroadcastStrides(a.Shape(), outShape)
	bStrides := BroadcastStrides(b.Shape(), outShape)

	aData, bData, out := a.AsFloat64(), b.AsFloat64(), result.AsFloat64()
	for i := range out {
		out[i] = op(aData[FlatIndex(i, outStrides, aStrides)], bData[FlatIndex(i, outStrides, bStrides)])
	}
	return result
}

func (m *MockBackend) unary(x *RawTensor, op func(float64) float64) *RawTensor {
	result := mustNewRaw(x.Shape(), x.DType())
	in, out := x.AsFloat64(), result.AsFloat64()
	for i := range out {
		out[i] = op(in[i])
	}
	return result
}

func (m *MockBackend) compare(a, b *RawTensor, op func(float64, float64) bool) *RawTensor {
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}
	result := mustNewRaw(outShape, Bool)

	outStrides := outShape.ComputeStrides()
	aStrides := BroadcastStrides(a.Shape(), outShape)
	bStrides := BroadcastStrides(b.Shape(), outShape)

	aData, bData, out := a.AsFloat64(), b.AsFloat64(), result.AsBool()
	for i := range out {
		out[i] = op(aData[FlatIndex(i, outStrides, aStrides)], bData[FlatIndex(i, outStrides, bStrides)])
	}
	return result
}

func mustNewRaw(shape Shape, dtype DataType) *RawTensor {
	raw, err := NewRaw(shape, dtype, CPU)
	if err != nil {
		panic(fmt.Sprintf("mock backend: %v", err))
	}
	return raw
}

func mockScalar(scalar any) float64 {
	switch s := scalar.(type) {
	case float64:
		return s
	case float32:
		return float64(s)
	case int:
		return float64(s)
	default:
		panic(fmt.Sprintf("mock backend: unsupported scalar type %T", scalar))
	}
}
