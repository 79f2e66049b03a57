package cpu

import (
	"math"
	"testing"

	"github.com/betagrad/betagrad/internal/tensor"
)

const epsilon = 1e-12

func rawFloat64(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	if err != nil {
		t.Fatalf("Failed to create tensor: %v", err)
	}
	copy(raw.AsFloat64(), data)
	return raw
}

func rawFloat32(t *testing.T, data []float32, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("Failed to create tensor: %v", err)
	}
	copy(raw.AsFloat32(), data)
	return raw
}

func TestBinaryOps(t *testing.T) {
	backend := New()

	tests := []struct {
		name     string
		op       func(a, b *tensor.RawTensor) *tensor.RawTensor
		a, b     []float64
		aShape   tensor.Shape
		bShape   tensor.Shape
		want     []float64
		outShape tensor.Shape
	}{
		{
			name: "add same shape",
			op:   backend.Add,
			a:    []float64{1, 2, 3, 4}, aShape: tensor.Shape{4},
			b: []float64{10, 20, 30, 40}, bShape: tensor.Shape{4},
			want: []float64{11, 22, 33, 44}, outShape: tensor.Shape{4},
		},
		{
			name: "sub same shape",
			op:   backend.Sub,
			a:    []float64{5, 5, 5}, aShape: tensor.Shape{3},
			b: []float64{1, 2, 3}, bShape: tensor.Shape{3},
			want: []float64{4, 3, 2}, outShape: tensor.Shape{3},
		},
		{
			name: "mul broadcast row",
			op:   backend.Mul,
			a:    []float64{1, 2, 3, 4, 5, 6}, aShape: tensor.Shape{2, 3},
			b: []float64{10, 100, 1000}, bShape: tensor.Shape{3},
			want: []float64{10, 200, 3000, 40, 500, 6000}, outShape: tensor.Shape{2, 3},
		},
		{
			name: "div broadcast column",
			op:   backend.Div,
			a:    []float64{2, 4, 6, 8}, aShape: tensor.Shape{2, 2},
			b: []float64{2, 4}, bShape: tensor.Shape{2, 1},
			want: []float64{1, 2, 1.5, 2}, outShape: tensor.Shape{2, 2},
		},
		{
			name: "add scalar operand",
			op:   backend.Add,
			a:    []float64{1, 2, 3}, aShape: tensor.Shape{3},
			b: []float64{100}, bShape: tensor.Shape{},
			want: []float64{101, 102, 103}, outShape: tensor.Shape{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := rawFloat64(t, tt.a, tt.aShape)
			b := rawFloat64(t, tt.b, tt.bShape)

			result := tt.op(a, b)

			if !result.Shape().Equal(tt.outShape) {
				t.Fatalf("Expected shape %v, got %v", tt.outShape, result.Shape())
			}
			out := result.AsFloat64()
			for i, want := range tt.want {
				if math.Abs(out[i]-want) > epsilon {
					t.Errorf("element %d = %v, expected %v", i, out[i], want)
				}
			}
		})
	}
}

func TestAddInplaceWhenUnique(t *testing.T) {
	backend := New()

	a := rawFloat64(t, []float64{1, 2, 3}, tensor.Shape{3})
	b := rawFloat64(t, []float64{10, 10, 10}, tensor.Shape{3})

	result := backend.Add(a, b)
	if result != a {
		t.Error("expected unique same-shape add to reuse the left operand")
	}

	c := rawFloat64(t, []float64{1, 2, 3}, tensor.Shape{3})
	release := c.ForceNonUnique()
	defer release()

	result = backend.Add(c, b)
	if result == c {
		t.Error("expected non-unique operand to produce a fresh result tensor")
	}
	if got := c.AsFloat64(); got[0] != 1 {
		t.Errorf("non-unique operand was mutated: %v", got)
	}
}

func TestBinaryOpsFloat32(t *testing.T) {
	backend := New()

	a := rawFloat32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := rawFloat32(t, []float32{0.5, 0.5}, tensor.Shape{2})

	result := backend.Mul(a, b)
	want := []float32{0.5, 1, 1.5, 2}
	for i, v := range result.AsFloat32() {
		if v != want[i] {
			t.Errorf("element %d = %v, expected %v", i, v, want[i])
		}
	}
}

func TestBinaryOpIncompatibleShapesPanics(t *testing.T) {
	backend := New()

	a := rawFloat64(t, []float64{1, 2, 3}, tensor.Shape{3})
	b := rawFloat64(t, []float64{1, 2}, tensor.Shape{2})

	defer func() {
		if recover() == nil {
			t.Error("expected panic for incompatible shapes")
		}
	}()
	backend.Add(a, b)
}
