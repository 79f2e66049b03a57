package tensor

import (
	"strings"
	"testing"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float32, "float32"},
		{Float64, "float64"},
		{Bool, "bool"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("%s.String() = %q, want %q", tt.dtype, got, tt.str)
		}
	}
}

func TestInferDataType(t *testing.T) {
	if dt := inferDataType(float32(0)); dt != Float32 {
		t.Errorf("inferDataType(float32) = %v, want Float32", dt)
	}
	if dt := inferDataType(float64(0)); dt != Float64 {
		t.Errorf("inferDataType(float64) = %v, want Float64", dt)
	}
	if dt := inferDataType(false); dt != Bool {
		t.Errorf("inferDataType(bool) = %v, want Bool", dt)
	}
}

// Tensor Tests

func TestFromSlice(t *testing.T) {
	backend := NewMockBackend()
	tn, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	assertEqualShape(t, Shape{2, 3}, tn.Shape(), "FromSlice")
	if tn.DType() != Float64 {
		t.Errorf("DType = %v, want Float64", tn.DType())
	}
	if got := tn.At(1, 2); got != 6 {
		t.Errorf("At(1, 2) = %v, want 6", got)
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	backend := NewMockBackend()
	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2}, backend); err == nil {
		t.Error("FromSlice with mismatched length should fail")
	}
}

func TestScalarItem(t *testing.T) {
	backend := NewMockBackend()
	s := Scalar(0.5, backend)

	assertEqualShape(t, Shape{}, s.Shape(), "Scalar")
	if got := s.Item(); got != 0.5 {
		t.Errorf("Item() = %v, want 0.5", got)
	}
}

func TestItemPanicsOnMultiElement(t *testing.T) {
	backend := NewMockBackend()
	tn, _ := FromSlice([]float64{1, 2}, Shape{2}, backend)

	defer func() {
		if recover() == nil {
			t.Error("Item() on a 2-element tensor should panic")
		}
	}()
	tn.Item()
}

func TestAtSet(t *testing.T) {
	backend := NewMockBackend()
	tn := Zeros[float64](Shape{2, 2}, backend)

	tn.Set(3.5, 1, 0)
	if got := tn.At(1, 0); got != 3.5 {
		t.Errorf("At(1, 0) = %v, want 3.5", got)
	}
	if got := tn.At(0, 0); got != 0 {
		t.Errorf("At(0, 0) = %v, want 0", got)
	}
}

func TestAtOutOfBoundsPanics(t *testing.T) {
	backend := NewMockBackend()
	tn := Zeros[float64](Shape{2, 2}, backend)

	defer func() {
		if recover() == nil {
			t.Error("At with an out-of-bounds index should panic")
		}
	}()
	tn.At(2, 0)
}

func TestRequireGradDetach(t *testing.T) {
	backend := NewMockBackend()
	x := Scalar(1.0, backend)

	if x.RequiresGrad() {
		t.Error("fresh tensor should not require grad")
	}

	x.RequireGrad()
	if !x.RequiresGrad() {
		t.Error("RequireGrad() should mark the tensor")
	}

	d := x.Detach()
	if d.RequiresGrad() {
		t.Error("Detach() should clear requiresGrad")
	}
	if d.Item() != 1.0 {
		t.Error("Detach() should share the data")
	}
}

func TestTensorString(t *testing.T) {
	backend := NewMockBackend()
	tn := Zeros[float64](Shape{2, 3}, backend)

	s := tn.String()
	if !strings.Contains(s, "float64") || !strings.Contains(s, "2 3") {
		t.Errorf("String() = %q, want dtype and shape mentioned", s)
	}
}

// Creation Tests

func TestZerosOnesFull(t *testing.T) {
	backend := NewMockBackend()

	z := Zeros[float64](Shape{3}, backend)
	for i, v := range z.Data() {
		if v != 0 {
			t.Errorf("Zeros[%d] = %v, want 0", i, v)
		}
	}

	o := Ones[float64](Shape{3}, backend)
	for i, v := range o.Data() {
		if v != 1 {
			t.Errorf("Ones[%d] = %v, want 1", i, v)
		}
	}

	f := Full(Shape{2, 2}, 0.25, backend)
	for i, v := range f.Data() {
		if v != 0.25 {
			t.Errorf("Full[%d] = %v, want 0.25", i, v)
		}
	}
}

func TestLinspace(t *testing.T) {
	backend := NewMockBackend()

	tn := Linspace(0.0, 1.0, 5, backend)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i, v := range tn.Data() {
		if v != want[i] {
			t.Errorf("Linspace[%d] = %v, want %v", i, v, want[i])
		}
	}

	single := Linspace(2.0, 5.0, 1, backend)
	if single.Item() != 2.0 {
		t.Errorf("Linspace(n=1) = %v, want 2", single.Item())
	}
}
