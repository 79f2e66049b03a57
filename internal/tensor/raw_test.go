package tensor

import "testing"

func TestRawTensorAsFloat64(t *testing.T) {
	raw, _ := NewRaw(Shape{3, 2}, Float64, CPU)
	data := raw.AsFloat64()

	if len(data) != 6 {
		t.Errorf("AsFloat64 length = %d, want 6", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 42
	if raw.AsFloat64()[0] != 42 {
		t.Error("AsFloat64 should return zero-copy slice")
	}
}

func TestRawTensorAsBool(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Bool, CPU)
	data := raw.AsBool()

	if len(data) != 4 {
		t.Errorf("AsBool length = %d, want 4", len(data))
	}

	data[0] = true
	if raw.AsBool()[0] != true {
		t.Error("AsBool should return zero-copy slice")
	}
}

func TestRawTensorDTypeMismatchPanics(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float64, CPU)

	defer func() {
		if recover() == nil {
			t.Error("AsFloat32 on a float64 tensor should panic")
		}
	}()
	raw.AsFloat32()
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, 0}, Float64, CPU); err == nil {
		t.Error("NewRaw with a zero dimension should fail")
	}
}

func TestNewRawScalar(t *testing.T) {
	raw, err := NewRaw(Shape{}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw(scalar) failed: %v", err)
	}
	if raw.NumElements() != 1 {
		t.Errorf("scalar NumElements = %d, want 1", raw.NumElements())
	}
}

func TestRawTensorCloneIsShared(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float64, CPU)
	raw.AsFloat64()[0] = 1.0

	clone := raw.Clone()

	// Both should share the buffer
	if clone.AsFloat64()[0] != 1.0 {
		t.Error("Clone should share data initially")
	}

	// Neither should be unique (refCount > 1)
	if raw.IsUnique() || clone.IsUnique() {
		t.Error("After Clone(), neither tensor should be unique")
	}

	clone.Release()
	if !raw.IsUnique() {
		t.Error("After releasing the clone, the original should be unique again")
	}
}

func TestRawTensorForceNonUnique(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float64, CPU)

	if !raw.IsUnique() {
		t.Error("New RawTensor should be unique initially")
	}

	release := raw.ForceNonUnique()
	if raw.IsUnique() {
		t.Error("After ForceNonUnique(), IsUnique() should return false")
	}

	release()
	if !raw.IsUnique() {
		t.Error("After the ForceNonUnique cleanup, the tensor should be unique again")
	}
}

func TestRawTensorWithShape(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float64, CPU)
	raw.AsFloat64()[4] = 7

	view := raw.WithShape(Shape{6})
	if !view.Shape().Equal(Shape{6}) {
		t.Errorf("WithShape shape = %v, want [6]", view.Shape())
	}
	if view.AsFloat64()[4] != 7 {
		t.Error("WithShape should share the underlying data")
	}
}

func TestRawTensorWithShapeIncompatiblePanics(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float64, CPU)

	defer func() {
		if recover() == nil {
			t.Error("WithShape with a different element count should panic")
		}
	}()
	raw.WithShape(Shape{5})
}

func TestRawTensorRequiresGrad(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float64, CPU)

	if raw.RequiresGrad() {
		t.Error("new tensors should not require grad")
	}

	raw.SetRequiresGrad(true)
	if !raw.RequiresGrad() {
		t.Error("SetRequiresGrad(true) should stick")
	}

	// Clones do not inherit the flag; they are views of the data, not new
	// differentiation leaves.
	if raw.Clone().RequiresGrad() {
		t.Error("Clone should not inherit requiresGrad")
	}
}
