package tensor

import "testing"

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{4}, 4},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate(Shape{2, 3}) = %v, want nil", err)
	}
	if err := (Shape{}).Validate(); err != nil {
		t.Errorf("Validate(Shape{}) = %v, want nil", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("Validate(Shape{2, 0}) = nil, want error")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("Validate(Shape{-1}) = nil, want error")
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("equal shapes should compare equal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("different shapes should not compare equal")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("shapes of different rank should not compare equal")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{5}, []int{1}},
		{Shape{2, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.want) {
			t.Errorf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.want)
				break
			}
		}
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b      Shape
		want      Shape
		broadcast bool
	}{
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true},
		{Shape{5}, Shape{2, 5}, Shape{2, 5}, true},
		{Shape{}, Shape{2, 3}, Shape{2, 3}, true},
		{Shape{2, 1, 4}, Shape{3, 1}, Shape{2, 3, 4}, true},
	}

	for _, tt := range tests {
		got, broadcast, err := BroadcastShapes(tt.a, tt.b)
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v) error: %v", tt.a, tt.b, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("BroadcastShapes(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if broadcast != tt.broadcast {
			t.Errorf("BroadcastShapes(%v, %v) broadcast = %v, want %v", tt.a, tt.b, broadcast, tt.broadcast)
		}
	}
}

func TestBroadcastShapesIncompatible(t *testing.T) {
	if _, _, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5}); err == nil {
		t.Error("BroadcastShapes(3x4, 3x5) should fail")
	}
}

func TestBroadcastShapes3(t *testing.T) {
	got, err := BroadcastShapes3(Shape{2, 1}, Shape{}, Shape{3})
	if err != nil {
		t.Fatalf("BroadcastShapes3 error: %v", err)
	}
	if !got.Equal(Shape{2, 3}) {
		t.Errorf("BroadcastShapes3 = %v, want [2 3]", got)
	}

	if _, err := BroadcastShapes3(Shape{2}, Shape{3}, Shape{}); err == nil {
		t.Error("BroadcastShapes3(2, 3, scalar) should fail")
	}
}

func TestBroadcastStrides(t *testing.T) {
	tests := []struct {
		in, out Shape
		want    []int
	}{
		{Shape{2, 3}, Shape{2, 3}, []int{3, 1}},
		{Shape{3}, Shape{2, 3}, []int{0, 1}},
		{Shape{2, 1}, Shape{2, 3}, []int{1, 0}},
		{Shape{}, Shape{2, 3}, []int{0, 0}},
	}

	for _, tt := range tests {
		got := BroadcastStrides(tt.in, tt.out)
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("BroadcastStrides(%v, %v) = %v, want %v", tt.in, tt.out, got, tt.want)
				break
			}
		}
	}
}

func TestFlatIndex(t *testing.T) {
	// Reading a (3) row vector broadcast over a (2, 3) output: the source
	// index depends only on the column.
	outShape := Shape{2, 3}
	outStrides := outShape.ComputeStrides()
	inStrides := BroadcastStrides(Shape{3}, outShape)

	for outIdx := 0; outIdx < 6; outIdx++ {
		want := outIdx % 3
		if got := FlatIndex(outIdx, outStrides, inStrides); got != want {
			t.Errorf("FlatIndex(%d) = %d, want %d", outIdx, got, want)
		}
	}
}
