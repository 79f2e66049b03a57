package cpu

import (
	"math"
	"testing"

	"github.com/betagrad/betagrad/internal/tensor"
)

func TestExp(t *testing.T) {
	backend := New()

	input := []float64{-3, -1, 0, 1, 2.5}
	x := rawFloat64(t, input, tensor.Shape{5})

	out := backend.Exp(x).AsFloat64()
	for i, v := range input {
		if want := math.Exp(v); math.Abs(out[i]-want) > epsilon {
			t.Errorf("exp(%v) = %v, expected %v", v, out[i], want)
		}
	}
}

func TestLog(t *testing.T) {
	backend := New()

	input := []float64{0.1, 1, math.E, 10}
	x := rawFloat64(t, input, tensor.Shape{4})

	out := backend.Log(x).AsFloat64()
	for i, v := range input {
		if want := math.Log(v); math.Abs(out[i]-want) > epsilon {
			t.Errorf("log(%v) = %v, expected %v", v, out[i], want)
		}
	}

	// Out-of-domain elements degrade per IEEE rules instead of panicking.
	bad := rawFloat64(t, []float64{-1, 0, 2}, tensor.Shape{3})
	out = backend.Log(bad).AsFloat64()
	if !math.IsNaN(out[0]) {
		t.Errorf("log(-1) = %v, expected NaN", out[0])
	}
	if !math.IsInf(out[1], -1) {
		t.Errorf("log(0) = %v, expected -Inf", out[1])
	}
	if math.Abs(out[2]-math.Ln2) > epsilon {
		t.Errorf("log(2) = %v, expected %v", out[2], math.Ln2)
	}
}

func TestSqrt(t *testing.T) {
	backend := New()

	x := rawFloat64(t, []float64{0, 4, 2, -1}, tensor.Shape{4})
	out := backend.Sqrt(x).AsFloat64()

	if out[0] != 0 || out[1] != 2 {
		t.Errorf("sqrt: got %v", out[:2])
	}
	if math.Abs(out[2]-math.Sqrt2) > epsilon {
		t.Errorf("sqrt(2) = %v", out[2])
	}
	if !math.IsNaN(out[3]) {
		t.Errorf("sqrt(-1) = %v, expected NaN", out[3])
	}
}

func TestLgamma(t *testing.T) {
	backend := New()

	// Γ(1) = Γ(2) = 1, Γ(5) = 24, Γ(0.5) = sqrt(pi).
	x := rawFloat64(t, []float64{1, 2, 5, 0.5}, tensor.Shape{4})
	out := backend.Lgamma(x).AsFloat64()

	want := []float64{0, 0, math.Log(24), 0.5 * math.Log(math.Pi)}
	for i := range want {
		if math.Abs(out[i]-want[i]) > epsilon {
			t.Errorf("lgamma element %d = %v, expected %v", i, out[i], want[i])
		}
	}
}

func TestClamp(t *testing.T) {
	backend := New()

	x := rawFloat64(t, []float64{-0.5, 0, 0.5, 1, 1.5, math.NaN()}, tensor.Shape{6})
	out := backend.Clamp(x, 0, 1).AsFloat64()

	want := []float64{0, 0, 0.5, 1, 1}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("clamp element %d = %v, expected %v", i, out[i], want[i])
		}
	}
	if !math.IsNaN(out[5]) {
		t.Errorf("clamp(NaN) = %v, expected NaN to pass through", out[5])
	}
}

func TestClampFloat32(t *testing.T) {
	backend := New()

	x := rawFloat32(t, []float32{-2, 0.25, 3}, tensor.Shape{3})
	out := backend.Clamp(x, 0, 1).AsFloat32()

	want := []float32{0, 0.25, 1}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("clamp element %d = %v, expected %v", i, out[i], want[i])
		}
	}
}
