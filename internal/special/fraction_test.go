package special

import (
	"math"
	"testing"
)

func TestBetaContinuedFraction_Converges(t *testing.T) {
	p := DefaultPrecision()

	for _, a := range []float64{0.5, 1, 2, 10} {
		for _, b := range []float64{0.5, 1, 3, 8} {
			// Stay below the symmetry threshold, where the fraction
			// converges fastest; the forward routine guarantees this.
			xmax := (a + 1) / (a + b + 2)
			for _, x := range []float64{xmax * 0.25, xmax * 0.5, xmax * 0.9} {
				h, iters := betaContinuedFraction(a, b, x, p)
				if math.IsNaN(h) || math.IsInf(h, 0) {
					t.Fatalf("non-finite fraction at (%v,%v,%v): %v", a, b, x, h)
				}
				if iters < p.MinIters {
					t.Errorf("declared convergence after %d iters at (%v,%v,%v), below minimum %d", iters, a, b, x, p.MinIters)
				}
				if iters >= p.MaxIters {
					t.Errorf("hit iteration cap at (%v,%v,%v)", a, b, x)
				}
			}
		}
	}
}

// An unattainable tolerance must drive the loop to the cap and still hand
// back a finite approximant.
func TestBetaContinuedFraction_IterationCap(t *testing.T) {
	p := Precision{Epsilon: 0, MinIters: 3, MaxIters: 25}

	h, iters := betaContinuedFraction(2, 3, 0.3, p)
	if iters != p.MaxIters {
		t.Errorf("iters = %d, want cap %d", iters, p.MaxIters)
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		t.Errorf("approximant at cap is non-finite: %v", h)
	}
}

func TestBetaContinuedFraction_MinItersEnforced(t *testing.T) {
	// A loose tolerance would otherwise stop after the first iteration.
	p := Precision{Epsilon: 1e30, MinIters: 7, MaxIters: 500}

	_, iters := betaContinuedFraction(2, 3, 0.3, p)
	if iters != p.MinIters {
		t.Errorf("iters = %d, want exactly MinIters %d for a loose tolerance", iters, p.MinIters)
	}
}

func TestPrecisionWithDefaults(t *testing.T) {
	def := DefaultPrecision()

	got := Precision{}.withDefaults()
	if got != def {
		t.Errorf("zero value filled to %+v, want %+v", got, def)
	}

	partial := Precision{Epsilon: 1e-12}.withDefaults()
	if partial.Epsilon != 1e-12 || partial.MinIters != def.MinIters || partial.MaxIters != def.MaxIters {
		t.Errorf("partial fill = %+v", partial)
	}
}
