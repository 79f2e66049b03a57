package distribution

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/betagrad/betagrad/internal/autodiff"
	"github.com/betagrad/betagrad/internal/backend/cpu"
	"github.com/betagrad/betagrad/internal/special"
	"github.com/betagrad/betagrad/internal/tensor"
)

type adBackend = *autodiff.AutodiffBackend[*cpu.CPUBackend]

func TestCDFTCenterIsExactlyHalf(t *testing.T) {
	backend := cpu.New()

	for _, df := range []float64{1, 2.5, 5, 30} {
		x := tensor.Scalar(0.0, backend)
		d := tensor.Scalar(df, backend)

		got := CDFT(x, d).Item()
		assert.Equal(t, 0.5, got, "CDF at the center must be exactly 0.5 for df=%v", df)
	}
}

func TestCDFTKnownValues(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name  string
		x, df float64
		want  float64
	}{
		{"t(5) at 1", 1, 5, 0.8183912661754381},
		{"t(1) at 1 is cauchy 3/4", 1, 1, 0.75},
		{"t(5) 95th percentile", 2.015048373, 5, 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := tensor.Scalar(tt.x, backend)
			df := tensor.Scalar(tt.df, backend)
			assert.InDelta(t, tt.want, CDFT(x, df).Item(), 1e-9)
		})
	}
}

func TestCDFTAgainstGonum(t *testing.T) {
	backend := cpu.New()

	for _, df := range []float64{1, 2, 5, 10, 50} {
		ref := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
		for _, xv := range []float64{-4, -1.5, -0.3, 0.7, 2, 3.5} {
			x := tensor.Scalar(xv, backend)
			d := tensor.Scalar(df, backend)

			got := CDFT(x, d).Item()
			want := ref.CDF(xv)
			assert.InDeltaf(t, want, got, 1e-10, "CDF(%v; df=%v)", xv, df)
		}
	}
}

func TestCDFTSymmetry(t *testing.T) {
	backend := cpu.New()

	for _, xv := range []float64{0.5, 1, 2.015} {
		d := tensor.Scalar(5.0, backend)

		upper := CDFT(tensor.Scalar(xv, backend), d).Item()
		lower := CDFT(tensor.Scalar(-xv, backend), d).Item()
		assert.InDelta(t, 1.0, upper+lower, 1e-12, "F(t) + F(-t) must be 1")
	}
}

func TestCDFTLocScale(t *testing.T) {
	backend := cpu.New()

	// CDF with loc and scale must equal the standard CDF at (x-loc)/scale.
	x := tensor.Scalar(2.9, backend)
	df := tensor.Scalar(7.0, backend)
	loc := tensor.Scalar(0.5, backend)
	scale := tensor.Scalar(1.2, backend)

	got := CDFTWithPrecision(x, df, loc, scale, special.DefaultPrecision()).Item()
	want := CDFT(tensor.Scalar((2.9-0.5)/1.2, backend), df).Item()
	assert.InDelta(t, want, got, 1e-13)
}

func TestCDFTBatch(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{-2, -1, 0, 1, 2}, tensor.Shape{5}, backend)
	require.NoError(t, err)
	df := tensor.Scalar(5.0, backend)

	out := CDFT(x, df)
	require.True(t, out.Shape().Equal(tensor.Shape{5}))

	ref := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 5}
	prev := -1.0
	for i, xv := range []float64{-2, -1, 0, 1, 2} {
		got := out.At(i)
		assert.InDelta(t, ref.CDF(xv), got, 1e-10)
		assert.Greater(t, got, prev, "CDF must be strictly increasing across the batch")
		prev = got
	}
}

func TestStudentTStruct(t *testing.T) {
	backend := cpu.New()

	dist := NewStudentT(tensor.Scalar(5.0, backend), nil, nil)
	got := dist.CDF(tensor.Scalar(1.0, backend)).Item()
	assert.InDelta(t, 0.8183912661754381, got, 1e-9)

	fast := dist.WithPrecision(special.Precision{Epsilon: 1e-12, MaxIters: 200})
	gotFast := fast.CDF(tensor.Scalar(1.0, backend)).Item()
	assert.InDelta(t, got, gotFast, 1e-10)
}

func TestCDFTDoesNotMutateInputs(t *testing.T) {
	backend := cpu.New()

	x := tensor.Scalar(1.5, backend)
	df := tensor.Scalar(5.0, backend)

	CDFT(x, df)
	assert.Equal(t, 1.5, x.Item())
	assert.Equal(t, 5.0, df.Item())
}

func TestBetaincTensor(t *testing.T) {
	backend := cpu.New()

	a := tensor.Scalar(2.0, backend)
	b := tensor.Scalar(3.0, backend)
	x, err := tensor.FromSlice([]float64{0, 0.5, 1}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	out := Betainc(a, b, x)
	assert.Equal(t, 0.0, out.At(0))
	assert.InDelta(t, 0.6875, out.At(1), 1e-12)
	assert.Equal(t, 1.0, out.At(2))
}

func TestCDFTGradients(t *testing.T) {
	// Gradients with respect to every parameter of the reparameterized
	// CDF, validated against central differences of the forward pass.
	const h = 1e-5

	base := map[string]float64{"x": 1.5, "df": 5, "loc": 0.5, "scale": 1.2}

	forward := func(v map[string]float64) float64 {
		backend := cpu.New()
		return CDFTWithPrecision(
			tensor.Scalar(v["x"], backend),
			tensor.Scalar(v["df"], backend),
			tensor.Scalar(v["loc"], backend),
			tensor.Scalar(v["scale"], backend),
			special.DefaultPrecision(),
		).Item()
	}

	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	params := map[string]*tensor.Tensor[float64, adBackend]{
		"x":     tensor.Scalar(base["x"], backend).RequireGrad(),
		"df":    tensor.Scalar(base["df"], backend).RequireGrad(),
		"loc":   tensor.Scalar(base["loc"], backend).RequireGrad(),
		"scale": tensor.Scalar(base["scale"], backend).RequireGrad(),
	}

	out := CDFTWithPrecision(params["x"], params["df"], params["loc"], params["scale"], special.DefaultPrecision())
	grads := autodiff.Backward(out, backend)

	for name, param := range params {
		grad, ok := grads[param.Raw()]
		require.Truef(t, ok, "no gradient for %s", name)
		got := grad.AsFloat64()[0]

		up := cloneParams(base)
		up[name] += h
		down := cloneParams(base)
		down[name] -= h
		numeric := (forward(up) - forward(down)) / (2 * h)

		rel := math.Abs(got-numeric) / math.Max(math.Abs(numeric), 1e-10)
		assert.Lessf(t, rel, 1e-3, "d(cdf)/d%s: autodiff %v, numeric %v", name, got, numeric)
	}
}

func cloneParams(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
