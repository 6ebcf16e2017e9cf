package distrib_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/st7ma784/LSASensitivity/distrib"
	"github.com/st7ma784/LSASensitivity/matrix"
)

const sampleCount = 20000

// draw collects sampleCount values from a fixed-seed stream.
func draw(seed int64, d distrib.Distribution, p distrib.Params) []float64 {
	s := distrib.NewSeeded(seed)
	out := make([]float64, sampleCount)
	for i := range out {
		out[i] = s.Sample(d, p)
	}
	return out
}

func TestNewSeeded_Deterministic(t *testing.T) {
	a := distrib.NewSeeded(7).FillMatrix(4, 4, distrib.Gaussian,
		distrib.Params{Mean: 10, StdDev: 2})
	b := distrib.NewSeeded(7).FillMatrix(4, 4, distrib.Gaussian,
		distrib.Params{Mean: 10, StdDev: 2})
	require.Equal(t, a, b)
}

func TestNewSeeded_ZeroSeedIsStable(t *testing.T) {
	a := distrib.NewSeeded(0).Sample(distrib.Uniform, distrib.Params{Min: 0, Max: 1})
	b := distrib.NewSeeded(0).Sample(distrib.Uniform, distrib.Params{Min: 0, Max: 1})
	require.Equal(t, a, b)
}

func TestFillMatrix_ShapeAndDomain(t *testing.T) {
	s := distrib.NewSeeded(42)
	m := s.FillMatrix(3, 4, distrib.Uniform, distrib.Params{Min: 1, Max: 100})

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.NoError(t, matrix.Validate(m))

	for _, row := range m {
		for _, v := range row {
			require.GreaterOrEqual(t, v, 0.1)
			// One decimal place: scaling by 10 must land on an integer.
			require.InDelta(t, math.Round(v*10), v*10, 1e-9)
		}
	}
}

func TestFillMatrix_FreshPerCall(t *testing.T) {
	s := distrib.NewSeeded(42)
	a := s.FillMatrix(3, 3, distrib.Uniform, distrib.Params{Min: 1, Max: 100})
	b := s.FillMatrix(3, 3, distrib.Uniform, distrib.Params{Min: 1, Max: 100})
	require.NotEqual(t, a, b, "successive fills must advance the stream")
}

func TestUniform_Range(t *testing.T) {
	for _, v := range draw(1, distrib.Uniform, distrib.Params{Min: 5, Max: 9}) {
		require.GreaterOrEqual(t, v, 5.0)
		require.Less(t, v, 9.0)
	}
}

func TestGaussian_Moments(t *testing.T) {
	vs := draw(2, distrib.Gaussian, distrib.Params{Mean: 25, StdDev: 4})
	require.InDelta(t, 25.0, stat.Mean(vs, nil), 0.2)
	require.InDelta(t, 4.0, stat.StdDev(vs, nil), 0.2)
}

func TestPoisson_SmallLambda(t *testing.T) {
	vs := draw(3, distrib.Poisson, distrib.Params{Lambda: 4})
	for _, v := range vs {
		require.GreaterOrEqual(t, v, 0.0)
		require.Equal(t, math.Trunc(v), v, "poisson draws are counts")
	}
	require.InDelta(t, 4.0, stat.Mean(vs, nil), 0.15)
}

func TestPoisson_LargeLambdaUsesNormalApprox(t *testing.T) {
	vs := draw(4, distrib.Poisson, distrib.Params{Lambda: 60})
	for _, v := range vs {
		require.GreaterOrEqual(t, v, 0.0)
		require.Equal(t, math.Trunc(v), v)
	}
	require.InDelta(t, 60.0, stat.Mean(vs, nil), 0.5)
	require.InDelta(t, math.Sqrt(60), stat.StdDev(vs, nil), 0.5)
}

func TestPoisson_NonPositiveLambda(t *testing.T) {
	s := distrib.NewSeeded(1)
	require.Zero(t, s.Sample(distrib.Poisson, distrib.Params{Lambda: 0}))
	require.Zero(t, s.Sample(distrib.Poisson, distrib.Params{Lambda: -3}))
}

func TestExponential_Moments(t *testing.T) {
	vs := draw(5, distrib.Exponential, distrib.Params{Lambda: 0.5})
	for _, v := range vs {
		require.GreaterOrEqual(t, v, 0.0)
	}
	require.InDelta(t, 2.0, stat.Mean(vs, nil), 0.1)
}

func TestWeibull_ShapeOneIsExponential(t *testing.T) {
	// Weibull(k=1, λ) coincides with Exponential(1/λ): mean λ.
	vs := draw(6, distrib.Weibull, distrib.Params{Shape: 1, Scale: 3})
	require.InDelta(t, 3.0, stat.Mean(vs, nil), 0.15)
}

func TestGamma_Moments(t *testing.T) {
	// Mean shape/rate, variance shape/rate².
	vs := draw(7, distrib.Gamma, distrib.Params{Shape: 4, Rate: 2})
	require.InDelta(t, 2.0, stat.Mean(vs, nil), 0.1)
	require.InDelta(t, 1.0, stat.Variance(vs, nil), 0.15)
}

func TestGamma_SmallShapeBoost(t *testing.T) {
	vs := draw(8, distrib.Gamma, distrib.Params{Shape: 0.5, Rate: 1})
	for _, v := range vs {
		require.GreaterOrEqual(t, v, 0.0)
	}
	require.InDelta(t, 0.5, stat.Mean(vs, nil), 0.1)
}

func TestHalfNormal_Moments(t *testing.T) {
	vs := draw(9, distrib.HalfNormal, distrib.Params{Sigma: 2})
	for _, v := range vs {
		require.GreaterOrEqual(t, v, 0.0)
	}
	require.InDelta(t, 2*math.Sqrt(2/math.Pi), stat.Mean(vs, nil), 0.1)
}

func TestBimodal_WeightExtremes(t *testing.T) {
	// Weight 1 collapses to the first component, weight 0 to the second.
	first := draw(10, distrib.Bimodal,
		distrib.Params{Mean: 5, StdDev: 1, Mean2: 50, StdDev2: 1, Weight: 1})
	require.InDelta(t, 5.0, stat.Mean(first, nil), 0.1)

	second := draw(10, distrib.Bimodal,
		distrib.Params{Mean: 5, StdDev: 1, Mean2: 50, StdDev2: 1, Weight: 0})
	require.InDelta(t, 50.0, stat.Mean(second, nil), 0.1)
}

func TestBimodal_MixedMean(t *testing.T) {
	vs := draw(11, distrib.Bimodal,
		distrib.Params{Mean: 10, StdDev: 1, Mean2: 30, StdDev2: 1, Weight: 0.4})
	require.InDelta(t, 0.4*10+0.6*30, stat.Mean(vs, nil), 0.5)
}

func TestDiscrete(t *testing.T) {
	values := []float64{1.5, 7, 42}
	allowed := map[float64]bool{1.5: true, 7: true, 42: true}

	seen := make(map[float64]int)
	for _, v := range draw(12, distrib.Discrete, distrib.Params{Values: values}) {
		require.True(t, allowed[v], "draw %v outside the fixed set", v)
		seen[v]++
	}
	require.Len(t, seen, 3, "all values should appear over many draws")
}

func TestDiscrete_Empty(t *testing.T) {
	s := distrib.NewSeeded(1)
	require.Zero(t, s.Sample(distrib.Discrete, distrib.Params{}))
}

func TestSample_DegenerateParams(t *testing.T) {
	s := distrib.NewSeeded(1)
	require.Zero(t, s.Sample(distrib.Exponential, distrib.Params{Lambda: 0}))
	require.Zero(t, s.Sample(distrib.Weibull, distrib.Params{Shape: 0, Scale: 2}))
	require.Zero(t, s.Sample(distrib.Gamma, distrib.Params{Shape: 2, Rate: 0}))
}

func TestParseDistribution_RoundTrip(t *testing.T) {
	for _, d := range []distrib.Distribution{
		distrib.Uniform, distrib.Gaussian, distrib.Poisson, distrib.Bimodal,
		distrib.Exponential, distrib.HalfNormal, distrib.Weibull,
		distrib.Gamma, distrib.Discrete,
	} {
		parsed, err := distrib.ParseDistribution(d.String())
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	}

	_, err := distrib.ParseDistribution("zipf")
	require.ErrorIs(t, err, distrib.ErrUnknownDistribution)
}
