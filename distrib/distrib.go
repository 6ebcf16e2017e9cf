package distrib

import (
	"errors"
	"math"

	"github.com/st7ma784/LSASensitivity/matrix"
)

// ErrUnknownDistribution is returned by ParseDistribution for an
// unrecognized tag.
var ErrUnknownDistribution = errors.New("distrib: unknown distribution")

// Distribution selects a generation rule for Sample and FillMatrix.
type Distribution int

const (
	Uniform Distribution = iota
	Gaussian
	Poisson
	Bimodal
	Exponential
	HalfNormal
	Weibull
	Gamma
	Discrete
)

var distributionTags = [...]string{
	Uniform:     "uniform",
	Gaussian:    "gaussian",
	Poisson:     "poisson",
	Bimodal:     "bimodal",
	Exponential: "exponential",
	HalfNormal:  "halfNormal",
	Weibull:     "weibull",
	Gamma:       "gamma",
	Discrete:    "discrete",
}

// String returns the canonical tag of the distribution.
func (d Distribution) String() string {
	if d < 0 || int(d) >= len(distributionTags) {
		return "unknown"
	}
	return distributionTags[d]
}

// ParseDistribution maps a canonical tag back to its Distribution.
func ParseDistribution(tag string) (Distribution, error) {
	for d, t := range distributionTags {
		if t == tag {
			return Distribution(d), nil
		}
	}

	return 0, ErrUnknownDistribution
}

// Params carries the per-distribution parameters; only the fields a given
// distribution reads are consulted, the rest are ignored.
type Params struct {
	Min, Max       float64   // uniform
	Mean, StdDev   float64   // gaussian, first bimodal component
	Lambda         float64   // poisson, exponential
	Mean2, StdDev2 float64   // second bimodal component
	Weight         float64   // bimodal mixing probability for component 1
	Sigma          float64   // half-normal
	Shape          float64   // weibull, gamma
	Scale          float64   // weibull
	Rate           float64   // gamma
	Values         []float64 // discrete
}

const (
	// poissonNormalSwitch is the λ beyond which Knuth's method is skipped
	// for the normal approximation.
	poissonNormalSwitch = 30.0

	// maxPoissonIters caps Knuth's multiplicative loop; past it the normal
	// approximation takes over. A resource guard, not an error.
	maxPoissonIters = 1000

	// maxGammaIters caps Marsaglia–Tsang rejection; the distribution mean
	// is the documented fallback.
	maxGammaIters = 1000
)

// Sample draws one value from the selected distribution.
func (s *Sampler) Sample(d Distribution, p Params) float64 {
	switch d {
	case Uniform:
		return s.uniform(p.Min, p.Max)
	case Gaussian:
		return s.gaussian(p.Mean, p.StdDev)
	case Poisson:
		return s.poisson(p.Lambda)
	case Bimodal:
		return s.bimodal(p.Mean, p.StdDev, p.Mean2, p.StdDev2, p.Weight)
	case Exponential:
		return s.exponential(p.Lambda)
	case HalfNormal:
		return math.Abs(s.gaussian(0, p.Sigma))
	case Weibull:
		return s.weibull(p.Shape, p.Scale)
	case Gamma:
		return s.gamma(p.Shape, p.Rate)
	case Discrete:
		return s.discrete(p.Values)
	default:
		return 0
	}
}

// FillMatrix builds a rows×cols cost matrix of draws from d. Every cell is
// forced positive (max(0.1, |v|)) and rounded to one decimal place so the
// result always passes matrix.Validate. Each call produces a fresh matrix.
func (s *Sampler) FillMatrix(rows, cols int, d Distribution, p Params) matrix.Matrix {
	out := matrix.NewDense(rows, cols)
	for i := range out {
		for j := range out[i] {
			v := math.Max(0.1, math.Abs(s.Sample(d, p)))
			out[i][j] = math.Round(v*10) / 10
		}
	}
	return out
}

// uniform draws from [min, max).
func (s *Sampler) uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// gaussian draws via the Box–Muller transform.
func (s *Sampler) gaussian(mean, stdDev float64) float64 {
	u1 := s.unitOpen()
	u2 := s.rng.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stdDev*z
}

// poisson draws with Knuth's multiplicative method for small λ and the
// rounded normal approximation for λ ≥ poissonNormalSwitch or when the
// iteration cap trips.
func (s *Sampler) poisson(lambda float64) float64 {
	if lambda <= 0 {
		return 0
	}
	if lambda >= poissonNormalSwitch {
		return s.poissonNormalApprox(lambda)
	}

	limit := math.Exp(-lambda)
	k, p := 0, 1.0
	for iter := 0; iter < maxPoissonIters; iter++ {
		k++
		p *= s.rng.Float64()
		if p <= limit {
			return float64(k - 1)
		}
	}

	return s.poissonNormalApprox(lambda)
}

// poissonNormalApprox rounds a Gaussian(λ, √λ) draw, clamped at zero.
func (s *Sampler) poissonNormalApprox(lambda float64) float64 {
	v := math.Round(s.gaussian(lambda, math.Sqrt(lambda)))
	return math.Max(0, v)
}

// bimodal draws from one of two Gaussians, Bernoulli(weight) selecting the
// first component.
func (s *Sampler) bimodal(mean1, sd1, mean2, sd2, weight float64) float64 {
	if s.rng.Float64() < weight {
		return s.gaussian(mean1, sd1)
	}
	return s.gaussian(mean2, sd2)
}

// exponential draws via the inverse CDF. Non-positive λ yields 0.
func (s *Sampler) exponential(lambda float64) float64 {
	if lambda <= 0 {
		return 0
	}
	return -math.Log(s.unitOpen()) / lambda
}

// weibull draws via the inverse CDF. Non-positive parameters yield 0.
func (s *Sampler) weibull(shape, scale float64) float64 {
	if shape <= 0 || scale <= 0 {
		return 0
	}
	return scale * math.Pow(-math.Log(s.unitOpen()), 1/shape)
}

// gamma draws with Marsaglia–Tsang rejection sampling for shape ≥ 1 and
// the boost-and-reject transform Gamma(shape) = Gamma(shape+1)·U^(1/shape)
// for shape < 1. Non-positive parameters yield 0. If rejection never
// accepts within the cap, the distribution mean stands in.
func (s *Sampler) gamma(shape, rate float64) float64 {
	if shape <= 0 || rate <= 0 {
		return 0
	}
	if shape < 1 {
		u := s.unitOpen()
		return s.gamma(shape+1, rate) * math.Pow(u, 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1 / math.Sqrt(9*d)
	for iter := 0; iter < maxGammaIters; iter++ {
		x := s.gaussian(0, 1)
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := s.rng.Float64()
		if u < 1-0.0331*x*x*x*x || math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v / rate
		}
	}

	return shape / rate
}

// discrete picks uniformly from the fixed set; an empty set yields 0.
func (s *Sampler) discrete(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[s.rng.Intn(len(values))]
}
