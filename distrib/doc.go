// Package distrib generates random cost matrices from statistical
// distributions.
//
// Nine distributions are supported, each with a closed-form or classical
// rejection-based generation rule:
//
//   - Uniform(min, max)
//   - Gaussian(mean, stdDev)           — Box–Muller transform
//   - Poisson(lambda)                  — Knuth's multiplicative method for
//     λ < 30, normal approximation (rounded) otherwise, with an iteration
//     cap falling back to the approximation
//   - Bimodal(mean1, sd1, mean2, sd2, weight) — Bernoulli(weight) Gaussian mix
//   - Exponential(lambda)              — inverse CDF
//   - HalfNormal(sigma)                — |Gaussian(0, sigma)|
//   - Weibull(shape, scale)            — inverse CDF
//   - Gamma(shape, rate)               — Marsaglia–Tsang rejection for
//     shape ≥ 1, boost-and-reject transform for shape < 1
//   - Discrete(values)                 — uniform pick; empty set yields 0
//     (a defined fallback, not an error)
//
// Randomness is explicit: a Sampler wraps a *rand.Rand the caller injects,
// so tests seed it for determinism. The default (nil) source is
// time-seeded: FillMatrix is impure by contract and must never reproduce
// a prior matrix deterministically.
//
// FillMatrix forces positivity (max(0.1, |v|)) and rounds to one decimal,
// matching the invariants the assignment solver's validator expects.
package distrib
