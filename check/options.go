// SPDX-License-Identifier: MIT

// Package check: functional configuration for weak comparisons.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithEpsilon panics on nonsensical values
//     (programmer error), so comparisons never see a bad tolerance.

package check

import (
	"math"

	"github.com/katalvlaran/rigidcheck/packed"
)

// DefaultEpsilon is the absolute tolerance used when no WithEpsilon is given.
// It is the float64 machine epsilon, the tolerance the packed kernels are
// held to.
const DefaultEpsilon = packed.Epsilon

const panicEpsilonInvalid = "check: WithEpsilon: eps must be finite, non-negative"

// Option mutates comparison options. Applied in order; last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// Epsilon returns the absolute tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the absolute tolerance of weak comparisons.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//
// Notes:
//   - eps = 0 turns a weak comparison into exact equality of finite values.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies user setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
