// SPDX-License-Identifier: MIT

// Package poly: functional configuration for construction, ingestion and
// rendering. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Notes:
//   - Options are resolved once per Polynomial and kept on it; results written
//     into a receiver keep the receiver's options.
//   - Input policy only affects bulk ingestion (FromTerms, FromMap, ParsePairs).
//     Incremental mutation (AddMonomial, ...) is canonical by construction.
//   - Numeric policy applies to every ingestion point, bulk or incremental.
//     It checks inputs only: arithmetic results keep IEEE-754 semantics, so
//     an overflowing product may store ±Inf.
package poly

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultInputPolicy rejects bulk input that is not already canonical.
	DefaultInputPolicy = InputStrict

	// DefaultValidateNaNInf rejects NaN and ±Inf coefficients on ingestion.
	DefaultValidateNaNInf = true

	// DefaultRenderPrecision is the number of decimals Render prints per
	// coefficient (matches the classic "%f" rendering).
	DefaultRenderPrecision = 6
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "poly: WithRenderPrecision: precision must be >= 0"
	panicPolicyInvalid    = "poly: WithInputPolicy: unknown input policy"
)

// InputPolicy selects how bulk constructors treat non-canonical input.
type InputPolicy int

const (
	// InputStrict rejects bulk input whose degrees are not strictly
	// descending (ErrUnsortedInput) or that carries a zero coefficient
	// (ErrZeroCoefficient).
	InputStrict InputPolicy = iota

	// InputCanonical sorts bulk input by descending degree, merges equal
	// degrees by summing coefficients and drops terms whose sum is zero.
	InputCanonical
)

// String implements fmt.Stringer.
func (ip InputPolicy) String() string {
	switch ip {
	case InputStrict:
		return "strict"
	case InputCanonical:
		return "canonical"
	default:
		return fmt.Sprintf("InputPolicy(%d)", int(ip))
	}
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	inputPolicy     InputPolicy // DefaultInputPolicy
	validateNaNInf  bool        // DefaultValidateNaNInf
	renderPrecision int         // DefaultRenderPrecision
	resolved        bool        // set once defaults have been applied
}

// WithInputPolicy sets how bulk constructors treat unsorted, duplicate or
// zero-coefficient input.
// Panics on an unknown policy value (programmer error).
func WithInputPolicy(ip InputPolicy) Option {
	if ip != InputStrict && ip != InputCanonical {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.inputPolicy = ip }
}

// WithValidateNaNInf enables strict finite-value validation of coefficients.
// This is the default; use WithNoValidateNaNInf to relax.
// Only coefficients handed in are checked; ±Inf produced by overflow in
// MultiplyMonomial or MultiplyPolynomial is stored as computed.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation. NaN and ±Inf
// coefficients are then stored as-is (NaN is never equal to zero, so it is
// never eliminated by merging).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithRenderPrecision sets the number of decimals Render prints per
// coefficient.
// Panics when n < 0.
func WithRenderPrecision(n int) Option {
	if n < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.renderPrecision = n }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		inputPolicy:     DefaultInputPolicy,
		validateNaNInf:  DefaultValidateNaNInf,
		renderPrecision: DefaultRenderPrecision,
		resolved:        true,
	}
}

// gatherOptions resolves opts over the defaults, left to right.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
