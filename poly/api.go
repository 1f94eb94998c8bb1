// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Public constructors and the Clone facade.
// Policy:
//   - No algorithms here beyond delegating to validators.go.
//   - Every constructor resolves options exactly once via gatherOptions.

package poly

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// New creates an empty (zero) polynomial.
//
// Complexity: O(len(opts)).
func New(opts ...Option) *Polynomial {
	return &Polynomial{opts: gatherOptions(opts...)}
}

// FromTerms creates a polynomial from two equal-length sequences paired
// positionally: term i is coeffs[i]·x^degrees[i].
//
// Implementation:
//   - Stage 1: resolve options.
//   - Stage 2: validate lengths, degree signs and the numeric policy.
//   - Stage 3: enforce (InputStrict) or establish (InputCanonical) canonical order.
//
// Errors (wrapped, match with errors.Is):
//   - ErrLengthMismatch, ErrNegativeDegree, ErrNaNInf.
//   - ErrUnsortedInput, ErrZeroCoefficient (InputStrict only).
//
// Complexity:
//   - Time O(n) strict, O(n log n) canonical; Space O(n).
//
// Notes:
//   - The input slices are never retained or mutated.
func FromTerms(degrees []int, coeffs []float64, opts ...Option) (*Polynomial, error) {
	o := gatherOptions(opts...)

	terms, err := buildTerms(degrees, coeffs, o)
	if err != nil {
		return nil, polyErrorf(ctxFromTerms, len(degrees), err)
	}

	return &Polynomial{terms: terms, opts: o}, nil
}

// MustFromTerms is like FromTerms but panics on error.
// Intended for tests, examples and package-level fixtures.
func MustFromTerms(degrees []int, coeffs []float64, opts ...Option) *Polynomial {
	p, err := FromTerms(degrees, coeffs, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// FromMap creates a polynomial from a degree → coefficient map.
// Zero coefficients are skipped; map iteration order does not matter since
// degrees are unique by construction.
//
// Errors: ErrNegativeDegree, ErrNaNInf (wrapped).
//
// Complexity: O(n log n).
func FromMap(m map[int]float64, opts ...Option) (*Polynomial, error) {
	o := gatherOptions(opts...)

	degrees := maps.Keys(m)
	slices.SortFunc(degrees, func(a, b int) bool { return a > b })

	terms := make([]Term, 0, len(degrees))
	for _, d := range degrees {
		c := m[d]
		if err := validateDegree(d); err != nil {
			return nil, polyErrorf(ctxFromMap, d, err)
		}
		if err := o.validateCoeff(c); err != nil {
			return nil, polyErrorf(ctxFromMap, d, err)
		}
		if c == 0 {
			continue
		}
		terms = append(terms, Term{Degree: d, Coeff: c})
	}

	return &Polynomial{terms: terms, opts: o}, nil
}

// Clone returns an independent deep copy carrying the same options.
//
// Complexity: O(n).
func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{terms: slices.Clone(p.terms), opts: p.opts}
}

// Options returns a copy of the resolved options.
func (p *Polynomial) Options() Options {
	return p.opts
}

// InputPolicy reports the bulk input policy the polynomial was built with.
func (o Options) InputPolicy() InputPolicy { return o.inputPolicy }

// ValidateNaNInf reports whether non-finite coefficients are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// RenderPrecision reports the number of decimals Render prints.
func (o Options) RenderPrecision() int { return o.renderPrecision }
