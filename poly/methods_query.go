// SPDX-License-Identifier: MIT
//
// File: methods_query.go
// Role: Read-only queries. None of these mutate the receiver.

package poly

import (
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/slices"
)

// Degree returns the degree of the leading term, or NoDegree (-1) for the
// zero polynomial.
// Complexity: O(1).
func (p *Polynomial) Degree() int {
	if len(p.terms) == 0 {
		return NoDegree
	}

	return p.terms[0].Degree
}

// TermCount returns the number of stored (non-zero) terms.
// Complexity: O(1).
func (p *Polynomial) TermCount() int {
	return len(p.terms)
}

// IsZero reports whether p has no terms.
func (p *Polynomial) IsZero() bool {
	return len(p.terms) == 0
}

// Coefficient returns the coefficient of x^degree, or 0 if absent.
// Complexity: O(log n).
func (p *Polynomial) Coefficient(degree int) float64 {
	if i, found := p.search(degree); found {
		return p.terms[i].Coeff
	}

	return 0
}

// Terms returns a snapshot of the terms, highest degree first.
// The returned slice is owned by the caller.
func (p *Polynomial) Terms() []Term {
	return slices.Clone(p.terms)
}

// Evaluate returns Σ coeff·x^degree using math.Pow and left-to-right
// summation from the highest degree down. The zero polynomial evaluates to 0.
// Complexity: O(n).
func (p *Polynomial) Evaluate(x float64) float64 {
	var result float64
	for _, t := range p.terms {
		result += t.Coeff * math.Pow(x, float64(t.Degree))
	}

	return result
}

// Equal reports exact structural equality: same degrees, ==-equal
// coefficients. Options are not compared. Two nil polynomials are equal.
func (p *Polynomial) Equal(other *Polynomial) bool {
	if p == nil || other == nil {
		return p == other
	}

	return cmp.Equal(p.terms, other.terms, cmpopts.EquateEmpty())
}

// AlmostEqual reports whether p and other have the same degrees and every
// pair of coefficients differs by at most eps. A negative or NaN eps is
// treated as 0.
func (p *Polynomial) AlmostEqual(other *Polynomial, eps float64) bool {
	if p == nil || other == nil {
		return p == other
	}
	if !(eps >= 0) {
		eps = 0
	}

	return cmp.Equal(p.terms, other.terms, cmpopts.EquateEmpty(), cmpopts.EquateApprox(0, eps))
}
