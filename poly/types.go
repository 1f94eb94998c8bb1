// SPDX-License-Identifier: MIT
// Package poly defines the Term and Polynomial types.
//
// Storage model:
//   - terms is a contiguous slice ordered strictly descending by degree.
//   - The position "before terms[0]" is the sentinel (index -1); it carries
//     NoDegree and is never materialized.
//   - len(terms) is the term count; there is no separate counter to drift.

package poly

// NoDegree is the degree reported for the zero polynomial (no terms).
const NoDegree = -1

// Term is a single monomial Coeff·x^Degree.
//
// Inside a Polynomial, Degree is ≥ 0 and Coeff is never exactly zero.
type Term struct {
	// Degree is the exponent of x.
	Degree int `json:"degree"`

	// Coeff is the coefficient multiplying x^Degree.
	Coeff float64 `json:"coeff"`
}

// Polynomial is a sparse univariate polynomial with float64 coefficients.
//
// The zero value is an empty polynomial with zeroed options (no NaN/Inf
// validation, zero render precision); construct with New, FromTerms,
// FromMap, Parse or ParsePairs to get the documented defaults.
type Polynomial struct {
	terms []Term  // strictly descending by Degree, no zero Coeff
	opts  Options // resolved configuration
}
