// Package poly provides a sparse univariate polynomial with float64
// coefficients and a minimal, invariant-preserving API surface.
//
// A Polynomial P(x) = Σ aₖ·xᵏ is stored as a slice of Terms kept in
// canonical form at all times:
//
//   - Terms are sorted strictly descending by degree.
//   - No two terms share a degree.
//   - No term has a coefficient of exactly zero.
//   - TermCount() equals the number of stored terms.
//   - Degree() is the first term's degree, or NoDegree (-1) when empty.
//
// The head of the slice plays the role of a sentinel position (index -1):
// insertion "after the last term with degree ≥ d" and removal never need a
// special case for the front of the list.
//
// Core Methods:
//
//	// Construction
//	New(opts ...Option) *Polynomial                                   // O(1)
//	FromTerms(degrees []int, coeffs []float64, opts ...Option)        // O(n) strict, O(n log n) canonical
//	FromMap(m map[int]float64, opts ...Option)                        // O(n log n)
//	Parse(s string, opts ...Option) / ParsePairs(s string, ...)       // O(len(s))
//	Clone() *Polynomial                                               // O(n)
//
//	// Mutation
//	AddMonomial(degree int, coeff float64) error   // O(log n + n) merge-on-equal-degree
//	RemoveTerm(degree int) error                   // ErrTermNotFound when absent
//	AddPolynomial(other *Polynomial) error         // O(n·m) worst case
//	MultiplyMonomial(degree int, coeff float64) error
//	MultiplyPolynomial(other *Polynomial) error    // fresh-result distribution
//	Duplicate(target *Polynomial) error            // accumulates into target
//	Clear()
//
//	// Query
//	Degree() int, TermCount() int, IsZero() bool
//	Coefficient(degree int) float64, Terms() []Term
//	Evaluate(x float64) float64
//	Equal(other) bool, AlmostEqual(other, eps) bool
//	Render() string, String() string, Digest() [32]byte
//
// Configuration Options (Option):
//
//	– WithInputPolicy(InputStrict | InputCanonical)
//	    Strict (default) rejects unsorted/duplicate/zero bulk input.
//	    Canonical sorts, merges equal degrees and drops zero sums.
//
//	– WithValidateNaNInf() / WithNoValidateNaNInf()
//	    Reject NaN and ±Inf coefficients at every ingestion point (default on).
//	    Results of arithmetic are not re-checked: overflow may yield ±Inf.
//
//	– WithRenderPrecision(n)
//	    Decimals printed per coefficient by Render (default 6).
//
// Errors:
//
//	ErrTermNotFound     – RemoveTerm on a degree that is not present
//	ErrNilPolynomial    – nil operand or target
//	ErrNegativeDegree   – degree or degree shift below zero
//	ErrDegreeOverflow   – shifted or multiplied degree exceeds math.MaxInt
//	ErrLengthMismatch   – degrees and coefficients differ in length
//	ErrUnsortedInput    – strict bulk input not strictly descending
//	ErrZeroCoefficient  – strict bulk input carries a zero coefficient
//	ErrNaNInf           – non-finite coefficient under the numeric policy
//	ErrSyntax           – Parse/ParsePairs/UnmarshalJSON on malformed text
//
// Concurrency:
//
//	A Polynomial is not safe for concurrent use. Operations assume exclusive
//	access to the receiver and to any operand for the duration of the call.
//	Aliasing the receiver as an operand (p.MultiplyPolynomial(p)) is supported.
package poly
