// Package lvpoly is a small, deterministic toolkit for sparse univariate
// polynomials with float64 coefficients.
//
// 🚀 What is lvpoly?
//
//	A pure-Go library (plus a tiny CLI) built around one data structure:
//		• poly.Polynomial — terms kept sorted by descending degree,
//		  unique degrees, never a zero coefficient
//		• Arithmetic: add a monomial/polynomial, multiply by a
//		  monomial/polynomial, accumulate-copy (Duplicate)
//		• Queries: degree, term count, evaluation, rendering, parsing
//		• Extras: JSON encoding, blake3 fingerprints, approximate equality
//
// ✨ Why lvpoly?
//
//   - Invariants first – every mutation leaves the term list canonical
//   - Explicit errors – sentinel errors matched via errors.Is, no panics on input
//   - Deterministic – stable ordering, stable rendering, stable digests
//
// Layout:
//
//	poly/          — Polynomial, Term, options, errors, rendering, parsing
//	internal/cli/  — polyctl command tree (cobra + logrus)
//	cmd/polyctl/   — polyctl binary
//
// Quick example:
//
//	p := poly.MustFromTerms([]int{1, 0}, []float64{1, 1}) // x + 1
//	_ = p.MultiplyPolynomial(p)                           // x² + 2x + 1
//	fmt.Println(p) // degree=2; a(2)=1.000000; a(1)=2.000000; a(0)=1.000000
//
//	go get github.com/katalvlaran/lvpoly/poly
package lvpoly
