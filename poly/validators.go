// SPDX-License-Identifier: MIT
// Package: poly
//
// Purpose:
//   - Single source of truth for ingestion checks (degree sign, finiteness,
//     ordering) and for the bulk canonicalization used by InputCanonical.
//   - Return plain sentinel errors; call sites wrap them with method context.

package poly

import (
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// isStrictlyDescending reports whether xs[i] > xs[i+1] for every i.
// Empty and single-element slices are descending.
func isStrictlyDescending[T constraints.Ordered](xs []T) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i-1] <= xs[i] {
			return false
		}
	}

	return true
}

// validateDegree rejects negative degrees.
func validateDegree(d int) error {
	if d < 0 {
		return ErrNegativeDegree
	}

	return nil
}

// validateCoeff applies the numeric policy to a single coefficient.
func (o Options) validateCoeff(c float64) error {
	if o.validateNaNInf && !isFinite(c) {
		return ErrNaNInf
	}

	return nil
}

// buildTerms turns positional degrees/coefficients into a canonical term slice.
//
// Sequence: length → per-entry degree & numeric policy → ordering.
// Under InputStrict the input must already be canonical; under InputCanonical
// it is stable-sorted by descending degree and equal degrees are merged in
// input order (zero sums dropped).
func buildTerms(degrees []int, coeffs []float64, o Options) ([]Term, error) {
	if len(degrees) != len(coeffs) {
		return nil, ErrLengthMismatch
	}

	terms := make([]Term, 0, len(degrees))
	for i, d := range degrees {
		if err := validateDegree(d); err != nil {
			return nil, err
		}
		if err := o.validateCoeff(coeffs[i]); err != nil {
			return nil, err
		}
		terms = append(terms, Term{Degree: d, Coeff: coeffs[i]})
	}

	if o.inputPolicy == InputStrict {
		if !isStrictlyDescending(degrees) {
			return nil, ErrUnsortedInput
		}
		for _, t := range terms {
			if t.Coeff == 0 {
				return nil, ErrZeroCoefficient
			}
		}

		return terms, nil
	}

	return canonicalize(terms), nil
}

// canonicalize sorts terms by descending degree, merges equal degrees and
// drops zero coefficients. The input slice is reordered in place.
func canonicalize(terms []Term) []Term {
	slices.SortStableFunc(terms, func(a, b Term) bool { return a.Degree > b.Degree })

	out := terms[:0]
	for _, t := range terms {
		if n := len(out); n > 0 && out[n-1].Degree == t.Degree {
			out[n-1].Coeff += t.Coeff
			continue
		}
		out = append(out, t)
	}

	// Second pass: zero sums (and zero inputs) leave the canonical form.
	kept := out[:0]
	for _, t := range out {
		if t.Coeff != 0 {
			kept = append(kept, t)
		}
	}

	return kept
}

// isCanonical reports whether terms satisfy every storage invariant.
// Used by tests through export_privates_test.go and by UnmarshalJSON.
func isCanonical(terms []Term) bool {
	if !slices.IsSortedFunc(terms, func(a, b Term) bool { return a.Degree > b.Degree }) {
		return false
	}
	for i, t := range terms {
		if t.Degree < 0 || t.Coeff == 0 {
			return false
		}
		if i > 0 && terms[i-1].Degree == t.Degree {
			return false
		}
	}

	return true
}
