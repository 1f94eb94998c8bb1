// SPDX-License-Identifier: MIT
//
// File: methods_terms.go
// Role: Term-list maintenance primitives (insert-or-merge, remove, clear).
// Policy:
//   - Every primitive leaves the slice canonical: strictly descending degrees,
//     unique degrees, no zero coefficients.
//   - Positions are located by binary search; the sentinel position is i == 0
//     ("after index -1"), so the front of the list needs no special case.

package poly

import "golang.org/x/exp/slices"

// byDescendingDegree orders a Term relative to a target degree for
// slices.BinarySearchFunc over a descending slice.
func byDescendingDegree(t Term, degree int) int {
	switch {
	case t.Degree > degree:
		return -1
	case t.Degree < degree:
		return 1
	default:
		return 0
	}
}

// search returns the index of the first term with Degree ≤ degree (the
// insertion point) and whether that term has exactly this degree.
// Complexity: O(log n).
func (p *Polynomial) search(degree int) (int, bool) {
	return slices.BinarySearchFunc(p.terms, degree, byDescendingDegree)
}

// insertOrMerge adds coeff·x^degree into the term list.
//
// Implementation:
//   - Stage 1: locate the position right after the last term with degree ≥ target.
//   - Stage 2a: if the preceding term has the target degree, add coeff in place;
//     remove it when the sum is exactly zero.
//   - Stage 2b: otherwise splice a new term at that position.
//
// Preconditions (checked by callers): degree ≥ 0, coeff != 0.
// Complexity: O(log n) search + O(n) shift on insert/remove.
func (p *Polynomial) insertOrMerge(degree int, coeff float64) {
	i, found := p.search(degree)
	if found {
		p.terms[i].Coeff += coeff
		if p.terms[i].Coeff == 0 {
			// Remove by the index we just matched; no second lookup can miss.
			p.terms = slices.Delete(p.terms, i, i+1)
		}

		return
	}

	p.terms = slices.Insert(p.terms, i, Term{Degree: degree, Coeff: coeff})
}

// RemoveTerm removes the term of exactly the given degree.
//
// Errors:
//   - ErrTermNotFound (wrapped) if no such term exists; the polynomial is
//     left unmodified.
//
// Complexity: O(log n + n).
func (p *Polynomial) RemoveTerm(degree int) error {
	i, found := p.search(degree)
	if !found {
		return polyErrorf(ctxRemoveTerm, degree, ErrTermNotFound)
	}
	p.terms = slices.Delete(p.terms, i, i+1)

	return nil
}

// AddMonomial adds coeff·x^degree to p, merging with an existing term of the
// same degree and eliminating it if the sum is exactly zero.
//
// Behavior highlights:
//   - coeff == 0 is a no-op (after validation).
//   - AddMonomial(d, c) followed by AddMonomial(d, -c) restores the prior state.
//
// Errors (wrapped):
//   - ErrNegativeDegree if degree < 0.
//   - ErrNaNInf if coeff is non-finite and the numeric policy is on.
//
// Complexity: O(log n + n).
func (p *Polynomial) AddMonomial(degree int, coeff float64) error {
	if err := validateDegree(degree); err != nil {
		return polyErrorf(ctxAddMono, degree, err)
	}
	if err := p.opts.validateCoeff(coeff); err != nil {
		return polyErrorf(ctxAddMono, degree, err)
	}
	if coeff == 0 {
		return nil
	}
	p.insertOrMerge(degree, coeff)

	return nil
}

// Clear removes every term, leaving the zero polynomial. Options are kept.
func (p *Polynomial) Clear() {
	p.terms = nil
}
