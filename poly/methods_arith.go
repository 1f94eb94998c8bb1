// SPDX-License-Identifier: MIT
//
// File: methods_arith.go
// Role: Polynomial arithmetic built on the term primitives.
// Policy:
//   - Validate everything first, mutate second: an operation either fully
//     succeeds or returns an error with the receiver untouched.
//   - Operands are read through snapshots whenever they alias the receiver.

package poly

import (
	"math"

	"golang.org/x/exp/slices"
)

// sourceTerms returns the terms of src to iterate while dst is mutated.
// When src and dst are the same polynomial a copy is taken so the walk is
// not disturbed by the writes.
func sourceTerms(src, dst *Polynomial) []Term {
	if src == dst {
		return slices.Clone(src.terms)
	}

	return src.terms
}

// validateAll applies the numeric policy of o to every term coefficient.
func (o Options) validateAll(terms []Term) (int, error) {
	for _, t := range terms {
		if err := o.validateCoeff(t.Coeff); err != nil {
			return t.Degree, err
		}
	}

	return 0, nil
}

// degreeSumFits reports whether a + b stays within int for non-negative a, b.
func degreeSumFits(a, b int) bool {
	return a <= math.MaxInt-b
}

// AddPolynomial adds other to p (p := p + other). Other is never mutated.
//
// Implementation:
//   - Stage 1: reject nil; return early if other is zero.
//   - Stage 2: validate other's coefficients under p's numeric policy.
//   - Stage 3: add each term of other, highest degree first, with merge and
//     zero elimination.
//
// Behavior highlights:
//   - p.AddPolynomial(p) doubles p.
//
// Errors (wrapped): ErrNilPolynomial, ErrNaNInf.
//
// Complexity: O(m·(log n + n)).
func (p *Polynomial) AddPolynomial(other *Polynomial) error {
	if other == nil {
		return polyErrorf(ctxAddPoly, nil, ErrNilPolynomial)
	}
	if len(other.terms) == 0 {
		return nil
	}
	if d, err := p.opts.validateAll(other.terms); err != nil {
		return polyErrorf(ctxAddPoly, d, err)
	}

	for _, t := range sourceTerms(other, p) {
		p.insertOrMerge(t.Degree, t.Coeff)
	}

	return nil
}

// MultiplyMonomial multiplies p by coeff·x^degree: every degree is shifted by
// degree and every coefficient is scaled by coeff.
//
// Behavior highlights:
//   - coeff == 0 removes every term (p becomes the zero polynomial).
//   - A scaled coefficient that underflows to exactly zero is removed.
//   - Order is preserved: a uniform shift keeps degrees strictly descending.
//
// Errors (wrapped): ErrNegativeDegree, ErrDegreeOverflow, ErrNaNInf.
//
// Complexity: O(n).
func (p *Polynomial) MultiplyMonomial(degree int, coeff float64) error {
	if err := validateDegree(degree); err != nil {
		return polyErrorf(ctxMulMono, degree, err)
	}
	if err := p.opts.validateCoeff(coeff); err != nil {
		return polyErrorf(ctxMulMono, degree, err)
	}
	if coeff == 0 {
		p.Clear()
		return nil
	}
	if !degreeSumFits(p.Degree(), degree) {
		return polyErrorf(ctxMulMono, degree, ErrDegreeOverflow)
	}

	// Compact in place; the write index never overtakes the read index, so
	// no term is skipped or visited twice when one is dropped.
	kept := p.terms[:0]
	for _, t := range p.terms {
		t.Degree += degree
		t.Coeff *= coeff
		if t.Coeff == 0 {
			continue
		}
		kept = append(kept, t)
	}
	p.terms = kept

	return nil
}

// MultiplyPolynomial sets p := p × other.
//
// Implementation:
//   - Stage 1: reject nil; if either operand is zero, clear p.
//   - Stage 2: distribute every term of p over every term of other, reading
//     both as immutable snapshots and accumulating into a fresh result.
//   - Stage 3: replace p's terms with the result.
//
// Behavior highlights:
//   - p.MultiplyPolynomial(p) squares p.
//   - Cross products that cancel to exactly zero are eliminated.
//
// Errors (wrapped): ErrNilPolynomial, ErrDegreeOverflow.
//
// Complexity: O(n·m·(log k + k)) where k is the result size.
func (p *Polynomial) MultiplyPolynomial(other *Polynomial) error {
	if other == nil {
		return polyErrorf(ctxMulPoly, nil, ErrNilPolynomial)
	}
	if len(p.terms) == 0 || len(other.terms) == 0 {
		p.Clear()
		return nil
	}
	// Leading degrees bound every pairwise sum.
	if !degreeSumFits(p.Degree(), other.Degree()) {
		return polyErrorf(ctxMulPoly, other.Degree(), ErrDegreeOverflow)
	}

	// Neither operand is written until the product is complete, so the
	// snapshots are the live slices themselves, even when other == p.
	lhs, rhs := p.terms, other.terms
	product := &Polynomial{terms: make([]Term, 0, len(lhs)+len(rhs)-1), opts: p.opts}
	for _, a := range lhs {
		for _, b := range rhs {
			c := a.Coeff * b.Coeff
			if c == 0 {
				continue
			}
			product.insertOrMerge(a.Degree+b.Degree, c)
		}
	}
	p.terms = product.terms

	return nil
}

// Duplicate adds every term of p into target, highest degree first.
//
// Behavior highlights:
//   - target is NOT cleared first: duplicating into a non-empty target
//     accumulates (target := target + p).
//   - target receives independent terms; nothing is shared with p.
//   - p.Duplicate(p) doubles p.
//
// Errors (wrapped): ErrNilPolynomial, ErrNaNInf (target's numeric policy).
//
// Complexity: O(n·(log m + m)).
func (p *Polynomial) Duplicate(target *Polynomial) error {
	if target == nil {
		return polyErrorf(ctxDuplicate, nil, ErrNilPolynomial)
	}
	if d, err := target.opts.validateAll(p.terms); err != nil {
		return polyErrorf(ctxDuplicate, d, err)
	}

	for _, t := range sourceTerms(p, target) {
		target.insertOrMerge(t.Degree, t.Coeff)
	}

	return nil
}
