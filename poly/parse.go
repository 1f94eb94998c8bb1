// SPDX-License-Identifier: MIT
// Package: poly
//
// Purpose:
//   - Parse: the inverse of Render ("degree=<d>; a(<k>)=<c>; ...").
//   - ParsePairs: compact "deg:coeff,deg:coeff" form used by polyctl.
//
// Notes:
//   - Both routes end in FromTerms, so the input policy and numeric policy of
//     opts apply exactly as for bulk construction.
//   - Render rounds coefficients to RenderPrecision decimals; Parse(Render(p))
//     reproduces p only up to that rounding. A term whose coefficient was
//     rounded to zero is dropped, so the result may have a lower degree than
//     the header; the header must still match the highest degree written.

package poly

import (
	"strconv"
	"strings"
)

const (
	_pairSep   = ","
	_pairKV    = ":"
	_renderSep = ";"
)

// Parse reads a polynomial in Render's format.
//
// Terms whose coefficient reads as zero are skipped before construction.
//
// Errors (wrapped):
//   - ErrSyntax for a missing header, malformed term, or a header degree that
//     disagrees with the highest degree among the written terms.
//   - Any FromTerms error (ErrUnsortedInput, ErrZeroCoefficient, ...).
//
// Complexity: O(len(s)) plus FromTerms.
func Parse(s string, opts ...Option) (*Polynomial, error) {
	parts := strings.Split(strings.TrimSpace(s), _renderSep)

	header := strings.TrimSpace(parts[0])
	if !strings.HasPrefix(header, _fmtHeader) {
		return nil, syntaxErrorf(ctxParse, "missing %q header", _fmtHeader)
	}
	want, err := strconv.Atoi(strings.TrimPrefix(header, _fmtHeader))
	if err != nil {
		return nil, syntaxErrorf(ctxParse, "bad header degree %q", header)
	}

	top := NoDegree
	degrees := make([]int, 0, len(parts)-1)
	coeffs := make([]float64, 0, len(parts)-1)
	for _, raw := range parts[1:] {
		d, c, err := parseRenderedTerm(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		if d > top {
			top = d
		}
		if c == 0 {
			continue
		}
		degrees = append(degrees, d)
		coeffs = append(coeffs, c)
	}
	if top != want {
		return nil, syntaxErrorf(ctxParse, "header degree %d, terms give %d", want, top)
	}

	p, err := FromTerms(degrees, coeffs, opts...)
	if err != nil {
		return nil, polyErrorf(ctxParse, len(degrees), err)
	}

	return p, nil
}

// parseRenderedTerm parses one "a(<k>)=<c>" fragment.
func parseRenderedTerm(s string) (int, float64, error) {
	body, ok := strings.CutPrefix(s, "a(")
	if !ok {
		return 0, 0, syntaxErrorf(ctxParse, "term %q: want a(<degree>)=<coeff>", s)
	}
	ds, cs, ok := strings.Cut(body, _fmtTermEq)
	if !ok {
		return 0, 0, syntaxErrorf(ctxParse, "term %q: want a(<degree>)=<coeff>", s)
	}
	d, err := strconv.Atoi(ds)
	if err != nil {
		return 0, 0, syntaxErrorf(ctxParse, "term %q: bad degree", s)
	}
	c, err := strconv.ParseFloat(cs, 64)
	if err != nil {
		return 0, 0, syntaxErrorf(ctxParse, "term %q: bad coefficient", s)
	}

	return d, c, nil
}

// ParsePairs reads the compact "deg:coeff,deg:coeff" form, e.g.
// "4:213,3:10.32,1:23.123,0:12.521". Whitespace around tokens is ignored;
// an empty string is the zero polynomial.
//
// Errors (wrapped): ErrSyntax, or any FromTerms error.
func ParsePairs(s string, opts ...Option) (*Polynomial, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return New(opts...), nil
	}

	pairs := strings.Split(s, _pairSep)
	degrees := make([]int, 0, len(pairs))
	coeffs := make([]float64, 0, len(pairs))
	for _, pair := range pairs {
		ds, cs, ok := strings.Cut(pair, _pairKV)
		if !ok {
			return nil, syntaxErrorf(ctxParsePairs, "pair %q: want <degree>:<coeff>", pair)
		}
		d, err := strconv.Atoi(strings.TrimSpace(ds))
		if err != nil {
			return nil, syntaxErrorf(ctxParsePairs, "pair %q: bad degree", pair)
		}
		c, err := strconv.ParseFloat(strings.TrimSpace(cs), 64)
		if err != nil {
			return nil, syntaxErrorf(ctxParsePairs, "pair %q: bad coefficient", pair)
		}
		degrees = append(degrees, d)
		coeffs = append(coeffs, c)
	}

	p, err := FromTerms(degrees, coeffs, opts...)
	if err != nil {
		return nil, polyErrorf(ctxParsePairs, len(degrees), err)
	}

	return p, nil
}
