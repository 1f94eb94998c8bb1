// SPDX-License-Identifier: MIT

package poly

import (
	"encoding/json"
)

// Compile-time assertions for JSON conformance.
var (
	_ json.Marshaler   = (*Polynomial)(nil)
	_ json.Unmarshaler = (*Polynomial)(nil)
)

// MarshalJSON encodes p as an ordered array of terms, highest degree first:
//
//	[{"degree":2,"coeff":1},{"degree":0,"coeff":-1}]
//
// The zero polynomial encodes as [].
func (p *Polynomial) MarshalJSON() ([]byte, error) {
	if len(p.terms) == 0 {
		return []byte("[]"), nil
	}

	return json.Marshal(p.terms)
}

// UnmarshalJSON decodes the MarshalJSON form into p, replacing its terms.
// The input must already be canonical (strictly descending, non-negative
// degrees, no zero coefficients); it is rejected with ErrSyntax otherwise and
// p is left unchanged. A receiver that was never configured (e.g.
// new(Polynomial)) receives the documented defaults; options chosen through a
// constructor are kept even when they coincide with zero values.
func (p *Polynomial) UnmarshalJSON(data []byte) error {
	var terms []Term
	if err := json.Unmarshal(data, &terms); err != nil {
		return syntaxErrorf(ctxUnmarshal, "%v", err)
	}
	if !isCanonical(terms) {
		return syntaxErrorf(ctxUnmarshal, "terms are not canonical")
	}

	opts := p.opts
	if !opts.resolved {
		opts = defaultOptions()
	}
	if d, err := opts.validateAll(terms); err != nil {
		return polyErrorf(ctxUnmarshal, d, err)
	}
	if len(terms) == 0 {
		terms = nil
	}
	p.terms, p.opts = terms, opts

	return nil
}
