// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtHeader   = "degree="
	_fmtTermOpen = "; a("
	_fmtTermEq   = ")="
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Polynomial)(nil)

// Render produces the deterministic textual form
//
//	degree=<d>; a(<k1>)=<c1>; a(<k2>)=<c2>...
//
// with terms from highest to lowest degree. Degrees are plain integers;
// coefficients are fixed-point with RenderPrecision decimals (six by
// default). The zero polynomial renders as "degree=-1".
// Complexity: O(n).
func (p *Polynomial) Render() string {
	var sb strings.Builder
	sb.WriteString(_fmtHeader)
	sb.WriteString(strconv.Itoa(p.Degree()))
	for _, t := range p.terms {
		sb.WriteString(_fmtTermOpen)
		sb.WriteString(strconv.Itoa(t.Degree))
		sb.WriteString(_fmtTermEq)
		sb.WriteString(strconv.FormatFloat(t.Coeff, 'f', p.opts.renderPrecision, 64))
	}

	return sb.String()
}

// String implements fmt.Stringer; identical to Render.
func (p *Polynomial) String() string {
	return p.Render()
}
