// SPDX-License-Identifier: MIT

package poly

// Test-bridge (white-box) for private helpers.
//
// Purpose:
//   - Expose unexported invariant checks to poly_test without widening the
//     production API. Compiled only with the package's tests.

var (
	// ExportedIsCanonical exposes the storage invariant check.
	ExportedIsCanonical = isCanonical

	// ExportedCanonicalize exposes bulk canonicalization.
	ExportedCanonicalize = canonicalize

	// ExportedIsStrictlyDescendingInts exposes the generic ordering check for ints.
	ExportedIsStrictlyDescendingInts = isStrictlyDescending[int]
)

// RawTerms returns the live term slice (no copy) for aliasing tests.
func RawTerms(p *Polynomial) []Term {
	return p.terms
}
