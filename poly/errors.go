// SPDX-License-Identifier: MIT
// Package poly: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with
// method context via %w); tests and callers MUST match them with errors.Is.
// No operation panics on user-triggered conditions. Panics are reserved for
// nonsensical Option constructor arguments (programmer error).

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrTermNotFound indicates that no term of the requested degree exists.
	ErrTermNotFound = errors.New("poly: no term of this degree")

	// ErrNilPolynomial indicates that a nil *Polynomial was passed as operand or target.
	ErrNilPolynomial = errors.New("poly: nil polynomial")

	// ErrNegativeDegree indicates a degree (or degree shift) below zero.
	ErrNegativeDegree = errors.New("poly: negative degree")

	// ErrDegreeOverflow indicates a degree sum that does not fit in an int.
	ErrDegreeOverflow = errors.New("poly: degree overflow")

	// ErrLengthMismatch indicates that bulk degrees and coefficients differ in length.
	ErrLengthMismatch = errors.New("poly: degrees and coefficients length mismatch")

	// ErrUnsortedInput indicates strict bulk input that is not strictly
	// descending by degree (this includes duplicate degrees).
	ErrUnsortedInput = errors.New("poly: degrees not strictly descending")

	// ErrZeroCoefficient indicates strict bulk input carrying a zero coefficient.
	ErrZeroCoefficient = errors.New("poly: zero coefficient")

	// ErrNaNInf indicates a NaN or ±Inf coefficient under the numeric policy.
	ErrNaNInf = errors.New("poly: NaN or Inf coefficient")

	// ErrSyntax indicates malformed textual or JSON input.
	ErrSyntax = errors.New("poly: syntax error")
)

// Method tags used in error wrappers.
const (
	ctxFromTerms  = "FromTerms"
	ctxFromMap    = "FromMap"
	ctxAddMono    = "AddMonomial"
	ctxRemoveTerm = "RemoveTerm"
	ctxAddPoly    = "AddPolynomial"
	ctxMulMono    = "MultiplyMonomial"
	ctxMulPoly    = "MultiplyPolynomial"
	ctxDuplicate  = "Duplicate"
	ctxParse      = "Parse"
	ctxParsePairs = "ParsePairs"
	ctxUnmarshal  = "UnmarshalJSON"
)

// polyErrorf wraps err with a uniform "Polynomial.<method>(<arg>)" context.
// The sentinel stays reachable through errors.Is.
func polyErrorf(method string, arg interface{}, err error) error {
	return fmt.Errorf("Polynomial.%s(%v): %w", method, arg, err)
}

// syntaxErrorf attaches a position-free description to ErrSyntax.
func syntaxErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("Polynomial.%s: %s: %w", method, fmt.Sprintf(format, args...), ErrSyntax)
}
