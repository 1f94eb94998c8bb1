// SPDX-License-Identifier: MIT
// Package poly_test contains shared fixtures and assertion helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures (no magic numbers in test bodies).
//   - Centralize the invariant check every mutation test ends with.

package poly_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpoly/poly"
)

// Reference polynomial used across tests: 213x⁴ + 10.32x³ + 23.123x + 12.521.
var (
	refDegrees = []int{4, 3, 1, 0}
	refCoeffs  = []float64{213, 10.32, 23.123, 12.521}
)

// refAtOne is the reference polynomial evaluated at x = 1.
const refAtOne = 258.964

// Numeric tolerances.
const (
	epsEval = 1e-9
	epsFold = 1e-6
)

// Property-test sizing.
const (
	propSeed   = 42
	propRounds = 500
	propMaxDeg = 12
)

// newRef builds the reference polynomial or fails the test.
func newRef(t *testing.T, opts ...poly.Option) *poly.Polynomial {
	t.Helper()
	p, err := poly.FromTerms(refDegrees, refCoeffs, opts...)
	require.NoError(t, err, "FromTerms(reference)")

	return p
}

// xPlusOne builds x + 1.
func xPlusOne(t *testing.T) *poly.Polynomial {
	t.Helper()
	p, err := poly.FromTerms([]int{1, 0}, []float64{1, 1})
	require.NoError(t, err, "FromTerms(x+1)")

	return p
}

// requireCanonical asserts every storage invariant on p.
func requireCanonical(t *testing.T, p *poly.Polynomial, msg string) {
	t.Helper()
	terms := p.Terms()
	require.True(t, poly.ExportedIsCanonical(terms), "%s: not canonical: %v", msg, terms)
	require.Equal(t, len(terms), p.TermCount(), "%s: TermCount drift", msg)
	if len(terms) == 0 {
		require.Equal(t, poly.NoDegree, p.Degree(), "%s: empty degree", msg)
	} else {
		require.Equal(t, terms[0].Degree, p.Degree(), "%s: leading degree", msg)
	}
}

// requireTerms asserts p holds exactly the given degrees and coefficients.
func requireTerms(t *testing.T, p *poly.Polynomial, degrees []int, coeffs []float64, msg string) {
	t.Helper()
	want := make([]poly.Term, len(degrees))
	for i := range degrees {
		want[i] = poly.Term{Degree: degrees[i], Coeff: coeffs[i]}
	}
	got := p.Terms()
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("%s: terms mismatch (-want +got):\n%s", msg, diff)
	}
}

// randomPoly builds a random polynomial through AddMonomial with small integer
// coefficients so that cancellations actually happen.
func randomPoly(t *testing.T, rng *rand.Rand, n int) *poly.Polynomial {
	t.Helper()
	p := poly.New()
	for i := 0; i < n; i++ {
		c := float64(rng.Intn(7) - 3)
		require.NoError(t, p.AddMonomial(rng.Intn(propMaxDeg), c))
	}

	return p
}

// evalPoints are sample abscissae used for value-level comparisons.
var evalPoints = []float64{-2, -1, -0.5, 0, 0.5, 1, 1.5, 2}

// naiveEval evaluates Σ c·x^d over raw pairs (duplicates allowed).
func naiveEval(degrees []int, coeffs []float64, x float64) float64 {
	var s float64
	for i := range degrees {
		s += coeffs[i] * math.Pow(x, float64(degrees[i]))
	}

	return s
}
