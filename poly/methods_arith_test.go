// SPDX-License-Identifier: MIT

package poly_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpoly/poly"
)

// TestAddPolynomial_Basic adds with merge, insertion and cancellation.
func TestAddPolynomial_Basic(t *testing.T) {
	p := poly.MustFromTerms([]int{3, 1, 0}, []float64{1, 2, 3})
	q := poly.MustFromTerms([]int{4, 1, 0}, []float64{5, -2, 1})
	qBefore := q.Clone()

	require.NoError(t, p.AddPolynomial(q))
	requireCanonical(t, p, "p+q")
	requireTerms(t, p, []int{4, 3, 0}, []float64{5, 1, 4}, "p+q")
	assert.True(t, q.Equal(qBefore), "operand must not be mutated")
}

// TestAddPolynomial_Commutative compares a+b and b+a by value.
func TestAddPolynomial_Commutative(t *testing.T) {
	rng := rand.New(rand.NewSource(propSeed))
	for round := 0; round < 50; round++ {
		a := randomPoly(t, rng, 8)
		b := randomPoly(t, rng, 8)

		ab := a.Clone()
		require.NoError(t, ab.AddPolynomial(b))
		ba := b.Clone()
		require.NoError(t, ba.AddPolynomial(a))

		assert.NotSame(t, ab, ba)
		for _, x := range evalPoints {
			assert.InDelta(t, ab.Evaluate(x), ba.Evaluate(x), epsEval, "round %d x=%v", round, x)
		}
		requireCanonical(t, ab, "a+b")
		requireCanonical(t, ba, "b+a")
	}
}

// TestAddPolynomial_EdgeCases: empty operand, self alias, nil, numeric policy.
func TestAddPolynomial_EdgeCases(t *testing.T) {
	p := newRef(t)
	require.NoError(t, p.AddPolynomial(poly.New()))
	requireTerms(t, p, refDegrees, refCoeffs, "adding zero")

	require.NoError(t, p.AddPolynomial(p))
	requireTerms(t, p, refDegrees, []float64{426, 20.64, 46.246, 25.042}, "p+p doubles")

	assert.ErrorIs(t, p.AddPolynomial(nil), poly.ErrNilPolynomial)

	dirty := poly.MustFromTerms([]int{2, 1}, []float64{1, math.NaN()}, poly.WithNoValidateNaNInf())
	strict := poly.MustFromTerms([]int{1}, []float64{1})
	assert.ErrorIs(t, strict.AddPolynomial(dirty), poly.ErrNaNInf)
	requireTerms(t, strict, []int{1}, []float64{1}, "all-or-nothing on rejection")
}

// TestAddPolynomial_Negation: p + (-p) is the zero polynomial.
func TestAddPolynomial_Negation(t *testing.T) {
	p := newRef(t)
	neg := p.Clone()
	require.NoError(t, neg.MultiplyMonomial(0, -1))

	require.NoError(t, p.AddPolynomial(neg))
	assert.True(t, p.IsZero(), "got %s", p)
	assert.Equal(t, poly.NoDegree, p.Degree())
}

// TestMultiplyMonomial_ShiftScale shifts degrees and scales coefficients.
func TestMultiplyMonomial_ShiftScale(t *testing.T) {
	p := newRef(t)
	require.NoError(t, p.MultiplyMonomial(2, 2))

	requireCanonical(t, p, "x²·2·p")
	requireTerms(t, p, []int{6, 5, 3, 2}, []float64{426, 20.64, 46.246, 25.042}, "x²·2·p")

	require.NoError(t, p.MultiplyMonomial(0, 1))
	requireTerms(t, p, []int{6, 5, 3, 2}, []float64{426, 20.64, 46.246, 25.042}, "identity")
}

// TestMultiplyMonomial_ZeroClears: multiplying by 0 leaves no terms.
func TestMultiplyMonomial_ZeroClears(t *testing.T) {
	for _, shift := range []int{0, 1, 5} {
		p := newRef(t)
		require.NoError(t, p.MultiplyMonomial(shift, 0))
		assert.Equal(t, 0, p.TermCount(), "shift=%d", shift)
		assert.Equal(t, poly.NoDegree, p.Degree())
	}

	empty := poly.New()
	require.NoError(t, empty.MultiplyMonomial(3, 2))
	assert.True(t, empty.IsZero())
}

// TestMultiplyMonomial_Underflow removes terms that scale to exactly zero and
// keeps walking past them.
func TestMultiplyMonomial_Underflow(t *testing.T) {
	p := poly.MustFromTerms([]int{4, 3, 2, 1, 0}, []float64{1, 1e-200, 1e-200, 2, 1e-200})
	require.NoError(t, p.MultiplyMonomial(1, 1e-200))

	requireCanonical(t, p, "after underflow")
	requireTerms(t, p, []int{5, 2}, []float64{1e-200, 2e-200}, "tiny terms dropped")
}

// TestMultiplyMonomial_Errors validates shift and coefficient.
func TestMultiplyMonomial_Errors(t *testing.T) {
	p := newRef(t)
	assert.ErrorIs(t, p.MultiplyMonomial(-1, 2), poly.ErrNegativeDegree)
	assert.ErrorIs(t, p.MultiplyMonomial(1, math.NaN()), poly.ErrNaNInf)
	requireTerms(t, p, refDegrees, refCoeffs, "unchanged after rejection")
}

// TestMultiplyMonomial_DegreeOverflow rejects a shift that would wrap the
// leading degree past math.MaxInt and leaves p untouched.
func TestMultiplyMonomial_DegreeOverflow(t *testing.T) {
	p := poly.MustFromTerms([]int{2, 0}, []float64{1, 1})
	err := p.MultiplyMonomial(math.MaxInt-1, 1)
	assert.ErrorIs(t, err, poly.ErrDegreeOverflow)
	requireTerms(t, p, []int{2, 0}, []float64{1, 1}, "unchanged after overflow")

	require.NoError(t, p.MultiplyMonomial(math.MaxInt-2, 1), "exact fit is allowed")
	requireCanonical(t, p, "shift to MaxInt")
	assert.Equal(t, math.MaxInt, p.Degree())

	z := poly.New()
	require.NoError(t, z.MultiplyMonomial(math.MaxInt, 1), "zero polynomial has nothing to shift")
	assert.True(t, z.IsZero())
}

// TestMultiplyMonomial_OverflowToInf keeps IEEE-754 results; the numeric
// policy checks inputs only.
func TestMultiplyMonomial_OverflowToInf(t *testing.T) {
	p := poly.MustFromTerms([]int{1}, []float64{1e300})
	require.NoError(t, p.MultiplyMonomial(0, 1e300))
	assert.True(t, math.IsInf(p.Coefficient(1), 1))
}

// TestMultiplyPolynomial_Square: (x+1)(x+1) = x² + 2x + 1.
func TestMultiplyPolynomial_Square(t *testing.T) {
	p := xPlusOne(t)
	q := xPlusOne(t)

	require.NoError(t, p.MultiplyPolynomial(q))
	requireCanonical(t, p, "(x+1)²")
	requireTerms(t, p, []int{2, 1, 0}, []float64{1, 2, 1}, "(x+1)²")
	requireTerms(t, q, []int{1, 0}, []float64{1, 1}, "operand untouched")
}

// TestMultiplyPolynomial_SelfAlias squares p in place.
func TestMultiplyPolynomial_SelfAlias(t *testing.T) {
	p := xPlusOne(t)
	require.NoError(t, p.MultiplyPolynomial(p))
	requireTerms(t, p, []int{2, 1, 0}, []float64{1, 2, 1}, "p·p")

	require.NoError(t, p.MultiplyPolynomial(p))
	requireTerms(t, p, []int{4, 3, 2, 1, 0}, []float64{1, 4, 6, 4, 1}, "(x+1)⁴")
}

// TestMultiplyPolynomial_Cancellation: (x+1)(x-1) = x² - 1, the x term vanishes.
func TestMultiplyPolynomial_Cancellation(t *testing.T) {
	p := xPlusOne(t)
	q := poly.MustFromTerms([]int{1, 0}, []float64{1, -1})

	require.NoError(t, p.MultiplyPolynomial(q))
	requireCanonical(t, p, "(x+1)(x-1)")
	requireTerms(t, p, []int{2, 0}, []float64{1, -1}, "(x+1)(x-1)")
}

// TestMultiplyPolynomial_Zero: a zero operand on either side clears p.
func TestMultiplyPolynomial_Zero(t *testing.T) {
	p := newRef(t)
	require.NoError(t, p.MultiplyPolynomial(poly.New()))
	assert.True(t, p.IsZero())

	z := poly.New()
	require.NoError(t, z.MultiplyPolynomial(newRef(t)))
	assert.True(t, z.IsZero())

	assert.ErrorIs(t, newRef(t).MultiplyPolynomial(nil), poly.ErrNilPolynomial)
}

// TestMultiplyPolynomial_DegreeOverflow rejects products whose leading
// degree does not fit in an int, receiver and operand untouched.
func TestMultiplyPolynomial_DegreeOverflow(t *testing.T) {
	p := poly.MustFromTerms([]int{math.MaxInt - 1, 0}, []float64{1, 1})
	q := poly.MustFromTerms([]int{2}, []float64{3})

	assert.ErrorIs(t, p.MultiplyPolynomial(q), poly.ErrDegreeOverflow)
	requireTerms(t, p, []int{math.MaxInt - 1, 0}, []float64{1, 1}, "receiver unchanged")
	requireTerms(t, q, []int{2}, []float64{3}, "operand unchanged")

	assert.ErrorIs(t, p.MultiplyPolynomial(p), poly.ErrDegreeOverflow, "self product")

	one := poly.MustFromTerms([]int{1}, []float64{1})
	require.NoError(t, p.MultiplyPolynomial(one))
	assert.Equal(t, math.MaxInt, p.Degree())
}

// TestMultiplyPolynomial_Property compares the product with pointwise
// multiplication of values on random operands.
func TestMultiplyPolynomial_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(propSeed + 1))
	for round := 0; round < 50; round++ {
		a := randomPoly(t, rng, 6)
		b := randomPoly(t, rng, 6)

		prod := a.Clone()
		require.NoError(t, prod.MultiplyPolynomial(b))
		requireCanonical(t, prod, "a·b")

		for _, x := range evalPoints {
			assert.InDelta(t, a.Evaluate(x)*b.Evaluate(x), prod.Evaluate(x), epsFold, "round %d x=%v", round, x)
		}
		if !a.IsZero() && !b.IsZero() {
			assert.Equal(t, a.Degree()+b.Degree(), prod.Degree(), "leading degrees add")
		}
	}
}

// TestDuplicate_IntoEmpty reproduces p in an empty target.
func TestDuplicate_IntoEmpty(t *testing.T) {
	p := newRef(t)
	target := poly.New()

	require.NoError(t, p.Duplicate(target))
	assert.Equal(t, p.TermCount(), target.TermCount())
	assert.Equal(t, p.Degree(), target.Degree())
	for _, x := range evalPoints {
		assert.Equal(t, p.Evaluate(x), target.Evaluate(x), "x=%v", x)
	}

	// Independent storage: mutating target leaves p alone.
	require.NoError(t, target.MultiplyMonomial(1, 3))
	requireTerms(t, p, refDegrees, refCoeffs, "source after target mutation")
	assert.NotSame(t, &poly.RawTerms(p)[0], &poly.RawTerms(target)[0])
}

// TestDuplicate_Accumulates adds into a non-empty target.
func TestDuplicate_Accumulates(t *testing.T) {
	p := xPlusOne(t)
	target := poly.MustFromTerms([]int{2, 0}, []float64{1, -1})

	require.NoError(t, p.Duplicate(target))
	requireTerms(t, target, []int{2, 1}, []float64{1, 1}, "target + p")
}

// TestDuplicate_EdgeCases: self, nil, numeric policy of the target.
func TestDuplicate_EdgeCases(t *testing.T) {
	p := xPlusOne(t)
	require.NoError(t, p.Duplicate(p))
	requireTerms(t, p, []int{1, 0}, []float64{2, 2}, "self duplicate doubles")

	assert.ErrorIs(t, p.Duplicate(nil), poly.ErrNilPolynomial)

	dirty := poly.MustFromTerms([]int{0}, []float64{math.Inf(1)}, poly.WithNoValidateNaNInf())
	target := poly.New()
	assert.ErrorIs(t, dirty.Duplicate(target), poly.ErrNaNInf)
	assert.True(t, target.IsZero())
}
