package shamir

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/fieldshare/sss-lib/core/math/gf"
	"github.com/fieldshare/sss-lib/core/math/linalg"
	"github.com/fieldshare/sss-lib/core/math/polynomial"
)

// RecoverPolynomial recovers the polynomial of degree at most degree that
// generated the given evaluations, tolerating up to e = ⌊(m−degree−1)/2⌋
// erroneous y-values, where m = len(xs).
//
// Following Berlekamp and Welch, let E(X) be the monic error locator of
// degree e, vanishing on the erroneous points, and Q(X) = P(X)·E(X), of
// degree at most degree+e. Every point then satisfies Q(xᵢ) = yᵢ·E(xᵢ),
// which is linear in the unknown coefficients of Q and E: one equation
//
//	q₀ + q₁·xᵢ + … + q_degQ·xᵢ^degQ − yᵢ·(e₀ + e₁·xᵢ + … + e_{e−1}·xᵢ^{e−1}) = yᵢ·xᵢᵉ
//
// per point. A solution gives P as the exact quotient Q/E; a nonzero
// remainder means more than e points were corrupted, surfaced as
// ErrTooManyErrors. Too few points for the degree fail with
// ErrTooFewShares, an unsolvable system with ErrSingularSystem.
func RecoverPolynomial(field gf.Field, degree int, xs, ys []gf.Element) (*polynomial.Polynomial, error) {
	m := len(xs)
	if degree < 0 || m < degree+1 || len(ys) != m {
		return nil, ErrTooFewShares
	}
	degE := (m - degree - 1) / 2
	degQ := degree + degE

	// one row per point; unknowns are q₀..q_degQ followed by e₀..e_{degE−1}
	cols := degQ + 1 + degE
	a := make([][]gf.Element, m)
	b := make([]gf.Element, m)
	for i := range xs {
		row := make([]gf.Element, cols)
		xPow := field.One()
		for j := 0; j <= degQ; j++ {
			row[j] = xPow
			xPow = xPow.Mul(xs[i])
		}
		xPow = field.One()
		for j := 0; j < degE; j++ {
			row[degQ+1+j] = ys[i].Mul(xPow).Neg()
			xPow = xPow.Mul(xs[i])
		}
		a[i] = row
		b[i] = ys[i].Mul(xPow) // xPow = xᵢ^degE
	}

	solution, err := linalg.Solve(a, b)
	if err != nil {
		return nil, pkgerrors.WithMessage(ErrSingularSystem, err.Error())
	}

	q := polynomial.NewFrom(field, solution[:degQ+1])
	eCoefficients := make([]gf.Element, degE+1)
	copy(eCoefficients, solution[degQ+1:])
	eCoefficients[degE] = field.One() // E is monic
	e := polynomial.NewFrom(field, eCoefficients)

	p, remainder, err := polynomial.QuoRem(q, e)
	if err != nil {
		return nil, err
	}
	if !remainder.IsZero() || p.Degree() > degree {
		return nil, ErrTooManyErrors
	}
	return p, nil
}
