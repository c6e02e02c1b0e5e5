package polynomial

import (
	"github.com/fieldshare/sss-lib/core/math/gf"
)

// Interpolate returns the unique polynomial of degree < len(xs) passing
// through the points (xs[i], ys[i]).
//
// The following formula is taken from
// https://en.wikipedia.org/wiki/Lagrange_polynomial
//
//	P(X) = Σᵢ yᵢ ⋅ Πⱼ≠ᵢ (X - xⱼ)/(xᵢ - xⱼ)
//
// It fails with ErrDegenerateInput when no points are supplied, when the
// slices differ in length, or when two x-values coincide.
func Interpolate(field gf.Field, xs, ys []gf.Element) (*Polynomial, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return nil, ErrDegenerateInput
	}
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i].Equal(xs[j]) {
				return nil, ErrDegenerateInput
			}
		}
	}

	result := Zero(field)
	for i := range xs {
		// numerator Πⱼ≠ᵢ (X - xⱼ), denominator Πⱼ≠ᵢ (xᵢ - xⱼ)
		basis := NewFrom(field, []gf.Element{field.One()})
		denominator := field.One()
		for j := range xs {
			if j == i {
				continue
			}
			basis = basis.Mul(NewFrom(field, []gf.Element{xs[j].Neg(), field.One()}))
			denominator = denominator.Mul(xs[i].Sub(xs[j]))
		}
		// distinct x-values keep the denominator nonzero
		scale, err := ys[i].Div(denominator)
		if err != nil {
			return nil, err
		}
		result = result.Add(basis.MulScalar(scale))
	}
	return result, nil
}
