// Package ntt implements the number-theoretic transform: evaluation of a
// coefficient sequence at the powers of a primitive root of unity, and the
// inverse interpolation. It is a standalone accelerator; the sharing and
// reconstruction paths do not depend on it.
package ntt

import (
	"errors"

	"github.com/fieldshare/sss-lib/core/math/gf"
	"github.com/fieldshare/sss-lib/logger"
)

var (
	ErrEmptySequence    = errors.New("ntt: empty coefficient sequence")
	ErrNotPrimitiveRoot = errors.New("ntt: not a primitive n-th root of unity")
	ErrLengthNotInField = errors.New("ntt: sequence length is divisible by the field characteristic")
)

// Forward returns the evaluations of the polynomial with coefficients a at
// w⁰, w¹, …, wⁿ⁻¹, where n = len(a) and w is a primitive n-th root of
// unity in the coefficients' field.
//
// Power-of-two lengths run an iterative in-place Cooley-Tukey butterfly,
// other even lengths a recursive even/odd split, odd lengths the direct
// O(n²) evaluation.
func Forward(a []gf.Element, w gf.Element) ([]gf.Element, error) {
	if err := checkRoot(len(a), w); err != nil {
		return nil, err
	}
	return transform(a, w), nil
}

// Inverse interpolates: it recovers the coefficient sequence whose Forward
// transform under w is a. It evaluates at the powers of w⁻¹ and scales
// every output by n⁻¹.
func Inverse(a []gf.Element, w gf.Element) ([]gf.Element, error) {
	if err := checkRoot(len(a), w); err != nil {
		return nil, err
	}
	wInv, err := w.Inv()
	if err != nil {
		return nil, ErrNotPrimitiveRoot
	}
	field := w.Field()
	n := uint64(len(a))
	nElem, err := field.FromUint64(n % field.Characteristic())
	if err != nil {
		return nil, err
	}
	nInv, err := nElem.Inv()
	if err != nil {
		// n·1 = 0 in the field, n is not invertible
		return nil, ErrLengthNotInField
	}
	out := transform(a, wInv)
	for i := range out {
		out[i] = out[i].Mul(nInv)
	}
	return out, nil
}

// Direct is the O(n²) matrix-vector product, kept exported as the reference
// the fast paths are checked against.
func Direct(a []gf.Element, w gf.Element) ([]gf.Element, error) {
	if err := checkRoot(len(a), w); err != nil {
		return nil, err
	}
	return direct(a, w), nil
}

// checkRoot validates wⁿ = 1 and wⁱ ≠ 1 for 0 < i < n.
func checkRoot(n int, w gf.Element) error {
	if n == 0 {
		return ErrEmptySequence
	}
	one := w.Field().One()
	x := w
	for i := 1; i < n; i++ {
		if x.Equal(one) {
			return ErrNotPrimitiveRoot
		}
		x = x.Mul(w)
	}
	if !x.Equal(one) {
		return ErrNotPrimitiveRoot
	}
	return nil
}

func transform(a []gf.Element, w gf.Element) []gf.Element {
	n := len(a)
	switch {
	case n == 1:
		return []gf.Element{a[0]}
	case n&(n-1) == 0:
		return iterative(a, w)
	case n%2 == 0:
		return radix2(a, w)
	default:
		return direct(a, w)
	}
}

// iterative is the in-place Cooley-Tukey butterfly over a bit-reversed
// copy of the input. Only reachable for power-of-two n ≥ 2, which a
// primitive root restricts to fields of odd characteristic.
func iterative(a []gf.Element, w gf.Element) []gf.Element {
	n := len(a)
	log := logger.Logger()
	log.Debug().Int("n", n).Msg("ntt: iterative cooley-tukey")

	out := make([]gf.Element, n)
	copy(out, a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			out[i], out[j] = out[j], out[i]
		}
	}

	one := w.Field().One()
	for m := 2; m <= n; m <<= 1 {
		wm := w.Exp(uint64(n / m))
		for k := 0; k < n; k += m {
			wj := one
			for j := 0; j < m/2; j++ {
				t := wj.Mul(out[k+j+m/2])
				u := out[k+j]
				out[k+j] = u.Add(t)
				out[k+j+m/2] = u.Sub(t)
				wj = wj.Mul(wm)
			}
		}
	}
	return out
}

// radix2 splits even and odd coefficients, transforms both halves with w²
// and recombines: X_k = E_(k mod n/2) + wᵏ·O_(k mod n/2).
func radix2(a []gf.Element, w gf.Element) []gf.Element {
	n := len(a)
	half := n / 2
	even := make([]gf.Element, half)
	odd := make([]gf.Element, half)
	for i := 0; i < half; i++ {
		even[i] = a[2*i]
		odd[i] = a[2*i+1]
	}
	e := transform(even, w.Mul(w))
	o := transform(odd, w.Mul(w))

	out := make([]gf.Element, n)
	wk := w.Field().One()
	for k := 0; k < n; k++ {
		out[k] = e[k%half].Add(wk.Mul(o[k%half]))
		wk = wk.Mul(w)
	}
	return out
}

// direct evaluates the polynomial at every power of w by Horner's method.
func direct(a []gf.Element, w gf.Element) []gf.Element {
	n := len(a)
	field := w.Field()
	out := make([]gf.Element, n)
	x := field.One()
	for k := 0; k < n; k++ {
		acc := field.Zero()
		for i := n - 1; i >= 0; i-- {
			acc = acc.Mul(x).Add(a[i])
		}
		out[k] = acc
		x = x.Mul(w)
	}
	return out
}
