// Package polynomial implements polynomials over a finite field: the secret
// sharing generator, Horner evaluation, Lagrange interpolation and long
// division.
package polynomial

import (
	"errors"
	"io"

	"github.com/fieldshare/sss-lib/core/math/gf"
	"github.com/fieldshare/sss-lib/core/math/sample"
)

var (
	ErrDegenerateInput = errors.New("polynomial: no points, or duplicate evaluation points")
	ErrDivisionByZero  = errors.New("polynomial: division by the zero polynomial")
)

// Polynomial represents f(X) = a₀ + a₁⋅X + … + aₜ⋅Xᵗ over one field.
// Trailing zero coefficients are trimmed on construction, so the last
// stored coefficient of a nonzero polynomial is always nonzero.
type Polynomial struct {
	field        gf.Field
	coefficients []gf.Element
}

// NewFrom builds a polynomial from the coefficient slice, index = power.
// The slice is copied.
func NewFrom(field gf.Field, coefficients []gf.Element) *Polynomial {
	last := len(coefficients)
	for last > 0 && coefficients[last-1].IsZero() {
		last--
	}
	p := &Polynomial{
		field:        field,
		coefficients: make([]gf.Element, last),
	}
	copy(p.coefficients, coefficients[:last])
	return p
}

// Zero returns the zero polynomial.
func Zero(field gf.Field) *Polynomial {
	return &Polynomial{field: field}
}

// Random generates f(X) = constant + a₁⋅X + … + a_degree⋅X^degree with
// coefficients 1..degree drawn uniformly from rand. A nil constant is
// interpreted as 0; a nil rand falls back to crypto/rand.Reader.
func Random(field gf.Field, degree int, constant gf.Element, rand io.Reader) (*Polynomial, error) {
	if constant == nil {
		constant = field.Zero()
	}
	coefficients := make([]gf.Element, degree+1)
	coefficients[0] = constant
	for i := 1; i <= degree; i++ {
		c, err := sample.Element(rand, field)
		if err != nil {
			return nil, err
		}
		coefficients[i] = c
	}
	return NewFrom(field, coefficients), nil
}

func (p *Polynomial) Field() gf.Field { return p.field }

// Degree is the highest power with a nonzero coefficient, or −1 for the
// zero polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

func (p *Polynomial) IsZero() bool {
	return len(p.coefficients) == 0
}

// Constant returns the coefficient of X⁰.
func (p *Polynomial) Constant() gf.Element {
	return p.Coefficient(0)
}

// Coefficient returns the coefficient of Xⁱ, zero beyond the degree.
func (p *Polynomial) Coefficient(i int) gf.Element {
	if i < 0 || i >= len(p.coefficients) {
		return p.field.Zero()
	}
	return p.coefficients[i]
}

// Coefficients returns a copy of the coefficient slice, length Degree()+1.
func (p *Polynomial) Coefficients() []gf.Element {
	out := make([]gf.Element, len(p.coefficients))
	copy(out, p.coefficients)
	return out
}

// Evaluate evaluates the polynomial at x.
// We use Horner's method: https://en.wikipedia.org/wiki/Horner%27s_method
func (p *Polynomial) Evaluate(x gf.Element) gf.Element {
	result := p.field.Zero()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		// bₙ₋₁ = bₙ⋅x + aₙ₋₁
		result = result.Mul(x).Add(p.coefficients[i])
	}
	return result
}

func (p *Polynomial) Equal(q *Polynomial) bool {
	if len(p.coefficients) != len(q.coefficients) {
		return false
	}
	for i := range p.coefficients {
		if !p.coefficients[i].Equal(q.coefficients[i]) {
			return false
		}
	}
	return true
}

func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	long, short := p.coefficients, q.coefficients
	if len(short) > len(long) {
		long, short = short, long
	}
	coefficients := make([]gf.Element, len(long))
	copy(coefficients, long)
	for i := range short {
		coefficients[i] = coefficients[i].Add(short[i])
	}
	return NewFrom(p.field, coefficients)
}

func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero(p.field)
	}
	coefficients := make([]gf.Element, len(p.coefficients)+len(q.coefficients)-1)
	for i := range coefficients {
		coefficients[i] = p.field.Zero()
	}
	for i, a := range p.coefficients {
		for j, b := range q.coefficients {
			coefficients[i+j] = coefficients[i+j].Add(a.Mul(b))
		}
	}
	return NewFrom(p.field, coefficients)
}

// MulScalar multiplies every coefficient by c.
func (p *Polynomial) MulScalar(c gf.Element) *Polynomial {
	coefficients := make([]gf.Element, len(p.coefficients))
	for i, a := range p.coefficients {
		coefficients[i] = a.Mul(c)
	}
	return NewFrom(p.field, coefficients)
}

// QuoRem divides numerator by denominator, returning quotient and remainder
// with deg(remainder) < deg(denominator). Dividing by the zero polynomial
// fails with ErrDivisionByZero.
func QuoRem(numerator, denominator *Polynomial) (*Polynomial, *Polynomial, error) {
	if denominator.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	field := numerator.field
	dDeg := denominator.Degree()
	if numerator.Degree() < dDeg {
		return Zero(field), NewFrom(field, numerator.coefficients), nil
	}

	// leading coefficient is nonzero after trimming
	leadInv, err := denominator.coefficients[dDeg].Inv()
	if err != nil {
		return nil, nil, err
	}

	remainder := make([]gf.Element, len(numerator.coefficients))
	copy(remainder, numerator.coefficients)
	quotient := make([]gf.Element, numerator.Degree()-dDeg+1)
	for i := len(quotient) - 1; i >= 0; i-- {
		c := remainder[i+dDeg].Mul(leadInv)
		quotient[i] = c
		if c.IsZero() {
			continue
		}
		for j, d := range denominator.coefficients {
			remainder[i+j] = remainder[i+j].Sub(c.Mul(d))
		}
	}
	return NewFrom(field, quotient), NewFrom(field, remainder[:dDeg]), nil
}
