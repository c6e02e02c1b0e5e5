// Package gf implements arithmetic in finite fields of prime order p or
// binary-extension order 2^m.
package gf

import (
	"errors"
	"math/big"
	"math/bits"
)

var (
	ErrInvalidOrder   = errors.New("gf: order is neither prime nor a power of two")
	ErrOutOfRange     = errors.New("gf: integer representation not in field")
	ErrDivisionByZero = errors.New("gf: division by zero")
)

// Field is the immutable description of one finite field. A Field is safe
// for concurrent use; every Element it produces stays bound to it. Fields
// compare by identity: two Fields of the same order constructed separately
// are distinct, and their elements must not be mixed.
type Field interface {
	// Order returns the number of elements in the field.
	Order() uint64
	// Characteristic returns p for a prime field and 2 for a binary field.
	// It is the modulus under which integers embed into the field.
	Characteristic() uint64
	Zero() Element
	One() Element
	// FromUint64 converts an integer in [0, Order) to a field element.
	// Anything outside that range fails with ErrOutOfRange.
	FromUint64(x uint64) (Element, error)
}

// Element is a value of exactly one Field. Elements are immutable: every
// operation returns a new element. Passing an element of a different field
// as an operand is a programming error and panics.
type Element interface {
	Field() Field
	// Uint64 is the exact inverse of Field.FromUint64.
	Uint64() uint64
	IsZero() bool
	Equal(Element) bool
	Add(Element) Element
	Sub(Element) Element
	Neg() Element
	Mul(Element) Element
	// Inv returns the multiplicative inverse. The additive identity has
	// none; it fails with ErrDivisionByZero.
	Inv() (Element, error)
	Div(Element) (Element, error)
	// Exp returns the element raised to the power k, with x⁰ = 1.
	Exp(k uint64) Element
}

// New constructs the finite field of the given order. The order must be a
// prime, or a power of two 2^m with 1 ≤ m ≤ 63; the binary case uses a
// fixed irreducible polynomial of degree m.
func New(order uint64) (Field, error) {
	if order < 2 {
		return nil, ErrInvalidOrder
	}
	if order&(order-1) == 0 {
		return newBinaryField(bits.TrailingZeros64(order))
	}
	// ProbablyPrime(0) is exact below 2⁶⁴.
	if !new(big.Int).SetUint64(order).ProbablyPrime(0) {
		return nil, ErrInvalidOrder
	}
	return newPrimeField(order), nil
}
