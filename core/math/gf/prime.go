package gf

import (
	"github.com/cronokirby/saferith"
)

// primeField is GF(p): integer residues mod p on saferith naturals.
type primeField struct {
	order uint64
	mod   *saferith.Modulus
}

func newPrimeField(order uint64) *primeField {
	return &primeField{
		order: order,
		mod:   saferith.ModulusFromNat(new(saferith.Nat).SetUint64(order)),
	}
}

func (f *primeField) Order() uint64 { return f.order }

func (f *primeField) Characteristic() uint64 { return f.order }

func (f *primeField) Zero() Element {
	return &primeElement{field: f, nat: new(saferith.Nat).SetUint64(0)}
}

func (f *primeField) One() Element {
	return &primeElement{field: f, nat: new(saferith.Nat).SetUint64(1)}
}

func (f *primeField) FromUint64(x uint64) (Element, error) {
	if x >= f.order {
		return nil, ErrOutOfRange
	}
	return &primeElement{field: f, nat: new(saferith.Nat).SetUint64(x)}, nil
}

type primeElement struct {
	field *primeField
	nat   *saferith.Nat
}

func (e *primeElement) Field() Field { return e.field }

func (e *primeElement) Uint64() uint64 { return e.nat.Uint64() }

func (e *primeElement) IsZero() bool { return e.nat.Uint64() == 0 }

func (e *primeElement) Equal(other Element) bool {
	o := e.operand(other)
	return e.nat.Eq(o.nat) == 1
}

func (e *primeElement) Add(other Element) Element {
	o := e.operand(other)
	return &primeElement{field: e.field, nat: new(saferith.Nat).ModAdd(e.nat, o.nat, e.field.mod)}
}

func (e *primeElement) Sub(other Element) Element {
	o := e.operand(other)
	return &primeElement{field: e.field, nat: new(saferith.Nat).ModSub(e.nat, o.nat, e.field.mod)}
}

func (e *primeElement) Neg() Element {
	return &primeElement{field: e.field, nat: new(saferith.Nat).ModNeg(e.nat, e.field.mod)}
}

func (e *primeElement) Mul(other Element) Element {
	o := e.operand(other)
	return &primeElement{field: e.field, nat: new(saferith.Nat).ModMul(e.nat, o.nat, e.field.mod)}
}

func (e *primeElement) Inv() (Element, error) {
	if e.IsZero() {
		return nil, ErrDivisionByZero
	}
	return &primeElement{field: e.field, nat: new(saferith.Nat).ModInverse(e.nat, e.field.mod)}, nil
}

func (e *primeElement) Div(other Element) (Element, error) {
	o := e.operand(other)
	inv, err := o.Inv()
	if err != nil {
		return nil, err
	}
	return e.Mul(inv), nil
}

func (e *primeElement) Exp(k uint64) Element {
	exponent := new(saferith.Nat).SetUint64(k)
	return &primeElement{field: e.field, nat: new(saferith.Nat).Exp(e.nat, exponent, e.field.mod)}
}

func (e *primeElement) operand(other Element) *primeElement {
	o, ok := other.(*primeElement)
	if !ok || o.field != e.field {
		panic("gf: operands belong to different fields")
	}
	return o
}
