package gf

// binaryField is GF(2^m): elements are uint64 bit-vectors of polynomials of
// degree < m over GF(2), reduced by the irreducible polynomial of degree m
// from the table in tables.go. Fields with m ≤ logTableMaxDegree precompute
// discrete log/exp tables once and serve Mul, Inv and Exp from them.
type binaryField struct {
	m     uint
	order uint64
	mask  uint64 // order − 1
	red   uint64 // low-degree terms of the reduction polynomial
	logT  []uint32
	expT  []uint32
}

// logTableMaxDegree bounds the table specialization to 2×256 KiB per field.
const logTableMaxDegree = 16

func newBinaryField(m int) (*binaryField, error) {
	if m < 1 || m > 63 {
		return nil, ErrInvalidOrder
	}
	f := &binaryField{
		m:     uint(m),
		order: 1 << uint(m),
		mask:  1<<uint(m) - 1,
		red:   irreducible[m],
	}
	if m <= logTableMaxDegree {
		f.buildTables()
	}
	return f, nil
}

func (f *binaryField) Order() uint64 { return f.order }

func (f *binaryField) Characteristic() uint64 { return 2 }

func (f *binaryField) Zero() Element { return &binaryElement{field: f} }

func (f *binaryField) One() Element { return &binaryElement{field: f, bits: 1} }

func (f *binaryField) FromUint64(x uint64) (Element, error) {
	if x >= f.order {
		return nil, ErrOutOfRange
	}
	return &binaryElement{field: f, bits: x}, nil
}

// mulGeneric is shift-and-xor carry-less multiplication with the reduction
// interleaved, so intermediate values never exceed m bits.
func (f *binaryField) mulGeneric(a, b uint64) uint64 {
	var r uint64
	msb := uint64(1) << (f.m - 1)
	for b != 0 {
		if b&1 == 1 {
			r ^= a
		}
		b >>= 1
		carry := a & msb
		a = a << 1 & f.mask
		if carry != 0 {
			a ^= f.red
		}
	}
	return r
}

func (f *binaryField) mul(a, b uint64) uint64 {
	if f.expT == nil {
		return f.mulGeneric(a, b)
	}
	if a == 0 || b == 0 {
		return 0
	}
	n := f.order - 1
	return uint64(f.expT[(uint64(f.logT[a])+uint64(f.logT[b]))%n])
}

func (f *binaryField) exp(a, k uint64) uint64 {
	if f.expT != nil && a != 0 {
		n := f.order - 1
		return uint64(f.expT[uint64(f.logT[a])*(k%n)%n])
	}
	r := uint64(1)
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			r = f.mul(r, a)
		}
		a = f.mulGeneric(a, a)
	}
	return r
}

// inv is a⁻¹ = a^(2^m − 2), Fermat's little theorem on the multiplicative
// group of order 2^m − 1.
func (f *binaryField) inv(a uint64) uint64 {
	if f.expT != nil {
		n := f.order - 1
		return uint64(f.expT[(n-uint64(f.logT[a]))%n])
	}
	return f.exp(a, f.order-2)
}

// buildTables searches the smallest generator of the multiplicative group
// and fills exp/log tables from its power cycle.
func (f *binaryField) buildTables() {
	n := f.order - 1
	if n == 1 { // GF(2): the group is {1}
		f.expT = []uint32{1}
		f.logT = []uint32{0, 0}
		return
	}
	for g := uint64(2); g < f.order; g++ {
		exp := make([]uint32, n)
		log := make([]uint32, f.order)
		x := uint64(1)
		i := uint64(0)
		for {
			exp[i] = uint32(x)
			log[x] = uint32(i)
			x = f.mulGeneric(x, g)
			i++
			if x == 1 {
				break
			}
		}
		if i == n {
			f.expT, f.logT = exp, log
			return
		}
	}
	panic("gf: multiplicative group has no generator, reduction polynomial is reducible")
}

type binaryElement struct {
	field *binaryField
	bits  uint64
}

func (e *binaryElement) Field() Field { return e.field }

func (e *binaryElement) Uint64() uint64 { return e.bits }

func (e *binaryElement) IsZero() bool { return e.bits == 0 }

func (e *binaryElement) Equal(other Element) bool {
	return e.bits == e.operand(other).bits
}

// Add in characteristic 2 is bitwise XOR of the coefficient vectors.
func (e *binaryElement) Add(other Element) Element {
	return &binaryElement{field: e.field, bits: e.bits ^ e.operand(other).bits}
}

// Sub equals Add: every element is its own additive inverse.
func (e *binaryElement) Sub(other Element) Element {
	return &binaryElement{field: e.field, bits: e.bits ^ e.operand(other).bits}
}

func (e *binaryElement) Neg() Element {
	return &binaryElement{field: e.field, bits: e.bits}
}

func (e *binaryElement) Mul(other Element) Element {
	return &binaryElement{field: e.field, bits: e.field.mul(e.bits, e.operand(other).bits)}
}

func (e *binaryElement) Inv() (Element, error) {
	if e.bits == 0 {
		return nil, ErrDivisionByZero
	}
	return &binaryElement{field: e.field, bits: e.field.inv(e.bits)}, nil
}

func (e *binaryElement) Div(other Element) (Element, error) {
	o := e.operand(other)
	inv, err := o.Inv()
	if err != nil {
		return nil, err
	}
	return e.Mul(inv), nil
}

func (e *binaryElement) Exp(k uint64) Element {
	if e.bits == 0 {
		if k == 0 {
			return e.field.One()
		}
		return e.field.Zero()
	}
	return &binaryElement{field: e.field, bits: e.field.exp(e.bits, k)}
}

func (e *binaryElement) operand(other Element) *binaryElement {
	o, ok := other.(*binaryElement)
	if !ok || o.field != e.field {
		panic("gf: operands belong to different fields")
	}
	return o
}
