// Package rabinids implements Rabin's information dispersal on the Shamir
// kernels. Instead of hiding one secret behind random blinding, the k data
// symbols of each block become the coefficients of the evaluated
// polynomial, so the n dispersed blocks carry the data at an n/k storage
// blowup and any k of them recover it.
package rabinids

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/fieldshare/sss-lib/core/math/gf"
	"github.com/fieldshare/sss-lib/core/math/polynomial"
	"github.com/fieldshare/sss-lib/protocols/shamir"
)

var (
	ErrInvalidConfig        = errors.New("rabinids: invalid scheme configuration")
	ErrLengthNotMultipleOfK = errors.New("rabinids: data length must be a multiple of k, padding is not supported")
	ErrNoBlocks             = errors.New("rabinids: no blocks supplied")
	ErrDuplicateBlock       = errors.New("rabinids: duplicate block index")
	ErrRaggedBlocks         = errors.New("rabinids: blocks disagree on the number of segments")
	ErrTooFewBlocks         = errors.New("rabinids: not enough blocks to reconstruct")
)

// Block is one participant's dispersal output: the evaluation point X and
// one evaluation per k-symbol segment of the original data.
type Block struct {
	X uint64
	Y []uint64
}

// Scheme disperses data into n blocks with reconstruction threshold k over
// the field of the given order. Immutable and safe for concurrent use.
type Scheme struct {
	n, k  int
	field gf.Field
}

// NewScheme applies the same configuration rules as shamir.NewScheme.
func NewScheme(n, k int, order uint64) (*Scheme, error) {
	if k < 1 || n < k || order < uint64(n)+1 {
		return nil, ErrInvalidConfig
	}
	field, err := gf.New(order)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "rabinids")
	}
	return &Scheme{n: n, k: k, field: field}, nil
}

func (s *Scheme) N() int { return s.n }

func (s *Scheme) Threshold() int { return s.k }

func (s *Scheme) Order() uint64 { return s.field.Order() }

// Disperse splits data into segments of k symbols, interprets each segment
// as the coefficients of a degree-<k polynomial and evaluates it at 1..n.
// Every symbol must be in [0, order); the data length must be a multiple
// of k.
func (s *Scheme) Disperse(data []uint64) ([]Block, error) {
	if len(data)%s.k != 0 {
		return nil, ErrLengthNotMultipleOfK
	}
	segments := len(data) / s.k

	blocks := make([]Block, s.n)
	for i := range blocks {
		blocks[i] = Block{X: uint64(i + 1), Y: make([]uint64, 0, segments)}
	}

	coefficients := make([]gf.Element, s.k)
	for seg := 0; seg < segments; seg++ {
		for j := 0; j < s.k; j++ {
			c, err := s.field.FromUint64(data[seg*s.k+j])
			if err != nil {
				return nil, pkgerrors.WithMessage(err, "rabinids: data symbol")
			}
			coefficients[j] = c
		}
		p := polynomial.NewFrom(s.field, coefficients)
		for i := range blocks {
			x, err := s.field.FromUint64(blocks[i].X)
			if err != nil {
				return nil, pkgerrors.WithMessage(err, "rabinids")
			}
			blocks[i].Y = append(blocks[i].Y, p.Evaluate(x).Uint64())
		}
	}
	return blocks, nil
}

// Reconstruct recovers the original data from at least k blocks, in any
// order. The decoder choice mirrors shamir.Reconstruct: Lagrange assumes
// intact blocks, BerlekampWelch corrects up to ⌊(m−k)/2⌋ corrupted
// evaluations per segment, where m is the number of supplied blocks.
func (s *Scheme) Reconstruct(blocks []Block, decoder shamir.Decoder) ([]uint64, error) {
	if decoder != shamir.Lagrange && decoder != shamir.BerlekampWelch {
		return nil, shamir.ErrUnknownDecoder
	}
	if len(blocks) == 0 {
		return nil, ErrNoBlocks
	}
	if len(blocks) < s.k {
		return nil, ErrTooFewBlocks
	}
	segments := len(blocks[0].Y)
	seen := make(map[uint64]struct{}, len(blocks))
	xs := make([]gf.Element, len(blocks))
	for i, block := range blocks {
		if _, ok := seen[block.X]; ok {
			return nil, ErrDuplicateBlock
		}
		seen[block.X] = struct{}{}
		if len(block.Y) != segments {
			return nil, ErrRaggedBlocks
		}
		x, err := s.field.FromUint64(block.X)
		if err != nil {
			return nil, pkgerrors.WithMessage(err, "rabinids: block index")
		}
		xs[i] = x
	}

	data := make([]uint64, 0, segments*s.k)
	ys := make([]gf.Element, len(blocks))
	for seg := 0; seg < segments; seg++ {
		for i, block := range blocks {
			y, err := s.field.FromUint64(block.Y[seg])
			if err != nil {
				return nil, pkgerrors.WithMessage(err, "rabinids: block value")
			}
			ys[i] = y
		}

		var p *polynomial.Polynomial
		var err error
		switch decoder {
		case shamir.Lagrange:
			p, err = polynomial.Interpolate(s.field, xs, ys)
		case shamir.BerlekampWelch:
			p, err = shamir.RecoverPolynomial(s.field, s.k-1, xs, ys)
		}
		if err != nil {
			return nil, err
		}
		if p.Degree() >= s.k {
			// an intact degree-<k segment cannot interpolate higher
			return nil, shamir.ErrTooManyErrors
		}
		for j := 0; j < s.k; j++ {
			data = append(data, p.Coefficient(j).Uint64())
		}
	}
	return data, nil
}
