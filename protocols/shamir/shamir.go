// Package shamir implements Shamir's threshold secret sharing over a finite
// field of prime or binary-extension order, with two reconstruction
// strategies: erasure-only Lagrange interpolation and error-correcting
// Berlekamp-Welch decoding.
package shamir

import (
	"errors"
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"

	"github.com/fieldshare/sss-lib/core/math/gf"
	"github.com/fieldshare/sss-lib/core/math/polynomial"
	"github.com/fieldshare/sss-lib/logger"
)

// Decoder selects the reconstruction strategy.
type Decoder int

const (
	// Lagrange interpolates through the supplied shares and assumes none
	// of them has been tampered with: a corrupted share silently shifts
	// the result.
	Lagrange Decoder = iota
	// BerlekampWelch corrects up to ⌊(n−k)/2⌋ corrupted shares, at the
	// price of requiring at least k + 2⌊(n−k)/2⌋ shares.
	BerlekampWelch
)

var (
	ErrInvalidConfig    = errors.New("shamir: invalid scheme configuration")
	ErrSecretOutOfRange = fmt.Errorf("shamir: secret not in field: %w", gf.ErrOutOfRange)
	ErrNoShares         = errors.New("shamir: no shares supplied")
	ErrDuplicateShare   = errors.New("shamir: duplicate share index")
	ErrTooFewShares     = errors.New("shamir: not enough shares for error correction")
	ErrSingularSystem   = errors.New("shamir: decoding system has no solution")
	ErrTooManyErrors    = errors.New("shamir: more corrupted shares than the scheme tolerates")
	ErrUnknownDecoder   = errors.New("shamir: unknown decoder")
)

// Share is one participant's point on the secret polynomial: X is the
// evaluation point in [1, n], Y the evaluation in [0, order). The type
// carries no validity flag; a tampered share is told apart from a genuine
// one only by the error-correcting decoder.
type Share struct {
	X uint64
	Y uint64
}

// Scheme is an (n, k) sharing over the field of the given order: n shares
// issued, any k of them sufficient to reconstruct. A Scheme is immutable
// after construction and safe for concurrent use.
type Scheme struct {
	n, k  int
	field gf.Field
}

// NewScheme validates 1 ≤ k ≤ n and order ≥ n+1 (the field must hold the
// evaluation points 0..n, with 0 reserved for the secret), and constructs
// the field of the given order.
func NewScheme(n, k int, order uint64) (*Scheme, error) {
	if k < 1 || n < k || order < uint64(n)+1 {
		return nil, ErrInvalidConfig
	}
	field, err := gf.New(order)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "shamir")
	}

	log := logger.Logger()
	log.Debug().Int("n", n).Int("k", k).Uint64("order", order).Msg("shamir: new scheme")

	return &Scheme{n: n, k: k, field: field}, nil
}

// N returns the number of shares issued by Split.
func (s *Scheme) N() int { return s.n }

// Threshold returns k, the number of shares required for reconstruction.
func (s *Scheme) Threshold() int { return s.k }

// Order returns the order of the underlying field.
func (s *Scheme) Order() uint64 { return s.field.Order() }

// Tolerance returns t = ⌊(n−k)/2⌋, the number of corrupted shares the
// Berlekamp-Welch decoder corrects.
func (s *Scheme) Tolerance() int { return (s.n - s.k) / 2 }

// Share splits secret into n shares at the evaluation points 1..n, any k of
// which recover it. The k−1 blinding coefficients are drawn uniformly from
// rand; a nil rand falls back to crypto/rand.Reader. The secret must be in
// [0, order).
func (s *Scheme) Share(secret uint64, rand io.Reader) ([]Share, error) {
	if secret >= s.field.Order() {
		return nil, ErrSecretOutOfRange
	}
	constant, err := s.field.FromUint64(secret)
	if err != nil {
		return nil, ErrSecretOutOfRange
	}
	poly, err := polynomial.Random(s.field, s.k-1, constant, rand)
	if err != nil {
		return nil, err
	}

	shares := make([]Share, s.n)
	for i := 1; i <= s.n; i++ {
		// order ≥ n+1 keeps every point inside the field
		x, err := s.field.FromUint64(uint64(i))
		if err != nil {
			return nil, pkgerrors.WithMessage(err, "shamir")
		}
		shares[i-1] = Share{X: uint64(i), Y: poly.Evaluate(x).Uint64()}
	}
	return shares, nil
}

// Reconstruct recovers the secret from a subset of shares with the selected
// decoder. Lagrange accepts any nonempty subset of distinct shares and
// returns the interpolated constant term; it needs at least k genuine
// shares to return the true secret. BerlekampWelch requires at least
// k + 2·Tolerance() shares and corrects up to Tolerance() corrupted ones.
func (s *Scheme) Reconstruct(shares []Share, decoder Decoder) (uint64, error) {
	xs, ys, err := s.points(shares)
	if err != nil {
		return 0, err
	}

	log := logger.Logger()
	log.Debug().Int("decoder", int(decoder)).Int("shares", len(shares)).Msg("shamir: reconstruct")

	switch decoder {
	case Lagrange:
		p, err := polynomial.Interpolate(s.field, xs, ys)
		if err != nil {
			return 0, err
		}
		return p.Constant().Uint64(), nil
	case BerlekampWelch:
		t := s.Tolerance()
		if len(shares) < s.k+2*t {
			return 0, ErrTooFewShares
		}
		p, err := RecoverPolynomial(s.field, s.k-1, xs, ys)
		if err != nil {
			return 0, err
		}
		return p.Constant().Uint64(), nil
	default:
		return 0, ErrUnknownDecoder
	}
}

// points converts shares to field element pairs, rejecting empty input,
// duplicate indices and values outside the field.
func (s *Scheme) points(shares []Share) ([]gf.Element, []gf.Element, error) {
	if len(shares) == 0 {
		return nil, nil, ErrNoShares
	}
	seen := make(map[uint64]struct{}, len(shares))
	xs := make([]gf.Element, len(shares))
	ys := make([]gf.Element, len(shares))
	for i, share := range shares {
		if _, ok := seen[share.X]; ok {
			return nil, nil, ErrDuplicateShare
		}
		seen[share.X] = struct{}{}
		x, err := s.field.FromUint64(share.X)
		if err != nil {
			return nil, nil, pkgerrors.WithMessage(err, "shamir: share index")
		}
		y, err := s.field.FromUint64(share.Y)
		if err != nil {
			return nil, nil, pkgerrors.WithMessage(err, "shamir: share value")
		}
		xs[i], ys[i] = x, y
	}
	return xs, ys, nil
}
