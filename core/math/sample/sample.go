// Package sample draws uniformly random field elements from an injected
// entropy source.
package sample

import (
	cryptorand "crypto/rand"
	"io"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/fieldshare/sss-lib/core/math/gf"
)

// Element returns an element of field drawn uniformly from rand, by
// rejection sampling over the smallest bit width covering the order.
// A nil rand falls back to crypto/rand.Reader.
func Element(rand io.Reader, field gf.Field) (gf.Element, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}

	order := field.Order()
	nBits := bits.Len64(order - 1)
	nBytes := (nBits + 7) / 8
	topMask := byte(0xFF >> uint(8*nBytes-nBits))

	buf := make([]byte, nBytes)
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, errors.WithMessage(err, "sample: failed to read random bytes")
		}
		buf[0] &= topMask
		var x uint64
		for _, b := range buf {
			x = x<<8 | uint64(b)
		}
		if x < order {
			return field.FromUint64(x)
		}
	}
}
