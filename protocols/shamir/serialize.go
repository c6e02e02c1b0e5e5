package shamir

import (
	"github.com/fxamacker/cbor/v2"
)

type rawShare struct {
	X uint64
	Y uint64
}

type rawParams struct {
	N     int
	K     int
	Order uint64
}

// MarshalBinary encodes the share as CBOR of its two unsigned integers.
func (s Share) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(rawShare{X: s.X, Y: s.Y})
}

func (s *Share) UnmarshalBinary(data []byte) error {
	var raw rawShare
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.X, s.Y = raw.X, raw.Y
	return nil
}

// MarshalBinary encodes the scheme configuration (n, k, order).
func (s *Scheme) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(rawParams{N: s.n, K: s.k, Order: s.field.Order()})
}

// UnmarshalBinary decodes a configuration and rebuilds the scheme through
// NewScheme, so an invalid wire configuration is rejected the same way an
// invalid fresh one is.
func (s *Scheme) UnmarshalBinary(data []byte) error {
	var raw rawParams
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	scheme, err := NewScheme(raw.N, raw.K, raw.Order)
	if err != nil {
		return err
	}
	*s = *scheme
	return nil
}
