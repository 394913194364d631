package serializer

import (
	"encoding/json"
	"fmt"
)

// Signer is the part of the signing core a serializer builds on. Both
// *dangerous.Signer and *dangerous.MultiSigner satisfy it, so a
// serializer participates in key rotation for free.
type Signer interface {
	Sign(value string) string
	Unsign(signed string) (string, error)
}

// Serializer signs structured values: it JSON-marshals the value, runs
// the payload through an Encoding and signs the resulting string. The
// payload is treated as opaque by the signing core; only this package
// ever looks inside it.
type Serializer struct {
	signer   Signer
	encoding Encoding
}

type serializerOptions struct {
	encoding Encoding
}

// Option configures a Serializer or TimedSerializer.
type Option func(*serializerOptions)

// WithEncoding sets the payload encoding. The default is PlainEncoding.
func WithEncoding(enc Encoding) Option {
	return func(o *serializerOptions) {
		o.encoding = enc
	}
}

func applyOptions(opts []Option) serializerOptions {
	o := serializerOptions{encoding: PlainEncoding{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New creates a Serializer over the given signer.
func New(signer Signer, opts ...Option) *Serializer {
	o := applyOptions(opts)
	return &Serializer{signer: signer, encoding: o.encoding}
}

// Sign marshals value to JSON, encodes the payload and signs it.
func (s *Serializer) Sign(value any) (string, error) {
	serialized, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	return s.signer.Sign(s.encoding.Encode(string(serialized))), nil
}

// Unsign verifies signed, decodes the payload and unmarshals it into
// dst. Signature failures come back as the signing core's errors;
// payload failures after a valid signature are ErrPayloadInvalid.
func (s *Serializer) Unsign(signed string, dst any) error {
	payload, err := s.UnsignString(signed)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrPayloadInvalid, err)
	}
	return nil
}

// UnsignString verifies signed and returns the decoded payload without
// unmarshaling it. This is the fallback contract used by
// MultiSerializer: recovering the payload requires no knowledge of the
// caller's target type.
func (s *Serializer) UnsignString(signed string) (string, error) {
	value, err := s.signer.Unsign(signed)
	if err != nil {
		return "", err
	}
	return s.encoding.Decode(value)
}
