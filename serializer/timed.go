package serializer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrymomot/dangerous"
)

// TimedSerializer is a Serializer over a TimestampSigner: every token
// carries an authenticated signing time and can be rejected by age.
type TimedSerializer struct {
	signer   *dangerous.TimestampSigner
	encoding Encoding
}

// NewTimed creates a TimedSerializer over the given timestamp signer.
func NewTimed(signer *dangerous.TimestampSigner, opts ...Option) *TimedSerializer {
	o := applyOptions(opts)
	return &TimedSerializer{signer: signer, encoding: o.encoding}
}

// Sign marshals, encodes and signs value with the current time.
func (s *TimedSerializer) Sign(value any) (string, error) {
	return s.SignAt(value, time.Now())
}

// SignAt marshals, encodes and signs value with an arbitrary timestamp.
func (s *TimedSerializer) SignAt(value any, t time.Time) (string, error) {
	serialized, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	return s.signer.SignAt(s.encoding.Encode(string(serialized)), t), nil
}

// Unsign verifies signed, unmarshals the payload into dst and returns
// the time the token was signed.
func (s *TimedSerializer) Unsign(signed string, dst any) (time.Time, error) {
	unsigned, err := s.signer.Unsign(signed)
	if err != nil {
		return time.Time{}, err
	}
	if err := s.decode(unsigned.Value(), dst); err != nil {
		return time.Time{}, err
	}
	return unsigned.Timestamp(), nil
}

// UnsignMaxAge is Unsign with an age limit: tokens signed more than
// maxAge ago fail with ErrTimestampExpired before the payload is
// decoded.
func (s *TimedSerializer) UnsignMaxAge(signed string, maxAge time.Duration, dst any) (time.Time, error) {
	unsigned, err := s.signer.Unsign(signed)
	if err != nil {
		return time.Time{}, err
	}
	value, err := unsigned.ValueIfNotExpired(maxAge)
	if err != nil {
		return time.Time{}, err
	}
	if err := s.decode(value, dst); err != nil {
		return time.Time{}, err
	}
	return unsigned.Timestamp(), nil
}

func (s *TimedSerializer) decode(value string, dst any) error {
	payload, err := s.encoding.Decode(value)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrPayloadInvalid, err)
	}
	return nil
}
