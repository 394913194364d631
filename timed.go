package dangerous

import (
	"fmt"
	"io"
	"time"

	"github.com/dmitrymomot/dangerous/base64url"
)

// TimestampSigner wraps a Signer and adds an authenticated timestamp to
// every token, so unsigning can tell when the value was signed and
// enforce a maximum age.
type TimestampSigner struct {
	signer *Signer
}

// NewTimestampSigner creates a TimestampSigner directly. It accepts the
// same options as New.
func NewTimestampSigner(secretKey string, opts ...Option) *TimestampSigner {
	return New(secretKey, opts...).TimestampSigner()
}

// Signer returns the wrapped Signer for signing without timestamps.
func (ts *TimestampSigner) Signer() *Signer {
	return ts.signer
}

// Sign signs value with the current time.
func (ts *TimestampSigner) Sign(value string) string {
	return ts.SignAt(value, time.Now())
}

// SignAt signs value with an arbitrary timestamp. The token is
// value, encoded timestamp and signature joined by the separator, and
// the signature covers value, separator and timestamp as one MAC stream.
// Folding the timestamp into the same signature is what stops a
// timestamp from one token being swapped onto another token's value.
func (ts *TimestampSigner) SignAt(value string, t time.Time) string {
	s := ts.signer
	encodedTS := encodeTimestamp(t)

	mac := s.alg.NewMAC(s.derivedKey)
	io.WriteString(mac, value)
	mac.Write([]byte{byte(s.sep)})
	mac.Write(encodedTS)
	sig := mac.Sum()

	out := make([]byte, 0, len(value)+1+len(encodedTS)+1+s.encodedSigLen)
	out = append(out, value...)
	out = append(out, byte(s.sep))
	out = append(out, encodedTS...)
	out = append(out, byte(s.sep))
	out = base64url.AppendEncode(out, sig)
	return string(out)
}

// Unsign verifies a token produced by Sign or SignAt and returns the
// embedded value and timestamp. The outer framing and signature are
// checked first by the wrapped Signer; a well-signed payload without a
// timestamp segment reports ErrTimestampMissing rather than defaulting,
// and an undecodable timestamp reports ErrTimestampInvalid.
func (ts *TimestampSigner) Unsign(signed string) (UnsignedValue, error) {
	// The wrapped signer strips and verifies {payload}{sep}{signature},
	// leaving payload = {value}{sep}{timestamp}.
	payload, err := ts.signer.Unsign(signed)
	if err != nil {
		return UnsignedValue{}, err
	}

	value, encodedTS, err := ts.signer.sep.split(payload)
	if err != nil {
		return UnsignedValue{}, fmt.Errorf("%w: %q", ErrTimestampMissing, payload)
	}

	t, err := decodeTimestamp(encodedTS)
	if err != nil {
		return UnsignedValue{}, err
	}

	return UnsignedValue{value: value, timestamp: t}, nil
}

// UnsignedValue is a value and timestamp recovered by
// TimestampSigner.Unsign. It only exists on the success path, after the
// signature has been verified; the value is a substring of the original
// token.
type UnsignedValue struct {
	value     string
	timestamp time.Time
}

// Value returns the verified value.
func (u UnsignedValue) Value() string {
	return u.value
}

// Timestamp returns the time the value was signed.
func (u UnsignedValue) Timestamp() time.Time {
	return u.timestamp
}

// ValueIfNotExpired returns the value if it was signed no more than
// maxAge ago, and an ExpiredError otherwise. A timestamp in the future
// counts as not expired: clock skew between signers is expected and a
// forward-dated token has by definition not outlived its age limit.
func (u UnsignedValue) ValueIfNotExpired(maxAge time.Duration) (string, error) {
	if elapsed := time.Since(u.timestamp); elapsed > maxAge {
		return "", &ExpiredError{Timestamp: u.timestamp, MaxAge: maxAge, Value: u.value}
	}
	return u.value, nil
}
