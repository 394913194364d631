package dangerous

import (
	"errors"
	"fmt"
	"time"
)

// Error variables cover every terminal failure of the signing protocol.
// Unsigning never retries and never panics on malformed input; each
// failure is reported to the caller exactly once.
var (
	// ErrNoSecretKey indicates a signer was configured without a secret key.
	ErrNoSecretKey = errors.New("no secret key provided for signer")

	// ErrInvalidSeparator indicates the chosen separator collides with the
	// URL-safe base64 alphabet and would make token framing ambiguous.
	ErrInvalidSeparator = errors.New("separator is in the base64 alphabet and cannot be used")

	// ErrSeparatorNotFound indicates the signed value lacks the expected
	// separator, so it cannot be split into value and signature.
	ErrSeparatorNotFound = errors.New("separator not found in signed value")

	// ErrSignatureMismatch indicates signature verification failed. A
	// signature that fails to base64-decode reports the same error as one
	// that decodes but does not match, so unsigning cannot be used as an
	// oracle for which check rejected the token.
	ErrSignatureMismatch = errors.New("signature does not match")

	// ErrTimestampMissing indicates the payload was correctly signed but
	// carries no timestamp segment.
	ErrTimestampMissing = errors.New("signed value carries no timestamp")

	// ErrTimestampInvalid indicates the timestamp segment was signed but
	// cannot be decoded back to a point in time.
	ErrTimestampInvalid = errors.New("timestamp is invalid")

	// ErrTimestampExpired indicates the signed timestamp is older than the
	// max age the caller allowed. Use errors.As with *ExpiredError for the
	// timestamp, max age and recovered value.
	ErrTimestampExpired = errors.New("timestamp expired")
)

// ExpiredError reports an expired signed value together with the context
// a caller needs for diagnostics: when it was signed, the allowed age and
// the recovered value. The value passed signature verification, it is
// merely too old.
type ExpiredError struct {
	Timestamp time.Time
	MaxAge    time.Duration
	Value     string
}

// Error implements the error interface.
func (e *ExpiredError) Error() string {
	return fmt.Sprintf("timestamp %s is older than max age %s", e.Timestamp.Format(time.RFC3339), e.MaxAge)
}

// Unwrap makes errors.Is(err, ErrTimestampExpired) work.
func (e *ExpiredError) Unwrap() error {
	return ErrTimestampExpired
}
