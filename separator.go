package dangerous

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/dangerous/base64url"
)

// Separator is the byte that joins the framing segments of a signed
// token. It is validated at construction to sit outside the URL-safe
// base64 alphabet, otherwise it could also occur inside an encoded
// signature or timestamp and splitting would be ambiguous.
type Separator byte

// DefaultSeparator joins token segments unless a signer is configured
// with a different one.
const DefaultSeparator = Separator('.')

// NewSeparator validates c and returns it as a Separator. Any byte in
// the base64 URL-safe alphabet (letters, digits, '-', '_' and the
// padding character '=') is rejected with ErrInvalidSeparator.
func NewSeparator(c byte) (Separator, error) {
	if base64url.InAlphabet(c) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeparator, c)
	}
	return Separator(c), nil
}

// split cuts value at the last occurrence of the separator. The last
// occurrence is the only safe split point: the separator may legally
// appear inside the value portion, but never inside the trailing
// base64-encoded segment.
func (s Separator) split(value string) (string, string, error) {
	i := strings.LastIndexByte(value, byte(s))
	if i < 0 {
		return "", "", fmt.Errorf("%w: %q", ErrSeparatorNotFound, byte(s))
	}
	return value[:i], value[i+1:], nil
}
