package serializer

import (
	"fmt"

	"github.com/dmitrymomot/dangerous/base64url"
)

// Encoding transforms the serialized payload between serialization and
// signing. Encode is total; Decode reports what it cannot reverse.
type Encoding interface {
	Encode(serialized string) string
	Decode(encoded string) (string, error)
}

// PlainEncoding passes the serialized payload through untouched, leaving
// it human-readable inside the token.
type PlainEncoding struct{}

// Encode implements Encoding.
func (PlainEncoding) Encode(serialized string) string { return serialized }

// Decode implements Encoding.
func (PlainEncoding) Decode(encoded string) (string, error) { return encoded, nil }

// Base64Encoding wraps the payload in URL-safe base64. This obfuscates
// the payload and keeps tokens URL-clean, but it is not encryption:
// anyone holding the token can decode it.
type Base64Encoding struct{}

// Encode implements Encoding.
func (Base64Encoding) Encode(serialized string) string {
	return base64url.EncodeToString([]byte(serialized))
}

// Decode implements Encoding.
func (Base64Encoding) Decode(encoded string) (string, error) {
	decoded, err := base64url.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPayloadInvalid, err)
	}
	return string(decoded), nil
}
