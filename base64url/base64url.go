package base64url

import (
	"encoding/base64"
	"fmt"
)

// alphabet is the URL-safe base64 alphabet plus the padding character.
// Separator validation treats '=' as part of the alphabet even though
// encoded output is never padded, so a separator can never collide with
// any byte a base64 codec could emit.
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_="

// EncodedLen returns the length in bytes of the unpadded base64 encoding
// of n input bytes: every full 3-byte group becomes 4 characters, one
// leftover byte becomes 2 and two leftover bytes become 3.
func EncodedLen(n int) int {
	rem := n % 3
	return n/3*4 + rem + min(rem, 1)
}

// Encode returns the URL-safe unpadded base64 encoding of src.
// The result is always exactly EncodedLen(len(src)) bytes.
func Encode(src []byte) []byte {
	dst := make([]byte, EncodedLen(len(src)))
	base64.RawURLEncoding.Encode(dst, src)
	return dst
}

// EncodeToString is Encode returning a string.
func EncodeToString(src []byte) string {
	return base64.RawURLEncoding.EncodeToString(src)
}

// AppendEncode appends the URL-safe unpadded base64 encoding of src to dst
// and returns the extended slice. Callers that pre-size dst with EncodedLen
// avoid any further allocation.
func AppendEncode(dst, src []byte) []byte {
	return base64.RawURLEncoding.AppendEncode(dst, src)
}

// DecodeString decodes a URL-safe unpadded base64 string of any length.
func DecodeString(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}

// DecodeExact decodes s and requires the decoded output to be exactly
// size bytes. Truncated, extended or padded input fails with
// ErrUnexpectedLength; malformed characters fail with the underlying
// codec error. Used to reject signatures that do not match the
// algorithm's fixed output size before any comparison happens.
func DecodeExact(s string, size int) ([]byte, error) {
	// Cheap pre-check: an input whose encoded length is wrong can never
	// decode to size bytes, and rejecting it here keeps the decode buffer
	// exactly sized.
	if len(s) != EncodedLen(size) {
		return nil, fmt.Errorf("%w: got %d encoded bytes, want %d", ErrUnexpectedLength, len(s), EncodedLen(size))
	}

	dst := make([]byte, size)
	n, err := base64.RawURLEncoding.Decode(dst, []byte(s))
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("%w: decoded %d bytes, want %d", ErrUnexpectedLength, n, size)
	}
	return dst, nil
}

// InAlphabet reports whether c can appear in URL-safe base64 output,
// including the padding character. Bytes in the alphabet are unusable as
// framing separators because they could occur inside an encoded segment.
func InAlphabet(c byte) bool {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return true
		}
	}
	return false
}
