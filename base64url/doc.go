// Package base64url provides URL-safe, unpadded base64 encoding with
// exact-size decoding and compile-time-predictable output lengths.
//
// The package exists so that token framing code can pre-size buffers
// (EncodedLen is a pure arithmetic function of the input length) and
// reject signatures of the wrong size before comparing them (DecodeExact).
//
// Basic usage:
//
//	import "github.com/dmitrymomot/dangerous/base64url"
//
//	encoded := base64url.EncodeToString(signature)       // no padding, URL-safe
//	raw, err := base64url.DecodeExact(encoded, sha1.Size) // exactly 20 bytes or error
//
// InAlphabet reports whether a byte could occur in encoded output, which
// is what separator validation in the signing packages is built on.
package base64url
