// Package dangerous signs values before they are handed to an untrusted
// party (cookies, URL tokens, API tokens) and verifies them on the way
// back, so tampering is detected cheaply and safely. It is a signing
// primitive, not a transport or a session store: everything operates on
// in-memory strings.
//
// The wire format and the default key derivation are compatible with the
// Python itsdangerous library and with Django's signing module, so
// tokens can cross implementation boundaries in either direction.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/dangerous"
//
//	signer := dangerous.New("secret-key")
//
//	signed := signer.Sign("hello world")
//	// "hello world.<base64 signature>"
//
//	value, err := signer.Unsign(signed)
//	if errors.Is(err, dangerous.ErrSignatureMismatch) {
//		// Token was tampered with.
//	}
//
// # Timestamps and Expiry
//
// A TimestampSigner folds a compact, authenticated timestamp into every
// token, so age limits can be enforced at unsign time:
//
//	signer := dangerous.NewTimestampSigner("secret-key")
//
//	signed := signer.Sign("hello world")
//
//	unsigned, err := signer.Unsign(signed)
//	if err != nil {
//		// Bad signature, missing or undecodable timestamp.
//	}
//
//	value, err := unsigned.ValueIfNotExpired(time.Hour)
//	var expired *dangerous.ExpiredError
//	if errors.As(err, &expired) {
//		// Signed at expired.Timestamp, older than expired.MaxAge.
//	}
//
// # Salts
//
// The salt namespaces the derived key. Give every signing context its
// own salt so a token minted for one purpose cannot be replayed in
// another:
//
//	activation := dangerous.New(secret, dangerous.WithSalt("activate-account"))
//	upgrade := dangerous.New(secret, dangerous.WithSalt("upgrade-account"))
//
//	// upgrade.Unsign(activation.Sign("user-42")) fails.
//
// # Key Rotation
//
// A MultiSigner signs with the newest key while still accepting tokens
// from older ones:
//
//	multi := dangerous.NewMultiSigner(
//		dangerous.New("new-secret"),
//		dangerous.New("old-secret"),
//		dangerous.New("older-secret"),
//	)
//
//	signed := multi.Sign("value")      // always the new key
//	value, err := multi.Unsign(signed) // any registered key
//
// # Custom Digests and Algorithms
//
// The digest and signing algorithm are pluggable. SHA-1 with HMAC is the
// compatibility default; any hash.Hash constructor works, including
// non-stdlib ones:
//
//	sha256Signer := dangerous.New(secret, dangerous.WithHash(sha256.New))
//
//	blakeSigner := dangerous.New(secret, dangerous.WithHash(func() hash.Hash {
//		h, _ := blake2b.New256(nil)
//		return h
//	}))
//
// # Security Considerations
//
//   - Use large random secret keys. Key derivation namespaces a secret,
//     it does not harden a weak one.
//   - Signature comparison is constant time, and a signature that fails
//     to decode is indistinguishable from one that does not match.
//   - Signing does not hide the value. A signed token is readable by
//     anyone who holds it; see the serializer package's base64 encoding
//     for obfuscation, or use real encryption for secrecy.
//
// Structured payloads (JSON) are handled by the serializer subpackage,
// and HTTP cookie integration lives in the cookie subpackage.
package dangerous
