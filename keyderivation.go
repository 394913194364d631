package dangerous

import (
	"crypto/hmac"
	"hash"
)

// KeyDerivation transforms the caller's secret key and a salt into the
// key actually handed to the signing algorithm. The salt namespaces the
// secret: the same secret signing values in unrelated contexts produces
// unrelated signatures, so a token minted for one purpose cannot be
// replayed in another.
//
// This is NOT a password-hardening KDF. There is no iteration count and
// no deliberate slowness; use large random secret keys, not passwords.
type KeyDerivation interface {
	// Derive produces the signing key from secret and salt using digest h.
	// It is a pure function of its inputs: the same (secret, salt, digest)
	// always yields the same key. The output length equals h's digest size.
	Derive(h func() hash.Hash, secret, salt []byte) []byte
}

// Concat derives the key as digest(salt || secret).
type Concat struct{}

// Derive implements KeyDerivation.
func (Concat) Derive(h func() hash.Hash, secret, salt []byte) []byte {
	d := h()
	d.Write(salt)
	d.Write(secret)
	return d.Sum(nil)
}

// DjangoConcat derives the key as digest(salt || "signer" || secret).
// The interposed literal keeps derived keys bit-compatible with Django's
// signing module and with the Python itsdangerous library, which is what
// makes tokens interchangeable with deployments of either.
type DjangoConcat struct{}

// Derive implements KeyDerivation.
func (DjangoConcat) Derive(h func() hash.Hash, secret, salt []byte) []byte {
	d := h()
	d.Write(salt)
	d.Write([]byte("signer"))
	d.Write(secret)
	return d.Sum(nil)
}

// HMACDerivation derives the key as HMAC(key=secret, message=salt).
type HMACDerivation struct{}

// Derive implements KeyDerivation.
func (HMACDerivation) Derive(h func() hash.Hash, secret, salt []byte) []byte {
	m := hmac.New(h, secret)
	m.Write(salt)
	return m.Sum(nil)
}
