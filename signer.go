package dangerous

import (
	"crypto/sha1"
	"fmt"
	"hash"
	"io"

	"github.com/dmitrymomot/dangerous/base64url"
)

// DefaultSalt namespaces signers that do not configure their own salt.
// The literal matches the Python itsdangerous default so tokens stay
// interchangeable across implementations.
const DefaultSalt = "itsdangerous.Signer"

// Signer signs string values and verifies them on the way back,
// detecting any modification made while the value was out of our hands.
//
// The derived key is computed once at construction and reused for every
// operation, so a Signer is cheap to call repeatedly. It holds no
// mutable state after construction and is safe for concurrent use.
type Signer struct {
	derivedKey []byte
	sep        Separator
	alg        Algorithm
	// encodedSigLen is the base64 length of a signature, pre-computed so
	// output buffers are sized exactly once.
	encodedSigLen int
}

type signerOptions struct {
	salt       string
	sep        Separator
	newHash    func() hash.Hash
	derivation KeyDerivation
	alg        Algorithm
}

// Option configures a Signer during construction.
type Option func(*signerOptions)

// WithSalt namespaces the derived key. Two signers with the same secret
// but different salts produce and accept unrelated signatures. Reusing
// one salt across unrelated signing contexts is a security risk.
func WithSalt(salt string) Option {
	return func(o *signerOptions) {
		o.salt = salt
	}
}

// WithSeparator sets the byte joining token segments. Construct it with
// NewSeparator, which rejects bytes from the base64 alphabet.
func WithSeparator(sep Separator) Option {
	return func(o *signerOptions) {
		o.sep = sep
	}
}

// WithHash sets the digest used for key derivation and, unless
// WithAlgorithm overrides it, for the HMAC signing algorithm. The
// default is crypto/sha1, which is what existing itsdangerous and
// Django deployments emit.
func WithHash(h func() hash.Hash) Option {
	return func(o *signerOptions) {
		o.newHash = h
	}
}

// WithKeyDerivation sets the key-derivation strategy. The default is
// DjangoConcat.
func WithKeyDerivation(kd KeyDerivation) Option {
	return func(o *signerOptions) {
		o.derivation = kd
	}
}

// WithAlgorithm replaces the signing algorithm entirely, e.g. with
// NoneAlgorithm. Key derivation still uses the WithHash digest.
func WithAlgorithm(alg Algorithm) Option {
	return func(o *signerOptions) {
		o.alg = alg
	}
}

// New creates a Signer for the given secret key. Without options it
// reproduces the itsdangerous defaults: SHA-1 digest, HMAC signing,
// DjangoConcat key derivation, '.' separator and the DefaultSalt
// namespace.
func New(secretKey string, opts ...Option) *Signer {
	o := signerOptions{
		salt:       DefaultSalt,
		sep:        DefaultSeparator,
		newHash:    sha1.New,
		derivation: DjangoConcat{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.alg == nil {
		o.alg = NewHMACAlgorithm(o.newHash)
	}

	return &Signer{
		derivedKey:    o.derivation.Derive(o.newHash, []byte(secretKey), []byte(o.salt)),
		sep:           o.sep,
		alg:           o.alg,
		encodedSigLen: base64url.EncodedLen(o.alg.Size()),
	}
}

// Sign returns value followed by the separator and the base64-encoded
// signature over value. The output buffer is sized exactly up front.
func (s *Signer) Sign(value string) string {
	out := make([]byte, 0, len(value)+1+s.encodedSigLen)
	out = append(out, value...)
	out = append(out, byte(s.sep))
	out = base64url.AppendEncode(out, s.signature(value))
	return string(out)
}

// Unsign verifies a value produced by Sign and returns the embedded
// value. The result is a substring of the input, no copy is made.
// Failures are ErrSeparatorNotFound when the input cannot be split and
// ErrSignatureMismatch for everything else, including signatures that do
// not even decode.
func (s *Signer) Unsign(signed string) (string, error) {
	value, encodedSig, err := s.sep.split(signed)
	if err != nil {
		return "", err
	}
	if !s.verify(value, encodedSig) {
		return "", fmt.Errorf("%w: signature %q, value %q", ErrSignatureMismatch, encodedSig, value)
	}
	return value, nil
}

// TimestampSigner wraps this signer to sign with timestamps. The derived
// key is shared, not re-derived.
func (s *Signer) TimestampSigner() *TimestampSigner {
	return &TimestampSigner{signer: s}
}

// signature computes the raw signature over value.
func (s *Signer) signature(value string) Signature {
	mac := s.alg.NewMAC(s.derivedKey)
	io.WriteString(mac, value)
	return mac.Sum()
}

// verify reports whether encodedSig is the valid signature for value.
// A signature of the wrong size, with malformed base64 or with the wrong
// bytes all report false the same way; the comparison itself is constant
// time.
func (s *Signer) verify(value, encodedSig string) bool {
	sig, err := base64url.DecodeExact(encodedSig, s.alg.Size())
	if err != nil {
		return false
	}
	return s.signature(value).Equal(sig)
}
