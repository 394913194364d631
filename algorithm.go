package dangerous

import (
	"crypto/hmac"
	"hash"
	"io"
)

// Signature is the fixed-size output of a signing algorithm.
type Signature []byte

// Equal compares two signatures in constant time. Early-exit byte
// comparison would leak how many leading bytes of a forged signature are
// correct, so this is the only comparison the package ever performs.
func (s Signature) Equal(other Signature) bool {
	return hmac.Equal(s, other)
}

// MAC accumulates message bytes and produces a signature. It follows the
// io.Writer convention of hash.Hash: Write never returns an error.
type MAC interface {
	io.Writer

	// Sum returns the signature over everything written so far.
	Sum() Signature
}

// Algorithm turns a key and a message into a fixed-size signature. The
// signature size is a property of the algorithm and never changes for
// the lifetime of a signer built on it.
type Algorithm interface {
	// Size returns the signature size in bytes.
	Size() int

	// NewMAC returns a fresh MAC keyed with key.
	NewMAC(key []byte) MAC
}

// NoneAlgorithm produces empty signatures and accepts any input. It
// disables signing entirely, which is occasionally useful for exercising
// the framing logic in isolation. Never use it for real tokens.
type NoneAlgorithm struct{}

// Size implements Algorithm.
func (NoneAlgorithm) Size() int { return 0 }

// NewMAC implements Algorithm.
func (NoneAlgorithm) NewMAC(_ []byte) MAC { return noneMAC{} }

type noneMAC struct{}

func (noneMAC) Write(p []byte) (int, error) { return len(p), nil }

func (noneMAC) Sum() Signature { return Signature{} }

// HMACAlgorithm signs with an HMAC construction over a configurable
// digest. The signature size equals the digest size.
type HMACAlgorithm struct {
	newHash func() hash.Hash
	size    int
}

// NewHMACAlgorithm returns an HMACAlgorithm over the given digest
// constructor, e.g. sha1.New or sha256.New.
func NewHMACAlgorithm(h func() hash.Hash) HMACAlgorithm {
	return HMACAlgorithm{newHash: h, size: h().Size()}
}

// Size implements Algorithm.
func (a HMACAlgorithm) Size() int { return a.size }

// NewMAC implements Algorithm.
func (a HMACAlgorithm) NewMAC(key []byte) MAC {
	return hmacMAC{h: hmac.New(a.newHash, key)}
}

type hmacMAC struct {
	h hash.Hash
}

func (m hmacMAC) Write(p []byte) (int, error) { return m.h.Write(p) }

func (m hmacMAC) Sum() Signature { return Signature(m.h.Sum(nil)) }
