package dangerous_test

import (
	"crypto/sha256"
	"hash"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/dmitrymomot/dangerous"
)

func TestSign(t *testing.T) {
	t.Parallel()

	t.Run("matches python itsdangerous output", func(t *testing.T) {
		t.Parallel()
		signer := dangerous.New("hello")
		assert.Equal(t, "this is a test.hgGT0Zoara4L13FX3_xm-xmfa_0", signer.Sign("this is a test"))
	})

	t.Run("uses configured separator", func(t *testing.T) {
		t.Parallel()
		sep, err := dangerous.NewSeparator('!')
		require.NoError(t, err)

		signer := dangerous.New("hello", dangerous.WithSeparator(sep))
		assert.Equal(t, "this is a test!hgGT0Zoara4L13FX3_xm-xmfa_0", signer.Sign("this is a test"))
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()
		signer := dangerous.New("secret-key")
		assert.Equal(t, signer.Sign("payload"), signer.Sign("payload"))
	})
}

func TestUnsign(t *testing.T) {
	t.Parallel()

	t.Run("round trips arbitrary values", func(t *testing.T) {
		t.Parallel()
		signer := dangerous.New("secret-key")

		values := []string{
			"",
			"hello world",
			"value.with.separators",
			"trailing separator.",
			".leading separator",
			"unicode: héllo wörld ☃",
			strings.Repeat("long", 1024),
		}
		for _, v := range values {
			unsigned, err := signer.Unsign(signer.Sign(v))
			require.NoError(t, err, "value %q", v)
			assert.Equal(t, v, unsigned, "value %q", v)
		}
	})

	t.Run("accepts known good token", func(t *testing.T) {
		t.Parallel()
		signer := dangerous.New("hello")
		unsigned, err := signer.Unsign("this is a test.hgGT0Zoara4L13FX3_xm-xmfa_0")
		require.NoError(t, err)
		assert.Equal(t, "this is a test", unsigned)
	})

	t.Run("rejects token signed with different secret", func(t *testing.T) {
		t.Parallel()
		signed := dangerous.New("secret-one").Sign("payload")
		_, err := dangerous.New("secret-two").Unsign(signed)
		assert.ErrorIs(t, err, dangerous.ErrSignatureMismatch)
	})

	t.Run("rejects token signed with different salt", func(t *testing.T) {
		t.Parallel()
		secret := "shared-secret"
		signed := dangerous.New(secret, dangerous.WithSalt("activate-account")).Sign("user-42")
		_, err := dangerous.New(secret, dangerous.WithSalt("upgrade-account")).Unsign(signed)
		assert.ErrorIs(t, err, dangerous.ErrSignatureMismatch)
	})

	t.Run("detects any single character mutation", func(t *testing.T) {
		t.Parallel()
		signer := dangerous.New("secret-key")
		signed := signer.Sign("this is a test")

		for i := 0; i < len(signed); i++ {
			replacement := byte('A')
			if signed[i] == 'A' {
				replacement = 'B'
			}
			mutated := signed[:i] + string(replacement) + signed[i+1:]
			_, err := signer.Unsign(mutated)
			assert.Error(t, err, "mutation at index %d went undetected", i)
		}
	})

	t.Run("fails on malformed input without panicking", func(t *testing.T) {
		t.Parallel()
		signer := dangerous.New("hello")

		for _, input := range []string{"", "fish", ".", "w.", ".w"} {
			_, err := signer.Unsign(input)
			assert.Error(t, err, "input %q", input)
		}
	})

	t.Run("reports missing separator", func(t *testing.T) {
		t.Parallel()
		signer := dangerous.New("hello")
		_, err := signer.Unsign("no separator here")
		assert.ErrorIs(t, err, dangerous.ErrSeparatorNotFound)
	})

	t.Run("collapses undecodable signature into mismatch", func(t *testing.T) {
		t.Parallel()
		signer := dangerous.New("hello")
		_, err := signer.Unsign("value.!!!not-base64!!!")
		assert.ErrorIs(t, err, dangerous.ErrSignatureMismatch)
	})
}

func TestNewSeparator(t *testing.T) {
	t.Parallel()

	t.Run("rejects every alphabet byte", func(t *testing.T) {
		t.Parallel()
		const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_="
		for i := 0; i < len(alphabet); i++ {
			_, err := dangerous.NewSeparator(alphabet[i])
			assert.ErrorIs(t, err, dangerous.ErrInvalidSeparator, "byte %q", alphabet[i])
		}
	})

	t.Run("accepts everything outside the alphabet", func(t *testing.T) {
		t.Parallel()
		for _, c := range []byte{'.', '!', '#', ':', '~', '|', ' ', '\t'} {
			sep, err := dangerous.NewSeparator(c)
			require.NoError(t, err, "byte %q", c)
			assert.Equal(t, dangerous.Separator(c), sep)
		}
	})
}

func TestKeyDerivation(t *testing.T) {
	t.Parallel()

	sign := func(kd dangerous.KeyDerivation) string {
		return dangerous.New("secret-key", dangerous.WithKeyDerivation(kd)).Sign("payload")
	}

	t.Run("strategies produce distinct signatures", func(t *testing.T) {
		t.Parallel()
		concat := sign(dangerous.Concat{})
		django := sign(dangerous.DjangoConcat{})
		hm := sign(dangerous.HMACDerivation{})

		assert.NotEqual(t, concat, django)
		assert.NotEqual(t, concat, hm)
		assert.NotEqual(t, django, hm)
	})

	t.Run("default is django concat", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, sign(dangerous.DjangoConcat{}), dangerous.New("secret-key").Sign("payload"))
	})

	t.Run("tokens do not verify across strategies", func(t *testing.T) {
		t.Parallel()
		signed := dangerous.New("secret-key", dangerous.WithKeyDerivation(dangerous.Concat{})).Sign("payload")
		_, err := dangerous.New("secret-key", dangerous.WithKeyDerivation(dangerous.HMACDerivation{})).Unsign(signed)
		assert.ErrorIs(t, err, dangerous.ErrSignatureMismatch)
	})
}

func TestAlgorithms(t *testing.T) {
	t.Parallel()

	t.Run("none algorithm emits empty signature", func(t *testing.T) {
		t.Parallel()
		signer := dangerous.New("irrelevant", dangerous.WithAlgorithm(dangerous.NoneAlgorithm{}))

		signed := signer.Sign("payload")
		assert.Equal(t, "payload.", signed)

		unsigned, err := signer.Unsign(signed)
		require.NoError(t, err)
		assert.Equal(t, "payload", unsigned)
	})

	t.Run("sha256 signature has the expected encoded size", func(t *testing.T) {
		t.Parallel()
		signer := dangerous.New("secret-key", dangerous.WithHash(sha256.New))
		signed := signer.Sign("payload")

		// 32 raw bytes encode to 43 characters without padding.
		parts := strings.SplitN(signed, ".", 2)
		require.Len(t, parts, 2)
		assert.Len(t, parts[1], 43)

		unsigned, err := signer.Unsign(signed)
		require.NoError(t, err)
		assert.Equal(t, "payload", unsigned)
	})

	t.Run("non-stdlib digest works through the same path", func(t *testing.T) {
		t.Parallel()
		newBlake := func() hash.Hash {
			h, err := blake2b.New256(nil)
			if err != nil {
				panic(err)
			}
			return h
		}

		signer := dangerous.New("secret-key", dangerous.WithHash(newBlake))
		unsigned, err := signer.Unsign(signer.Sign("payload"))
		require.NoError(t, err)
		assert.Equal(t, "payload", unsigned)

		// Different digest, different derived key, different signature.
		assert.NotEqual(t, signer.Sign("payload"), dangerous.New("secret-key").Sign("payload"))
	})

	t.Run("sha1 token does not verify under sha256", func(t *testing.T) {
		t.Parallel()
		signed := dangerous.New("secret-key").Sign("payload")
		_, err := dangerous.New("secret-key", dangerous.WithHash(sha256.New)).Unsign(signed)
		assert.ErrorIs(t, err, dangerous.ErrSignatureMismatch)
	})
}

func BenchmarkSign(b *testing.B) {
	signer := dangerous.New("secret-key")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		signer.Sign("this is a test")
	}
}

func BenchmarkUnsign(b *testing.B) {
	signer := dangerous.New("secret-key")
	signed := signer.Sign("this is a test")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := signer.Unsign(signed); err != nil {
			b.Fatal(err)
		}
	}
}
