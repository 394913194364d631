package base64url_test

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dangerous/base64url"
)

func TestEncodedLen(t *testing.T) {
	t.Parallel()

	t.Run("matches known expansions", func(t *testing.T) {
		t.Parallel()
		// 3 input bytes -> 4 chars, 1 leftover -> 2 chars, 2 leftover -> 3 chars.
		expected := map[int]int{0: 0, 1: 2, 2: 3, 3: 4, 4: 6, 5: 7, 6: 8, 7: 10, 8: 11, 9: 12, 20: 27, 32: 43}
		for n, want := range expected {
			assert.Equal(t, want, base64url.EncodedLen(n), "n=%d", n)
		}
	})

	t.Run("matches actual encoder output for all small sizes", func(t *testing.T) {
		t.Parallel()
		for n := 0; n < 64; n++ {
			buf := make([]byte, n)
			_, err := rand.Read(buf)
			require.NoError(t, err)

			encoded := base64url.Encode(buf)
			assert.Len(t, encoded, base64url.EncodedLen(n), "n=%d", n)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for n := 0; n < 64; n++ {
		buf := make([]byte, n)
		_, err := rand.Read(buf)
		require.NoError(t, err)

		decoded, err := base64url.DecodeExact(base64url.EncodeToString(buf), n)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, buf, decoded, "n=%d", n)
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("no padding and url-safe alphabet only", func(t *testing.T) {
		t.Parallel()
		encoded := base64url.EncodeToString([]byte{0xfb, 0xff, 0xfe, 0x01})
		assert.NotContains(t, encoded, "=")
		assert.NotContains(t, encoded, "+")
		assert.NotContains(t, encoded, "/")
	})

	t.Run("known vector", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "aGVsbG8gd29ybGQ", base64url.EncodeToString([]byte("hello world")))
	})

	t.Run("append into pre-sized buffer", func(t *testing.T) {
		t.Parallel()
		src := []byte("payload")
		dst := make([]byte, 0, base64url.EncodedLen(len(src)))
		dst = base64url.AppendEncode(dst, src)
		assert.Equal(t, base64url.EncodeToString(src), string(dst))
	})
}

func TestDecodeExact(t *testing.T) {
	t.Parallel()

	t.Run("rejects truncated input", func(t *testing.T) {
		t.Parallel()
		encoded := base64url.EncodeToString(make([]byte, 20))
		_, err := base64url.DecodeExact(encoded[:len(encoded)-2], 20)
		assert.ErrorIs(t, err, base64url.ErrUnexpectedLength)
	})

	t.Run("rejects extended input", func(t *testing.T) {
		t.Parallel()
		encoded := base64url.EncodeToString(make([]byte, 20))
		_, err := base64url.DecodeExact(encoded+"AAAA", 20)
		assert.ErrorIs(t, err, base64url.ErrUnexpectedLength)
	})

	t.Run("rejects padded input", func(t *testing.T) {
		t.Parallel()
		_, err := base64url.DecodeExact("aGVsbG8=", 5)
		assert.Error(t, err)
	})

	t.Run("rejects invalid characters", func(t *testing.T) {
		t.Parallel()
		encoded := base64url.EncodeToString(make([]byte, 20))
		corrupted := "!" + encoded[1:]
		_, err := base64url.DecodeExact(corrupted, 20)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, base64url.ErrUnexpectedLength)
	})

	t.Run("accepts exact match", func(t *testing.T) {
		t.Parallel()
		decoded, err := base64url.DecodeExact("aGVsbG8", 5)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), decoded)
	})
}

func TestDecodeString(t *testing.T) {
	t.Parallel()

	decoded, err := base64url.DecodeString("aGVsbG8gd29ybGQ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(decoded))
}

func TestInAlphabet(t *testing.T) {
	t.Parallel()

	const members = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_="

	t.Run("every alphabet byte is a member", func(t *testing.T) {
		t.Parallel()
		for i := 0; i < len(members); i++ {
			assert.True(t, base64url.InAlphabet(members[i]), "byte %q", members[i])
		}
	})

	t.Run("everything else is not", func(t *testing.T) {
		t.Parallel()
		for c := 0; c < 256; c++ {
			want := strings.IndexByte(members, byte(c)) >= 0
			assert.Equal(t, want, base64url.InAlphabet(byte(c)), "byte 0x%02x", c)
		}
	})
}

func BenchmarkEncode(b *testing.B) {
	src := make([]byte, 20)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		base64url.Encode(src)
	}
}

func BenchmarkDecodeExact(b *testing.B) {
	encoded := base64url.EncodeToString(make([]byte, 20))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := base64url.DecodeExact(encoded, 20); err != nil {
			b.Fatal(err)
		}
	}
}
