// Package serializer signs structured values instead of raw strings.
// Values are JSON-marshaled, optionally encoded (base64 obfuscation) and
// signed with the dangerous package's signers; unsigning verifies first
// and only then parses the payload.
//
// # Basic Usage
//
//	import (
//		"github.com/dmitrymomot/dangerous"
//		"github.com/dmitrymomot/dangerous/serializer"
//	)
//
//	s := serializer.New(dangerous.New("secret-key"))
//
//	signed, err := s.Sign(map[string]int{"user_id": 42})
//	// `{"user_id":42}.<signature>`
//
//	var claims map[string]int
//	err = s.Unsign(signed, &claims)
//
// # Payload Encoding
//
// The payload rides in the token in the clear by default. Base64Encoding
// keeps tokens URL-clean and hides the payload from casual eyes (it is
// not encryption):
//
//	s := serializer.New(signer, serializer.WithEncoding(serializer.Base64Encoding{}))
//
// # Timed Tokens
//
// TimedSerializer adds an authenticated timestamp and an age check:
//
//	ts := serializer.NewTimed(dangerous.NewTimestampSigner("secret-key"))
//
//	signed, err := ts.Sign(claims)
//
//	var out Claims
//	signedAt, err := ts.UnsignMaxAge(signed, time.Hour, &out)
//	if errors.Is(err, dangerous.ErrTimestampExpired) {
//		// Token is older than an hour.
//	}
//
// # Key Rotation
//
// A Serializer accepts any Signer, including dangerous.MultiSigner, so
// plain key rotation needs nothing extra. MultiSerializer covers
// rotations that also change the salt, digest or encoding:
//
//	multi := serializer.NewMulti(current, previous, legacy)
package serializer
