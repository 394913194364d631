package serializer

import (
	"encoding/json"
	"fmt"
)

// StringUnsigner recovers the decoded payload string from a token
// without knowing the caller's target type. *Serializer implements it,
// which is what lets serializers built on retired keys act as fallbacks.
type StringUnsigner interface {
	UnsignString(signed string) (string, error)
}

// MultiSerializer signs with one primary serializer while accepting
// tokens from any registered fallback, mirroring
// dangerous.MultiSigner at the structured-payload level. Use it when
// rotation changes more than the key: a different salt, digest or
// payload encoding per generation.
type MultiSerializer struct {
	primary   *Serializer
	fallbacks []StringUnsigner
}

// NewMulti creates a MultiSerializer. Fallbacks are tried in the order
// given, only during unsigning.
func NewMulti(primary *Serializer, fallbacks ...StringUnsigner) *MultiSerializer {
	return &MultiSerializer{primary: primary, fallbacks: fallbacks}
}

// Sign always signs with the primary serializer.
func (m *MultiSerializer) Sign(value any) (string, error) {
	return m.primary.Sign(value)
}

// Unsign tries the primary first, then each fallback in order, stopping
// at the first one whose framing, signature and payload decoding all
// succeed. When nothing succeeds the primary's error is reported.
func (m *MultiSerializer) Unsign(signed string, dst any) error {
	primaryErr := m.primary.Unsign(signed, dst)
	if primaryErr == nil {
		return nil
	}

	for _, fb := range m.fallbacks {
		payload, err := fb.UnsignString(signed)
		if err != nil {
			continue
		}
		if err := json.Unmarshal([]byte(payload), dst); err != nil {
			return fmt.Errorf("%w: %w", ErrPayloadInvalid, err)
		}
		return nil
	}

	return primaryErr
}
