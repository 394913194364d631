package dangerous

// Unsigner verifies a signed token and recovers the embedded value.
// *Signer implements it; so does any previous-generation verifier a
// MultiSigner should keep accepting tokens from.
type Unsigner interface {
	Unsign(signed string) (string, error)
}

// MultiSigner signs with a single primary signer while still accepting
// tokens produced by older ones, which is what makes zero-downtime key
// rotation possible: point MultiSigner at the new key, keep the old keys
// as fallbacks, and retire them once their tokens have aged out.
type MultiSigner struct {
	primary   *Signer
	fallbacks []Unsigner
}

// NewMultiSigner creates a MultiSigner. Fallbacks are only consulted
// during unsigning and are tried in the order given, so list the one
// most likely to hold live tokens first.
func NewMultiSigner(primary *Signer, fallbacks ...Unsigner) *MultiSigner {
	return &MultiSigner{primary: primary, fallbacks: fallbacks}
}

// Sign always signs with the primary. Fallbacks never produce new tokens.
func (m *MultiSigner) Sign(value string) string {
	return m.primary.Sign(value)
}

// Unsign tries the primary first and each fallback in order, returning
// the first successful result. When everything fails the primary's error
// is reported, since the primary is the caller's point of reference.
// The steady-state path where the primary succeeds costs nothing beyond
// a plain Signer.Unsign.
func (m *MultiSigner) Unsign(signed string) (string, error) {
	value, primaryErr := m.primary.Unsign(signed)
	if primaryErr == nil {
		return value, nil
	}

	for _, fb := range m.fallbacks {
		if value, err := fb.Unsign(signed); err == nil {
			return value, nil
		}
	}

	return "", primaryErr
}
