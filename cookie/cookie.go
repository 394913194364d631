package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrymomot/dangerous"
)

const (
	// MaxCookieSize is the maximum size for a cookie (4KB).
	MaxCookieSize = 4096

	// cookieSalt namespaces cookie signatures so a token minted elsewhere
	// with the same secret can never pass as a cookie value.
	cookieSalt = "cookie.Manager"
)

// Manager handles HTTP cookie operations with tamper-proof signing and
// secret rotation. The first secret signs all new cookies; every secret
// verifies, so rotating means prepending a new secret and keeping the
// old ones until their cookies age out.
type Manager struct {
	signer   *dangerous.MultiSigner
	timed    []*dangerous.TimestampSigner
	defaults Options
	maxSize  int
}

// New creates a cookie manager. At least one non-empty secret is
// required; order matters (newest first).
func New(secrets []string, opts ...Option) (*Manager, error) {
	valid := make([]string, 0, len(secrets))
	for _, s := range secrets {
		if s != "" {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return nil, ErrNoSecret
	}

	signers := make([]*dangerous.Signer, len(valid))
	timed := make([]*dangerous.TimestampSigner, len(valid))
	for i, secret := range valid {
		signers[i] = dangerous.New(secret, dangerous.WithSalt(cookieSalt))
		timed[i] = signers[i].TimestampSigner()
	}

	fallbacks := make([]dangerous.Unsigner, len(signers)-1)
	for i, s := range signers[1:] {
		fallbacks[i] = s
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		signer:   dangerous.NewMultiSigner(signers[0], fallbacks...),
		timed:    timed,
		defaults: applyOptions(defaults, opts),
		maxSize:  MaxCookieSize,
	}, nil
}

// Set stores a plain cookie value.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}

	if header := cookie.String(); len(header) > m.maxSize {
		return ErrCookieTooLarge{Name: name, Size: len(header), Max: m.maxSize}
	}

	http.SetCookie(w, cookie)
	return nil
}

// Get retrieves a cookie value.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

// Delete removes a cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}

// SetSigned stores a signed cookie value. The signature rides inside the
// cookie value; tampering is detected on read.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	return m.Set(w, name, m.signer.Sign(value), opts...)
}

// GetSigned retrieves and verifies a signed cookie value, accepting
// cookies signed with any of the manager's secrets.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}

	value, err := m.signer.Unsign(signed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return value, nil
}

// SetExpiring stores a signed cookie value carrying the signing time, so
// GetExpiring can enforce a server-side age limit that a client cannot
// extend by replaying the cookie (unlike the Max-Age attribute, which
// only the client enforces).
func (m *Manager) SetExpiring(w http.ResponseWriter, name, value string, opts ...Option) error {
	return m.Set(w, name, m.timed[0].Sign(value), opts...)
}

// GetExpiring retrieves a cookie stored with SetExpiring and rejects it
// once it is older than maxAge (dangerous.ErrTimestampExpired). Cookies
// signed with rotated-out secrets verify like in GetSigned.
func (m *Manager) GetExpiring(r *http.Request, name string, maxAge time.Duration) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}

	var primaryErr error
	for i, ts := range m.timed {
		unsigned, err := ts.Unsign(signed)
		if err != nil {
			if i == 0 {
				primaryErr = err
			}
			continue
		}
		return unsigned.ValueIfNotExpired(maxAge)
	}

	return "", fmt.Errorf("%w: %w", ErrInvalidSignature, primaryErr)
}
