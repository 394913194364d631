// Package cookie provides HTTP cookie management built on the dangerous
// signing core: plain cookies, tamper-proof signed cookies and signed
// cookies with server-enforced expiry, with graceful secret rotation
// throughout.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/dangerous/cookie"
//
//	manager, err := cookie.New([]string{"your-secret-key"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Plain cookie
//	err = manager.Set(w, "theme", "dark", cookie.WithMaxAge(3600))
//
//	value, err := manager.Get(r, "theme")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//		// Cookie doesn't exist.
//	}
//
//	manager.Delete(w, "theme")
//
// # Signed Cookies
//
// Signed cookies detect any client-side modification:
//
//	err := manager.SetSigned(w, "session_id", sessionID,
//		cookie.WithHTTPOnly(true),
//		cookie.WithSecure(true),
//	)
//
//	sessionID, err := manager.GetSigned(r, "session_id")
//	if errors.Is(err, cookie.ErrInvalidSignature) {
//		// Cookie was tampered with.
//	}
//
// # Expiring Cookies
//
// The Max-Age attribute is enforced by the client, which an attacker
// controls. SetExpiring signs the issue time into the cookie so the
// server enforces the limit itself:
//
//	err := manager.SetExpiring(w, "password_reset", token)
//
//	token, err := manager.GetExpiring(r, "password_reset", 15*time.Minute)
//	if errors.Is(err, dangerous.ErrTimestampExpired) {
//		// Issued more than 15 minutes ago.
//	}
//
// # Key Rotation
//
// Provide secrets newest first. The first one signs all new cookies and
// every listed secret still verifies:
//
//	manager, _ := cookie.New([]string{
//		"new-secret",   // signs
//		"old-secret",   // verifies only
//	})
//
// # Configuration
//
// Use environment variables for production configuration:
//
//	cfg, err := cookie.LoadConfig() // reads COOKIE_* vars, and .env if present
//	manager, err := cookie.NewFromConfig(cfg)
package cookie
