package cookie

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSecret indicates no signing secret was provided to the manager.
	ErrNoSecret = errors.New("no secret provided for cookie manager")

	// ErrCookieNotFound indicates the requested cookie doesn't exist in the request.
	ErrCookieNotFound = errors.New("cookie not found in request")

	// ErrInvalidSignature indicates cookie signature verification failed,
	// suggesting tampering or a secret no longer known to the manager.
	ErrInvalidSignature = errors.New("cookie signature verification failed")
)

// ErrCookieTooLarge indicates the cookie exceeds the maximum allowed size.
type ErrCookieTooLarge struct {
	Name string
	Size int
	Max  int
}

// Error implements the error interface.
func (e ErrCookieTooLarge) Error() string {
	return fmt.Sprintf("cookie %q size %d exceeds maximum %d bytes", e.Name, e.Size, e.Max)
}
