package catalogkit

import "errors"

var (
	// ErrInvalidCredentials is the single user-facing login failure. Any
	// non-2xx login response maps to it; the backend's status and body are
	// logged, never surfaced.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrTokenInvalid is returned when a login response carries a token the
	// client cannot decode. The login is aborted and the session stays
	// logged out.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrClientNotReady is returned by operations on a nil or unbuilt
	// client.
	ErrClientNotReady = errors.New("client not ready")
)
