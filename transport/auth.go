// Package transport implements the client-side request interceptor: an
// http.RoundTripper that attaches the bearer token to every outgoing
// request and reacts to 401 responses by evicting the session and
// redirecting to the login route.
//
// The tripper is stateless per request. Each round trip reads the token
// fresh from the persisted store, not from the cached session state, so
// it always reflects the latest login or logout, and it holds no memory
// between requests.
package transport

import (
	"net/http"

	"github.com/catalogkit/catalogkit/internal/logutil"
	"github.com/catalogkit/catalogkit/session"
	"github.com/sirupsen/logrus"
)

// Hooks are the side effects the tripper fires on an unauthorized
// response, in order: Logout first, then Navigate to the login route.
// Either may be nil.
type Hooks struct {
	Logout   func()
	Navigate func(path string)
}

// AuthTripper decorates a base RoundTripper with bearer-token attachment
// and 401 handling.
type AuthTripper struct {
	base      http.RoundTripper
	store     session.Store
	hooks     Hooks
	loginPath string
	log       logrus.FieldLogger
	metrics   *Metrics
}

// Option configures an AuthTripper.
type Option func(*AuthTripper)

// WithBase sets the underlying RoundTripper. Defaults to
// http.DefaultTransport.
func WithBase(base http.RoundTripper) Option {
	return func(t *AuthTripper) { t.base = base }
}

// WithHooks sets the unauthorized-response side effects.
func WithHooks(hooks Hooks) Option {
	return func(t *AuthTripper) { t.hooks = hooks }
}

// WithLoginPath sets the path passed to the Navigate hook on a 401.
// Defaults to "/auth/login".
func WithLoginPath(path string) Option {
	return func(t *AuthTripper) { t.loginPath = path }
}

// WithLogger sets the diagnostic logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(t *AuthTripper) { t.log = log }
}

// WithMetrics instruments the tripper with the given metrics.
func WithMetrics(m *Metrics) Option {
	return func(t *AuthTripper) { t.metrics = m }
}

// NewAuthTripper returns a tripper reading tokens from store.
func NewAuthTripper(store session.Store, opts ...Option) *AuthTripper {
	t := &AuthTripper{
		base:      http.DefaultTransport,
		store:     store,
		loginPath: "/auth/login",
		log:       logutil.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RoundTrip implements http.RoundTripper.
//
// A token present in the store is attached as "Authorization: Bearer
// <token>"; an absent token, or a store read failure, dispatches the
// request unauthenticated rather than blocking it. A 401 response triggers
// exactly one Logout and one Navigate, then the response is returned
// unchanged. The tripper never suppresses or rewrites a status, and
// transport errors pass through untouched.
func (t *AuthTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rec, err := t.store.Load(req.Context())
	if err != nil {
		t.log.WithError(err).Warn("session store unreadable, dispatching unauthenticated")
	}
	if rec.Token != "" {
		// Per the RoundTripper contract the original request is not
		// mutated.
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+rec.Token)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.metrics.observe(req.Method, outcomeError)
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		t.log.WithFields(logrus.Fields{
			"method": req.Method,
			"url":    req.URL.Redacted(),
		}).Info("unauthorized response, evicting session")
		t.metrics.observe(req.Method, outcomeUnauthorized)

		if t.hooks.Logout != nil {
			t.hooks.Logout()
		}
		if t.hooks.Navigate != nil {
			t.hooks.Navigate(t.loginPath)
		}
		return resp, nil
	}

	t.metrics.observe(req.Method, outcomeOK)
	return resp, nil
}
