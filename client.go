package catalogkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/catalogkit/catalogkit/catalog"
	"github.com/catalogkit/catalogkit/guard"
	"github.com/catalogkit/catalogkit/session"
	"github.com/catalogkit/catalogkit/token"
)

// Client is the authentication client: it owns login and logout, the only
// two code paths that mutate the session, and hands out the instrumented
// HTTP client everything else uses to reach the backend.
//
// Client is safe for concurrent use. Two overlapping Login calls are not
// serialized against each other; the last one to persist wins.
type Client struct {
	config Config
	store  session.Store
	state  *session.State
	http   *http.Client
	log    logrus.FieldLogger
	nav    guard.Navigator
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// Login authenticates against POST {base}/Auth/login and, on success,
// persists the token with its decoded roles and username, then publishes
// the new session state. The store write completes before any subscriber
// sees the new state.
//
// Any non-2xx response, and any transport failure, forces a logout and
// returns [ErrInvalidCredentials]; the backend's detail is logged, not
// surfaced. A token that cannot be decoded aborts the whole login with
// [ErrTokenInvalid]; the session stays logged out rather than half
// populated.
func (c *Client) Login(ctx context.Context, username, password string) error {
	if c == nil || c.http == nil {
		return ErrClientNotReady
	}

	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("encoding login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/Auth/login", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.Logout()
		c.log.WithError(err).Warn("login request failed")
		return ErrInvalidCredentials
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Logout()
		c.log.WithField("status", resp.StatusCode).Info("login rejected")
		return ErrInvalidCredentials
	}

	var res loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		c.Logout()
		return fmt.Errorf("decoding login response: %w", err)
	}

	claims, err := token.Decode(res.Token)
	if err != nil {
		// The backend answered 2xx but the token is unusable. Treating
		// this as a hard failure keeps the invariant that a logged-in
		// session always carries role data.
		c.Logout()
		c.log.WithError(err).Error("login token undecodable")
		return fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	rec := session.Record{
		Token:    res.Token,
		Roles:    claims.Roles,
		Username: claims.DisplayName,
	}
	if err := c.store.Save(ctx, rec); err != nil {
		c.Logout()
		return fmt.Errorf("persisting session: %w", err)
	}

	c.state.Publish(session.Snapshot{
		LoggedIn: true,
		Roles:    claims.Roles,
		Username: claims.DisplayName,
	})
	c.log.WithField("user", claims.DisplayName).Info("logged in")
	return nil
}

// Logout clears the persisted session and publishes the logged-out state.
// It never fails and is idempotent; a store error is logged and the
// in-memory state is cleared regardless.
func (c *Client) Logout() {
	if c == nil {
		return
	}
	if err := c.store.Clear(context.Background()); err != nil {
		c.log.WithError(err).Warn("clearing session store")
	}
	c.state.Publish(session.Snapshot{})
}

// Session returns the observable session state.
func (c *Client) Session() *session.State { return c.state }

// HTTPClient returns the HTTP client whose transport attaches the bearer
// token and handles 401 eviction. All backend calls should go through it.
func (c *Client) HTTPClient() *http.Client { return c.http }

// Token returns the raw persisted bearer token, empty when logged out.
func (c *Client) Token(ctx context.Context) string {
	rec, err := c.store.Load(ctx)
	if err != nil {
		c.log.WithError(err).Warn("reading session store")
		return ""
	}
	return rec.Token
}

// HasToken reports whether a bearer token is persisted.
func (c *Client) HasToken(ctx context.Context) bool {
	return c.Token(ctx) != ""
}

// IsExpired re-derives expiry from the persisted token. It fails closed:
// no token, an undecodable token, or a token without an expiry claim all
// report expired.
func (c *Client) IsExpired(ctx context.Context) bool {
	raw := c.Token(ctx)
	if raw == "" {
		return true
	}
	claims, err := token.Decode(raw)
	if err != nil {
		return true
	}
	return claims.Expired(time.Now())
}

// HasAnyRole reports whether the session's role set intersects candidates.
func (c *Client) HasAnyRole(candidates ...string) bool {
	return c.state.Snapshot().HasAnyRole(candidates...)
}

// IsAdmin reports whether the session carries the Admin role.
func (c *Client) IsAdmin() bool { return c.HasAnyRole("Admin") }

// Guard returns a route guard bound to this client's session state,
// navigator, and home route.
func (c *Client) Guard() *guard.Guard {
	return guard.New(c.state, c.nav, c.config.HomeRoute, c.log)
}

// Catalog returns the catalog API client bound to this client's base URL
// and instrumented HTTP client.
func (c *Client) Catalog() *catalog.Client {
	return catalog.New(c.config.BaseURL, c.http, catalog.WithLogger(c.log))
}
