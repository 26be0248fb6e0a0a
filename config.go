package catalogkit

import (
	"errors"
	"strings"
	"time"
)

// Config carries the client's wiring: where the backend lives and where the
// embedding application routes on auth transitions.
//
// Config instances are set up once through the Builder and treated as
// immutable afterwards.
type Config struct {
	// BaseURL is the API root, e.g. "https://localhost:7175/api". Required.
	// Trailing slashes are trimmed.
	BaseURL string

	// LoginRoute is where the application navigates after a 401 evicts the
	// session.
	LoginRoute string

	// HomeRoute is where the guard redirects denied navigations.
	HomeRoute string

	// HTTPTimeout bounds each request end to end. Zero means no client-side
	// timeout; the transport's defaults still apply.
	HTTPTimeout time.Duration
}

// DefaultConfig returns the configuration the Builder starts from.
func DefaultConfig() Config {
	return Config{
		LoginRoute:  "/auth/login",
		HomeRoute:   "/home",
		HTTPTimeout: 30 * time.Second,
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("config: BaseURL is required")
	}
	if c.HTTPTimeout < 0 {
		return errors.New("config: negative HTTPTimeout")
	}
	return nil
}

func (c *Config) normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.LoginRoute == "" {
		c.LoginRoute = "/auth/login"
	}
	if c.HomeRoute == "" {
		c.HomeRoute = "/home"
	}
}
