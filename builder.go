package catalogkit

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/catalogkit/catalogkit/guard"
	"github.com/catalogkit/catalogkit/internal/logutil"
	"github.com/catalogkit/catalogkit/session"
	"github.com/catalogkit/catalogkit/transport"
)

// Builder assembles a [Client]. Configure it during initialization, call
// Build once, and treat the result as immutable.
type Builder struct {
	config    Config
	store     session.Store
	base      http.RoundTripper
	logger    logrus.FieldLogger
	navigator guard.Navigator
	registry  prometheus.Registerer

	built bool
}

// New returns a Builder starting from [DefaultConfig].
func New() *Builder {
	return &Builder{config: DefaultConfig()}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithBaseURL sets the API root.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.BaseURL = baseURL
	return b
}

// WithStore sets the session store. Defaults to an in-process
// [session.MemoryStore].
func (b *Builder) WithStore(store session.Store) *Builder {
	b.store = store
	return b
}

// WithHTTPTransport sets the RoundTripper underneath the auth interceptor.
// Defaults to http.DefaultTransport.
func (b *Builder) WithHTTPTransport(base http.RoundTripper) *Builder {
	b.base = base
	return b
}

// WithLogger sets the diagnostic logger. Defaults to a discard logger.
func (b *Builder) WithLogger(logger logrus.FieldLogger) *Builder {
	b.logger = logger
	return b
}

// WithNavigator sets the navigation sink used by the guard and the 401
// handler. Defaults to [guard.NopNavigator].
func (b *Builder) WithNavigator(nav guard.Navigator) *Builder {
	b.navigator = nav
	return b
}

// WithMetricsRegistry enables request metrics, registered on the given
// registry.
func (b *Builder) WithMetricsRegistry(registry prometheus.Registerer) *Builder {
	b.registry = registry
	return b
}

// Build validates the configuration, restores any persisted session, and
// wires the interceptor pipeline. A Builder builds once.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	b.built = true

	cfg := b.config
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	store := b.store
	if store == nil {
		store = session.NewMemoryStore()
	}
	logger := b.logger
	if logger == nil {
		logger = logutil.Discard()
	}
	nav := b.navigator
	if nav == nil {
		nav = guard.NopNavigator
	}

	state, err := session.Restore(context.Background(), store)
	if err != nil {
		// Storage trouble degrades to logged-out, it never blocks startup.
		logger.WithError(err).Warn("restoring session, starting logged out")
	}

	client := &Client{
		config: cfg,
		store:  store,
		state:  state,
		log:    logger,
		nav:    nav,
	}

	opts := []transport.Option{
		transport.WithLoginPath(cfg.LoginRoute),
		transport.WithLogger(logger),
		transport.WithHooks(transport.Hooks{
			Logout:   client.Logout,
			Navigate: nav.NavigateTo,
		}),
	}
	if b.base != nil {
		opts = append(opts, transport.WithBase(b.base))
	}
	if b.registry != nil {
		opts = append(opts, transport.WithMetrics(transport.NewMetrics(b.registry)))
	}

	client.http = &http.Client{
		Transport: transport.NewAuthTripper(store, opts...),
		Timeout:   cfg.HTTPTimeout,
	}
	return client, nil
}
