package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/catalogkit/catalogkit/internal/logutil"
)

// Client groups the catalog API services behind one base URL and HTTP
// client.
type Client struct {
	baseURL string
	http    *http.Client
	log     logrus.FieldLogger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the diagnostic logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New returns a catalog client rooted at baseURL, e.g.
// "https://localhost:7175/api". The httpClient should carry the auth
// transport so requests are authenticated.
func New(baseURL string, httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		baseURL: baseURL,
		http:    httpClient,
		log:     logutil.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Products returns the product CRUD service.
func (c *Client) Products() *ProductService { return &ProductService{api: c} }

// Categories returns the category listing service.
func (c *Client) Categories() *CategoryService { return &CategoryService{api: c} }

// Purchases returns the purchase service.
func (c *Client) Purchases() *PurchaseService { return &PurchaseService{api: c} }

// APIError is a non-2xx backend response. Title carries the
// problem-details title when the body provided one.
type APIError struct {
	StatusCode int
	Title      string
}

func (e *APIError) Error() string {
	if e.Title != "" {
		return e.Title
	}
	return fmt.Sprintf("unexpected backend error (status %d)", e.StatusCode)
}

// problemDetails is the slice of RFC 7807 the backend actually uses.
type problemDetails struct {
	Title string `json:"title"`
}

// do issues one request and decodes the response into out when non-nil.
// Non-2xx responses come back as *APIError; transport errors pass through
// wrapped.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var problem problemDetails
		if err := json.NewDecoder(resp.Body).Decode(&problem); err == nil {
			apiErr.Title = problem.Title
		}
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Debug("backend rejected request")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
