// ABOUTME: Client construction for the deckhand API client with functional options.
// ABOUTME: Provides New with explicit token, FromEnv for environment-based setup, and the Logf trace hook.

package weeek

import (
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.weeek.net/public/v1"
	defaultTimeout = 30 * time.Second

	// Environment variables consulted by FromEnv.
	envToken   = "WEEEK_API_TOKEN"
	envBaseURL = "DECKHAND_BASE_URL"
)

// Client talks to the remote project-management API. It is stateless between
// calls: the only state it holds is its configuration. A Client is safe for
// concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client

	// Logf, when non-nil, receives one line per request with method, path,
	// status, and request id. Wire it to a -verbose flag; leave nil to
	// disable tracing.
	Logf func(format string, args ...any)
}

// Option is a functional option for configuring a Client.
type Option func(*Client)

// WithBaseURL overrides the default API base URL. A trailing slash is trimmed
// so paths can always start with "/".
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to layer in a
// custom timeout or transport-level instrumentation.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// WithLogf sets the request trace hook.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(c *Client) {
		c.Logf = logf
	}
}

// New creates a Client authenticated with the given bearer token. It returns
// a ConfigurationError when the token is empty; no operation ever starts
// without a credential.
func New(token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, &ConfigurationError{
			ClientError: ClientError{Message: "missing API token"},
		}
	}

	c := &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FromEnv creates a Client from the environment: WEEEK_API_TOKEN for the
// credential and, when set, DECKHAND_BASE_URL for the base URL. Explicit
// options are applied afterwards and win over the environment.
func FromEnv(opts ...Option) (*Client, error) {
	token := os.Getenv(envToken)
	if token == "" {
		return nil, &ConfigurationError{
			ClientError: ClientError{Message: "no API token found in environment (set " + envToken + ")"},
		}
	}

	var all []Option
	if base := os.Getenv(envBaseURL); base != "" {
		all = append(all, WithBaseURL(base))
	}
	all = append(all, opts...)

	return New(token, all...)
}

// logf writes a trace line through the Logf hook when one is set.
func (c *Client) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}
