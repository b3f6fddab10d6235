// Package fetch is the outbound HTTP client shared by the provider adapters.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/kadong/kadong-backend/internal/domain"
)

// DefaultMaxBytes caps a response body when no limit is configured.
const DefaultMaxBytes = 2 << 20

// ErrTooLarge is returned when a body exceeds the configured limit.
var ErrTooLarge = errors.New("response body too large")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string { return fmt.Sprintf("unexpected status %d", e.Code) }

// Client performs GET requests with a timeout, one retry on 5xx or network
// errors, and a body size cap. Failures wrap domain.ErrUpstream.
type Client struct {
	name       string
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	retryDelay time.Duration
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option { return func(c *Client) { c.userAgent = ua } }

// WithMaxBytes caps response bodies.
func WithMaxBytes(n int64) Option { return func(c *Client) { c.maxBytes = n } }

// WithRetryDelay sets the pause before the single retry.
func WithRetryDelay(d time.Duration) Option { return func(c *Client) { c.retryDelay = d } }

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.httpClient = hc } }

// New creates a Client for the named provider.
func New(name string, timeout time.Duration, logger *slog.Logger, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		name:       name,
		httpClient: &http.Client{Timeout: timeout},
		maxBytes:   DefaultMaxBytes,
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", name),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Get fetches url and returns the body. A 404 is returned as
// domain.ErrNotFound; other failures wrap domain.ErrUpstream.
func (c *Client) Get(ctx context.Context, url string, header http.Header) ([]byte, error) {
	resp, err := c.doWithRetry(ctx, url, header)
	if err != nil {
		c.log.WarnContext(ctx, "provider request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w: %v", c.name, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", c.name, domain.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: %w: %w", c.name, domain.ErrUpstream, &StatusError{Code: resp.StatusCode})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: read body: %v", c.name, domain.ErrUpstream, err)
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("%s: %w: %w", c.name, domain.ErrUpstream, ErrTooLarge)
	}

	c.log.DebugContext(ctx, "provider response",
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
	)
	return body, nil
}

func (c *Client) newRequest(ctx context.Context, url string, header http.Header) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, url string, header http.Header) (*http.Response, error) {
	req, err := c.newRequest(ctx, url, header)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "provider retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	req, err = c.newRequest(ctx, url, header)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}
