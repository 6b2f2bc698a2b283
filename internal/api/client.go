// Package api talks to the transactions backend.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Veraticus/finance-dashboard/internal/model"
)

// TransactionsPath is the only endpoint the dashboard reads.
const TransactionsPath = "/transactions"

var (
	// ErrTransport indicates the request never produced a response.
	ErrTransport = errors.New("transactions API unreachable")
	// ErrDecode indicates the response body was not a valid feed.
	ErrDecode = errors.New("malformed transactions response")
	// ErrInvalidBaseURL indicates the configured base URL cannot be used.
	ErrInvalidBaseURL = errors.New("invalid API base URL")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Body       string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("transactions API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("transactions API returned status %d: %s", e.StatusCode, e.Body)
}

// Client reads the transactions feed.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q must be http or https", ErrInvalidBaseURL, baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// GetFeed issues GET /transactions. The request is bound to ctx; cancelling
// ctx abandons it.
func (c *Client) GetFeed(ctx context.Context) (model.Feed, error) {
	endpoint := c.baseURL.JoinPath(TransactionsPath).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Feed{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	slog.Debug("Requesting transactions feed", "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.Feed{}, ctxErr
		}
		return model.Feed{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return model.Feed{}, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var feed model.Feed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return model.Feed{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	slog.Debug("Fetched transactions feed",
		"transactions", len(feed.Transactions),
		"duration", time.Since(start))

	return feed, nil
}
