// Copyright (c) 2026 NocoDB Go Client Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package nocodb is a client for the NocoDB REST API.  It talks to the v3
// data and meta endpoints, falling back to the v2 meta endpoints for the
// features that self-hosted community-edition instances only expose there
// (bases list, webhooks).
//
// Construct a [Client] with [New], giving it the instance URL and an
// [AuthProvider] (usually an [APIToken]).  All calls take a
// context.Context; transient server errors and rate limiting are retried
// internally.
//
// Query filtering is expressed with the
// github.com/nocogo/nocodb/filters package and passed through
// [ListOptions.Where].
package nocodb

// In this file: the Client, its options, and request plumbing.

import (
	"bytes"
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

	"golang.org/x/time/rate"

	"github.com/nocogo/nocodb/internal/network"
)

// Version is the client library version, used in the User-Agent header.
const Version = "1.0.0"

const defTimeout = 60 * time.Second

// ErrNoAuth is returned by New when no authentication provider is given.
var ErrNoAuth = errors.New("no authentication provider")

// Client is a NocoDB API client.  It is safe for concurrent use.
type Client struct {
	cl      *http.Client
	api     api
	auth    AuthProvider
	lim     *rate.Limiter
	lg      *slog.Logger
	retries int
	ua      string
}

// Option is a functional option for New.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(cl *http.Client) Option {
	return func(c *Client) {
		if cl != nil {
			c.cl = cl
		}
	}
}

// WithLimiter sets the request rate limiter.
func WithLimiter(lim *rate.Limiter) Option {
	return func(c *Client) {
		if lim != nil {
			c.lim = lim
		}
	}
}

// WithLogger sets the logger.  The default is slog.Default().
func WithLogger(lg *slog.Logger) Option {
	return func(c *Client) {
		if lg != nil {
			c.lg = lg
		}
	}
}

// WithRetries sets the maximum number of attempts for transient failures.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.retries = n
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.ua = ua
		}
	}
}

// New creates a Client for the NocoDB instance at baseURL (e.g.
// "https://nocodb.example.com").  auth must not be nil; use [APIToken] for
// API tokens or [JWTToken] for session tokens.
func New(baseURL string, auth AuthProvider, opt ...Option) (*Client, error) {
	if auth == nil {
		return nil, ErrNoAuth
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	c := &Client{
		cl:      &http.Client{Timeout: defTimeout},
		api:     newAPI(baseURL),
		auth:    auth,
		lim:     network.NewLimiter(0, 0),
		lg:      slog.Default(),
		retries: 3,
		ua:      "nocodb-go/" + Version,
	}
	for _, o := range opt {
		o(c)
	}
	return c, nil
}

// BaseURL returns the instance URL the client was created with.
func (c *Client) BaseURL() string {
	return c.api.base
}

// do performs an API call with retry and rate limiting.  body, when
// non-nil, is marshalled to JSON; out, when non-nil, receives the decoded
// response body.
func (c *Client) do(ctx context.Context, method, u string, q url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
	}
	return network.WithRetry(ctx, c.lim, c.retries, func() error {
		return c.roundtrip(ctx, method, u, q, payload, out)
	})
}

// roundtrip performs a single HTTP exchange.
func (c *Client) roundtrip(ctx context.Context, method, u string, q url.Values, payload []byte, out any) error {
	var rdr io.Reader
	if payload != nil {
		rdr = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return err
	}
	if len(q) > 0 {
		req.URL.RawQuery = q.Encode()
	}
	c.auth.Apply(req.Header)
	req.Header.Set("User-Agent", c.ua)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.lg.DebugContext(ctx, "api call", "method", method, "url", req.URL.String())

	resp, err := c.cl.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return apiError(resp)
	}
	if out == nil {
		// drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, u string, q url.Values, out any) error {
	return c.do(ctx, http.MethodGet, u, q, nil, out)
}

func (c *Client) post(ctx context.Context, u string, body, out any) error {
	return c.do(ctx, http.MethodPost, u, nil, body, out)
}

func (c *Client) patch(ctx context.Context, u string, body, out any) error {
	return c.do(ctx, http.MethodPatch, u, nil, body, out)
}

func (c *Client) delete(ctx context.Context, u string, body, out any) error {
	return c.do(ctx, http.MethodDelete, u, nil, body, out)
}

// resolve makes a possibly relative pagination URL absolute against the
// instance URL.
func (c *Client) resolve(next string) string {
	if next == "" || strings.HasPrefix(next, "http://") || strings.HasPrefix(next, "https://") {
		return next
	}
	return c.api.base + "/" + strings.TrimPrefix(next, "/")
}
