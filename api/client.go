// Package api is a typed client for the Prashikshan REST API. It owns the
// authenticated-request pipeline: bearer attachment from the session store,
// a single coalesced token refresh on 401, and exactly one re-dispatch of
// the failed request with the new token.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/prashikshan/prashikshan-cli/session"
)

// maxResponseSize limits response bodies to prevent memory exhaustion.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// defaultTimeout matches the 15s request timeout of the original apps.
const defaultTimeout = 15 * time.Second

// Client talks to the Prashikshan API on behalf of one session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Store
	logger     *slog.Logger
	metrics    *Metrics

	// refreshMu guards refreshing so that any number of concurrent 401s
	// share a single in-flight refresh call.
	refreshMu  sync.Mutex
	refreshing *refreshCall
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(client *Client) {
		client.logger = logger
	}
}

// WithTimeout sets the per-request timeout. Ignored when d is not positive.
func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		if d > 0 {
			client.httpClient.Timeout = d
		}
	}
}

// WithMetrics sets the metrics collector. When nil, recording is disabled.
func WithMetrics(m *Metrics) ClientOption {
	return func(client *Client) {
		client.metrics = m
	}
}

// NewClient creates a client for the API at baseURL, authenticating from
// the given session store.
func NewClient(baseURL string, sess *session.Store, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if sess == nil {
		return nil, fmt.Errorf("session store is required")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		session: sess,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Session returns the session store the client authenticates from.
func (c *Client) Session() *session.Store {
	return c.session
}

// get issues an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post issues an authenticated POST with a JSON body.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// patch issues an authenticated PATCH with a JSON body.
func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// delete issues an authenticated DELETE.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do runs the full request pipeline: attach bearer, dispatch, and on a 401
// that has not yet been retried, refresh once and re-dispatch exactly once.
// A failed refresh clears the session and the original 401 propagates.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return NewFatalError(fmt.Errorf("marshal request body: %w", err))
		}
	}

	token := c.session.AccessToken()
	status, respBody, err := c.send(ctx, method, path, query, payload, token)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		origErr := newAPIError(status, respBody)

		newToken, refreshErr := c.refreshTokens(ctx)
		if refreshErr != nil {
			c.logger.Warn("Token refresh failed, session cleared",
				"method", method, "path", path, "error", refreshErr)
			return NewFatalError(origErr)
		}

		// Exactly one retry, regardless of its outcome.
		status, respBody, err = c.send(ctx, method, path, query, payload, newToken)
		if err != nil {
			return err
		}
	}

	if status < 200 || status >= 300 {
		return classifyHTTPError(newAPIError(status, respBody))
	}

	if out == nil || status == http.StatusNoContent || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// send dispatches a single HTTP request and reads its body. Network
// failures come back as transient errors; HTTP status handling is the
// caller's concern.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, token string) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, nil, NewFatalError(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("Sending API request", "method", method, "path", path)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observeRequest(method, 0, time.Since(start))
		return 0, nil, NewTransientError(fmt.Errorf("request %s %s: %w", method, path, err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		c.metrics.observeRequest(method, resp.StatusCode, time.Since(start))
		return 0, nil, NewTransientError(fmt.Errorf("read response body: %w", err))
	}

	c.metrics.observeRequest(method, resp.StatusCode, time.Since(start))
	return resp.StatusCode, respBody, nil
}

// setParam adds a query parameter when value is non-empty.
func setParam(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}
