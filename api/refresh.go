package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prashikshan/prashikshan-cli/session"
)

// refreshCall is a single in-flight refresh shared by every request that
// hit a 401 while it was running.
type refreshCall struct {
	done        chan struct{}
	accessToken string
	err         error
}

// refreshTokens exchanges the stored refresh token for a new grant. Any
// number of concurrent callers share one network call; each caller still
// honors its own context while waiting. On failure the session is cleared.
func (c *Client) refreshTokens(ctx context.Context) (string, error) {
	c.refreshMu.Lock()
	call := c.refreshing
	if call == nil {
		call = &refreshCall{done: make(chan struct{})}
		c.refreshing = call

		// The shared call must not die with whichever caller started it.
		refreshCtx := context.WithoutCancel(ctx)
		go func() {
			call.accessToken, call.err = c.doRefresh(refreshCtx)
			c.refreshMu.Lock()
			c.refreshing = nil
			c.refreshMu.Unlock()
			close(call.done)
		}()
	}
	c.refreshMu.Unlock()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-call.done:
		return call.accessToken, call.err
	}
}

// doRefresh performs the refresh network call. It bypasses the normal
// request pipeline: no bearer header and no 401 retry.
func (c *Client) doRefresh(ctx context.Context) (string, error) {
	refreshToken := c.session.RefreshToken()
	if refreshToken == "" {
		if err := c.session.Clear(); err != nil {
			c.logger.Warn("Failed to clear session", "error", err)
		}
		return "", fmt.Errorf("no refresh token stored")
	}

	payload := struct {
		RefreshToken string `json:"refresh_token"`
	}{RefreshToken: refreshToken}

	body, err := marshalBody(payload)
	if err != nil {
		return "", err
	}

	status, respBody, err := c.send(ctx, http.MethodPost, "/api/v1/auth/refresh", nil, body, "")
	if err == nil && (status < 200 || status >= 300) {
		err = newAPIError(status, respBody)
	}
	if err != nil {
		c.metrics.observeRefresh(false)
		if clearErr := c.session.Clear(); clearErr != nil {
			c.logger.Warn("Failed to clear session", "error", clearErr)
		}
		return "", fmt.Errorf("refresh tokens: %w", err)
	}

	var tokens session.Tokens
	if err := unmarshalBody(respBody, &tokens); err != nil {
		c.metrics.observeRefresh(false)
		return "", err
	}
	if err := c.session.SetTokens(tokens); err != nil {
		c.metrics.observeRefresh(false)
		return "", fmt.Errorf("store refreshed tokens: %w", err)
	}

	c.metrics.observeRefresh(true)
	c.logger.Debug("Access token refreshed")
	return tokens.AccessToken, nil
}
