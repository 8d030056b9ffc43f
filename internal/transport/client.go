// Package transport issues authenticated HTTP calls against the BuildPro
// API. Every request carries the persisted bearer token and the active
// organization header; responses that signal an expired token are routed
// through a single-flight refresh and retried at most once.
package transport

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
	"time"
)

const defaultTimeout = 30 * time.Second

// TokenStore provides the persisted session state a request needs.
type TokenStore interface {
	AccessToken() (string, error)
	RefreshToken() (string, error)
	OrgID() (string, error)
	SetTokens(access, refresh string) error
	ClearSession() error
}

// Config configures a Client.
type Config struct {
	BaseURL string
	Tokens  TokenStore
	Logger  *slog.Logger

	// Timeout applies per request when the context has no deadline.
	Timeout time.Duration

	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client

	// OnSessionExpired is invoked after a failed refresh has cleared the
	// session state, so the caller can return the user to the login flow.
	OnSessionExpired func()
}

// Client executes API requests.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	logger  *slog.Logger
	refresh *refresher
}

// New creates a Client.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Client{
		baseURL: cfg.BaseURL,
		http:    httpClient,
		tokens:  cfg.Tokens,
		logger:  logger,
	}
	c.refresh = &refresher{
		client:    c,
		timeout:   timeout,
		onExpired: cfg.OnSessionExpired,
	}
	return c
}

// Do executes a JSON API request and returns the envelope's data payload.
// An expired token triggers one refresh-and-retry cycle; if the retried
// request is rejected again the caller sees ErrAuthExpired.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	used, _ := c.tokens.AccessToken()
	data, err := c.once(ctx, method, path, query, body, true)
	if !authExpired(err) {
		return data, err
	}

	if _, rerr := c.refresh.run(ctx, used); rerr != nil {
		return nil, ErrAuthExpired
	}

	data, err = c.once(ctx, method, path, query, body, true)
	if authExpired(err) {
		// Already retried once; do not loop on refresh.
		return nil, ErrAuthExpired
	}
	return data, err
}

// DoOnce executes a request without the refresh-and-retry cycle. The auth
// endpoints use it: a rejected login or logout must not trigger a token
// refresh.
func (c *Client) DoOnce(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	return c.once(ctx, method, path, query, body, true)
}

// once performs a single request with no recovery.
func (c *Client) once(ctx context.Context, method, path string, query url.Values, body any, authed bool) (json.RawMessage, error) {
	status, data, err := c.raw(ctx, method, path, query, body, authed)
	if err != nil {
		return nil, err
	}
	if status >= http.StatusBadRequest {
		return nil, decodeError(status, data)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if env.Error != nil {
		return nil, &APIError{Status: status, Code: env.Error.Code, Message: env.Error.Message}
	}
	return env.Data, nil
}

// raw executes the request and returns status plus the full body.
func (c *Client) raw(ctx context.Context, method, path string, query url.Values, body any, authed bool) (int, []byte, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && c.refresh.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.refresh.timeout)
		defer cancel()
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if err := c.authorize(req); err != nil {
			return 0, nil, err
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response: %w", err)
	}
	return resp.StatusCode, data, nil
}

// authorize attaches the bearer token and active-organization header.
func (c *Client) authorize(req *http.Request) error {
	token, err := c.tokens.AccessToken()
	if err != nil {
		return fmt.Errorf("loading access token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	orgID, err := c.tokens.OrgID()
	if err != nil {
		return fmt.Errorf("loading organization: %w", err)
	}
	if orgID != "" {
		req.Header.Set("X-Organization-ID", orgID)
	}
	return nil
}

// HasSession reports whether an access token is persisted.
func (c *Client) HasSession() bool {
	token, err := c.tokens.AccessToken()
	return err == nil && token != ""
}

// Tokens exposes the session state store.
func (c *Client) Tokens() TokenStore {
	return c.tokens
}

func authExpired(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.AuthExpired()
}
