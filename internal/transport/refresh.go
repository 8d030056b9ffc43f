package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// refresher recovers from access-token expiry. However many requests hit
// an expired token concurrently, exactly one refresh call is issued; every
// waiter shares the resulting token or the shared failure. A failed refresh
// clears the persisted session and notifies the session-expired hook.
type refresher struct {
	group     singleflight.Group
	client    *Client
	timeout   time.Duration
	onExpired func()
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// run joins or starts the single in-flight refresh and returns the new
// access token. used is the stale token the failed request carried; the
// check against the persisted token happens inside the serialized flight,
// so a request whose rejection arrives after an earlier refresh settled
// does not start another one.
func (r *refresher) run(ctx context.Context, used string) (string, error) {
	// The shared call must not die with the first canceled waiter.
	token, err, _ := r.group.Do("refresh", func() (any, error) {
		current, err := r.client.tokens.AccessToken()
		if err == nil && current != used {
			if current == "" {
				// A failed refresh already tore the session down.
				return "", ErrAuthExpired
			}
			return current, nil
		}
		return r.doRefresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

func (r *refresher) doRefresh(ctx context.Context) (string, error) {
	refreshToken, err := r.client.tokens.RefreshToken()
	if err == nil && refreshToken == "" {
		err = errors.New("no refresh token persisted")
	}

	var access string
	if err == nil {
		access, err = r.call(ctx, refreshToken)
	}

	if err != nil {
		r.client.logger.Warn("token refresh failed, ending session", "error", err)
		r.expireSession()
		return "", fmt.Errorf("%w: %v", ErrAuthExpired, err)
	}

	r.client.logger.Debug("access token refreshed")
	return access, nil
}

func (r *refresher) call(ctx context.Context, refreshToken string) (string, error) {
	status, data, err := r.client.raw(ctx, "POST", "/auth/refresh", nil, refreshRequest{RefreshToken: refreshToken}, false)
	if err != nil {
		return "", err
	}
	if status >= 400 {
		return "", decodeError(status, data)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return "", fmt.Errorf("decoding refresh response: %w", err)
	}
	payload := env.Data
	if payload == nil {
		payload = data
	}

	var tokens refreshResponse
	if err := json.Unmarshal(payload, &tokens); err != nil {
		return "", fmt.Errorf("decoding refresh tokens: %w", err)
	}
	if tokens.AccessToken == "" {
		return "", errors.New("refresh response missing access token")
	}

	if err := r.client.tokens.SetTokens(tokens.AccessToken, tokens.RefreshToken); err != nil {
		return "", fmt.Errorf("persisting refreshed tokens: %w", err)
	}
	return tokens.AccessToken, nil
}

// expireSession clears persisted session state and notifies the hook.
// ClearSession is idempotent, and singleflight guarantees one execution
// per failed refresh even when many requests fail together.
func (r *refresher) expireSession() {
	if err := r.client.tokens.ClearSession(); err != nil {
		r.client.logger.Error("failed to clear session state", "error", err)
	}
	if r.onExpired != nil {
		r.onExpired()
	}
}
