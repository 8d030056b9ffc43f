package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/buildpro/buildpro-go/internal/transport"
	"github.com/stretchr/testify/require"
)

const authExpiredBody = `{"success": false, "error": {"code": "TOKEN_EXPIRED", "message": "Token has expired"}}`

// refreshingServer serves /projects only with the refreshed token and
// counts calls to /auth/refresh.
type refreshingServer struct {
	*httptest.Server
	refreshCalls atomic.Int64
	failRefresh  bool
}

func newRefreshingServer(t *testing.T) *refreshingServer {
	t.Helper()
	srv := &refreshingServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			srv.refreshCalls.Add(1)
			var req struct {
				RefreshToken string `json:"refresh_token"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if srv.failRefresh || req.RefreshToken == "" {
				writeJSON(w, http.StatusUnauthorized,
					`{"success": false, "error": {"code": "INVALID_TOKEN", "message": "Invalid token"}}`)
				return
			}
			writeJSON(w, http.StatusOK,
				`{"success": true, "data": {"access_token": "fresh", "refresh_token": "rotated"}}`)
		case "/projects":
			if r.Header.Get("Authorization") != "Bearer fresh" {
				writeJSON(w, http.StatusUnauthorized, authExpiredBody)
				return
			}
			writeJSON(w, http.StatusOK, `{"success": true, "data": []}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRefresh_SingleFlightUnderConcurrentExpiry(t *testing.T) {
	srv := newRefreshingServer(t)
	tokens := &memTokens{access: "stale", refresh: "refresh-1"}
	client := newClient(t, srv.URL, tokens)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = client.Do(context.Background(), http.MethodGet, "/projects", nil, nil)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "request %d", i)
	}
	require.Equal(t, int64(1), srv.refreshCalls.Load(), "expected exactly one refresh call")

	access, _ := tokens.AccessToken()
	require.Equal(t, "fresh", access)
	refresh, _ := tokens.RefreshToken()
	require.Equal(t, "rotated", refresh, "rotated refresh token must be persisted")
}

func TestRefresh_FailureRejectsAllAndClearsSessionOnce(t *testing.T) {
	srv := newRefreshingServer(t)
	srv.failRefresh = true

	var expiredCalls atomic.Int64
	tokens := &memTokens{access: "stale", refresh: "refresh-1"}
	client := transport.New(transport.Config{
		BaseURL:          srv.URL,
		Tokens:           tokens,
		OnSessionExpired: func() { expiredCalls.Add(1) },
	})

	const n = 5
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = client.Do(context.Background(), http.MethodGet, "/projects", nil, nil)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		require.ErrorIs(t, err, transport.ErrAuthExpired, "request %d", i)
	}
	require.Equal(t, int64(1), srv.refreshCalls.Load())
	require.Equal(t, 1, tokens.clearCount(), "session must be cleared exactly once")
	require.Equal(t, int64(1), expiredCalls.Load())
}

func TestRefresh_RetriedRequestFailsAuthAgain(t *testing.T) {
	// The refresh succeeds but the resource keeps rejecting the token;
	// the request must not loop, and the caller sees ErrAuthExpired.
	var resourceCalls, refreshCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			refreshCalls.Add(1)
			writeJSON(w, http.StatusOK,
				`{"success": true, "data": {"access_token": "fresh", "refresh_token": ""}}`)
		default:
			resourceCalls.Add(1)
			writeJSON(w, http.StatusUnauthorized, authExpiredBody)
		}
	}))
	defer srv.Close()

	tokens := &memTokens{access: "stale", refresh: "refresh-1"}
	client := newClient(t, srv.URL, tokens)

	_, err := client.Do(context.Background(), http.MethodGet, "/projects", nil, nil)
	require.ErrorIs(t, err, transport.ErrAuthExpired)
	require.Equal(t, int64(2), resourceCalls.Load(), "original call plus exactly one retry")
	require.Equal(t, int64(1), refreshCalls.Load())
}

func TestRefresh_MissingRefreshTokenEndsSession(t *testing.T) {
	srv := newRefreshingServer(t)
	tokens := &memTokens{access: "stale"} // no refresh token persisted
	client := newClient(t, srv.URL, tokens)

	_, err := client.Do(context.Background(), http.MethodGet, "/projects", nil, nil)
	require.ErrorIs(t, err, transport.ErrAuthExpired)
	require.Equal(t, int64(0), srv.refreshCalls.Load())
	require.Equal(t, 1, tokens.clearCount())
}
