package credstore_test

import (
	"testing"

	"github.com/buildpro/buildpro-go/internal/credstore"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *credstore.Store {
	t.Helper()
	store, err := credstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_GetSet(t *testing.T) {
	store := newStore(t)

	value, err := store.Get("missing")
	require.NoError(t, err)
	require.Empty(t, value)

	require.NoError(t, store.Set(credstore.KeyAccessToken, "tok-1"))
	value, err = store.Get(credstore.KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, "tok-1", value)

	// Overwrite
	require.NoError(t, store.Set(credstore.KeyAccessToken, "tok-2"))
	value, err = store.AccessToken()
	require.NoError(t, err)
	require.Equal(t, "tok-2", value)
}

func TestStore_SetTokensKeepsRefreshWhenEmpty(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.SetTokens("access-1", "refresh-1"))
	require.NoError(t, store.SetTokens("access-2", ""))

	access, err := store.AccessToken()
	require.NoError(t, err)
	require.Equal(t, "access-2", access)

	refresh, err := store.RefreshToken()
	require.NoError(t, err)
	require.Equal(t, "refresh-1", refresh)
}

func TestStore_ClearSession(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.SetTokens("access", "refresh"))
	require.NoError(t, store.SetOrgID("org-1"))
	require.NoError(t, store.Set("theme", "dark"))

	require.NoError(t, store.ClearSession())
	// Clearing twice is fine.
	require.NoError(t, store.ClearSession())

	for _, key := range []string{credstore.KeyAccessToken, credstore.KeyRefreshToken, credstore.KeyOrgID} {
		value, err := store.Get(key)
		require.NoError(t, err)
		require.Empty(t, value)
	}

	// Non-session keys survive.
	theme, err := store.Get("theme")
	require.NoError(t, err)
	require.Equal(t, "dark", theme)
}
