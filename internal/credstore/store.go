// Package credstore persists client session state (tokens, selected
// organization) in a small SQLite key/value table. It is the native
// counterpart of the web dashboard's browser-local storage.
package credstore

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Well-known state keys.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyOrgID        = "selected_org_id"
)

// Store wraps a SQLite database holding client state.
type Store struct {
	db *sql.DB
}

// Open creates or opens the state database at path. Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	schema := `
CREATE TABLE IF NOT EXISTS client_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize state database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key, or "" when absent.
func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM client_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading state key %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(`
INSERT INTO client_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("writing state key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM client_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting state key %q: %w", key, err)
	}
	return nil
}

// AccessToken returns the persisted access token, if any.
func (s *Store) AccessToken() (string, error) {
	return s.Get(KeyAccessToken)
}

// RefreshToken returns the persisted refresh token, if any.
func (s *Store) RefreshToken() (string, error) {
	return s.Get(KeyRefreshToken)
}

// OrgID returns the selected organization ID, if any.
func (s *Store) OrgID() (string, error) {
	return s.Get(KeyOrgID)
}

// SetTokens stores a new access token and, when non-empty, a rotated
// refresh token.
func (s *Store) SetTokens(access, refresh string) error {
	if err := s.Set(KeyAccessToken, access); err != nil {
		return err
	}
	if refresh != "" {
		return s.Set(KeyRefreshToken, refresh)
	}
	return nil
}

// SetOrgID stores the selected organization ID.
func (s *Store) SetOrgID(orgID string) error {
	return s.Set(KeyOrgID, orgID)
}

// ClearSession removes all session keys. Idempotent.
func (s *Store) ClearSession() error {
	_, err := s.db.Exec(`DELETE FROM client_state WHERE key IN (?, ?, ?)`,
		KeyAccessToken, KeyRefreshToken, KeyOrgID)
	if err != nil {
		return fmt.Errorf("clearing session state: %w", err)
	}
	return nil
}
