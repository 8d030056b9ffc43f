package store

import "errors"

var (
	// ErrFallbackDisabled is returned when a mutation is attempted with no
	// live connection and the demo fallback turned off.
	ErrFallbackDisabled = errors.New("live API unavailable and demo fallback disabled")
	// ErrLiveUnavailable indicates a resynchronization pass failed and no
	// fallback was permitted.
	ErrLiveUnavailable = errors.New("live API unavailable")
	// ErrNotFound indicates the ordinal does not resolve to a record.
	ErrNotFound = errors.New("record not found")
	// ErrUnconfirmed indicates the record has no canonical identifier yet
	// and cannot be mutated against the backend.
	ErrUnconfirmed = errors.New("record not yet confirmed by the server")
)
