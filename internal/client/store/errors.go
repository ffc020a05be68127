package store

import "errors"

// Common capability errors
var (
	// ErrNotFound indicates the document does not exist in the store
	ErrNotFound = errors.New("document not found")

	// ErrUserNotFound indicates no account matches the lookup
	ErrUserNotFound = errors.New("user not found")

	// ErrCacheUnavailable indicates the local cache cannot persist
	// right now (quota, closed database). Callers treat it as
	// advisory and keep going.
	ErrCacheUnavailable = errors.New("local cache unavailable")
)
