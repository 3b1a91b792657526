package domain

import "errors"

// Error kinds shared by all bounded contexts. Every failure path in the
// application wraps exactly one of these sentinels so callers can classify
// errors with errors.Is and map them to user-facing notifications.
var (
	// ErrValidation indicates caller-supplied data is malformed. Not
	// retryable; surfaced immediately.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates a referenced record no longer exists, typically
	// because of a concurrent modification. Surfaced as "please refresh".
	ErrNotFound = errors.New("record not found")

	// ErrAuthRequired indicates a user-scoped operation was attempted
	// without an authenticated user.
	ErrAuthRequired = errors.New("authentication required")

	// ErrStoreUnavailable indicates a transient document store failure.
	// Safe to retry with backoff; the core itself never retries.
	ErrStoreUnavailable = errors.New("document store unavailable")

	// ErrFetch indicates the content catalog source is unreachable. Same
	// retry policy as ErrStoreUnavailable.
	ErrFetch = errors.New("content source unreachable")
)
