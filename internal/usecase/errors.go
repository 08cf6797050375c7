package usecase

import "github.com/cockroachdb/errors"

// Sentinels returned by the event service and the HTTP layer. Callers wrap
// them with fmt.Errorf("%w: ...") and the API maps each one to a status.
var (
	// ErrInvalidInput covers malformed ids, bodies and reload requests.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound means the event or fight is absent from the current dataset.
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized is returned by admin routes for a missing or wrong token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDependencyUnavailable means the scraped data could not be loaded or
	// invalidated, or the admin surface is not configured.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
