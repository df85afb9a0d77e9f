// Package errs defines the error taxonomy of the dispatch engine. Failures
// are returned to the immediate caller as wrapped sentinel errors and matched
// with errors.Is; nothing here is fatal to the process.
package errs

import "errors"

var (
	// ErrValidation marks malformed or missing required input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an unknown trip, actor or car id.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyClaimed marks a claim race lost to another driver.
	ErrAlreadyClaimed = errors.New("trip already claimed")

	// ErrConflict marks a state-transition conflict other than a claim race.
	ErrConflict = errors.New("conflicting update")

	// ErrInvalidState marks an operation not valid for the trip's current
	// status.
	ErrInvalidState = errors.New("invalid trip state")

	// ErrNotYourTrip marks a driver-scoped mutation attempted by an actor
	// other than the assigned driver.
	ErrNotYourTrip = errors.New("trip belongs to another driver")

	// ErrForbidden marks an operation the caller's role may not invoke.
	ErrForbidden = errors.New("operation not permitted for role")

	// ErrUnauthenticated marks a failed login or a missing session.
	ErrUnauthenticated = errors.New("authentication failed")

	// ErrStorage marks an underlying store failure or timeout. The engine
	// surfaces it without retrying; retry policy belongs to the caller.
	ErrStorage = errors.New("storage failure")
)
