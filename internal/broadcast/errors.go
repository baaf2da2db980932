package broadcast

import "errors"

// Client input errors (surfaced as 400s by the HTTP layer).
var (
	ErrInvalidTimeFormat   = errors.New("time must be HH:MM in 24-hour format")
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
)

// Upstream failures (surfaced as 5xx by the HTTP layer). Each wraps the
// original cause so diagnostics survive the trip up the stack; callers
// branch with errors.Is rather than matching message text.
var (
	ErrSchedulingFailed = errors.New("broadcast scheduling failed")
	ErrResolutionFailed = errors.New("current broadcast resolution failed")
	ErrListFailed       = errors.New("broadcast listing failed")
	ErrUpdateFailed     = errors.New("broadcast update failed")
	ErrDeleteFailed     = errors.New("broadcast delete failed")
)
