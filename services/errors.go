package services

import "errors"

// Language-neutral outcome kinds. Handlers translate these to transport
// responses; the presentation layer resolves the user-facing text.
var (
	ErrNotFound              = errors.New("resource not found")
	ErrAvailabilityViolation = errors.New("window not covered by declared availability")
	ErrTemporalViolation     = errors.New("window start is not in the future")
	ErrSchedulingConflict    = errors.New("overlapping lesson request exists")
	ErrInvalidTransition     = errors.New("status change not legal from current state")
	ErrNotAuthorized         = errors.New("actor is not allowed to perform this operation")
	ErrVenueMismatch         = errors.New("lesson link is only valid for online lessons")
)
