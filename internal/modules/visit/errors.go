package visit

import "errors"

var (
	ErrNotFound   = errors.New("visit not found")
	ErrValidation = errors.New("validation error")

	// Timer guards: starting twice or ending twice is a conflict, ending an
	// unstarted timer is a failed precondition.
	ErrTimerAlreadyStarted = errors.New("visit already started")
	ErrTimerAlreadyEnded   = errors.New("visit already ended")
	ErrTimerNotStarted     = errors.New("visit not started")
)
