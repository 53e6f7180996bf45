package followup

import "errors"

var (
	ErrNotFound   = errors.New("follow-up not found")
	ErrValidation = errors.New("validation error")
)
