package customer

import "errors"

var (
	ErrNotFound   = errors.New("customer not found")
	ErrValidation = errors.New("validation error")
)
