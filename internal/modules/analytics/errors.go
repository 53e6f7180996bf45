package analytics

import "errors"

var ErrValidation = errors.New("validation error")
