package report

import "errors"

var ErrValidation = errors.New("validation error")
