package note

import "errors"

var ErrValidation = errors.New("validation error")
