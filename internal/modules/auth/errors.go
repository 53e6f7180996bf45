package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrAccountLocked      = errors.New("account temporarily locked")
	ErrNotFound           = errors.New("user not found")
)
