package domain

import "errors"

var (
	// ErrInvalidCredentials covers unknown email, missing hash and wrong
	// password alike: callers must not be able to tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvalidToken    = errors.New("invalid token")
	ErrInvalidRole     = errors.New("invalid role specified")
	ErrInvalidInput    = errors.New("invalid input")
	ErrAccountExists   = errors.New("user already exists")
	ErrAccountNotFound = errors.New("user not found")
	ErrForbidden       = errors.New("access denied")
	ErrTooManyAttempts = errors.New("too many failed login attempts")
)
