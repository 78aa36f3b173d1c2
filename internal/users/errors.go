package users

import "errors"

var (
	ErrEmailInUse      = errors.New("email already in use")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrWeakPassword    = errors.New("weak password")
	ErrWrongPassword   = errors.New("wrong password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidProfile  = errors.New("invalid profile")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
)
