package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDefault            = errors.New("some error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrEmptyToken         = errors.New("backend returned an empty token")
)
