package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternalServer = errors.New("internal server error")
)

// Auth errors
var (
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrAccountDisabled           = errors.New("account inactive or blocked")
	ErrUnsupportedIdentification = errors.New("unsupported identification type")
	ErrEmptyLogin                = errors.New("login has no alphanumeric characters")
)
