// internal/services/errors.go
package services

import "errors"

// Sentinel errors the handlers map onto HTTP responses with errors.Is.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidArgument = errors.New("invalid argument")
)
