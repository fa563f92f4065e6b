// Package common defines sentinel errors shared by the repositories, services
// and the HTTP layer. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Request-level errors.
	ErrorValidation = errors.New("validation error")

	// Identity token errors (invalid, expired or missing the email claim).
	ErrInvalidToken = errors.New("invalid token")
)
