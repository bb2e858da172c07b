package models

import (
	"errors"
	"fmt"
)

// Recoverable error conditions returned by the data and policy layers.
// Handlers map these to HTTP status codes; nothing here aborts the process.
var (
	// ErrNotFound indicates the operation referenced a nonexistent id
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken indicates a signup attempt with an already registered email
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials indicates a failed login. It is deliberately
	// uninformative: the same value is returned whether the email is unknown
	// or the password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrForbidden indicates the session is not allowed to perform the operation
	ErrForbidden = errors.New("forbidden")
)

// ValidationError indicates a required field was missing or empty on create
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
