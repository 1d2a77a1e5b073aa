package service

import "errors"

var (
	// ErrValidation indicates malformed or missing input.
	ErrValidation = errors.New("validation error")
	// ErrDuplicateUser indicates a registration conflict on username.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown-username and wrong-password
	// login failures, deliberately indistinguishable from each other.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound indicates the target of a delete does not exist.
	ErrNotFound = errors.New("not found")
)
