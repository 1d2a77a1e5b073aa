package repository

import "errors"

var (
	// ErrDuplicateUser is returned when a username is already taken.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrExpenseNotFound is returned when no expense matches the given ID.
	ErrExpenseNotFound = errors.New("expense not found")
)
