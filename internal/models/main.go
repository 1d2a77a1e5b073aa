// Package models defines the core data structures for users and expenses.
package models

import "time"

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string
	// Username is the login name chosen by the user.
	Username string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash []byte
}

// Expense is a single expense record.
type Expense struct {
	// ID is the unique identifier assigned by the store.
	ID string `json:"id"`
	// Amount is the expense amount. Negative values are accepted.
	Amount float64 `json:"amount"`
	// Category is a free-text category label.
	Category string `json:"category"`
	// Date is the calendar date of the expense, at day precision.
	Date time.Time `json:"date"`
	// Description holds optional free-text notes.
	Description string `json:"description"`
}
