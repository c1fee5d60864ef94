package domain

import "time"

// User is the domain entity for an account.
// Email is stored lowercased; lookups are case-insensitive.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
