package users

import (
	"time"
)

// Status values of users.status
const (
	StatusInactive int16 = 0
	StatusActive   int16 = 1
)

// User represents a row of the users table
// PasswordHash is a bcrypt hash and is never serialized
type User struct {
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`
	UserName     string     `json:"user_name" db:"user_name"`
	FirstName    string     `json:"first_name" db:"first_name"`
	LastName     string     `json:"last_name" db:"last_name"`
	PasswordHash string     `json:"-" db:"password_hash"`
	ID           int64      `json:"id" db:"id"`
	Status       int16      `json:"status" db:"status"`
}

// CreateUserRequest represents the input for creating a new user
type CreateUserRequest struct {
	UserName     string
	FirstName    string
	LastName     string
	PasswordHash string
}
