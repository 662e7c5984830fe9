package users

import "context"

// UserRepository defines user data access
// Accounts are managed elsewhere; this layer only needs to create users and look them up.
type UserRepository interface {
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}
