package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gophertalk/internal/core/users"
)

// usersUserNameKey is the partial unique index on live user names
const usersUserNameKey = "users_user_name_key"

type postgresUserRepo struct {
	db       DBTX
	conflict ConflictDetector
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db DBTX, detector ConflictDetector) users.UserRepository {
	if detector == nil {
		detector = NewConflictDetector()
	}
	return &postgresUserRepo{db: db, conflict: detector}
}

// Create inserts a new user into the users table
func (r *postgresUserRepo) Create(ctx context.Context, req users.CreateUserRequest) (*users.User, error) {
	query := `
		INSERT INTO users (user_name, first_name, last_name, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_name, first_name, last_name, password_hash, status, created_at, updated_at`

	user := &users.User{}
	err := r.db.QueryRowContext(ctx, query, req.UserName, req.FirstName, req.LastName, req.PasswordHash).
		Scan(&user.ID, &user.UserName, &user.FirstName, &user.LastName, &user.PasswordHash,
			&user.Status, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if r.conflict.IsUniqueViolation(err, usersUserNameKey) {
			return nil, users.ErrUserNameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a live user by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	query := `
		SELECT id, user_name, first_name, last_name, password_hash, status, created_at, updated_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL`

	user := &users.User{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.UserName, &user.FirstName, &user.LastName, &user.PasswordHash,
			&user.Status, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
