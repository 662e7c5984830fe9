package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// DBTX is the part of *sql.DB the repositories need
// Parameters are always passed positionally ($1, $2, ...), never interpolated.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Unique constraint names from the migrations. A repeated like or view is
// reported by the store as a violation of one of these.
const (
	likesPrimaryKey = "likes_pkey"
	viewsPrimaryKey = "views_pkey"
)

// ConflictDetector decides whether a store error is a unique violation of a given constraint
// Keeps driver-specific error inspection out of the repository logic.
type ConflictDetector interface {
	IsUniqueViolation(err error, constraint string) bool
}

type pqConflictDetector struct{}

// NewConflictDetector returns a ConflictDetector for errors produced by lib/pq
func NewConflictDetector() ConflictDetector {
	return pqConflictDetector{}
}

// IsUniqueViolation checks the SQLSTATE code and the constraint name reported by the server
func (pqConflictDetector) IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code.Name() == "unique_violation" && pqErr.Constraint == constraint
}
