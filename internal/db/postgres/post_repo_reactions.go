package postgres

import (
	"context"
	"fmt"

	"gophertalk/internal/core/posts"
)

// View records that userID has viewed postID
// The insert is attempted directly; a second view of the same post trips
// views_pkey and is reported as ErrAlreadyViewed.
func (r *postgresPostRepo) View(ctx context.Context, postID, userID int64) error {
	query := `
		INSERT INTO views (post_id, user_id)
		VALUES ($1, $2)
	`

	return r.insertReaction(ctx, query, postID, userID, viewsPrimaryKey, posts.ErrAlreadyViewed)
}

// Like records a like of userID on postID
// A repeated like trips likes_pkey and is reported as ErrAlreadyLiked.
func (r *postgresPostRepo) Like(ctx context.Context, postID, userID int64) error {
	query := `
		INSERT INTO likes (post_id, user_id)
		VALUES ($1, $2)
	`

	return r.insertReaction(ctx, query, postID, userID, likesPrimaryKey, posts.ErrAlreadyLiked)
}

// Dislike removes the like of userID on postID
// Zero affected rows is reported as ErrNotFound whether or not the post exists.
func (r *postgresPostRepo) Dislike(ctx context.Context, postID, userID int64) error {
	query := `
		DELETE FROM likes
		WHERE post_id = $1 AND user_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check dislike result: %w", err)
	}

	if rowsAffected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// insertReaction runs a single-row insert into likes or views and classifies the outcome
func (r *postgresPostRepo) insertReaction(ctx context.Context, query string, postID, userID int64, constraint string, conflictErr error) error {
	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		if r.conflict.IsUniqueViolation(err, constraint) {
			return conflictErr
		}
		return fmt.Errorf("failed to insert into %s: %w", constraintTable(constraint), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check insert result: %w", err)
	}

	if rowsAffected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// constraintTable names the table a reaction constraint belongs to, for error messages
func constraintTable(constraint string) string {
	switch constraint {
	case likesPrimaryKey:
		return "likes"
	case viewsPrimaryKey:
		return "views"
	default:
		return constraint
	}
}
