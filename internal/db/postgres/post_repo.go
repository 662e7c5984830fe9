package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gophertalk/internal/core/posts"
)

type postgresPostRepo struct {
	db       DBTX
	conflict ConflictDetector
}

// NewPostRepository creates a new PostgreSQL post repository
// detector defaults to the lib/pq implementation when nil
func NewPostRepository(db DBTX, detector ConflictDetector) posts.Repository {
	if detector == nil {
		detector = NewConflictDetector()
	}
	return &postgresPostRepo{db: db, conflict: detector}
}

// Create inserts a new post into the posts table
// Foreign key violations (unknown author, unknown reply target) are returned
// wrapped but otherwise untouched.
func (r *postgresPostRepo) Create(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
	query := `
		INSERT INTO posts (text, user_id, reply_to_id)
		VALUES ($1, $2, $3)
		RETURNING id, text, user_id, reply_to_id, created_at
	`

	var post posts.Post
	var replyTo sql.NullInt64

	err := r.db.QueryRowContext(ctx, query, req.Text, req.UserID, int64PtrToNull(req.ReplyToID)).Scan(
		&post.ID, &post.Text, &post.UserID, &replyTo, &post.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	post.ReplyToID = nullInt64Ptr(replyTo)

	return &post, nil
}

// List retrieves one page of the feed
// Root posts newest-first, or the replies to req.ReplyToID oldest-first.
func (r *postgresPostRepo) List(ctx context.Context, req posts.ListPostsRequest) ([]*posts.PostView, error) {
	query, args := buildListQuery(req)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Warn("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	result := make([]*posts.PostView, 0)
	for rows.Next() {
		postView, err := scanPostView(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, postView)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}

// buildListQuery assembles the feed query and its positional arguments
// $1 is always the viewer id; filters take the following parameters in order.
func buildListQuery(req posts.ListPostsRequest) (string, []interface{}) {
	whereConditions := []string{"p.deleted_at IS NULL"}
	args := []interface{}{req.ViewerID}
	paramIndex := 2

	if req.Search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf(`p.text ILIKE $%d ESCAPE '\'`, paramIndex))
		args = append(args, searchPattern(req.Search))
		paramIndex++
	}

	if req.OwnerID != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("p.user_id = $%d", paramIndex))
		args = append(args, *req.OwnerID)
		paramIndex++
	}

	orderBy := rootPostsOrder
	if req.ReplyToID != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("p.reply_to_id = $%d", paramIndex))
		args = append(args, *req.ReplyToID)
		paramIndex++
		orderBy = repliesOrder
	} else {
		whereConditions = append(whereConditions, "p.reply_to_id IS NULL")
	}

	var pagination string
	if req.Limit > 0 {
		pagination += fmt.Sprintf("\n\t\tLIMIT $%d", paramIndex)
		args = append(args, req.Limit)
		paramIndex++
	}
	if req.Offset > 0 {
		pagination += fmt.Sprintf("\n\t\tOFFSET $%d", paramIndex)
		args = append(args, req.Offset)
	}

	query := fmt.Sprintf(`%s
	WHERE %s
	ORDER BY %s%s
	`, feedSelectQuery, strings.Join(whereConditions, " AND "), orderBy, pagination)

	return query, args
}

// GetByID retrieves a single non-deleted post with its counts and viewer flags
func (r *postgresPostRepo) GetByID(ctx context.Context, postID, viewerID int64) (*posts.PostView, error) {
	query := feedSelectQuery + `
	WHERE p.id = $2 AND p.deleted_at IS NULL
	`

	postView, err := scanPostView(r.db.QueryRowContext(ctx, query, viewerID, postID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return postView, nil
}

// Delete soft-deletes a post (sets deleted_at)
// Zero affected rows means the post is missing, belongs to someone else or
// is already deleted; the three cases are reported alike.
func (r *postgresPostRepo) Delete(ctx context.Context, postID, ownerID int64) error {
	query := `
		UPDATE posts
		SET deleted_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, postID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}

	if rowsAffected == 0 {
		return posts.ErrNotFoundOrDeleted
	}

	return nil
}
