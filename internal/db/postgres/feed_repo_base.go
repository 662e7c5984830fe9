package postgres

import (
	"database/sql"
	"strings"

	"gophertalk/internal/core/posts"
)

// feedSelectQuery is the shared projection of the feed and single-post reads
//
// Counts come from three independent groupings joined by post id, so a post
// with k likes and m views never shows k*m of anything. The viewer's own
// like/view rows are left-joined on ($1, post) and exposed as booleans; the
// primary keys guarantee at most one match each, so they cannot multiply rows.
//
// Replies that were soft-deleted are not counted.
//
// DATABASE INDEXES USED (migration 00002_create_posts_table.sql):
//   - idx_posts_root_created ON posts(created_at DESC) WHERE reply_to_id IS NULL AND deleted_at IS NULL
//   - idx_posts_reply_to_created ON posts(reply_to_id, created_at) WHERE deleted_at IS NULL
//   - idx_posts_user_id ON posts(user_id)
//   - likes_pkey / views_pkey (user_id, post_id) for the viewer joins
//   - idx_likes_post_id / idx_views_post_id for the groupings
const feedSelectQuery = `
	WITH likes_count AS (
		SELECT post_id, COUNT(*) AS likes_count
		FROM likes
		GROUP BY post_id
	),
	views_count AS (
		SELECT post_id, COUNT(*) AS views_count
		FROM views
		GROUP BY post_id
	),
	replies_count AS (
		SELECT reply_to_id, COUNT(*) AS replies_count
		FROM posts
		WHERE reply_to_id IS NOT NULL AND deleted_at IS NULL
		GROUP BY reply_to_id
	)
	SELECT
		p.id, p.text, p.reply_to_id, p.created_at,
		COALESCE(l.likes_count, 0) AS likes_count,
		COALESCE(v.views_count, 0) AS views_count,
		COALESCE(r.replies_count, 0) AS replies_count,
		ul.post_id IS NOT NULL AS user_liked,
		uv.post_id IS NOT NULL AS user_viewed,
		u.id, u.user_name, u.first_name, u.last_name
	FROM posts p
	INNER JOIN users u ON u.id = p.user_id AND u.deleted_at IS NULL
	LEFT JOIN likes_count l ON l.post_id = p.id
	LEFT JOIN views_count v ON v.post_id = p.id
	LEFT JOIN replies_count r ON r.reply_to_id = p.id
	LEFT JOIN likes ul ON ul.post_id = p.id AND ul.user_id = $1
	LEFT JOIN views uv ON uv.post_id = p.id AND uv.user_id = $1`

// Order clauses for the two feed branches. The id tie-break keeps pages
// stable when several posts share a created_at.
const (
	rootPostsOrder = `p.created_at DESC, p.id DESC`
	repliesOrder   = `p.created_at ASC, p.id ASC`
)

// likeEscaper escapes LIKE metacharacters so search is a plain substring match
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchPattern turns user input into an ILIKE pattern matching it anywhere in the text
func searchPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPostView scans one row of feedSelectQuery
func scanPostView(row rowScanner) (*posts.PostView, error) {
	var (
		postView posts.PostView
		author   posts.AuthorView
		replyTo  sql.NullInt64
	)

	err := row.Scan(
		&postView.ID, &postView.Text, &replyTo, &postView.CreatedAt,
		&postView.LikesCount, &postView.ViewsCount, &postView.RepliesCount,
		&postView.UserLiked, &postView.UserViewed,
		&author.ID, &author.UserName, &author.FirstName, &author.LastName,
	)
	if err != nil {
		return nil, err
	}

	postView.ReplyToID = nullInt64Ptr(replyTo)
	postView.User = &author

	return &postView, nil
}

// nullInt64Ptr converts sql.NullInt64 to *int64
func nullInt64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	return &n.Int64
}

// int64PtrToNull converts *int64 to sql.NullInt64 for use as a query parameter
func int64PtrToNull(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
