package posts

import "context"

// Service defines the business logic interface for posts
// It validates and defaults input, then delegates to the Repository.
type Service interface {
	// CreatePost creates a root post or, with ReplyToID, a reply
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// ListPosts returns one page of the feed for req.ViewerID
	ListPosts(ctx context.Context, req ListPostsRequest) ([]*PostView, error)

	// GetPost returns a single post as seen by viewerID
	GetPost(ctx context.Context, postID, viewerID int64) (*PostView, error)

	// DeletePost soft-deletes a post owned by userID
	DeletePost(ctx context.Context, postID, userID int64) error

	// ViewPost records that userID has viewed the post; views are permanent
	ViewPost(ctx context.Context, postID, userID int64) error

	// LikePost records a like of userID on the post
	LikePost(ctx context.Context, postID, userID int64) error

	// DislikePost removes the like of userID on the post
	DislikePost(ctx context.Context, postID, userID int64) error
}

// Repository defines the data access interface for posts
// Every method issues a single statement; uniqueness of likes and views
// is enforced by the store, not checked beforehand.
type Repository interface {
	// Create inserts a new post
	// Constraint violations (unknown author, unknown reply target) propagate unchanged
	Create(ctx context.Context, req CreatePostRequest) (*Post, error)

	// List runs the aggregate feed query
	// Returns an empty slice, not an error, when nothing matches
	List(ctx context.Context, req ListPostsRequest) ([]*PostView, error)

	// GetByID returns one non-deleted post, or ErrNotFound
	GetByID(ctx context.Context, postID, viewerID int64) (*PostView, error)

	// Delete soft-deletes the post if ownerID owns it and it is not deleted yet
	// Returns ErrNotFoundOrDeleted otherwise
	Delete(ctx context.Context, postID, ownerID int64) error

	// View inserts a view row; ErrAlreadyViewed on a repeated view
	View(ctx context.Context, postID, userID int64) error

	// Like inserts a like row; ErrAlreadyLiked on a repeated like
	Like(ctx context.Context, postID, userID int64) error

	// Dislike deletes the like row; ErrNotFound when there was none
	Dislike(ctx context.Context, postID, userID int64) error
}
