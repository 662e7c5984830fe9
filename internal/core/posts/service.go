package posts

import (
	"context"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultLimit is the page size used when the caller does not send one
	DefaultLimit = 100
)

type postService struct {
	repo Repository
}

// NewPostService creates a new post service
func NewPostService(repo Repository) Service {
	return &postService{
		repo: repo,
	}
}

// CreatePost validates the request and inserts the post
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req)
}

// ListPosts applies paging defaults and runs the feed query
func (s *postService) ListPosts(ctx context.Context, req ListPostsRequest) ([]*PostView, error) {
	if err := s.validateListRequest(&req); err != nil {
		return nil, err
	}

	return s.repo.List(ctx, req)
}

// GetPost returns a single post with viewer flags
func (s *postService) GetPost(ctx context.Context, postID, viewerID int64) (*PostView, error) {
	if err := validateIDs(postID, viewerID); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, postID, viewerID)
}

// DeletePost soft-deletes the caller's own post
func (s *postService) DeletePost(ctx context.Context, postID, userID int64) error {
	if err := validateIDs(postID, userID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, postID, userID)
}

// ViewPost marks the post as viewed by the caller
func (s *postService) ViewPost(ctx context.Context, postID, userID int64) error {
	if err := validateIDs(postID, userID); err != nil {
		return err
	}

	return s.repo.View(ctx, postID, userID)
}

// LikePost likes the post on behalf of the caller
func (s *postService) LikePost(ctx context.Context, postID, userID int64) error {
	if err := validateIDs(postID, userID); err != nil {
		return err
	}

	return s.repo.Like(ctx, postID, userID)
}

// DislikePost removes the caller's like
func (s *postService) DislikePost(ctx context.Context, postID, userID int64) error {
	if err := validateIDs(postID, userID); err != nil {
		return err
	}

	return s.repo.Dislike(ctx, postID, userID)
}

func (s *postService) validateCreateRequest(req CreatePostRequest) error {
	if req.UserID <= 0 {
		return NewValidationError("user_id", "user_id must be greater than 0")
	}

	if strings.TrimSpace(req.Text) == "" {
		return NewValidationError("text", "text is required")
	}

	// Count characters, not bytes: VARCHAR(280) is measured in characters
	if utf8.RuneCountInString(req.Text) > MaxTextLength {
		return NewValidationError("text", "text must not exceed 280 characters")
	}

	if req.ReplyToID != nil && *req.ReplyToID <= 0 {
		return NewValidationError("reply_to_id", "reply_to_id must be greater than 0")
	}

	return nil
}

func (s *postService) validateListRequest(req *ListPostsRequest) error {
	if req.ViewerID <= 0 {
		return NewValidationError("user_id", "user_id must be greater than 0")
	}

	if req.Limit == 0 {
		req.Limit = DefaultLimit
	}
	if req.Limit < 0 {
		return NewValidationError("limit", "limit must be greater than 0")
	}

	if req.Offset < 0 {
		return NewValidationError("offset", "offset must not be negative")
	}

	if req.OwnerID != nil && *req.OwnerID <= 0 {
		return NewValidationError("owner_id", "owner_id must be greater than 0")
	}

	if req.ReplyToID != nil && *req.ReplyToID <= 0 {
		return NewValidationError("reply_to_id", "reply_to_id must be greater than 0")
	}

	return nil
}

func validateIDs(postID, userID int64) error {
	if postID <= 0 {
		return NewValidationError("post_id", "post_id must be greater than 0")
	}
	if userID <= 0 {
		return NewValidationError("user_id", "user_id must be greater than 0")
	}
	return nil
}
