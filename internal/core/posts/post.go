package posts

import (
	"time"
)

// MaxTextLength is the maximum post length in characters (posts.text is VARCHAR(280))
const MaxTextLength = 280

// Post represents a row of the posts table
// Counts are never stored on the row; see PostView for the derived values
type Post struct {
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
	ReplyToID *int64     `json:"reply_to_id" db:"reply_to_id"`
	Text      string     `json:"text" db:"text"`
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"user_id" db:"user_id"`
}

// CreatePostRequest represents input for creating a new post
// UserID is taken from the authenticated token, never from the body
type CreatePostRequest struct {
	ReplyToID *int64 `json:"reply_to_id,omitempty"`
	Text      string `json:"text"`
	UserID    int64  `json:"-"`
}

// ListPostsRequest is the feed filter
// ViewerID decides the user_liked/user_viewed flags of every returned post.
// When ReplyToID is set the replies to that post are listed oldest-first,
// otherwise root posts are listed newest-first.
type ListPostsRequest struct {
	OwnerID   *int64 `json:"owner_id,omitempty"`
	ReplyToID *int64 `json:"reply_to_id,omitempty"`
	Search    string `json:"search,omitempty"`
	ViewerID  int64  `json:"-"`
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
}

// PostView is a post as it appears in the feed
// LikesCount, ViewsCount and RepliesCount are computed at read time.
type PostView struct {
	CreatedAt    time.Time   `json:"created_at"`
	ReplyToID    *int64      `json:"reply_to_id"`
	User         *AuthorView `json:"user"`
	Text         string      `json:"text"`
	ID           int64       `json:"id"`
	LikesCount   int         `json:"likes_count"`
	ViewsCount   int         `json:"views_count"`
	RepliesCount int         `json:"replies_count"`
	UserLiked    bool        `json:"user_liked"`
	UserViewed   bool        `json:"user_viewed"`
}

// AuthorView represents author information in post views
type AuthorView struct {
	UserName  string `json:"user_name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ID        int64  `json:"id"`
}
