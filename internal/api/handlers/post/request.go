package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gophertalk/internal/core/posts"
)

// maxBodySize caps request bodies; a post is at most 280 characters
const maxBodySize = 16 * 1024

// parsePostID reads the {id} URL parameter
func parsePostID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, posts.NewValidationError("id", "id must be a positive integer")
	}
	return id, nil
}

// parseListRequest builds the feed filter from the query string
// Missing parameters are left at their zero value and defaulted by the service.
func parseListRequest(r *http.Request) (posts.ListPostsRequest, error) {
	q := r.URL.Query()
	req := posts.ListPostsRequest{
		Search: q.Get("search"),
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return req, posts.NewValidationError("limit", "limit must be a valid integer")
		}
		req.Limit = limit
	}

	if offsetStr := q.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return req, posts.NewValidationError("offset", "offset must be a valid integer")
		}
		req.Offset = offset
	}

	replyTo, err := optionalID(q.Get("reply_to_id"), "reply_to_id")
	if err != nil {
		return req, err
	}
	req.ReplyToID = replyTo

	owner, err := optionalID(q.Get("owner_id"), "owner_id")
	if err != nil {
		return req, err
	}
	req.OwnerID = owner

	return req, nil
}

func optionalID(raw, field string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, posts.NewValidationError(field, field+" must be a valid integer")
	}
	return &id, nil
}
