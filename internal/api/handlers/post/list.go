package post

import (
	"net/http"

	"gophertalk/internal/api/middleware"
	"gophertalk/internal/core/posts"
)

// ListHandler serves the feed
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /posts
// Query: limit, offset, reply_to_id, owner_id, search
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == 0 {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	req, err := parseListRequest(r)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	req.ViewerID = userID

	feed, err := h.service.ListPosts(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, feed)
}
