package post

import (
	"context"
	"net/http"

	"gophertalk/internal/api/middleware"
	"gophertalk/internal/core/posts"
)

// ReactionHandler handles views, likes and dislikes
type ReactionHandler struct {
	service posts.Service
}

// NewReactionHandler creates a new reaction handler
func NewReactionHandler(service posts.Service) *ReactionHandler {
	return &ReactionHandler{service: service}
}

// HandleView handles POST /posts/{id}/view
func (h *ReactionHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, h.service.ViewPost, http.StatusCreated)
}

// HandleLike handles POST /posts/{id}/like
func (h *ReactionHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, h.service.LikePost, http.StatusCreated)
}

// HandleDislike handles DELETE /posts/{id}/like
func (h *ReactionHandler) HandleDislike(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, h.service.DislikePost, http.StatusNoContent)
}

func (h *ReactionHandler) react(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, postID, userID int64) error, status int) {
	userID := middleware.GetUserID(r)
	if userID == 0 {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	postID, err := parsePostID(r)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := op(r.Context(), postID, userID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(status)
}
