package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gophertalk/internal/api/handlers/post"
	"gophertalk/internal/api/middleware"
	"gophertalk/internal/core/posts"
)

// RegisterPostRoutes registers the /posts endpoints on the router
// Every route requires authentication; limiter may be nil
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware middleware.AuthMiddleware, limiter func(http.Handler) http.Handler) {
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	createHandler := post.NewCreateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	reactionHandler := post.NewReactionHandler(service)

	r.Route("/posts", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		// After auth so limits are per user
		if limiter != nil {
			r.Use(limiter)
		}

		r.Get("/", listHandler.HandleList)
		r.Post("/", createHandler.HandleCreate)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", getHandler.HandleGet)
			r.Delete("/", deleteHandler.HandleDelete)
			r.Post("/view", reactionHandler.HandleView)
			r.Post("/like", reactionHandler.HandleLike)
			r.Delete("/like", reactionHandler.HandleDislike)
		})
	})
}
