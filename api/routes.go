package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// setupRoutes wires the public, signing and admin route groups.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/login", handlers.authHandler.login())

		r.Get("/blogs", handlers.blogHandler.listPublished())
		r.Get("/blogs/search", handlers.blogHandler.search())
		r.Get("/blogs/{slug}", handlers.blogHandler.getBySlug())

		r.Get("/blog/{blogID}/likes", handlers.socialHandler.getLikeStatus())
		r.Post("/blog/{blogID}/likes", handlers.socialHandler.addLike())
		r.Delete("/blog/{blogID}/likes", handlers.socialHandler.removeLike())

		r.Get("/blog/{blogID}/comments", handlers.socialHandler.getComments())
		r.Post("/blog/{blogID}/comments", handlers.socialHandler.addComment())

		r.Post("/feedback", handlers.feedbackHandler.create())
	})

	// Upload-credential signing endpoint: open CORS, no auth
	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		}))
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/api/imagekit-signature", handlers.mediaHandler.signature())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/blogs/all", handlers.blogHandler.listAll())
		r.Post("/blog", handlers.blogHandler.create())
		r.Put("/blog/{blogID}", handlers.blogHandler.update())
		r.Delete("/blog/{blogID}", handlers.blogHandler.delete())
		r.Post("/blog/cover", handlers.blogHandler.uploadCover())

		r.Delete("/comment/{commentID}", handlers.socialHandler.deleteComment())

		r.Get("/feedback", handlers.feedbackHandler.list())
		r.Delete("/feedback/{feedbackID}", handlers.feedbackHandler.delete())
	})
}
