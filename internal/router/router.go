package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-content-api/internal/config"
	"go-content-api/internal/handler"
	"go-content-api/internal/metrics"
	"go-content-api/internal/middleware"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Post    *handler.PostHandler
	Comment *handler.CommentHandler
	Health  *handler.HealthHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM, cfg.TrustProxyHeaders)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)

	r.Get("/health", h.Health.Check)
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Group(func(api chi.Router) {
		api.Use(rateLimitMiddleware.Handler)
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", h.Auth.Register)
			auth.Post("/login", h.Auth.Login)
			auth.Post("/refresh-token", h.Auth.Refresh)
		})

		api.Route("/posts", func(posts chi.Router) {
			posts.Get("/", h.Post.List)
			posts.Get("/users/{userId}", h.Post.ListByUser)
			posts.With(authMiddleware.RequireAuth).Get("/me", h.Post.ListMine)
			posts.With(authMiddleware.RequireAuth).Post("/", h.Post.Create)
			posts.With(authMiddleware.RequireAuth).Put("/{postId}", h.Post.Update)
			posts.With(authMiddleware.RequireAuth).Delete("/{postId}", h.Post.Delete)

			posts.Get("/{postId}/comments", h.Comment.ListByPost)
			posts.With(authMiddleware.RequireAuth).Post("/{postId}/comments", h.Comment.Create)
		})

		api.With(authMiddleware.RequireAuth).Put("/comments/{commentId}", h.Comment.Update)
		api.With(authMiddleware.RequireAuth).Delete("/comments/{commentId}", h.Comment.Delete)
	})

	return r
}
