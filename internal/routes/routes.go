package routes

import (
	"github.com/AnshRaj112/portfolio-backend/internal/handlers"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(r *chi.Mux, comments *handlers.CommentHandler, apk *handlers.APKHandler, admin *handlers.AdminHandler, stats *handlers.StatsHandler) {
	// Guestbook routes
	r.Get("/api/comments", comments.List)
	r.Post("/api/comments", comments.Create)
	r.Delete("/api/comments", comments.Delete)

	// APK download routes
	r.Get("/api/apk", apk.Download)
	r.Post("/api/apk", apk.Upload)

	// Admin routes
	r.Post("/api/admin/verify", admin.Verify)
	r.Get("/api/admin/stats", stats.Get)
}
