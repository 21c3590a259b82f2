package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/noteloft/noteloft/internal/middleware"
	"github.com/noteloft/noteloft/internal/service"
)

// MountRoutes registers all API routes on the given chi router.
func MountRoutes(r chi.Router, h *Handlers, authSvc *service.AuthService) {
	r.Route("/api", func(r chi.Router) {
		// Public surface.
		r.Get("/health", h.Health)
		r.Post("/auth", h.Login)
		r.Post("/seed", h.SeedDatabase)

		// Authenticated surface.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authSvc))

			r.Get("/notes", h.ListNotes)
			r.Post("/notes", h.CreateNote)
			r.Get("/notes/{id}", h.GetNote)
			r.Put("/notes/{id}", h.UpdateNote)
			r.Delete("/notes/{id}", h.DeleteNote)

			// Admin-only surface.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/users", h.ListUsers)
				r.Post("/tenants/{slug}/upgrade", h.UpgradeTenant)
			})
		})
	})
}
