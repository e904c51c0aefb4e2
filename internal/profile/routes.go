// internal/profile/routes.go

package profile

import (
	"github.com/go-chi/chi/v5"

	"github.com/imadgeboyega/kiekky-couples/internal/auth"
)

// RegisterRoutes registers all profile routes
func RegisterRoutes(r chi.Router, handler *Handler, authMiddleware *auth.Middleware) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/api/v1/profile", handler.GetMyProfile)
		r.Post("/api/v1/profile", handler.CreateProfile)
		r.Put("/api/v1/profile", handler.UpdateProfile)
		r.Get("/api/v1/profiles/{id}", handler.GetPartnerProfile)
		r.Get("/api/v1/couple", handler.GetCouple)
	})
}
