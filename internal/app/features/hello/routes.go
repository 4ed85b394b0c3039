package hello

import "github.com/go-chi/chi/v5"

// MountRoutes registers GET /api/hello on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/api/hello", h.ServeHello)
}
