package resources

import "github.com/go-chi/chi/v5"

// MountRoutes registers GET /api/resources on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/api/resources", h.ServeList)
}
