package helplines

import "github.com/go-chi/chi/v5"

// MountRoutes registers GET /api/helplines on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/api/helplines", h.ServeList)
}
