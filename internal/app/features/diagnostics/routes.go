package diagnostics

import "github.com/go-chi/chi/v5"

// MountRoutes registers GET /test on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/test", h.ServeStatus)
}
