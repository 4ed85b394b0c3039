package quiz

import "github.com/go-chi/chi/v5"

// MountRoutes registers POST /api/quiz on the supplied router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/api/quiz", h.ServeScore)
}
