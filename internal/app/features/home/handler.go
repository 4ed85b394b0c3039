package home

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Handler serves the root confirmation endpoint.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs a home Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeRoot handles GET /.
//
// Response: { "message": "Mental Health Awareness API is running" }
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Mental Health Awareness API is running",
	})
}
