package hello

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Handler serves the API greeting endpoint used by frontends to verify
// connectivity.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs a hello Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeHello handles GET /api/hello.
//
// Response: { "message": "Hello from the backend API!" }
func (h *Handler) ServeHello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Hello from the backend API!",
	})
}
