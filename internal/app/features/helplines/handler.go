package helplines

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/mindwell/internal/app/catalog"
	"github.com/dalemusser/mindwell/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the crisis helpline directory.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs a helplines Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// listResponse is the JSON structure for the helpline directory.
type listResponse struct {
	Helplines []models.Helpline `json:"helplines"`
}

// ServeList handles GET /api/helplines.
//
// Returns the fixed directory of 5 helplines in its defined order.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(listResponse{
		Helplines: catalog.Helplines(),
	})
}
