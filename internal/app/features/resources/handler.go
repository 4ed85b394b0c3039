package resources

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/mindwell/internal/app/catalog"
	"github.com/dalemusser/mindwell/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the educational resource catalog.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs a resources Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// listResponse is the JSON structure for the resource listing.
type listResponse struct {
	Resources []models.Resource `json:"resources"`
	Tips      []string          `json:"tips"`
}

// ServeList handles GET /api/resources.
//
// Returns the fixed catalog of 5 resources and 5 tips in their defined order
// on every call.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(listResponse{
		Resources: catalog.Resources(),
		Tips:      catalog.Tips(),
	})
}
