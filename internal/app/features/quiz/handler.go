package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/mindwell/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the self-check quiz scoring endpoint.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs a quiz Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// errorResponse is the JSON body for validation failures.
type errorResponse struct {
	Detail string `json:"detail"`
}

// ServeScore handles POST /api/quiz.
//
// Request:  { "answers": [int] } with each answer in 0-3 and at least one
// answer present.
// Response: { "score": int, "level": string, "suggestion": string }
// On invalid input: 400 and { "detail": "Answers must be a list of integers 0-3" }
func (h *Handler) ServeScore(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var submission models.QuizSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		// A body that does not decode as a list of integers fails the same
		// validation contract as an out-of-range value.
		h.Log.Info("quiz submission rejected", zap.String("reason", "malformed body"))
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Detail: ErrInvalidAnswers.Error()})
		return
	}

	result, err := Score(submission.Answers)
	if err != nil {
		h.Log.Info("quiz submission rejected",
			zap.String("reason", "invalid answers"),
			zap.Int("count", len(submission.Answers)))
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Detail: err.Error()})
		return
	}

	_ = json.NewEncoder(w).Encode(result)
}
