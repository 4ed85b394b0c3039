package quiz_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/mindwell/internal/app/features/quiz"
	"github.com/dalemusser/mindwell/internal/domain/models"
	"github.com/dalemusser/mindwell/internal/testutil"
	"go.uber.org/zap"
)

func postQuiz(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := quiz.NewHandler(zap.NewNop())
	req := testutil.NewJSONRequest("POST", "/api/quiz", body)
	rec := httptest.NewRecorder()

	handler.ServeScore(rec, req)
	return rec
}

func TestServeScore_ValidSubmission(t *testing.T) {
	rec := postQuiz(t, `{"answers":[3,3,2]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}

	var result models.QuizResult
	testutil.DecodeJSON(t, rec, &result)
	if result.Score != 8 {
		t.Errorf("score: got %d, want 8", result.Score)
	}
	if result.Level != "Moderate" {
		t.Errorf("level: got %q, want %q", result.Level, "Moderate")
	}
	if result.Suggestion == "" {
		t.Error("suggestion is empty")
	}
}

func TestServeScore_Rejections(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty answers", `{"answers":[]}`},
		{"missing answers", `{}`},
		{"out of range", `{"answers":[4]}`},
		{"negative", `{"answers":[-1]}`},
		{"non-integer element", `{"answers":[1,"two"]}`},
		{"malformed json", `{"answers":`},
		{"wrong type", `{"answers":"1,2,3"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postQuiz(t, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}

			var response struct {
				Detail string `json:"detail"`
			}
			testutil.DecodeJSON(t, rec, &response)
			if response.Detail != "Answers must be a list of integers 0-3" {
				t.Errorf("detail: got %q", response.Detail)
			}
		})
	}
}

func TestServeScore_Idempotent(t *testing.T) {
	first := postQuiz(t, `{"answers":[0,1,2,3]}`)
	second := postQuiz(t, `{"answers":[0,1,2,3]}`)

	if first.Body.String() != second.Body.String() {
		t.Errorf("identical submissions produced different bodies:\n%s\n%s",
			first.Body.String(), second.Body.String())
	}
}
