package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func buildTestHandler(t *testing.T) http.Handler {
	t.Helper()

	handler, err := BuildHandler(&config.CoreConfig{}, AppConfig{}, DBDeps{}, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler failed: %v", err)
	}
	return handler
}

func TestBuildHandler_RoutesRespond(t *testing.T) {
	handler := buildTestHandler(t)

	tests := []struct {
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"GET", "/", "", http.StatusOK},
		{"GET", "/api/hello", "", http.StatusOK},
		{"GET", "/api/resources", "", http.StatusOK},
		{"GET", "/api/helplines", "", http.StatusOK},
		{"POST", "/api/quiz", `{"answers":[1,2,3]}`, http.StatusOK},
		{"POST", "/api/quiz", `{"answers":[]}`, http.StatusBadRequest},
		{"GET", "/test", "", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestBuildHandler_RootMessage(t *testing.T) {
	handler := buildTestHandler(t)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var response struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Message != "Mental Health Awareness API is running" {
		t.Errorf("message: got %q", response.Message)
	}
}

func TestBuildHandler_OpenCORS(t *testing.T) {
	handler := buildTestHandler(t)

	req := httptest.NewRequest("OPTIONS", "/api/quiz", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("Access-Control-Allow-Origin: got %q, want request origin", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Access-Control-Allow-Credentials: got %q, want %q", got, "true")
	}
}

func TestBuildHandler_DiagnosticStateResolution(t *testing.T) {
	// Configured URI with no live handle must report the collaborator as
	// available but uninitialized, still as a 200.
	handler, err := BuildHandler(&config.CoreConfig{},
		AppConfig{MongoURI: "mongodb://localhost:27017"}, DBDeps{}, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var response struct {
		Database string `json:"database"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !strings.Contains(response.Database, "Available but not initialized") {
		t.Errorf("database: got %q, want not-initialized status", response.Database)
	}
}
