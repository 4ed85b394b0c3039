package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/mindwell/internal/app/system/metrics"
)

func TestMiddleware_PassesThrough(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("body"))
	})

	req := httptest.NewRequest("GET", "/api/hello", nil)
	rec := httptest.NewRecorder()

	metrics.Middleware(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusTeapot)
	}
	if rec.Body.String() != "body" {
		t.Errorf("body: got %q, want %q", rec.Body.String(), "body")
	}
}

func TestHandler_ServesRecordedRequests(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/resources", nil)
	metrics.Middleware(inner).ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: got %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "mindwell_http_requests_total") {
		t.Error("exposition missing mindwell_http_requests_total")
	}
}
