package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hotspoon/full-stack-todo-app/internal/config"

	"github.com/gin-gonic/gin"
)

// The fallback and CORS behavior is routing-only; no request below reaches
// the database, so the pool stays nil.
func newFallbackRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{}
	cfg.CORS.Origin = "http://localhost:5173"
	return newRouter(cfg, nil)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUnmatchedRouteIs404(t *testing.T) {
	r := newFallbackRouter()
	w := serve(r, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Not Found" {
		t.Fatalf("message = %q, want %q", body["message"], "Not Found")
	}
}

func TestMethodNotAllowedIs405(t *testing.T) {
	r := newFallbackRouter()
	w := serve(r, httptest.NewRequest(http.MethodPatch, "/todos/1", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Method Not Allowed" {
		t.Fatalf("message = %q, want %q", body["message"], "Method Not Allowed")
	}
}

func TestCORSAllowsOnlyConfiguredOrigin(t *testing.T) {
	r := newFallbackRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := serve(r, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allow-origin = %q, want configured origin", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = serve(r, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("allow-origin = %q for foreign origin, want empty", got)
	}
}

func TestHealthAndPing(t *testing.T) {
	r := newFallbackRouter()
	if w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil)); w.Code != http.StatusOK {
		t.Fatalf("/health status = %d", w.Code)
	}
	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("/ping status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Pong 123!" {
		t.Fatalf("ping message = %q", body["message"])
	}
}
