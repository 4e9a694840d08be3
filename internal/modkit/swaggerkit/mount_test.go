package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "slotfinder/internal/platform/net/http"
)

func TestMount_Disabled(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, false)

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when disabled, got %d", rr.Code)
	}
}

func TestMount_DocumentsEveryRoute(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, true)
	h := r.Mux()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rr.Code != http.StatusPermanentRedirect || rr.Header().Get("Location") != "/api/docs/" {
		t.Fatalf("redirect: code=%d loc=%q", rr.Code, rr.Header().Get("Location"))
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rr.Code != http.StatusOK || rr.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("doc.json: code=%d cache=%q", rr.Code, rr.Header().Get("Cache-Control"))
	}

	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.OpenAPI != "3.0.3" {
		t.Fatalf("openapi = %q", doc.OpenAPI)
	}
	want := map[string]string{
		"/slots/search": "post",
		"/slots/limits": "get",
		"/meta/health":  "get",
		"/meta/ready":   "get",
		"/meta/version": "get",
		"/meta/service": "get",
		"/meta/engine":  "get",
	}
	for path, method := range want {
		if _, ok := doc.Paths[path][method]; !ok {
			t.Fatalf("missing %s %s", method, path)
		}
	}
	if len(doc.Paths) != len(want) {
		t.Fatalf("documented %d paths, want %d", len(doc.Paths), len(want))
	}
}
