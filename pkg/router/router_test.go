package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExactRouteDispatch(t *testing.T) {
	r := New()
	r.GET("/api/v1/orders/layout", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("layout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/layout", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if rec.Body.String() != "layout" {
		t.Errorf("body: got %q, want %q", rec.Body.String(), "layout")
	}
}

func TestWildcardRouteDispatch(t *testing.T) {
	r := New()
	r.GET("/api/v1/orders/uploads/*", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, path := range []string{
		"/api/v1/orders/uploads/batch-1",
		"/api/v1/orders/uploads/batch-1/extra",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		r.Handler().ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: got %d, want 200", path, rec.Code)
		}
	}
}

func TestExactRouteWinsOverWildcard(t *testing.T) {
	r := New()
	r.GET("/api/v1/orders/uploads", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte("list"))
	})
	r.GET("/api/v1/orders/uploads/*", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte("one"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/uploads", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Body.String() != "list" {
		t.Errorf("body: got %q, want %q", rec.Body.String(), "list")
	}
}

func TestUnknownPathReturns404(t *testing.T) {
	r := New()
	r.GET("/api/v1/orders/layout", func(w http.ResponseWriter, req *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}

func TestWrongMethodReturns405(t *testing.T) {
	r := New()
	r.POST("/api/v1/orders", func(w http.ResponseWriter, req *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rec.Code)
	}
}

func TestPreflightRequest(t *testing.T) {
	r := New()
	r.POST("/api/v1/orders", func(w http.ResponseWriter, req *http.Request) {})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/orders", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin: got %q, want *", got)
	}
}

func TestCORSHeadersOnRegularRequest(t *testing.T) {
	r := New()
	r.GET("/api/v1/orders/layout", func(w http.ResponseWriter, req *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/layout", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin: got %q, want *", got)
	}
}

func TestMatchWildcardRoute(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"/swagger/index.html", "/swagger/*", true},
		{"/swagger/doc.json", "/swagger/*", true},
		{"/swagger", "/swagger/*", true},
		{"/other/index.html", "/swagger/*", false},
		{"/api/v1/orders/uploads/abc", "/api/v1/orders/uploads/*", true},
		{"/api/v1/orders", "/api/v1/orders/uploads/*", false},
	}

	for _, tt := range tests {
		if got := matchWildcardRoute(tt.path, tt.pattern); got != tt.want {
			t.Errorf("matchWildcardRoute(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
		}
	}
}
