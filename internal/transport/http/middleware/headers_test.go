package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"boba-storefront/internal/transport/http/middleware"

	"github.com/gin-gonic/gin"
)

func headersEngine(production bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SecurityHeaders(production))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestSecurityHeaders(t *testing.T) {
	r := headersEngine(false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for k, v := range want {
		if got := w.Header().Get(k); got != v {
			t.Fatalf("%s expected %q got %q", k, v, got)
		}
	}
	if got := w.Header().Get("Content-Security-Policy"); got != "" {
		t.Fatalf("no CSP outside production, got %q", got)
	}
}

func TestSecurityHeaders_CSPOnlyInProduction(t *testing.T) {
	r := headersEngine(true)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := w.Header().Get("Content-Security-Policy"); got == "" {
		t.Fatal("CSP missing in production")
	}
}
