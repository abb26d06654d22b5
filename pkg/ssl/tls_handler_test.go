package ssl

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newEngine(tlsEnabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(TlsHandler("localhost", 8443, tlsEnabled))
	e.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return e
}

func TestSecurityHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine(false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
}

func TestRedirectsToHTTPSWhenTLSEnabled(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine(true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "http://localhost:8080/ping", nil))

	if w.Code < 300 || w.Code > 399 {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "https://localhost:8443/ping") {
		t.Errorf("unexpected Location %q", loc)
	}
	if strings.Contains(w.Body.String(), "pong") {
		t.Error("handler must not run after redirect")
	}
}
