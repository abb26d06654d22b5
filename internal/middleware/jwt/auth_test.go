package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"TextAnalyzer/internal/config"
	"TextAnalyzer/pkg/util/myjwt"

	"github.com/gin-gonic/gin"
)

var testConf = config.JwtConfig{Enabled: true, Key: "secret", Issuer: "TextAnalyzer"}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(Auth(testConf))
	e.GET("/me", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("subject")) })
	return e
}

func TestAuthMissingHeader(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthValidToken(t *testing.T) {
	token, err := myjwt.GenerateToken(testConf, "frontend")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "frontend" {
		t.Errorf("unexpected response %d %q", w.Code, w.Body.String())
	}
}

func TestAuthQueryTokenOnlyForWebsocket(t *testing.T) {
	token, err := myjwt.GenerateToken(testConf, "frontend")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me?token="+token, nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("plain request with query token: expected 401, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/me?token="+token, nil)
	req.Header.Set("Connection", "upgrade")
	req.Header.Set("Upgrade", "websocket")
	w = httptest.NewRecorder()
	newEngine().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("websocket handshake with query token: expected 200, got %d", w.Code)
	}
}
