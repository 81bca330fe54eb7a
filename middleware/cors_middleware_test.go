package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCORSTestRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware(origins))
	router.POST("/articles", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	router := newCORSTestRouter([]string{"http://localhost:8080"})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/articles", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	router.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:8080" {
		t.Fatalf("Expected the origin mirrored back, got %q", got)
	}
}

func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	router := newCORSTestRouter([]string{"http://localhost:8080"})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/articles", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	router.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("Expected no CORS headers for a disallowed origin, got %q", got)
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	router := newCORSTestRouter([]string{"http://localhost:8080"})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/articles", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("Expected 204 for preflight, got %d", recorder.Code)
	}
	if got := recorder.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Fatal("Expected allow-methods header on preflight")
	}
}
