package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLimitedServer() *echo.Echo {
	e := echo.New()
	e.Use(NewRateLimiter().RateLimit())
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/api/posts", ok)
	e.POST("/api/upload", ok)
	return e
}

func hit(e *echo.Echo, method, path string) int {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("X-Real-IP", "203.0.113.7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiterBlocksBursts(t *testing.T) {
	e := newLimitedServer()

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, hit(e, http.MethodGet, "/api/posts"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(e, http.MethodGet, "/api/posts"))
}

func TestRateLimiterUploadEndpointIsStricter(t *testing.T) {
	e := newLimitedServer()

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(e, http.MethodPost, "/api/upload"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(e, http.MethodPost, "/api/upload"))
}

func TestRateLimiterTracksIPsIndependently(t *testing.T) {
	e := newLimitedServer()

	for i := 0; i < 21; i++ {
		hit(e, http.MethodGet, "/api/posts")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("X-Real-IP", "198.51.100.9")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
