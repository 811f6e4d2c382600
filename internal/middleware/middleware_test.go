package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"hypermedia-record-api/config"
	"hypermedia-record-api/pkg/log"
)

func hit(r *gin.Engine) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	return w.Code
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("exhausted bucket answers 429", func(t *testing.T) {
		m := New(log.Nop(), &config.Config{RateLimit: config.RateLimitConfig{PerMinute: 2}})

		r := gin.New()
		r.Use(m.RateLimit())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		if code := hit(r); code != http.StatusOK {
			t.Fatalf("first request: %d", code)
		}
		if code := hit(r); code != http.StatusOK {
			t.Fatalf("second request: %d", code)
		}
		if code := hit(r); code != http.StatusTooManyRequests {
			t.Errorf("third request: %d, want 429", code)
		}
	})

	t.Run("zero budget disables limiting", func(t *testing.T) {
		m := New(log.Nop(), &config.Config{})

		r := gin.New()
		r.Use(m.RateLimit())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 10; i++ {
			if code := hit(r); code != http.StatusOK {
				t.Fatalf("request %d: %d", i, code)
			}
		}
	})
}
