package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func setupRateLimitRouter(limiter *RateLimiter, rule RateLimitRule) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{
		Rules:   map[string]RateLimitRule{"SCORING": rule},
		Limiter: limiter,
		GroupFor: func(c *gin.Context) string {
			if c.FullPath() == "/score" {
				return "SCORING"
			}
			return ""
		},
	}))
	r.POST("/score", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	now := time.Now()
	limiter := NewRateLimiter(func() time.Time { return now })
	r := setupRateLimitRouter(limiter, RateLimitRule{Rate: 1, Burst: 2})

	for i := 0; i < 2; i++ {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/score", nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, resp.Code)
		}
	}

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/score", nil))
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
	if resp.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestRateLimitRefills(t *testing.T) {
	now := time.Now()
	limiter := NewRateLimiter(func() time.Time { return now })
	r := setupRateLimitRouter(limiter, RateLimitRule{Rate: 1, Burst: 1})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/score", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/score", nil))
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", resp.Code)
	}

	now = now.Add(2 * time.Second)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/score", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("after refill: expected 200, got %d", resp.Code)
	}
}

func TestRateLimitIgnoresUnruledGroups(t *testing.T) {
	limiter := NewRateLimiter(nil)
	r := setupRateLimitRouter(limiter, RateLimitRule{Rate: 1, Burst: 1})

	for i := 0; i < 5; i++ {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, resp.Code)
		}
	}
}
