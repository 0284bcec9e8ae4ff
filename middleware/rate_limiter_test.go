package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	config.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr
}

func limiterRouter(max int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", RateLimiter(max, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", nil))
	})
	return r
}

func hit(r *gin.Engine, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/products", nil)
	if sessionID != "" {
		req.Header.Set(SessionHeader, sessionID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	setupRedis(t)
	r := limiterRouter(2)

	for i := 0; i < 2; i++ {
		if w := hit(r, ""); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i+1, w.Code)
		}
	}

	w := hit(r, "")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("over-limit status = %d", w.Code)
	}
	var body models.ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Error || body.Rate == nil || body.Rate.Remaining != 0 {
		t.Fatalf("over-limit body = %+v", body)
	}
}

func TestRateLimiterExposesRemaining(t *testing.T) {
	setupRedis(t)
	r := limiterRouter(5)

	w := hit(r, "")
	var body models.ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Rate == nil || body.Rate.Limit != 5 || body.Rate.Remaining != 4 {
		t.Fatalf("rate = %+v", body.Rate)
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	mr := setupRedis(t)
	r := limiterRouter(1)

	if w := hit(r, ""); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d", w.Code)
	}
	if w := hit(r, ""); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d", w.Code)
	}

	mr.FastForward(2 * time.Minute)

	if w := hit(r, ""); w.Code != http.StatusOK {
		t.Fatalf("after window status = %d", w.Code)
	}
}

func TestRateLimiterIsPerSubject(t *testing.T) {
	setupRedis(t)

	// One pipeline: session validation then the limiter, as in the
	// account routes.
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", Session(), RateLimiter(1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	a := "9f1c0c2e-5b7a-4d8f-9e35-2f0a6d1c7b44"
	b := "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d"

	if w := hit(r, a); w.Code == http.StatusTooManyRequests {
		t.Fatal("session a blocked on first request")
	}
	if w := hit(r, a); w.Code != http.StatusTooManyRequests {
		t.Fatalf("session a second request status = %d", w.Code)
	}
	// A different session has its own quota.
	if w := hit(r, b); w.Code != http.StatusOK {
		t.Fatalf("session b status = %d", w.Code)
	}
}
