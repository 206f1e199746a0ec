package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterPerIP(t *testing.T) {
	log, _ := test.NewNullLogger()
	rl := NewRateLimiter(0.001, 2, log)

	r := gin.New()
	r.POST("/login", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit("10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.2"), "buckets are per client")
}

func TestRateLimiterIgnoresSpoofedForwardedFor(t *testing.T) {
	log, _ := test.NewNullLogger()
	rl := NewRateLimiter(0.001, 2, log)

	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(nil))
	r.POST("/login", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	var codes []int
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 429, 429}, codes)
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "203.0.113.9")
}

func TestRateLimiterCleanup(t *testing.T) {
	log, _ := test.NewNullLogger()
	rl := NewRateLimiter(1, 1, log)
	rl.limiter("10.0.0.1")
	rl.visitors["10.0.0.1"].lastSeen = time.Now().Add(-time.Hour)
	rl.limiter("10.0.0.2")

	rl.Cleanup(time.Minute)

	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
}
