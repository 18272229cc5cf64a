package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"todo-graphql-service/pkg/logger"
	"todo-graphql-service/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client, mr
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.POST("/graphql", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func do(r http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_WithinLimit(t *testing.T) {
	client, _ := setupTestRedis(t)
	rl := NewRateLimiter(client, RateLimiterConfig{RequestsPerWindow: 5, WindowSeconds: 1, Enabled: true}, zaptest.NewLogger(t))
	r := newEngine(rl.Handler())

	for i := 0; i < 5; i++ {
		w := do(r, http.MethodPost, "/graphql", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_ExceedLimit(t *testing.T) {
	client, _ := setupTestRedis(t)
	rl := NewRateLimiter(client, RateLimiterConfig{RequestsPerWindow: 2, WindowSeconds: 10, Enabled: true}, zaptest.NewLogger(t))
	r := newEngine(rl.Handler())

	do(r, http.MethodPost, "/graphql", nil)
	do(r, http.MethodPost, "/graphql", nil)
	w := do(r, http.MethodPost, "/graphql", nil)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "10", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
}

func TestRateLimiter_WindowResets(t *testing.T) {
	client, mr := setupTestRedis(t)
	rl := NewRateLimiter(client, RateLimiterConfig{RequestsPerWindow: 1, WindowSeconds: 1, Enabled: true}, zaptest.NewLogger(t))
	r := newEngine(rl.Handler())

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/graphql", nil).Code)
	require.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/graphql", nil).Code)

	mr.FastForward(2 * time.Second)

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/graphql", nil).Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	client, mr := setupTestRedis(t)
	rl := NewRateLimiter(client, RateLimiterConfig{RequestsPerWindow: 1, WindowSeconds: 1, Enabled: false}, zaptest.NewLogger(t))
	r := newEngine(rl.Handler())

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/graphql", nil).Code)
	}
	assert.Empty(t, mr.Keys())
}

func TestRateLimiter_FailOpen(t *testing.T) {
	client, mr := setupTestRedis(t)
	rl := NewRateLimiter(client, RateLimiterConfig{RequestsPerWindow: 1, WindowSeconds: 1, Enabled: true}, zaptest.NewLogger(t))
	r := newEngine(rl.Handler())
	mr.Close()

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/graphql", nil).Code)
	}
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.POST("/graphql", func(c *gin.Context) {
		seen = logger.GetRequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := do(r, http.MethodPost, "/graphql", nil)

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	assert.Len(t, seen, 36)
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	r := newEngine(RequestID())

	w := do(r, http.MethodPost, "/graphql", http.Header{RequestIDHeader: {"abc-123"}})

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRequestID_ReusesIncomingAnyCase(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.POST("/graphql", func(c *gin.Context) {
		seen = logger.GetRequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := do(r, http.MethodPost, "/graphql", http.Header{"x-request-id": {"lower-1"}})

	assert.Equal(t, "lower-1", seen)
	assert.Equal(t, "lower-1", w.Header().Get(RequestIDHeader))
}

func TestLogger_WritesAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newEngine(RequestID(), Logger(zap.New(core)))

	do(r, http.MethodPost, "/graphql", http.Header{RequestIDHeader: {"r-1"}})
	do(r, http.MethodGet, "/missing", nil)

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	assert.Equal(t, "r-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestRecovery_Returns500(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := gin.New()
	r.Use(Recovery(zap.New(core)))
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := do(r, http.MethodGet, "/boom", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
	assert.Equal(t, 1, logs.FilterMessage("http handler panic").Len())
}

func TestMetrics_CountsByRoute(t *testing.T) {
	m := metrics.New("test")
	r := newEngine(Metrics(m))

	do(r, http.MethodPost, "/graphql", nil)
	do(r, http.MethodPost, "/graphql", nil)
	do(r, http.MethodGet, "/nope", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/graphql", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	r := newEngine(CORS([]string{"http://app.test"}))

	w := do(r, http.MethodOptions, "/graphql", http.Header{
		"Origin":                        {"http://app.test"},
		"Access-Control-Request-Method": {"POST"},
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://app.test", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_AllowAll(t *testing.T) {
	r := newEngine(CORS([]string{"*"}))

	w := do(r, http.MethodPost, "/graphql", http.Header{"Origin": {"http://anywhere.test"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
