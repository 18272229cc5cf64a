package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	gql "github.com/graph-gophers/graphql-go"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"todo-graphql-service/internal/adapter/gin/handler"
	"todo-graphql-service/internal/adapter/gin/middleware"
	"todo-graphql-service/pkg/metrics"
)

type stubExecutor struct{}

func (stubExecutor) Exec(_ context.Context, _ string, _ string, _ map[string]interface{}) *gql.Response {
	return &gql.Response{Data: json.RawMessage(`{"demo":"ok"}`)}
}

func setupRouter(t *testing.T, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zaptest.NewLogger(t)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	rl := middleware.NewRateLimiter(rdb, middleware.RateLimiterConfig{
		RequestsPerWindow: limit,
		WindowSeconds:     60,
		Enabled:           true,
	}, log)

	return SetupRouter(
		Options{CORSAllowedOrigins: []string{"*"}},
		handler.NewGraphQLHandler(stubExecutor{}, log),
		handler.NewHealthHandler(db, "todo-graphql-service", log),
		rl,
		metrics.New("test"),
		log,
	)
}

func graphqlRequest() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewBufferString(`{"query":"{ demo }"}`))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRouter_GraphQL(t *testing.T) {
	r := setupRouter(t, 10)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, graphqlRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"demo":"ok"}}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_GraphQLIsRateLimited(t *testing.T) {
	r := setupRouter(t, 1)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, graphqlRequest())
	second := httptest.NewRecorder()
	r.ServeHTTP(second, graphqlRequest())

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	r := setupRouter(t, 1)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `test_http_requests_total{method="GET",route="/health",status="200"} 3`)
}

func TestRouter_GraphQLRejectsGet(t *testing.T) {
	r := setupRouter(t, 10)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/graphql", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
