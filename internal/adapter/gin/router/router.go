package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todo-graphql-service/internal/adapter/gin/handler"
	"todo-graphql-service/internal/adapter/gin/middleware"
	"todo-graphql-service/pkg/metrics"
)

// Options configures the router
type Options struct {
	CORSAllowedOrigins []string
	Release            bool
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	opts Options,
	graphqlHandler *handler.GraphQLHandler,
	healthHandler *handler.HealthHandler,
	rateLimiter *middleware.RateLimiter,
	m *metrics.Metrics,
	log *zap.Logger,
) *gin.Engine {
	if opts.Release {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Metrics(m))
	router.Use(middleware.CORS(opts.CORSAllowedOrigins))

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	router.POST("/graphql", rateLimiter.Handler(), graphqlHandler.Serve)

	return router
}
