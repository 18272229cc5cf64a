package di

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"todo-graphql-service/cmd/api/infrastructure"
	"todo-graphql-service/internal/adapter/db/postgres"
	gqladapter "todo-graphql-service/internal/adapter/graphql"
	ginhandler "todo-graphql-service/internal/adapter/gin/handler"
	"todo-graphql-service/internal/adapter/gin/middleware"
	"todo-graphql-service/internal/adapter/gin/router"
	"todo-graphql-service/internal/adapter/rest/placeholder"
	"todo-graphql-service/internal/config"
	"todo-graphql-service/pkg/metrics"
	redisclient "todo-graphql-service/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	Metrics     *metrics.Metrics
	Router      *gin.Engine
}

// NewContainer creates and initializes all application dependencies.
// Redis is only dialed when rate limiting is enabled.
func NewContainer(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Container, error) {
	if cfg.DB.AutoMigrate {
		if err := infrastructure.RunMigrations(cfg.DB.DSN(), l); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	db, err := infrastructure.NewDatabase(ctx, cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	c := &Container{
		Config:  cfg,
		Logger:  l,
		DB:      db,
		Metrics: metrics.New("todo_graphql"),
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rdb, err := infrastructure.NewRedisClient(ctx, cfg, l)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		c.RedisClient = rdb

		rateLimiter = middleware.NewRateLimiter(rdb.Client, middleware.RateLimiterConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
			WindowSeconds:     cfg.RateLimit.WindowSeconds,
			Enabled:           true,
		}, l)
	}

	// Adapters
	remote := placeholder.NewClient(placeholder.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout(),
	}, c.Metrics, l)
	userRepo := postgres.NewUserRepoPG(db, l)
	todoRepo := postgres.NewTodoRepoPG(db, l)

	schema, err := gqladapter.NewSchema(
		gqladapter.SchemaConfig{MaxParallelism: cfg.App.GraphQLMaxParallelism},
		gqladapter.NewResolver(remote, userRepo, todoRepo, l),
		l,
	)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	c.Router = router.SetupRouter(
		router.Options{
			CORSAllowedOrigins: cfg.App.CORSAllowedOrigins,
			Release:            cfg.App.Environment == "production",
		},
		ginhandler.NewGraphQLHandler(schema, l),
		ginhandler.NewHealthHandler(db, cfg.Logger.ServiceName, l),
		rateLimiter,
		c.Metrics,
		l,
	)

	return c, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
