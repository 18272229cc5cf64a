package infrastructure

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"todo-graphql-service/internal/config"
	"todo-graphql-service/pkg/logger"
)

const dbPingTimeout = 5 * time.Second

// NewDatabase opens the PostgreSQL pool shared by the user and todo stores.
// The pool is pinged once so a bad DSN fails startup instead of the first query.
func NewDatabase(ctx context.Context, cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	slow := time.Duration(cfg.Logger.SlowQuerySeconds * float64(time.Second))

	db, err := gorm.Open(pgdriver.Open(cfg.DB.DSN()), &gorm.Config{
		Logger: logger.NewGormLogger(l, slow, cfg.Logger.Level),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres %s/%s: %w", cfg.DB.Host, cfg.DB.Name, err)
	}

	if err := configurePool(db, cfg.DB); err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := pingDatabase(pingCtx, db); err != nil {
		_ = CloseDatabase(db)
		return nil, err
	}

	l.Info("postgres pool ready",
		zap.String("host", cfg.DB.Host),
		zap.String("port", cfg.DB.Port),
		zap.String("database", cfg.DB.Name),
		zap.Int("max_open_conns", cfg.DB.MaxOpenConns),
		zap.Duration("slow_query_threshold", slow),
	)

	return db, nil
}

func configurePool(db *gorm.DB, cfg config.DatabaseConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("access sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Second)
	return nil
}

func pingDatabase(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("access sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

// CloseDatabase releases the pool. A nil db is a no-op.
func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("access sql.DB: %w", err)
	}
	return sqlDB.Close()
}
