package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultDialTimeout = 2 * time.Second
	defaultOpTimeout   = 250 * time.Millisecond
)

// Config holds Redis connection configuration. Zero timeouts take the defaults above;
// operation timeouts are kept short because callers fail open on Redis errors.
type Config struct {
	Addr        string
	Password    string
	DB          int
	MaxRetries  int
	PoolSize    int
	MinIdleConn int
	DialTimeout time.Duration
	OpTimeout   time.Duration
}

func (c Config) options() *redis.Options {
	dial, op := c.DialTimeout, c.OpTimeout
	if dial <= 0 {
		dial = defaultDialTimeout
	}
	if op <= 0 {
		op = defaultOpTimeout
	}
	return &redis.Options{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.DB,
		MaxRetries:   c.MaxRetries,
		PoolSize:     c.PoolSize,
		MinIdleConns: c.MinIdleConn,
		DialTimeout:  dial,
		ReadTimeout:  op,
		WriteTimeout: op,
	}
}

// Client is a pooled go-redis client that logs its lifecycle.
type Client struct {
	*redis.Client
	log *zap.Logger
}

// NewClient dials addr and pings once within the dial timeout. The pool is closed on failure.
func NewClient(ctx context.Context, cfg Config, log *zap.Logger) (*Client, error) {
	opts := cfg.options()
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis %s unreachable: %w", cfg.Addr, err)
	}

	log = log.Named("redis").With(zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	log.Info("connected", zap.Int("pool_size", opts.PoolSize), zap.Duration("op_timeout", opts.ReadTimeout))

	return &Client{Client: rdb, log: log}, nil
}

// Close drains the pool.
func (c *Client) Close() error {
	c.log.Debug("closing pool")
	return c.Client.Close()
}
