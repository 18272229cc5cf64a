package placeholder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"todo-graphql-service/internal/domain/todo"
	"todo-graphql-service/internal/domain/user"
	apperrors "todo-graphql-service/pkg/errors"
	"todo-graphql-service/pkg/logger"
	"todo-graphql-service/pkg/metrics"
)

// DefaultBaseURL is the public placeholder API.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// Config holds configuration for the remote REST client.
type Config struct {
	BaseURL string        // scheme://host[/prefix] of the API, without trailing slash
	Timeout time.Duration // per-request timeout, zero means none
}

// Client is the remote adapter for the placeholder REST API. Every method
// performs exactly one GET; nothing is cached or retried.
type Client struct {
	baseURL string
	http    *http.Client
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewClient creates a new REST client. m may be nil.
func NewClient(cfg Config, m *metrics.Metrics, log *zap.Logger) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		metrics: m,
		log:     log,
	}
}

// userDTO is the upstream wire shape of a user.
type userDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

func (d userDTO) toDomain() user.User {
	return user.User{
		ID:    d.ID,
		Name:  d.Name,
		Email: d.Email,
		Login: d.Username,
	}
}

// todoDTO is the upstream wire shape of a to-do item.
type todoDTO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	UserID    int64  `json:"userId"`
}

func (d todoDTO) toDomain() todo.Item {
	return todo.Item{
		ID:        d.ID,
		Title:     d.Title,
		Completed: d.Completed,
		UserID:    d.UserID,
	}
}

// ListUsers fetches GET /users.
func (c *Client) ListUsers(ctx context.Context) ([]user.User, error) {
	var dtos []userDTO
	if err := c.get(ctx, "ListUsers", "/users", &dtos); err != nil {
		return nil, err
	}

	users := make([]user.User, len(dtos))
	for i, d := range dtos {
		users[i] = d.toDomain()
	}
	return users, nil
}

// GetUser fetches GET /users/{id}. A missing user is an UpstreamFetchError with status 404.
func (c *Client) GetUser(ctx context.Context, id int64) (*user.User, error) {
	var dto userDTO
	if err := c.get(ctx, "GetUser", "/users/"+strconv.FormatInt(id, 10), &dto); err != nil {
		return nil, err
	}

	u := dto.toDomain()
	return &u, nil
}

// ListTodos fetches GET /todos.
func (c *Client) ListTodos(ctx context.Context) ([]todo.Item, error) {
	var dtos []todoDTO
	if err := c.get(ctx, "ListTodos", "/todos", &dtos); err != nil {
		return nil, err
	}

	items := make([]todo.Item, len(dtos))
	for i, d := range dtos {
		items[i] = d.toDomain()
	}
	return items, nil
}

// GetTodo fetches GET /todos/{id}.
func (c *Client) GetTodo(ctx context.Context, id int64) (*todo.Item, error) {
	var dto todoDTO
	if err := c.get(ctx, "GetTodo", "/todos/"+strconv.FormatInt(id, 10), &dto); err != nil {
		return nil, err
	}

	it := dto.toDomain()
	return &it, nil
}

// get issues one GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, op, path string, out interface{}) error {
	url := c.baseURL + path
	log := logger.WithContext(ctx, c.log).With(zap.String("op", op), zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.metrics.ObserveUpstream(op, metrics.OutcomeError)
		return apperrors.NewUpstreamFetchError(op, url, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if requestID := logger.GetRequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Error("upstream request failed", zap.Error(err))
		c.metrics.ObserveUpstream(op, metrics.OutcomeError)
		return apperrors.NewUpstreamFetchError(op, url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("upstream returned non-2xx status", zap.Int("status", resp.StatusCode))
		c.metrics.ObserveUpstream(op, metrics.OutcomeStatus)
		return apperrors.NewUpstreamFetchError(op, url, resp.StatusCode,
			fmt.Errorf("unexpected status %q", resp.Status))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error("failed to decode upstream response", zap.Error(err))
		c.metrics.ObserveUpstream(op, metrics.OutcomeDecode)
		return apperrors.NewUpstreamFetchError(op, url, resp.StatusCode,
			fmt.Errorf("failed to decode response: %w", err))
	}

	c.metrics.ObserveUpstream(op, metrics.OutcomeOK)
	log.Debug("upstream request completed", zap.Duration("elapsed", time.Since(start)))
	return nil
}
