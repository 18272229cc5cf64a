package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	gql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"todo-graphql-service/pkg/logger"
)

// Executor runs a GraphQL document. *graphql.Schema implements it.
type Executor interface {
	Exec(ctx context.Context, queryString string, operationName string, variables map[string]interface{}) *gql.Response
}

// GraphQLHandler serves GraphQL over HTTP POST
type GraphQLHandler struct {
	exec Executor
	log  *zap.Logger
}

// NewGraphQLHandler creates a new GraphQLHandler instance
func NewGraphQLHandler(exec Executor, log *zap.Logger) *GraphQLHandler {
	return &GraphQLHandler{exec: exec, log: log}
}

// GraphQLRequest is the JSON body of a GraphQL request
type GraphQLRequest struct {
	Query         string                 `json:"query" binding:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Serve handles POST /graphql. Field errors are part of a 200 response.
func (h *GraphQLHandler) Serve(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.WithContext(ctx, h.log)

	var req GraphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("invalid graphql request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}

	resp := h.exec.Exec(ctx, req.Query, req.OperationName, req.Variables)
	for _, qErr := range resp.Errors {
		log.Warn("graphql error",
			zap.String("operation", req.OperationName),
			zap.String("message", qErr.Message),
			zap.Any("path", qErr.Path),
		)
	}

	c.JSON(http.StatusOK, resp)
}
