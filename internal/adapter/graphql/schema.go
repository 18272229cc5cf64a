package graphql

import (
	_ "embed"
	"fmt"

	gql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"todo-graphql-service/pkg/logger"
)

//go:embed schema.graphql
var schemaSDL string

// SchemaConfig holds execution limits for the GraphQL schema.
type SchemaConfig struct {
	MaxParallelism int // concurrently resolved sibling fields per request
}

// NewSchema parses the schema and binds it to the root resolver.
func NewSchema(cfg SchemaConfig, root *Resolver, log *zap.Logger) (*gql.Schema, error) {
	opts := []gql.SchemaOpt{
		gql.Logger(&logger.GraphQLPanicLogger{Logger: log}),
	}
	if cfg.MaxParallelism > 0 {
		opts = append(opts, gql.MaxParallelism(cfg.MaxParallelism))
	}

	schema, err := gql.ParseSchema(schemaSDL, root, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graphql schema: %w", err)
	}
	return schema, nil
}
