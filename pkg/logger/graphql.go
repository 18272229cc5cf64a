package logger

import (
	"context"

	"go.uber.org/zap"
)

// GraphQLPanicLogger reports resolver panics recovered by the GraphQL executor.
type GraphQLPanicLogger struct {
	Logger *zap.Logger
}

// LogPanic implements the graphql-go log.Logger interface
func (l *GraphQLPanicLogger) LogPanic(ctx context.Context, value interface{}) {
	WithContext(ctx, l.Logger).Error("graphql resolver panic",
		zap.Any("panic", value),
		zap.Stack("stack"),
	)
}
