package logger

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// New builds the process logger. "dev" gets the human readable development
// config, anything else production JSON tagged with the environment.
func New(env string) *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)

	if strings.ToLower(env) == "dev" {
		logger, err = zap.NewDevelopment(zap.AddStacktrace(zap.ErrorLevel))
	} else {
		logger, err = zap.NewProduction(
			zap.AddStacktrace(zap.ErrorLevel),
			zap.Fields(zap.String("env", env)),
		)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

type contextKey struct{}

// WithContext stores l on ctx.
func WithContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored on ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok {
		return l
	}
	return zap.NewNop().Sugar()
}
