package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type traceID struct{}

// InjectTraceID attaches a fresh trace id to ctx and to the context logger.
func InjectTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, uuid.New().String())
}

// WithTraceID is InjectTraceID with a caller supplied id (e.g. from a request header).
func WithTraceID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, traceID{}, id)

	base := log.Ctx(ctx)
	if base.GetLevel() == zerolog.Disabled {
		base = &log.Logger
	}
	logger := base.With().Str("traceId", id).Logger()
	return logger.WithContext(ctx)
}

func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceID{}).(string)
	return id
}
