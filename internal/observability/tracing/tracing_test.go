package tracing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectTraceID(t *testing.T) {
	ctx := InjectTraceID(context.Background())
	id := TraceIDFromContext(ctx)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	assert.Equal(t, "req-1", TraceIDFromContext(WithTraceID(ctx, "req-1")))
	assert.Empty(t, TraceIDFromContext(context.Background()))
}
