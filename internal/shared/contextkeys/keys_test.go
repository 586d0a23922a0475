package contextkeys

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeys_DoNotCollide(t *testing.T) {
	ctx := context.Background()
	ctx = context.WithValue(ctx, RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, ActorKey, "admin")

	assert.Equal(t, "req-1", ctx.Value(RequestIDKey))
	assert.Equal(t, "admin", ctx.Value(ActorKey))
	// A plain string key must not alias the typed key.
	assert.Nil(t, ctx.Value("requestID"))
}

func TestContextKey_String(t *testing.T) {
	assert.Contains(t, RequestIDKey.String(), "requestID")
}
