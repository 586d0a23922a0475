package logger

import (
	"context"
	"testing"

	"workforce-api/internal/shared/contextkeys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ReturnsUsableLogger(t *testing.T) {
	log := NewLogger()
	require.NotNil(t, log)

	// Must not panic with arbitrary argument shapes.
	log.Info("hello")
	log.Debugf("value=%d", 42)
	log.WithFields(map[string]interface{}{"k": "v"}).Warn("with fields")
}

func TestNewLoggerWithConfig_InvalidLevelFallsBack(t *testing.T) {
	log := NewLoggerWithConfig("not-a-level", "json")
	require.NotNil(t, log)
	log.Info("still works")
}

func TestWithContext_ExtractsKnownKeys(t *testing.T) {
	ctx := context.Background()
	ctx = context.WithValue(ctx, contextkeys.RequestIDKey, "req-42")
	ctx = context.WithValue(ctx, contextkeys.OperationKey, "seed")

	log := NewLogger().WithContext(ctx)
	require.NotNil(t, log)

	ll, ok := log.(*LogrusLogger)
	require.True(t, ok)
	assert.Equal(t, "req-42", ll.entry.Data["request_id"])
	assert.Equal(t, "seed", ll.entry.Data["operation"])
}

func TestWithComponent(t *testing.T) {
	log := NewLogger().WithComponent("seeder")
	ll, ok := log.(*LogrusLogger)
	require.True(t, ok)
	assert.Equal(t, "seeder", ll.entry.Data["component"])
}
