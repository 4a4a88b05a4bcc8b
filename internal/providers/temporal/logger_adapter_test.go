package temporal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	adapter := NewZapLoggerAdapter(zap.New(core))

	adapter.Info("workflow started", "WorkflowID", "webhook-notify-1", "Attempt", 2)
	adapter.Error("activity failed", "Error", errors.New("boom"), "dangling")

	with, ok := adapter.(log.WithLogger)
	require.True(t, ok)
	with.With("Namespace", "default").Warn("retrying")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, "workflow started", entries[0].Message)
	assert.Equal(t, "webhook-notify-1", entries[0].ContextMap()["WorkflowID"])
	assert.Equal(t, int64(2), entries[0].ContextMap()["Attempt"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["Error"])
	assert.NotContains(t, entries[1].ContextMap(), "dangling")

	assert.Equal(t, "default", entries[2].ContextMap()["Namespace"])
}

func TestFieldsSkipsNonStringKeys(t *testing.T) {
	assert.Len(t, fields([]interface{}{1, "a", "key", "b"}), 1)
	assert.Empty(t, fields(nil))
}
