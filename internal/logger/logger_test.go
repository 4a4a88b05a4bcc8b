package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := log
	log = zap.New(core)
	t.Cleanup(func() { log = previous })
	return logs
}

func TestWithRun(t *testing.T) {
	logs := observe(t)

	ctx := WithRun(context.Background(), "4b8e2d8e-6f0a-4a38-9a53-6e0a1f3b9c11")
	ctx = WithFields(ctx, zap.String("wallet", "0xa1"))
	InfoCtx(ctx, "wallet checked")
	InfoCtx(context.Background(), "unscoped")

	entries := logs.All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "4b8e2d8e-6f0a-4a38-9a53-6e0a1f3b9c11", fields["run_id"])
	assert.Equal(t, "0xa1", fields["wallet"])
	assert.NotContains(t, entries[1].ContextMap(), "run_id")
}

func TestWithFieldsDoesNotLeakIntoParent(t *testing.T) {
	logs := observe(t)

	parent := WithFields(context.Background(), zap.String("a", "1"))
	_ = WithFields(parent, zap.String("b", "2"))
	InfoCtx(parent, "parent")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "1", fields["a"])
	assert.NotContains(t, fields, "b")
}

func TestErrorMessage(t *testing.T) {
	logs := observe(t)

	Error(errors.New("boom"))
	Error(nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "boom", entries[0].Message)
	assert.Equal(t, "error occurred", entries[1].Message)
}

func TestTagFieldsAreOrdered(t *testing.T) {
	fields := tagFields(map[string]string{"service": "screener", "env": "prod"})
	require.Len(t, fields, 2)
	assert.Equal(t, "env", fields[0].Key)
	assert.Equal(t, "service", fields[1].Key)
}
