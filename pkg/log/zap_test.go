package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDIsAttached(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewWithZap(zap.New(core))

	ctx := WithRequestID(context.Background(), "req-42")
	l.Infof(ctx, "routed %s", "customer")
	l.Info(context.Background(), "no id")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "routed customer", entries[0].Message)
		assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
		_, ok := entries[1].ContextMap()["request_id"]
		assert.False(t, ok)
	}
}

func TestRequestIDFromEmptyContext(t *testing.T) {
	assert.Equal(t, "", RequestIDFrom(context.Background()))
	assert.Equal(t, "abc", RequestIDFrom(WithRequestID(context.Background(), "abc")))
}

func TestInitDefaults(t *testing.T) {
	l := Init(ZapConfig{Level: "not-a-level", Encoding: EncodingJSON, Mode: ModeProduction})
	assert.NotNil(t, l)
	l.Debug(context.Background(), "dropped")
}
