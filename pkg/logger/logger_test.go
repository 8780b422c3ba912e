package logger

import (
	"context"
	"testing"
)

func TestGetReturnsLoggerInstance(t *testing.T) {
	log := Get(0)
	if log == nil {
		t.Fatal("Get should return a non-nil logger")
	}
}

func TestGetReturnsSameInstanceOnSubsequentCalls(t *testing.T) {
	log1 := Get(0)
	log2 := Get(-1)
	if log1 != log2 {
		t.Error("Get should return the same logger instance on subsequent calls")
	}
}

func TestWithLoggerAddsLoggerToContext(t *testing.T) {
	log := Get(0)
	ctx := WithLogger(context.Background(), log)
	if got := ctx.Value(loggerContextKey{}); got != log {
		t.Error("WithLogger should store the provided logger in context")
	}
}

func TestWithLoggerReturnsSameContextIfLoggerAlreadySet(t *testing.T) {
	log := Get(0)
	ctx := WithLogger(context.Background(), log)
	if WithLogger(ctx, log) != ctx {
		t.Error("WithLogger should return the unchanged context when the same logger is attached")
	}
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	global := Get(0)
	got := FromContext(context.Background())
	if got != global {
		t.Error("FromContext without an attached logger should return the global logger")
	}
}

func TestFromContextPrefersContextLogger(t *testing.T) {
	attached := GetNoopLogger()
	ctx := WithLogger(context.Background(), attached)
	if FromContext(ctx) != attached {
		t.Error("FromContext should return the context's logger")
	}
}

func TestSyncDoesNotPanic(t *testing.T) {
	Get(0)
	Sync()
}
