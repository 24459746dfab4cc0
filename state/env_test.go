package state

import (
	"context"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Uptime() < 0 {
		t.Error("Uptime() went backwards")
	}

	// same environment on repeated lookups
	if EnvFromContext(ctx) != env {
		t.Error("EnvFromContext() returned a different environment")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EnvFromContext() on a bare context should panic")
		}
	}()
	EnvFromContext(context.Background())
}

func TestRedirectStdLog(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)

	// nil logger - no-op
	env.RedirectStdLog()
	env.RestoreStdLog()

	env.Log = zaptest.NewLogger(t)
	env.RedirectStdLog()
	if env.restoreStdLog == nil {
		t.Error("RedirectStdLog() did not install restore hook")
	}
	env.RestoreStdLog()
	if env.restoreStdLog != nil {
		t.Error("RestoreStdLog() did not clear restore hook")
	}
}
