package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

const maxWaitDuration = 120 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	// tests stay quiet, assertions report the failures
	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}
