package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/edup2p/restate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logState struct{}

type logAction string

func nopReducer(state logState, _ logAction) logState {
	return state
}

func TestLoggerMiddlewareLogsBeforeForwarding(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	lg := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store := restate.New(nopReducer)
	defer store.Close()

	wrapped, err := restate.Wrap[logState, logAction, logAction](ctx, store, New[logState, logAction](lg, slog.LevelDebug))
	require.NoError(t, err)

	require.NoError(t, wrapped.Dispatch(ctx, logAction("Log 1")))
	require.NoError(t, wrapped.Dispatch(ctx, logAction("Log 2")))

	out := buf.String()
	assert.Contains(t, out, "dispatching action")
	assert.Contains(t, out, "Log 1")
	assert.Contains(t, out, "Log 2")
	assert.Contains(t, out, "level=DEBUG")
}

func TestLoggerMiddlewareRespectsLevel(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	// Handler floor above the middleware's level: nothing gets through.
	lg := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	store := restate.New(nopReducer)
	defer store.Close()

	wrapped, err := restate.Wrap[logState, logAction, logAction](ctx, store, New[logState, logAction](lg, slog.LevelInfo))
	require.NoError(t, err)

	require.NoError(t, wrapped.Dispatch(ctx, logAction("quiet")))

	assert.Empty(t, buf.String())
}

func TestLoggerMiddlewareForwardsUnchanged(t *testing.T) {
	ctx := context.Background()

	var got []string
	store := restate.New(func(state logState, action logAction) logState {
		got = append(got, string(action))
		return state
	})
	defer store.Close()

	wrapped, err := restate.Wrap[logState, logAction, logAction](ctx, store, New[logState, logAction](nil, slog.LevelDebug))
	require.NoError(t, err)

	require.NoError(t, wrapped.Dispatch(ctx, logAction("a")))
	require.NoError(t, wrapped.Dispatch(ctx, logAction("b")))

	assert.Equal(t, []string{"a", "b"}, got)
}
