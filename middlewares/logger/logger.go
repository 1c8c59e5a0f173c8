// Package logger provides middleware that logs every dispatched action at a
// configured level before forwarding it unchanged.
package logger

import (
	"context"
	"log/slog"

	"github.com/edup2p/restate"
)

type Middleware[State, Action any] struct {
	logger *slog.Logger
	level  slog.Level
}

// New creates logging middleware. A nil logger falls back to slog.Default.
func New[State, Action any](logger *slog.Logger, level slog.Level) *Middleware[State, Action] {
	if logger == nil {
		logger = slog.Default()
	}

	return &Middleware[State, Action]{
		logger: logger,
		level:  level,
	}
}

func (m *Middleware[State, Action]) Init(context.Context, restate.StoreAPI[State, Action]) error {
	return nil
}

func (m *Middleware[State, Action]) Dispatch(ctx context.Context, action Action, inner restate.StoreAPI[State, Action]) error {
	m.logger.Log(ctx, m.level, "dispatching action", "action", action)

	return inner.Dispatch(ctx, action)
}
