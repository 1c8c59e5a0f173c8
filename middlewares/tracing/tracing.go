// Package tracing provides middleware that records an OpenTelemetry span
// for every dispatched action before forwarding it unchanged.
package tracing

import (
	"context"
	"fmt"

	"github.com/edup2p/restate"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "github.com/edup2p/restate/middlewares/tracing"

type Middleware[State, Action any] struct {
	tracer trace.Tracer
}

// New creates tracing middleware. A nil provider falls back to the global
// tracer provider.
func New[State, Action any](tp trace.TracerProvider) *Middleware[State, Action] {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Middleware[State, Action]{
		tracer: tp.Tracer(scopeName),
	}
}

func (m *Middleware[State, Action]) Init(context.Context, restate.StoreAPI[State, Action]) error {
	return nil
}

func (m *Middleware[State, Action]) Dispatch(ctx context.Context, action Action, inner restate.StoreAPI[State, Action]) error {
	ctx, span := m.tracer.Start(ctx, "restate.dispatch",
		trace.WithAttributes(attribute.String("restate.action_type", fmt.Sprintf("%T", action))),
	)
	defer span.End()

	err := inner.Dispatch(ctx, action)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}
