package restate

import (
	"context"
	"io"
)

// Middleware intercepts the dispatch path of a store. A middleware declares
// an outer action type and wraps an inner store accepting an inner action
// type; the two may coincide for transparent pass-through.
//
// Dispatch decides, per invocation, whether to forward zero, one, or many
// inner dispatches: suppression, transformation, splitting, and detached
// deferred forwarding are all legal. Select and subscribe are never
// intercepted; they pass through to the innermost store unchanged.
type Middleware[State, Outer, Inner any] interface {
	// Init is called exactly once, at wrap time, before any outer dispatch
	// is possible. It may itself dispatch into inner to seed behavior.
	Init(ctx context.Context, inner StoreAPI[State, Inner]) error

	// Dispatch is called for every outer dispatch.
	Dispatch(ctx context.Context, action Outer, inner StoreAPI[State, Inner]) error
}

// MiddlewareFunc adapts a plain function as same-action-type middleware with
// a no-op Init. Returning nil without calling inner.Dispatch suppresses the
// action, reducer and subscribers included.
type MiddlewareFunc[State, Action any] func(ctx context.Context, action Action, inner StoreAPI[State, Action]) error

func (f MiddlewareFunc[State, Action]) Init(context.Context, StoreAPI[State, Action]) error {
	return nil
}

func (f MiddlewareFunc[State, Action]) Dispatch(ctx context.Context, action Action, inner StoreAPI[State, Action]) error {
	return f(ctx, action, inner)
}

// WrappedStore is a store composed with one middleware layer. It implements
// StoreAPI over the middleware's outer action type; wrapping again layers
// another middleware on top, and the last-wrapped layer runs first on
// dispatch.
type WrappedStore[State, Outer, Inner any] struct {
	inner StoreAPI[State, Inner]
	mw    Middleware[State, Outer, Inner]
}

// Wrap composes a middleware around an inner store, running its Init hook
// before the wrapped store becomes reachable.
func Wrap[State, Outer, Inner any](ctx context.Context, inner StoreAPI[State, Inner], mw Middleware[State, Outer, Inner]) (*WrappedStore[State, Outer, Inner], error) {
	if err := mw.Init(ctx, inner); err != nil {
		return nil, err
	}

	return &WrappedStore[State, Outer, Inner]{
		inner: inner,
		mw:    mw,
	}, nil
}

func (ws *WrappedStore[State, Outer, Inner]) Dispatch(ctx context.Context, action Outer) error {
	return ws.mw.Dispatch(ctx, action, ws.inner)
}

func (ws *WrappedStore[State, Outer, Inner]) Select(ctx context.Context, selector Selector[State, any]) (any, error) {
	return ws.inner.Select(ctx, selector)
}

func (ws *WrappedStore[State, Outer, Inner]) State(ctx context.Context) (State, error) {
	return ws.inner.State(ctx)
}

func (ws *WrappedStore[State, Outer, Inner]) Subscribe(ctx context.Context, sub Subscriber[State]) (SubscriptionID, error) {
	return ws.inner.Subscribe(ctx, sub)
}

func (ws *WrappedStore[State, Outer, Inner]) Unsubscribe(ctx context.Context, id SubscriptionID) error {
	return ws.inner.Unsubscribe(ctx, id)
}

// Close closes the innermost store, if it is closeable. The middleware chain
// itself holds no resources beyond what its layers hold privately.
func (ws *WrappedStore[State, Outer, Inner]) Close() error {
	if c, ok := ws.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
