// Package thunk provides middleware that accepts either a plain action or a
// deferred unit of work. Plain actions forward to the inner store
// synchronously; thunks run as detached goroutines and may dispatch any
// number of further actions back into the store, decoupled from the
// completion of the dispatch that carried them.
package thunk

import (
	"context"
	"sync"

	"github.com/edup2p/restate"
)

// A Thunk is a deferred, independently scheduled unit of work. It may
// suspend arbitrarily (on I/O, timers) without blocking the worker or any
// other caller.
type Thunk[State, Action any] interface {
	Execute(ctx context.Context, api restate.StoreAPI[State, Action])
}

// ThunkFunc adapts a function as a Thunk.
type ThunkFunc[State, Action any] func(ctx context.Context, api restate.StoreAPI[State, Action])

func (f ThunkFunc[State, Action]) Execute(ctx context.Context, api restate.StoreAPI[State, Action]) {
	f(ctx, api)
}

// ActionOrThunk is the outer action type of a thunk-wrapped store: a tagged
// variant carrying either a plain inner action or a thunk.
type ActionOrThunk[State, Action any] struct {
	action   Action
	isAction bool
	thunk    Thunk[State, Action]
}

// Plain wraps an inner action for immediate, synchronous forwarding.
func Plain[State, Action any](action Action) ActionOrThunk[State, Action] {
	return ActionOrThunk[State, Action]{action: action, isAction: true}
}

// Deferred wraps a thunk for detached execution.
func Deferred[State, Action any](t Thunk[State, Action]) ActionOrThunk[State, Action] {
	return ActionOrThunk[State, Action]{thunk: t}
}

// DeferredFunc wraps a function as a deferred thunk.
func DeferredFunc[State, Action any](f ThunkFunc[State, Action]) ActionOrThunk[State, Action] {
	return Deferred[State, Action](f)
}

type Middleware[State, Action any] struct {
	// governs the lifetime of detached thunks
	ctx context.Context

	running sync.WaitGroup
}

// New creates thunk middleware. ctx bounds every detached thunk this layer
// spawns; a nil ctx means context.Background.
func New[State, Action any](ctx context.Context) *Middleware[State, Action] {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Middleware[State, Action]{ctx: ctx}
}

func (m *Middleware[State, Action]) Init(context.Context, restate.StoreAPI[State, Action]) error {
	return nil
}

func (m *Middleware[State, Action]) Dispatch(ctx context.Context, action ActionOrThunk[State, Action], inner restate.StoreAPI[State, Action]) error {
	if action.isAction {
		return inner.Dispatch(ctx, action.action)
	}

	m.running.Add(1)

	go func() {
		defer m.running.Done()
		defer func() {
			if v := recover(); v != nil {
				restate.L(m).Error("thunk panicked", "err", v)
			}
		}()

		action.thunk.Execute(m.ctx, inner)
	}()

	return nil
}

// Wait blocks until every detached thunk spawned so far has returned.
func (m *Middleware[State, Action]) Wait() {
	m.running.Wait()
}
