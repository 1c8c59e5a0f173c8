package restate

import "context"

// Store is the public handle to a state worker. It is cheap to share; every
// operation degrades to enqueueing one work item on the worker's mailbox
// and awaiting its completion.
type Store[State, Action any] struct {
	addr address[work[State, Action]]

	// closed when the worker goroutine has exited
	done chan struct{}
}

// New creates a store whose initial state is the zero value of State.
func New[State, Action any](reducer Reducer[State, Action]) *Store[State, Action] {
	var initial State
	return NewWithState(reducer, initial)
}

// NewWithState creates a store with an explicit initial state and starts its
// worker goroutine. The store must be Closed when no longer needed, or its
// worker leaks.
func NewWithState[State, Action any](reducer Reducer[State, Action], initial State) *Store[State, Action] {
	worker := makeWorker(reducer, initial)

	s := &Store[State, Action]{
		addr: worker.address(),
		done: make(chan struct{}),
	}

	go func() {
		worker.run()

		// Normally a no-op; after a worker panic this stops further intake.
		worker.mbox.close()

		close(s.done)
	}()

	return s
}

// Dispatch sends one action through the reducer. It returns once the new
// state is in place and all currently registered subscribers have been
// notified.
func (s *Store[State, Action]) Dispatch(ctx context.Context, action Action) error {
	wk := &dispatchWork[State, Action]{
		action: action,
		done:   make(chan struct{}),
	}

	if err := s.addr.send(wk); err != nil {
		return err
	}

	return s.awaitDone(ctx, wk.done)
}

// Select runs a selector against the current state on the worker and returns
// its result. Callers assert the concrete result type.
func (s *Store[State, Action]) Select(ctx context.Context, selector Selector[State, any]) (any, error) {
	wk := &selectWork[State, Action]{
		selector: selector,
		result:   make(chan any, 1),
	}

	if err := s.addr.send(wk); err != nil {
		return nil, err
	}

	select {
	case v := <-wk.result:
		return v, nil
	case <-s.done:
		select {
		case v := <-wk.result:
			return v, nil
		default:
			return nil, ErrStoreClosed
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// State returns a copy of the current state, built atop Select with an
// identity selector. The copy is shallow; reference-typed state is shared
// with the worker and must be treated as read-only.
func (s *Store[State, Action]) State(ctx context.Context) (State, error) {
	v, err := s.Select(ctx, func(state State) any { return state })
	if err != nil {
		var zero State
		return zero, err
	}
	return v.(State), nil
}

// Subscribe registers a subscriber and returns its id. The subscriber will
// be notified for every dispatch ordered after this call completes.
func (s *Store[State, Action]) Subscribe(ctx context.Context, sub Subscriber[State]) (SubscriptionID, error) {
	wk := &subscribeWork[State, Action]{
		sub: sub,
		id:  make(chan SubscriptionID, 1),
	}

	if err := s.addr.send(wk); err != nil {
		return 0, err
	}

	select {
	case id := <-wk.id:
		return id, nil
	case <-s.done:
		select {
		case id := <-wk.id:
			return id, nil
		default:
			return 0, ErrStoreClosed
		}
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Unsubscribe removes a subscriber. Unknown ids are ignored.
func (s *Store[State, Action]) Unsubscribe(ctx context.Context, id SubscriptionID) error {
	wk := &unsubscribeWork[State, Action]{
		id:   id,
		done: make(chan struct{}),
	}

	if err := s.addr.send(wk); err != nil {
		return err
	}

	return s.awaitDone(ctx, wk.done)
}

// ReplaceReducer swaps the reducer for all dispatches ordered after this
// call. In-flight dispatches keep the reducer they were enqueued under.
func (s *Store[State, Action]) ReplaceReducer(ctx context.Context, reducer Reducer[State, Action]) error {
	wk := &replaceReducerWork[State, Action]{
		reducer: reducer,
		done:    make(chan struct{}),
	}

	if err := s.addr.send(wk); err != nil {
		return err
	}

	return s.awaitDone(ctx, wk.done)
}

// Close stops intake, lets the worker drain already accepted work, and
// waits for it to exit. Idempotent; operations after Close return
// ErrStoreClosed.
func (s *Store[State, Action]) Close() error {
	s.addr.mbox.close()
	<-s.done
	return nil
}

// awaitDone waits for a work item's completion signal. The worker drains
// accepted work before exiting, so when both channels are ready the
// completion wins.
func (s *Store[State, Action]) awaitDone(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-s.done:
		select {
		case <-done:
			return nil
		default:
			return ErrStoreClosed
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}
