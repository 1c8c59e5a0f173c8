package restate

import "context"

// StoreAPI is the store-like surface shared by Store and every middleware
// wrapping of it. Middleware composes over this interface: a wrapped store
// exposes the same surface over its outer action type.
//
// All operations are safe to call concurrently from any number of
// goroutines, and all of them suspend the caller between enqueueing the
// request and receiving its completion. The context cancels only the wait,
// never work that has already been enqueued.
type StoreAPI[State, Action any] interface {
	// Dispatch applies an action. On return the reducer has run and every
	// subscriber registered at that point has observed the new state.
	Dispatch(ctx context.Context, action Action) error

	// Select projects a value out of the current state. The result reflects
	// every dispatch that completed before this call began.
	Select(ctx context.Context, selector Selector[State, any]) (any, error)

	// State returns a copy of the current state (identity selection).
	State(ctx context.Context) (State, error)

	// Subscribe registers a subscriber. On return it is registered and will
	// observe every dispatch enqueued afterwards.
	Subscribe(ctx context.Context, sub Subscriber[State]) (SubscriptionID, error)

	// Unsubscribe removes a previously registered subscriber.
	Unsubscribe(ctx context.Context, id SubscriptionID) error
}
