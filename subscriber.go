package restate

// A Subscriber is called with the new state after every applied dispatch,
// in registration order, from the worker goroutine. It must not call back
// into the store synchronously; that would deadlock the worker on its own
// mailbox.
type Subscriber[State any] func(state State)

// SubscriptionID identifies a registered subscriber for removal.
type SubscriptionID uint64

type subscription[State any] struct {
	id  SubscriptionID
	sub Subscriber[State]
}
