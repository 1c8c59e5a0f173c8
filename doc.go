// Package restate is an in-memory state container with serialized updates.
//
// A store holds one state value, owned exclusively by a worker goroutine.
// Callers dispatch actions; a pure reducer computes the next state, and
// subscribers are notified after every transition. All reads and writes
// funnel through a single FIFO mailbox, so no locks guard the state itself
// and a select enqueued after a completed dispatch always observes it.
//
// Middleware wraps a store to intercept the dispatch path; see Middleware
// and the middlewares sub-packages for logging, tracing, and deferred-work
// ("thunk") behavior.
package restate
