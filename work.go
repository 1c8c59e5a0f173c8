package restate

import "slices"

// This file contains the work item protocol: the closed set of requests the
// worker accepts over its mailbox. Every work item pairs a payload with a
// one-shot completion channel back to the caller, created per call and
// consumed exactly once.

type work[State, Action any] interface {
	execute(w *stateWorker[State, Action])
}

// dispatchWork applies the reducer and notifies subscribers. done is closed
// once notification has finished.
type dispatchWork[State, Action any] struct {
	action Action
	done   chan struct{}
}

func (d *dispatchWork[State, Action]) execute(w *stateWorker[State, Action]) {
	w.state = w.reducer(w.state, d.action)

	for _, s := range w.subscribers {
		s.sub(w.state)
	}

	close(d.done)
}

// selectWork projects a value out of the current state. Does not touch the
// state or the subscriber list.
type selectWork[State, Action any] struct {
	selector Selector[State, any]
	result   chan any // len 1
}

func (s *selectWork[State, Action]) execute(w *stateWorker[State, Action]) {
	s.result <- s.selector(w.state)
}

// subscribeWork appends a subscriber and reports its id.
type subscribeWork[State, Action any] struct {
	sub Subscriber[State]
	id  chan SubscriptionID // len 1
}

func (s *subscribeWork[State, Action]) execute(w *stateWorker[State, Action]) {
	id := w.nextSubID
	w.nextSubID++

	w.subscribers = append(w.subscribers, subscription[State]{id: id, sub: s.sub})

	s.id <- id
}

// unsubscribeWork removes a subscriber by id. Removing an unknown id is a
// no-op; the completion signal fires either way.
type unsubscribeWork[State, Action any] struct {
	id   SubscriptionID
	done chan struct{}
}

func (u *unsubscribeWork[State, Action]) execute(w *stateWorker[State, Action]) {
	w.subscribers = slices.DeleteFunc(w.subscribers, func(s subscription[State]) bool {
		return s.id == u.id
	})
	close(u.done)
}

// replaceReducerWork swaps the reducer used for all subsequent dispatches.
// Carried through the mailbox so it serializes with in-flight dispatches.
type replaceReducerWork[State, Action any] struct {
	reducer Reducer[State, Action]
	done    chan struct{}
}

func (r *replaceReducerWork[State, Action]) execute(w *stateWorker[State, Action]) {
	w.reducer = r.reducer
	close(r.done)
}
