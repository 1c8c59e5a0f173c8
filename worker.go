package restate

import (
	"fmt"
	"log/slog"
)

// stateWorker exclusively owns the state and the subscriber list. Exactly
// one instance drains the mailbox, so no lock guards either; mutual
// exclusion is structural.
type stateWorker[State, Action any] struct {
	mbox *mailbox[work[State, Action]]

	reducer Reducer[State, Action]
	state   State

	subscribers []subscription[State]
	nextSubID   SubscriptionID
}

func makeWorker[State, Action any](reducer Reducer[State, Action], state State) *stateWorker[State, Action] {
	return &stateWorker[State, Action]{
		mbox:      makeMailbox[work[State, Action]](),
		reducer:   reducer,
		state:     state,
		nextSubID: 1,
	}
}

func (w *stateWorker[State, Action]) address() address[work[State, Action]] {
	return address[work[State, Action]]{mbox: w.mbox}
}

// run processes work items strictly in arrival order until the mailbox is
// closed and drained. A panic out of a reducer, selector, or subscriber is
// fatal to the worker; there is no restart.
func (w *stateWorker[State, Action]) run() {
	defer func() {
		if v := recover(); v != nil {
			L(w).Error("state worker panicked", "err", v)
		}
	}()

	for {
		wk, ok := w.mbox.recv()
		if !ok {
			return
		}

		wk.execute(w)
	}
}

// L returns a logger tagged with the value's type.
func L(v any) *slog.Logger {
	return slog.With("restate", fmt.Sprintf("%T", v))
}
