package restate

import "time"

// Test constants
const assertEventuallyTick time.Duration = 1 * time.Millisecond
const assertEventuallyTimeout time.Duration = 100 * assertEventuallyTick

// Counter fixtures shared across tests.

type counter struct {
	Value int
}

type counterAction int

const (
	increment counterAction = iota
	decrement
)

func counterReducer(state counter, action counterAction) counter {
	switch action {
	case increment:
		return counter{Value: state.Value + 1}
	case decrement:
		return counter{Value: state.Value - 1}
	default:
		return state
	}
}

func valueSelector(state counter) any {
	return state.Value
}
