package restate

// A Reducer computes the next state from the current state and an action.
//
// Reducers must be pure: no mutation of external state, no dependence on
// anything but their arguments. The worker calls the reducer exactly once
// per dispatched action, synchronously, while it holds exclusive ownership
// of the state.
type Reducer[State, Action any] func(state State, action Action) State

// CombineReducers chains reducers into one; each dispatched action passes
// through all of them in the given order, every reducer seeing the state
// produced by the previous one.
func CombineReducers[State, Action any](reducers ...Reducer[State, Action]) Reducer[State, Action] {
	return func(state State, action Action) State {
		for _, r := range reducers {
			state = r(state, action)
		}
		return state
	}
}
