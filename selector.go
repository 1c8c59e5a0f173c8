package restate

// A Selector projects a read-only view out of the state.
//
// Selectors must be pure. The worker runs a selector to completion in one
// uninterrupted step; no dispatch can interleave mid-selection.
//
// StoreAPI carries selectors with an any result, as Go methods cannot
// introduce their own type parameters; callers assert the concrete type of
// the returned value.
type Selector[State, Result any] func(state State) Result
