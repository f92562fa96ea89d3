package invoke

import "fmt"

// State is the lifecycle position of one invocation.
type State string

const (
	StateUnbound   State = "unbound"
	StateBound     State = "bound"
	StateRequested State = "requested"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateDeclined  State = "declined"
)

// IsTerminal reports whether the state ends the invocation.
func (s State) IsTerminal() bool {
	switch s {
	case StateSucceeded, StateFailed, StateDeclined:
		return true
	default:
		return false
	}
}

func allowed(from, to State) bool {
	switch from {
	case StateUnbound:
		return to == StateBound || to == StateFailed
	case StateBound:
		return to == StateRequested || to == StateDeclined || to == StateFailed
	case StateRequested:
		return to == StateSucceeded || to == StateFailed
	default:
		return false
	}
}

// advance moves the result to the next state; an illegal move is a bug in
// the executor, never a user error.
func (r *Result) advance(to State) {
	if !allowed(r.State, to) {
		panic(fmt.Sprintf("invoke: disallowed transition %s -> %s", r.State, to))
	}
	r.State = to
}
