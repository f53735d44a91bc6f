// Package core implements the binding-window state machine shared by the
// public holders. A machine is a finite-state object with two states,
// Unbound and Bound(handle, view); transitions are driven by the holder in
// response to lifecycle events.
package core

// State of a binding window.
type State int8

const (
	Unbound State = iota
	Bound
)

// String returns the human-readable name of the state.
func (s State) String() string {
	switch s {
	case Unbound:
		return "unbound"
	case Bound:
		return "bound"
	default:
		return "unknown"
	}
}

// Machine tracks a single holder's binding window. It records, while bound,
// the handle and the exact view the handle was constructed from, so the
// holder can detect staleness by view identity.
//
// Machine is not safe for concurrent use; holders confine it to the owner
// goroutine.
type Machine[V comparable, B any] struct {
	state   State
	handle  B
	view    V
	cleanUp func(B)
}

// NewMachine returns an unbound machine. cleanUp may be nil.
func NewMachine[V comparable, B any](cleanUp func(B)) *Machine[V, B] {
	return &Machine[V, B]{cleanUp: cleanUp}
}

// State returns the current state.
func (m *Machine[V, B]) State() State {
	return m.state
}

// Cached returns the bound handle when its recorded view is identical to
// current.
func (m *Machine[V, B]) Cached(current V) (B, bool) {
	if m.state == Bound && m.view == current {
		return m.handle, true
	}
	var zero B
	return zero, false
}

// Bind caches handle as constructed from view.
func (m *Machine[V, B]) Bind(handle B, view V) {
	m.handle = handle
	m.view = view
	m.state = Bound
}

// Drop clears the cache without running the clean-up. Used for stale
// discard, where the view-destroy observer for the recorded view has
// already run or never will.
func (m *Machine[V, B]) Drop() {
	var zeroB B
	var zeroV V
	m.handle = zeroB
	m.view = zeroV
	m.state = Unbound
}

// Invalidate runs the clean-up on the bound handle, if any, and clears the
// cache. Safe to call when nothing is bound; the clean-up then does not run.
func (m *Machine[V, B]) Invalidate() {
	if m.state == Bound && m.cleanUp != nil {
		m.cleanUp(m.handle)
	}
	m.Drop()
}

// Teardown invalidates and releases the clean-up reference, so the machine
// retains nothing reachable from the holder's owner.
func (m *Machine[V, B]) Teardown() {
	m.Invalidate()
	m.cleanUp = nil
}
