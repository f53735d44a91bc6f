// Package lifecycle provides an ordered, single-goroutine lifecycle state
// source. It is the event feed holders subscribe to: owners move their own
// lifecycle and the lifecycle of each view generation through the states
// below, and observers see every transition in subscription order.
package lifecycle

// State is a position in the lifecycle order. States are totally ordered;
// Destroyed is terminal.
type State int8

const (
	Destroyed State = iota
	Initialized
	Created
	Started
	Resumed
)

// String returns the human-readable name of the state.
func (s State) String() string {
	switch s {
	case Destroyed:
		return "destroyed"
	case Initialized:
		return "initialized"
	case Created:
		return "created"
	case Started:
		return "started"
	case Resumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// AtLeast reports whether s is at or past other in the lifecycle order.
func (s State) AtLeast(other State) bool {
	return s >= other
}

// Observer receives state transitions.
type Observer func(State)

// Lifecycle is an ordered lifecycle state source. It is not safe for
// concurrent use; owners confine it to a single goroutine and deliver
// transitions strictly in emission order.
//
// Observers are notified in subscription order. An observer may cancel any
// subscription, including its own, and may subscribe new observers during
// dispatch; observers subscribed during dispatch are not notified of the
// transition being dispatched.
type Lifecycle struct {
	state     State
	observers []*subscription
}

type subscription struct {
	fn       Observer
	canceled bool
}

// New returns a lifecycle in the Initialized state.
func New() *Lifecycle {
	return &Lifecycle{state: Initialized}
}

// State returns the current state.
func (l *Lifecycle) State() State {
	return l.state
}

// Subscribe registers fn for state transitions. The returned cancel function
// detaches fn; calling it more than once is harmless.
func (l *Lifecycle) Subscribe(fn Observer) (cancel func()) {
	s := &subscription{fn: fn}
	l.observers = append(l.observers, s)
	return func() { s.canceled = true }
}

// Set moves the lifecycle to state and notifies observers. Setting the
// current state again is a no-op. Set must not be called from an observer.
func (l *Lifecycle) Set(state State) {
	if state == l.state {
		return
	}
	l.state = state

	// Fixed-length snapshot: observers subscribed during dispatch only see
	// later transitions. Canceled slots are skipped, then compacted away.
	snapshot := l.observers
	for _, s := range snapshot {
		if s.canceled {
			continue
		}
		s.fn(state)
	}
	l.compact()
}

func (l *Lifecycle) compact() {
	kept := l.observers[:0]
	for _, s := range l.observers {
		if !s.canceled {
			kept = append(kept, s)
		}
	}
	// Drop trailing references so canceled observers become collectable.
	for i := len(kept); i < len(l.observers); i++ {
		l.observers[i] = nil
	}
	l.observers = kept
}
