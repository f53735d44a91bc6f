package viewbind

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/viewbind/errors"
	"github.com/ygrebnov/viewbind/internal/core"
	"github.com/ygrebnov/viewbind/lifecycle"
	"github.com/ygrebnov/viewbind/tracelog"
	"github.com/ygrebnov/viewbind/uithread"
)

// Scoped is a holder whose binding is scoped to the owner's current view
// generation. Get constructs the binding on first read within a generation
// and returns the cached handle for the rest of that generation; destroying
// the view runs the configured clean-up and clears the cache, so the next
// read after a new view constructs a fresh handle.
//
// A Scoped holder subscribes to the owner's lifecycle at construction time
// and detaches everything when the owner itself is destroyed. It is confined
// to the owner goroutine.
type Scoped[V comparable, B any] struct {
	name    string
	owner   ViewOwner[V]
	factory Factory[V, B]
	machine *core.Machine[V, B]

	cancelOwner func()
	cancelWatch func()
	cancelView  func()
	destroyed   bool
}

func newScoped[V comparable, B any](owner ViewOwner[V], factory Factory[V, B], cfg config[B]) (*Scoped[V, B], error) {
	if err := uithread.Check(); err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, errors.ErrNilOwner
	}
	if factory == nil {
		return nil, errors.ErrNilFactory
	}

	s := &Scoped[V, B]{
		name:    cfg.name,
		owner:   owner,
		factory: factory,
		machine: core.NewMachine[V, B](cfg.cleanUp),
	}
	s.cancelOwner = owner.Lifecycle().Subscribe(func(st lifecycle.State) {
		if st == lifecycle.Destroyed {
			s.teardown()
		}
	})
	s.cancelWatch = owner.WatchView(s.onView)

	// The owner may already be showing a view; treat it as the first
	// view-available event.
	if vl, ok := owner.ViewLifecycle(); ok && vl.State().AtLeast(lifecycle.Initialized) {
		if v, okView := owner.View(); okView {
			s.onView(v, vl)
		}
	}
	return s, nil
}

// Get returns the binding for the owner's current view, constructing it on
// first access within a view generation.
func (s *Scoped[V, B]) Get() (B, error) {
	var zero B
	if err := uithread.Check(); err != nil {
		return zero, err
	}
	if s.destroyed {
		return zero, errorc.With(
			errors.ErrOwnerDestroyed,
			errorc.String(errors.ErrorFieldHolderName, s.name),
		)
	}

	current, hasView := s.owner.View()
	if hasView {
		if b, ok := s.machine.Cached(current); ok {
			return b, nil
		}
	}
	// Whatever is still bound refers to a previous generation's view; its
	// destroy observer has already run, so discard without clean-up.
	if s.machine.State() == core.Bound {
		s.machine.Drop()
	}

	vl, ok := s.owner.ViewLifecycle()
	if !ok {
		return zero, errorc.With(
			errors.ErrViewNotCreated,
			errorc.String(errors.ErrorFieldHolderName, s.name),
		)
	}
	if st := vl.State(); !st.AtLeast(lifecycle.Initialized) {
		return zero, errorc.With(
			errors.ErrViewDestroyed,
			errorc.String(errors.ErrorFieldHolderName, s.name),
			errorc.String(errors.ErrorFieldState, st.String()),
		)
	}
	if !hasView {
		return zero, errorc.With(
			errors.ErrViewNotCreated,
			errorc.String(errors.ErrorFieldHolderName, s.name),
		)
	}

	b, err := s.factory(current)
	if err != nil {
		return zero, err
	}
	s.machine.Bind(b, current)
	tracelog.L().Trace().Str("holder", s.name).Msg("binding constructed")
	return b, nil
}

// onView attaches a one-shot observer to the new view generation's
// lifecycle. When that lifecycle reaches Destroyed the observer runs the
// clean-up on the cached handle (if one was ever constructed), clears the
// cache, and detaches itself.
func (s *Scoped[V, B]) onView(_ V, vl *lifecycle.Lifecycle) {
	if s.cancelView != nil {
		s.cancelView()
		s.cancelView = nil
	}
	// In a well-ordered host the previous generation's destroy has already
	// invalidated; this covers hosts that replace the view without one.
	s.machine.Invalidate()

	var cancel func()
	cancel = vl.Subscribe(func(st lifecycle.State) {
		if st != lifecycle.Destroyed {
			return
		}
		s.machine.Invalidate()
		cancel()
		s.cancelView = nil
		tracelog.L().Trace().Str("holder", s.name).Msg("binding invalidated")
	})
	s.cancelView = cancel
	tracelog.L().Trace().Str("holder", s.name).Msg("view available")
}

// teardown runs once, on the owner's destruction: it detaches every
// subscription, clears the cache, and releases the clean-up and owner
// references so nothing owned by the destroyed owner is retained.
func (s *Scoped[V, B]) teardown() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	if s.cancelView != nil {
		s.cancelView()
		s.cancelView = nil
	}
	if s.cancelWatch != nil {
		s.cancelWatch()
		s.cancelWatch = nil
	}
	if s.cancelOwner != nil {
		s.cancelOwner()
		s.cancelOwner = nil
	}
	s.machine.Teardown()
	s.owner = nil
	tracelog.L().Trace().Str("holder", s.name).Msg("holder torn down")
}
