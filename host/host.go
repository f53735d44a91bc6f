// Package host provides reference owner implementations. Embedding hosts
// can use them directly as the owner objects holders are constructed
// against; tests use them to drive view lifecycles in the host framework's
// order.
package host

import (
	"github.com/ygrebnov/viewbind"
	"github.com/ygrebnov/viewbind/lifecycle"
)

// Screen is an owner whose view hierarchy is created and destroyed
// repeatedly. It implements viewbind.ViewOwner. All methods must run on the
// owner goroutine; Screen performs no locking of its own.
type Screen[V comparable] struct {
	lc       *lifecycle.Lifecycle
	view     V
	hasView  bool
	viewLC   *lifecycle.Lifecycle
	watchers []*watcher[V]
}

type watcher[V comparable] struct {
	fn       func(V, *lifecycle.Lifecycle)
	canceled bool
}

var _ viewbind.ViewOwner[int] = (*Screen[int])(nil)

// NewScreen returns a screen in the Created state with no view.
func NewScreen[V comparable]() *Screen[V] {
	s := &Screen[V]{lc: lifecycle.New()}
	s.lc.Set(lifecycle.Created)
	return s
}

// Lifecycle returns the screen's own lifecycle.
func (s *Screen[V]) Lifecycle() *lifecycle.Lifecycle {
	return s.lc
}

// View returns the current root view; ok is false outside a view window.
func (s *Screen[V]) View() (V, bool) {
	return s.view, s.hasView
}

// ViewLifecycle returns the lifecycle of the current view generation. After
// DestroyView it keeps returning the previous generation's lifecycle, now
// Destroyed, until CreateView starts a new one.
func (s *Screen[V]) ViewLifecycle() (*lifecycle.Lifecycle, bool) {
	if s.viewLC == nil {
		return nil, false
	}
	return s.viewLC, true
}

// WatchView registers fn for view-available events.
func (s *Screen[V]) WatchView(fn func(V, *lifecycle.Lifecycle)) (cancel func()) {
	w := &watcher[V]{fn: fn}
	s.watchers = append(s.watchers, w)
	return func() { w.canceled = true }
}

// CreateView starts a new view generation with v as the root view and
// notifies watchers in registration order. An undestroyed previous view is
// destroyed first, preserving the framework's event order.
func (s *Screen[V]) CreateView(v V) {
	if s.hasView {
		s.DestroyView()
	}
	s.view = v
	s.hasView = true
	s.viewLC = lifecycle.New()
	s.viewLC.Set(lifecycle.Created)

	snapshot := s.watchers
	for _, w := range snapshot {
		if w.canceled {
			continue
		}
		w.fn(v, s.viewLC)
	}
	s.compact()
}

// DestroyView tears down the current view generation: the view is detached
// first, then the generation's lifecycle moves to Destroyed. No-op when no
// view is attached.
func (s *Screen[V]) DestroyView() {
	if !s.hasView {
		return
	}
	var zero V
	s.view = zero
	s.hasView = false
	s.viewLC.Set(lifecycle.Destroyed)
}

// Destroy tears down the view, then the screen itself.
func (s *Screen[V]) Destroy() {
	s.DestroyView()
	s.lc.Set(lifecycle.Destroyed)
}

func (s *Screen[V]) compact() {
	kept := s.watchers[:0]
	for _, w := range s.watchers {
		if !w.canceled {
			kept = append(kept, w)
		}
	}
	for i := len(kept); i < len(s.watchers); i++ {
		s.watchers[i] = nil
	}
	s.watchers = kept
}

// Window is an owner with a single permanent content view. It implements
// viewbind.RootOwner.
type Window[V comparable] struct {
	content V
	set     bool
}

var _ viewbind.RootOwner[int] = (*Window[int])(nil)

// NewWindow returns a window with no content view.
func NewWindow[V comparable]() *Window[V] {
	return &Window[V]{}
}

// SetContent installs the permanent content view.
func (w *Window[V]) SetContent(v V) {
	w.content = v
	w.set = true
}

// Root returns the content view; ok is false until SetContent.
func (w *Window[V]) Root() (V, bool) {
	return w.content, w.set
}
