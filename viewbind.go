// Package viewbind exposes lazily constructed binding objects as cached,
// lifecycle-scoped handles on their owning screen object.
//
// A binding is an opaque, caller-defined value derived from a root view.
// viewbind treats it only as "something constructed from a view with a
// lifetime": the holder constructs it on first read, caches it, and releases
// it when the view that produced it is torn down.
//
// Two holder kinds cover the two owner shapes:
//
//   - Scoped: the owner's view hierarchy can be created and destroyed many
//     times over the owner's life (back-stack navigation, pager reuse). The
//     holder rebinds lazily per view generation and invalidates on each
//     view destruction.
//   - Fixed: the owner has a single permanent content view. The holder binds
//     once on first read and returns the cached handle forever after.
//
// Construction of the binding is delegated to a Factory; when the binding
// type follows the conventional factory-method shape, the factory can be
// resolved reflectively instead (see FactoryOf).
//
// All holders are single-threaded: every operation must run on the owner
// goroutine marked via the uithread package, and misuse fails fast.
package viewbind

import (
	"github.com/ygrebnov/viewbind/lifecycle"
)

// Factory constructs a binding handle from a root view.
type Factory[V comparable, B any] func(root V) (B, error)

// CleanUp releases a binding handle right before the holder discards it.
type CleanUp[B any] func(B)

// ViewOwner is an owner whose view hierarchy can be created and destroyed
// repeatedly over the owner's life. Views are compared by identity: the
// holder considers its cache valid only while View returns the exact value
// the binding was constructed from.
type ViewOwner[V comparable] interface {
	// Lifecycle returns the owner's own lifecycle.
	Lifecycle() *lifecycle.Lifecycle

	// View returns the current root view; ok is false outside a view window.
	View() (v V, ok bool)

	// ViewLifecycle returns the lifecycle of the current view generation;
	// ok is false while no view has ever been created. After a view is
	// destroyed the previous generation's lifecycle remains observable in
	// its Destroyed state until a new view is created.
	ViewLifecycle() (vl *lifecycle.Lifecycle, ok bool)

	// WatchView registers fn to be invoked each time a new view becomes
	// available, together with that view generation's lifecycle. Callbacks
	// run in registration order on the owner goroutine. The returned cancel
	// function detaches fn.
	WatchView(fn func(v V, vl *lifecycle.Lifecycle)) (cancel func())
}

// RootOwner is an owner with a single content view that persists for the
// owner's whole life.
type RootOwner[V comparable] interface {
	// Root returns the content view; ok is false until it has been set.
	Root() (v V, ok bool)
}
