package host

import (
	"testing"

	"github.com/ygrebnov/viewbind/lifecycle"
)

type frame struct{ name string }

func TestScreen_NoViewInitially(t *testing.T) {
	s := NewScreen[*frame]()

	if got := s.Lifecycle().State(); got != lifecycle.Created {
		t.Fatalf("screen lifecycle state = %v, want %v", got, lifecycle.Created)
	}
	if _, ok := s.View(); ok {
		t.Fatalf("View() reported a view before CreateView")
	}
	if _, ok := s.ViewLifecycle(); ok {
		t.Fatalf("ViewLifecycle() reported a lifecycle before CreateView")
	}
}

func TestScreen_CreateAndDestroyView(t *testing.T) {
	s := NewScreen[*frame]()
	v := &frame{name: "main"}

	s.CreateView(v)

	got, ok := s.View()
	if !ok || got != v {
		t.Fatalf("View() = %p, %v; want %p, true", got, ok, v)
	}
	vl, ok := s.ViewLifecycle()
	if !ok || !vl.State().AtLeast(lifecycle.Initialized) {
		t.Fatalf("ViewLifecycle() = %v, %v; want a live lifecycle", vl, ok)
	}

	s.DestroyView()

	if _, ok := s.View(); ok {
		t.Fatalf("View() still reports a view after DestroyView")
	}
	// The destroyed generation stays observable until the next view.
	vl, ok = s.ViewLifecycle()
	if !ok || vl.State() != lifecycle.Destroyed {
		t.Fatalf("ViewLifecycle() after destroy = %v, %v; want the destroyed generation", vl.State(), ok)
	}
}

func TestScreen_WatchView(t *testing.T) {
	t.Run("notified per generation in registration order", func(t *testing.T) {
		s := NewScreen[*frame]()
		var order []string
		s.WatchView(func(*frame, *lifecycle.Lifecycle) { order = append(order, "first") })
		s.WatchView(func(*frame, *lifecycle.Lifecycle) { order = append(order, "second") })

		s.CreateView(&frame{})

		if len(order) != 2 || order[0] != "first" || order[1] != "second" {
			t.Fatalf("watcher order = %v, want [first second]", order)
		}
	})

	t.Run("receives the view and a fresh lifecycle", func(t *testing.T) {
		s := NewScreen[*frame]()
		var gotView *frame
		var gotLC *lifecycle.Lifecycle
		s.WatchView(func(v *frame, vl *lifecycle.Lifecycle) {
			gotView = v
			gotLC = vl
		})

		v := &frame{name: "watched"}
		s.CreateView(v)

		if gotView != v {
			t.Fatalf("watcher got view %p, want %p", gotView, v)
		}
		current, _ := s.ViewLifecycle()
		if gotLC != current {
			t.Fatalf("watcher got a lifecycle other than the current generation's")
		}
	})

	t.Run("cancel detaches", func(t *testing.T) {
		s := NewScreen[*frame]()
		calls := 0
		cancel := s.WatchView(func(*frame, *lifecycle.Lifecycle) { calls++ })
		cancel()

		s.CreateView(&frame{})

		if calls != 0 {
			t.Fatalf("canceled watcher called %d times", calls)
		}
	})
}

func TestScreen_CreateViewReplacesUndestroyedView(t *testing.T) {
	s := NewScreen[*frame]()
	s.CreateView(&frame{name: "old"})
	oldLC, _ := s.ViewLifecycle()

	s.CreateView(&frame{name: "new"})

	if oldLC.State() != lifecycle.Destroyed {
		t.Fatalf("previous generation state = %v, want Destroyed", oldLC.State())
	}
	newLC, ok := s.ViewLifecycle()
	if !ok || newLC == oldLC || newLC.State() != lifecycle.Created {
		t.Fatalf("current generation = %v (ok=%v), want a fresh Created lifecycle", newLC, ok)
	}
}

func TestScreen_Destroy(t *testing.T) {
	s := NewScreen[*frame]()
	s.CreateView(&frame{})

	var order []string
	vl, _ := s.ViewLifecycle()
	vl.Subscribe(func(st lifecycle.State) {
		if st == lifecycle.Destroyed {
			order = append(order, "view")
		}
	})
	s.Lifecycle().Subscribe(func(st lifecycle.State) {
		if st == lifecycle.Destroyed {
			order = append(order, "owner")
		}
	})

	s.Destroy()

	if len(order) != 2 || order[0] != "view" || order[1] != "owner" {
		t.Fatalf("destruction order = %v, want [view owner]", order)
	}
}

func TestWindow(t *testing.T) {
	w := NewWindow[*frame]()

	if _, ok := w.Root(); ok {
		t.Fatalf("Root() reported content before SetContent")
	}

	v := &frame{name: "content"}
	w.SetContent(v)

	got, ok := w.Root()
	if !ok || got != v {
		t.Fatalf("Root() = %p, %v; want %p, true", got, ok, v)
	}
}
