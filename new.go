package viewbind

// Option configures a holder at construction time.
type Option[B any] func(*config[B])

type config[B any] struct {
	name    string
	cleanUp CleanUp[B]
}

// WithCleanUp registers fn to run on the cached binding right before a
// Scoped holder discards it, once per view generation. Fixed holders never
// discard, so the option has no effect on them.
func WithCleanUp[B any](fn CleanUp[B]) Option[B] {
	return func(c *config[B]) { c.cleanUp = fn }
}

// WithName sets the holder name used in trace messages and structured error
// fields.
func WithName[B any](name string) Option[B] {
	return func(c *config[B]) { c.name = name }
}

// NewScoped constructs a view-scoped holder for owner using the explicit
// factory. It must be called on the owner goroutine; on any error no
// subscriptions are retained.
func NewScoped[V comparable, B any](owner ViewOwner[V], factory Factory[V, B], opts ...Option[B]) (*Scoped[V, B], error) {
	cfg := config[B]{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return newScoped(owner, factory, cfg)
}

// NewScopedOf is NewScoped with the factory resolved reflectively from B's
// conventional factory method. See FactoryOf for the required shape.
func NewScopedOf[B any, V comparable](owner ViewOwner[V], opts ...Option[B]) (*Scoped[V, B], error) {
	factory, err := FactoryOf[B, V]()
	if err != nil {
		return nil, err
	}
	return NewScoped(owner, factory, opts...)
}

// NewFixed constructs a bind-once holder for owner using the explicit
// factory. It must be called on the owner goroutine.
func NewFixed[V comparable, B any](owner RootOwner[V], factory Factory[V, B], opts ...Option[B]) (*Fixed[V, B], error) {
	cfg := config[B]{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return newFixed(owner, factory, cfg)
}

// NewFixedOf is NewFixed with the factory resolved reflectively from B's
// conventional factory method.
func NewFixedOf[B any, V comparable](owner RootOwner[V], opts ...Option[B]) (*Fixed[V, B], error) {
	factory, err := FactoryOf[B, V]()
	if err != nil {
		return nil, err
	}
	return NewFixed(owner, factory, opts...)
}
