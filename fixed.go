package viewbind

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/viewbind/errors"
	"github.com/ygrebnov/viewbind/tracelog"
	"github.com/ygrebnov/viewbind/uithread"
)

// Fixed is a holder whose binding is constructed once against the owner's
// permanent content view and cached for the owner's whole life. There is no
// staleness check and no teardown path: the content view is never replaced,
// and the owner's lifetime bounds the cache.
type Fixed[V comparable, B any] struct {
	name    string
	owner   RootOwner[V]
	factory Factory[V, B]
	handle  B
	bound   bool
}

func newFixed[V comparable, B any](owner RootOwner[V], factory Factory[V, B], cfg config[B]) (*Fixed[V, B], error) {
	if err := uithread.Check(); err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, errors.ErrNilOwner
	}
	if factory == nil {
		return nil, errors.ErrNilFactory
	}
	return &Fixed[V, B]{
		name:    cfg.name,
		owner:   owner,
		factory: factory,
	}, nil
}

// Get returns the binding, constructing and caching it on the first
// successful read.
func (f *Fixed[V, B]) Get() (B, error) {
	var zero B
	if err := uithread.Check(); err != nil {
		return zero, err
	}
	if f.bound {
		return f.handle, nil
	}

	root, ok := f.owner.Root()
	if !ok {
		return zero, errorc.With(
			errors.ErrContentViewNotSet,
			errorc.String(errors.ErrorFieldHolderName, f.name),
		)
	}
	b, err := f.factory(root)
	if err != nil {
		return zero, err
	}
	f.handle = b
	f.bound = true
	tracelog.L().Trace().Str("holder", f.name).Msg("binding constructed")
	return b, nil
}
