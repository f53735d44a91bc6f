package viewbind

import (
	"reflect"

	"github.com/ygrebnov/viewbind/internal/resolve"
)

// FactoryOf resolves a Factory for binding type B from its conventional
// factory method. B must be a pointer to a struct declaring
//
//	func (b B) Bind(root V) error
//
// The returned factory allocates a fresh binding, invokes Bind with the root
// view, and yields the populated handle. Resolution results are cached per
// (B, V) pair, so repeated resolution is cheap.
//
// Explicit factories are preferred; this fallback exists for generated
// binding types that all share the conventional shape.
func FactoryOf[B any, V comparable]() (Factory[V, B], error) {
	bindingType := reflect.TypeOf((*B)(nil)).Elem()
	viewType := reflect.TypeOf((*V)(nil)).Elem()

	call, err := resolve.Factory(bindingType, viewType)
	if err != nil {
		return nil, err
	}
	return func(root V) (B, error) {
		var zero B
		handle, err := call(reflect.ValueOf(root))
		if err != nil {
			return zero, err
		}
		return handle.Interface().(B), nil
	}, nil
}
