// Package resolve locates conventional factory methods on binding types.
// It is the fallback path behind the reflective constructors; the primary
// path is an explicit, compile-time checked factory function.
package resolve

import (
	"reflect"
	"sync"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/viewbind/constants"
	"github.com/ygrebnov/viewbind/errors"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// cacheKey memoizes resolution per (binding type, view type) pair. Both
// types participate: the same binding type may be resolved against distinct
// view types in different holders.
type cacheKey struct {
	binding reflect.Type
	view    reflect.Type
}

var factoryCache sync.Map // cacheKey -> resolved

// resolved is a successfully located factory method.
type resolved struct {
	elem   reflect.Type // struct type allocated per construction
	method int          // method index on the pointer type
}

func (r resolved) call(root reflect.Value) (reflect.Value, error) {
	handle := reflect.New(r.elem)
	out := handle.Method(r.method).Call([]reflect.Value{root})
	if err, _ := out[0].Interface().(error); err != nil {
		return reflect.Value{}, err
	}
	return handle, nil
}

// Factory resolves the conventional factory for the given binding and view
// types. The binding type is the handle type as exposed to callers and must
// be a pointer to a struct declaring a method named
// constants.FactoryMethodName with signature func(view) error. The returned
// function allocates a fresh binding, invokes the method with the root view,
// and yields the populated handle.
//
// Successful resolutions are cached, so repeated resolution for the same
// pair is cheap.
func Factory(binding, view reflect.Type) (func(root reflect.Value) (reflect.Value, error), error) {
	key := cacheKey{binding: binding, view: view}
	if v, ok := factoryCache.Load(key); ok {
		return v.(resolved).call, nil
	}

	if binding == nil || binding.Kind() != reflect.Ptr || binding.Elem().Kind() != reflect.Struct {
		return nil, errorc.With(
			errors.ErrNoFactoryMethod,
			errorc.String(errors.ErrorFieldBindingType, typeName(binding)),
			errorc.String(errors.ErrorFieldMethod, constants.FactoryMethodName),
		)
	}

	m, ok := binding.MethodByName(constants.FactoryMethodName)
	if !ok {
		return nil, errorc.With(
			errors.ErrNoFactoryMethod,
			errorc.String(errors.ErrorFieldBindingType, typeName(binding)),
			errorc.String(errors.ErrorFieldMethod, constants.FactoryMethodName),
		)
	}

	// m.Type includes the receiver as argument 0.
	if m.Type.NumIn() != 2 || m.Type.In(1) != view || m.Type.NumOut() != 1 || m.Type.Out(0) != errorType {
		return nil, errorc.With(
			errors.ErrFactoryMethodSignature,
			errorc.String(errors.ErrorFieldBindingType, typeName(binding)),
			errorc.String(errors.ErrorFieldViewType, typeName(view)),
			errorc.String(errors.ErrorFieldMethod, constants.FactoryMethodName),
			errorc.String(errors.ErrorFieldSignature, m.Type.String()),
		)
	}

	r := resolved{elem: binding.Elem(), method: m.Index}
	factoryCache.Store(key, r)
	return r.call, nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
