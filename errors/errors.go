package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/viewbind/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors. Use errors.Is to match.
//
// The taxonomy is deliberate: misuse errors mean the caller broke the
// construction contract, premature-access errors mean the holder was read
// outside a binding window, resolution errors mean the conventional factory
// method could not be located on a binding type.
var (
	// Misuse.
	ErrOffOwnerThread = namespace.NewError("operation invoked off the owner goroutine")
	ErrNilOwner       = namespace.NewError("nil owner")
	ErrNilFactory     = namespace.NewError("nil binding factory; pass an explicit factory or use the reflective constructor")

	// Premature access.
	ErrViewNotCreated    = namespace.NewError("view is not created yet")
	ErrViewDestroyed     = namespace.NewError("view is destroyed; release the binding via the WithCleanUp callback instead of reading the holder after destruction")
	ErrOwnerDestroyed    = namespace.NewError("owner is destroyed")
	ErrContentViewNotSet = namespace.NewError("content view is not set")

	// Reflective resolution.
	ErrNoFactoryMethod        = namespace.NewError("binding type has no conventional factory method")
	ErrFactoryMethodSignature = namespace.NewError("binding factory method has an unexpected signature")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentFactory   = "factory"
	keySegmentHolder    = "holder"
	keySegmentLifecycle = "lifecycle"
)

// Exported structured error field keys
var (
	ErrorFieldBindingType = newKey("binding_type", keySegmentFactory) // viewbind.factory.binding_type
	ErrorFieldViewType    = newKey("view_type", keySegmentFactory)    // viewbind.factory.view_type
	ErrorFieldMethod      = newKey("method", keySegmentFactory)       // viewbind.factory.method
	ErrorFieldSignature   = newKey("signature", keySegmentFactory)    // viewbind.factory.signature
)

var (
	ErrorFieldHolderName = newKey("name", keySegmentHolder) // viewbind.holder.name
)

var (
	ErrorFieldState = newKey("state", keySegmentLifecycle) // viewbind.lifecycle.state
)
