package constants

const Namespace = "viewbind"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// FactoryMethodName is the conventional factory method looked up on a binding
// type when the caller does not supply an explicit factory. The method must be
// declared on the pointer to the binding struct, take the root view as its
// single argument, and return error.
const FactoryMethodName = "Bind"
