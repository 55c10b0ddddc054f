// Package signature extracts forwardable call signatures from Go methods and
// binds dynamic argument lists onto them.
//
// # Receivers
//
// A member is eligible for instance-method forwarding only when its first
// parameter is the receiver. [Extract] reports anything else with a
// [*NotAMethodError] so that callers can skip the member:
//
//	sig, err := signature.Extract("Greet", m.Type, reflect.TypeOf(&Item{}))
//	if errors.Is(err, signature.ErrNotAMethod) {
//	    // not forwardable, skip it
//	}
//
// # Names and defaults
//
// Go reflection does not record parameter names or default values. Types may
// declare them by implementing [Annotated]:
//
//	func (*Item) ForwardDocs() map[string]signature.Doc {
//	    return map[string]signature.Doc{
//	        "Greet": {Text: "Greet says hello.", Params: []string{"name", "punct"}, Defaults: []any{"!"}},
//	    }
//	}
//
// An annotation that does not fit the method is not an error: the signature
// silently degrades to a permissive one (receiver plus args ...any).
//
// # Binding
//
// [Bind] turns positional arguments and [Kwargs] into the reflect values for
// a call, filling trailing defaults:
//
//	in, err := signature.Bind(sig, fn.Type(), []any{"bob"}, signature.Kwargs{"punct": "?"})
package signature
