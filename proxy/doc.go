// Package proxy builds dispatch tables for forwarding containers.
//
// A [Table] maps member names of a target type to forwarding descriptors
// ([Member]): properties are read from every wrapped element, methods are
// re-dispatched to every element at call time while keeping the declared
// [signature.Signature] of the original method for tooling.
//
// Tables are never built per instance. A [Family] associates a container
// kind with a target type; specialising a family for a type builds the
// table once and caches the result process-wide, so
//
//	f1, _ := root.Specialize(reflect.TypeOf(&Item{}))
//	f2, _ := root.Specialize(reflect.TypeOf(&Item{}))
//	f1 == f2 // true
//
// Member names colliding with names the container itself defines are
// registered under an alias with a trailing underscore, so the native
// container behaviour keeps the bare name.
package proxy
