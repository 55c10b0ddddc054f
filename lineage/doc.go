// Package lineage resolves the most specific type shared by a set of values.
//
// Go has no class inheritance, so the ancestor chain of a type is built from
// what Go does have: struct embedding and interface satisfaction. The chain
// of T is T itself, then (depth first, in declaration order) the chains of
// the types T embeds, then every registered capability interface T
// implements, and finally [Any]:
//
//	type Animal struct{ Name string }
//	type Dog struct{ *Animal }
//	type Cat struct{ *Animal }
//
//	lineage.Ancestors(reflect.TypeOf(&Dog{}))  // [*Dog *Animal any]
//	lineage.Common([]any{&Dog{}, &Cat{}})      // *Animal
//	lineage.Common([]any{&Dog{}, 42})          // any
package lineage
