// Package forward provides forwarding containers: values that expose the
// members of the objects they wrap.
//
// A [List] wraps an ordered sequence of elements. Forwarding a name looks it
// up on every element and re-collects the results in order, so a list of
// items can be used as if it were a single item:
//
//	l, _ := forward.New([]any{a, b, c})
//	levels, _ := l.Get("Level")             // List[a.Level b.Level c.Level]
//	greetings, _ := l.Call("Greet", "bob")  // List[a.Greet("bob") ...]
//
// # Typed lists
//
// A list constructed with [As], [AsType] or [AutoDetect] is specialised for
// a target type. Its dispatch table (see package proxy) decides which names
// are forwarded; other names fail with [ErrNotForwarded] unless they are
// reached through [List.Fallback], which logs a warning. Names the list
// defines itself, such as Len, are forwarded under an alias with a trailing
// underscore:
//
//	l, _ := forward.New(items, forward.AutoDetect())
//	l.Len()           // number of elements
//	l.Get("Len_")     // List of every element's Len()
//
// # Scatter
//
// [List.Scatter] returns a copy whose method calls distribute slice
// arguments element-wise, cycling short slices:
//
//	l.Scatter().Call("Add", []int{0, 1, 2}) // 5 elements get 0 1 2 0 1
//
// Wrap an argument with [Broadcast] to pass it unchanged to every element.
//
// # Reduction
//
// A [ReducingList] returns the bare value instead of a one-element list.
//
// Lists are not safe for concurrent mutation; forwarding never mutates the
// list it is called on.
package forward
