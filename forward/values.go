package forward

import (
	"fmt"
	"reflect"
)

// This file contains package-level generic helpers. Go methods cannot
// introduce type parameters, so typed views of a List are functions.

// Values returns the elements of l as []T. It fails with ErrElementType on
// the first element that is not a T.
//
//	ints, err := forward.Values[int](forward.Of(1, 2, 3))
func Values[T any](l *List) ([]T, error) {
	out := make([]T, len(l.items))
	for i, it := range l.items {
		v, ok := it.(T)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T, not %v", ErrElementType, i, it, reflect.TypeFor[T]())
		}
		out[i] = v
	}
	return out, nil
}

// Pluck forwards name and returns the per-element values as []T.
//
//	ids, err := forward.Pluck[string](l, "ID")
func Pluck[T any](l *List, name string) ([]T, error) {
	r, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	return Values[T](r)
}

// Map calls fn for every element and collects the results in a new List of
// the same typed mode.
func Map[T any](l *List, fn func(T, int) any) (*List, error) {
	vals, err := Values[T](l)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = fn(v, i)
	}
	return l.wrap(out), nil
}
