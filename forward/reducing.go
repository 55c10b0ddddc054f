package forward

// ReducingList is a List whose forwarding results collapse to the bare
// value when they hold exactly one element. Results with zero or several
// elements are returned unchanged, as is everything Slice returns.
type ReducingList struct {
	*List
}

// NewReducing creates a ReducingList from items. Options are those of
// [New]; the default family is [ReducingFamily].
func NewReducing(items []any, opts ...Option) (*ReducingList, error) {
	l, err := newList(reducing, items, opts)
	if err != nil {
		return nil, err
	}
	return &ReducingList{List: l}, nil
}

// Forward is [List.Forward] with reduction. Forwarded methods reduce the
// result of their invocation through [Method.Invoke]; [Method.Call] keeps
// returning the unreduced List.
func (r *ReducingList) Forward(name string) (any, error) {
	v, err := r.List.Forward(name)
	if err != nil {
		return nil, err
	}
	return reduce(v), nil
}

// Fallback is [List.Fallback] with reduction.
func (r *ReducingList) Fallback(name string) (any, error) {
	v, err := r.List.Fallback(name)
	if err != nil {
		return nil, err
	}
	return reduce(v), nil
}

// Get is [List.Get] with reduction.
func (r *ReducingList) Get(name string) (any, error) {
	l, err := r.List.Get(name)
	if err != nil {
		return nil, err
	}
	return reduce(l), nil
}

// Call is [List.Call] with reduction.
func (r *ReducingList) Call(name string, args ...any) (any, error) {
	l, err := r.List.Call(name, args...)
	if err != nil {
		return nil, err
	}
	return reduce(l), nil
}

// Scatter returns a scatter-mode copy of r.
func (r *ReducingList) Scatter() *ReducingList {
	return &ReducingList{List: r.List.Scatter()}
}

func reduce(v any) any {
	switch x := v.(type) {
	case *Method:
		c := *x
		c.reduce = true
		return &c
	case *List:
		if len(x.items) == 1 {
			return x.items[0]
		}
	}
	return v
}
