package forward

// Enter calls Enter on every element and collects the results in order.
// Enter is looked up directly on the elements, whatever the dispatch table
// contains.
func (l *List) Enter() (*List, error) {
	v, err := l.fanOut("Enter", nil)
	if err != nil {
		return nil, err
	}
	return l.call("Enter", v, nil)
}

// Exit calls Exit(err) on every element, even after an element has asked to
// suppress err. It reports suppression when any element's Exit returned
// true. A failing Exit aborts the remaining ones.
func (l *List) Exit(err error) (bool, error) {
	v, ferr := l.fanOut("Exit", nil)
	if ferr != nil {
		return false, ferr
	}
	m, ok := v.(*Method)
	if !ok {
		if vals, ok := v.(*List); ok {
			return false, notCallable("Exit", vals.items)
		}
		return false, nil
	}
	suppress := false
	for _, c := range m.calls {
		out, cerr := c.call([]any{err}, nil)
		if cerr != nil {
			return suppress, cerr
		}
		if b, ok := out.(bool); ok && b {
			suppress = true
		}
	}
	return suppress, nil
}

// With runs fn between Enter and Exit. The error returned by fn is passed to
// Exit and returned unless an element suppressed it.
//
//	err := files.With(func(entered *forward.List) error {
//	    _, err := entered.Call("Write", data)
//	    return err
//	})
func (l *List) With(fn func(entered *List) error) error {
	entered, err := l.Enter()
	if err != nil {
		return err
	}
	ferr := fn(entered)
	suppressed, err := l.Exit(ferr)
	if err != nil {
		return err
	}
	if suppressed {
		return nil
	}
	return ferr
}
