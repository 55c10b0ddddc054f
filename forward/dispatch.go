package forward

import (
	"fmt"
	"log/slog"

	"github.com/hasbyte1/go-metaforward/proxy"
	"github.com/hasbyte1/go-metaforward/signature"
)

// Forward looks name up on every element.
//
// For a typed list name must be in the dispatch table; aliases resolve to
// the member they stand for. Names outside the table fail with
// [ErrNotForwarded] unless the list was built with [WithImplicitFallback].
//
// The result is a *Method when every element's member is callable, a *List
// of the values otherwise, and an empty []any when the list is empty. The
// first element lacking name aborts with an [*AttributeError].
func (l *List) Forward(name string) (any, error) {
	target, sig, err := resolve(l.family, l.cfg, name, false)
	if err != nil {
		return nil, err
	}
	return l.fanOut(target, sig)
}

// Fallback is like Forward but resolves names outside the dispatch table
// too, logging a warning when it does so for a typed list.
func (l *List) Fallback(name string) (any, error) {
	target, sig, err := resolve(l.family, l.cfg, name, true)
	if err != nil {
		return nil, err
	}
	return l.fanOut(target, sig)
}

// Get forwards name and returns the per-element values. For methods the
// values are the bound methods.
func (l *List) Get(name string) (*List, error) {
	v, err := l.Forward(name)
	if err != nil {
		return nil, err
	}
	return l.values(v), nil
}

// Call forwards name and calls the resulting method with args. An empty list
// yields an empty List.
func (l *List) Call(name string, args ...any) (*List, error) {
	v, err := l.Forward(name)
	if err != nil {
		return nil, err
	}
	return l.call(name, v, args)
}

func (l *List) call(name string, v any, args []any) (*List, error) {
	switch x := v.(type) {
	case *Method:
		return x.Call(args...)
	case *List:
		return nil, notCallable(name, x.items)
	}
	return l.wrap(nil), nil
}

// values converts a Forward result into a List of values.
func (l *List) values(v any) *List {
	switch x := v.(type) {
	case *List:
		return x
	case *Method:
		return l.wrap(x.Values())
	}
	return l.wrap(nil)
}

// Invoke calls every element with args. Elements must be funcs or
// implement [Callable].
func (l *List) Invoke(args ...any) (*List, error) {
	if len(l.items) == 0 {
		return l.wrap(nil), nil
	}
	if err := notCallable("Invoke", l.items); err != nil {
		return nil, err
	}
	calls := make([]attr, len(l.items))
	for i, it := range l.items {
		calls[i] = attr{value: it}
	}
	return l.method("Invoke", nil, calls).Call(args...)
}

// fanOut performs the per-element lookup of name.
func (l *List) fanOut(name string, sig *signature.Signature) (any, error) {
	if len(l.items) == 0 {
		return []any{}, nil
	}
	attrs := make([]attr, len(l.items))
	vals := make([]any, len(l.items))
	for i, it := range l.items {
		a, err := lookup(it, name)
		if err != nil {
			return nil, err
		}
		attrs[i], vals[i] = a, a.value
	}
	err := notCallable(name, vals)
	if err == nil {
		return l.method(name, sig, attrs), nil
	}
	if l.scatter {
		return nil, err
	}
	return l.wrap(vals), nil
}

func (l *List) method(name string, sig *signature.Signature, calls []attr) *Method {
	if sig == nil {
		sig = calls[0].sig
	}
	return &Method{
		name:    name,
		sig:     sig,
		calls:   calls,
		typed:   l.typed,
		scatter: l.scatter,
		cfg:     l.cfg,
	}
}

// resolve maps name through the dispatch table of f. It returns the name to
// look up on the elements and the declared signature, if any.
func resolve(f *proxy.Family, cfg *Config, name string, fallback bool) (string, *signature.Signature, error) {
	t := f.Table()
	if t == nil {
		return name, nil, nil
	}
	if m, ok := t.Lookup(name); ok {
		return m.Target, m.Signature, nil
	}
	if !fallback && !cfg.ImplicitFallback {
		return "", nil, fmt.Errorf("%w: %q on %s", ErrNotForwarded, name, f)
	}
	cfg.Logger.Warn("forward: name resolved outside the dispatch table",
		slog.String("name", name),
		slog.String("family", f.String()))
	return name, nil, nil
}

// notCallable returns a *NotCallableError naming the values that cannot be
// called, or nil when all can.
func notCallable(name string, vals []any) error {
	var offending []string
	for i, v := range vals {
		if !isCallable(v) {
			offending = append(offending, fmt.Sprintf("%d:%T", i, v))
		}
	}
	if offending == nil {
		return nil
	}
	return &NotCallableError{Name: name, Offending: offending}
}
