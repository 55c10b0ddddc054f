package forward

import (
	"github.com/hasbyte1/go-metaforward/signature"
)

// Method is the result of forwarding a name whose members are callable on
// every element. Calling it calls every member in element order.
//
// Method implements [Callable], so forwarding through nested lists yields
// methods of methods.
type Method struct {
	name    string
	sig     *signature.Signature
	calls   []attr
	typed   bool
	scatter bool
	reduce  bool
	cfg     *Config
}

// Name returns the forwarded name.
func (m *Method) Name() string { return m.name }

// Len returns the number of bound members.
func (m *Method) Len() int { return len(m.calls) }

// Signature returns the declared signature of the member: the dispatch
// table entry for typed lists, otherwise the signature of the first
// element's member. It is nil for plain func values.
func (m *Method) Signature() *signature.Signature { return m.sig }

// Values returns the bound members.
func (m *Method) Values() []any {
	out := make([]any, len(m.calls))
	for i, c := range m.calls {
		out[i] = c.value
	}
	return out
}

// Call calls every member with args and collects the results, in element
// order, into a new List. A trailing [signature.Kwargs] argument is passed
// as keyword arguments.
//
// Members returning (T, error) contribute T; the first non-nil error aborts
// the call and is returned unchanged.
//
// Call always returns the full List, also for methods obtained from a
// [ReducingList]. Use [Method.Invoke] to get the reduced result.
//
// In scatter mode every argument is a source of per-element values: slices,
// arrays and Lists are consumed round-robin, cycling when shorter than the
// element count, while strings, byte slices, maps and scalars repeat. Wrap a
// value in [Broadcast], or suffix its keyword with "_", to pass it unchanged
// to every member; a keyword suffixed with "__" is scattered under the name
// with one underscore removed.
func (m *Method) Call(args ...any) (*List, error) {
	pos, kw := signature.Split(args)
	out := make([]any, len(m.calls))
	if !m.scatter {
		pos, kw = literals(pos, kw)
		for i, c := range m.calls {
			v, err := c.call(pos, kw)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return collect(m.cfg, m.typed, out), nil
	}

	next, err := scatterArgs(pos, kw)
	if err != nil {
		return nil, err
	}
	for i, c := range m.calls {
		a, k := next()
		v, err := c.call(a, k)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return collect(m.cfg, m.typed, out), nil
}

// Invoke is Call returning any. Methods obtained from a [ReducingList]
// reduce their result.
func (m *Method) Invoke(args ...any) (any, error) {
	l, err := m.Call(args...)
	if err != nil {
		return nil, err
	}
	if m.reduce {
		return reduce(l), nil
	}
	return l, nil
}
