package forward

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-metaforward/proxy"
	"github.com/hasbyte1/go-metaforward/signature"
)

var single = proxy.NewRoot("Target", reflect.TypeFor[*Target]())

// TargetFamily returns the untyped family of [Target].
func TargetFamily() *proxy.Family { return single }

// Target forwards member access to a single value.
type Target struct {
	target any
	family *proxy.Family
	cfg    *Config
}

// NewTarget wraps v. With [AutoDetect] the target is specialised for the
// dynamic type of v.
func NewTarget(v any, opts ...Option) (*Target, error) {
	cfg := newConfig(single, opts)
	fam, err := cfg.family([]any{v})
	if err != nil {
		return nil, err
	}
	return &Target{target: v, family: fam, cfg: cfg}, nil
}

// Unwrap returns the wrapped value.
func (t *Target) Unwrap() any { return t.target }

// Family returns the family of t.
func (t *Target) Family() *proxy.Family { return t.family }

// Forward returns the member name of the wrapped value: a field value or a
// bound method. Typed targets consult their dispatch table like [List].
func (t *Target) Forward(name string) (any, error) {
	a, err := t.lookup(name)
	if err != nil {
		return nil, err
	}
	return a.value, nil
}

// Fallback is like Forward but resolves names outside the dispatch table
// too, logging a warning when it does so.
func (t *Target) Fallback(name string) (any, error) {
	target, _, err := resolve(t.family, t.cfg, name, true)
	if err != nil {
		return nil, err
	}
	a, err := lookup(t.target, target)
	if err != nil {
		return nil, err
	}
	return a.value, nil
}

// Call calls the member name with args. A trailing [signature.Kwargs] is
// passed as keyword arguments.
func (t *Target) Call(name string, args ...any) (any, error) {
	a, err := t.lookup(name)
	if err != nil {
		return nil, err
	}
	return callAttr(name, a, args)
}

func callAttr(name string, a attr, args []any) (any, error) {
	if !isCallable(a.value) {
		return nil, notCallable(name, []any{a.value})
	}
	pos, kw := signature.Split(args)
	return a.call(pos, kw)
}

// Invoke calls the wrapped value itself, which must be a func or a
// [Callable].
func (t *Target) Invoke(args ...any) (any, error) {
	if !isCallable(t.target) {
		return nil, notCallable("Invoke", []any{t.target})
	}
	pos, kw := signature.Split(args)
	return attr{value: t.target}.call(pos, kw)
}

// Enter calls Enter on the wrapped value, bypassing the dispatch table.
func (t *Target) Enter() (any, error) {
	a, err := lookup(t.target, "Enter")
	if err != nil {
		return nil, err
	}
	return callAttr("Enter", a, nil)
}

// Exit calls Exit(err) on the wrapped value and reports whether it asked to
// suppress err.
func (t *Target) Exit(err error) (bool, error) {
	a, cerr := lookup(t.target, "Exit")
	if cerr != nil {
		return false, cerr
	}
	v, cerr := callAttr("Exit", a, []any{err})
	if cerr != nil {
		return false, cerr
	}
	b, _ := v.(bool)
	return b, nil
}

func (t *Target) String() string {
	return fmt.Sprintf("%s(%v)", t.family.Name(), t.target)
}

func (t *Target) lookup(name string) (attr, error) {
	target, _, err := resolve(t.family, t.cfg, name, false)
	if err != nil {
		return attr{}, err
	}
	return lookup(t.target, target)
}
