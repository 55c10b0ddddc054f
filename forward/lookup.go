package forward

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-metaforward/proxy"
	"github.com/hasbyte1/go-metaforward/signature"
)

// Callable is implemented by values that can be invoked like a function.
// Forwarding treats them like func values.
type Callable interface {
	Invoke(args ...any) (any, error)
}

// Forwarder is implemented by values that resolve member names themselves.
// Forwarding into an element that implements Forwarder delegates to it, so
// lists of lists forward into the inner lists.
type Forwarder interface {
	Forward(name string) (any, error)
}

// attr is the result of looking up one name on one element.
type attr struct {
	value any
	// sig carries parameter names and defaults for bound methods.
	sig *signature.Signature
}

// lookup resolves name on item: methods first, then exported struct fields,
// then fields declared by proxy.Fielder, then a nested Forwarder.
func lookup(item any, name string) (attr, error) {
	if item == nil {
		return attr{}, &AttributeError{Type: "<nil>", Name: name}
	}
	v := reflect.ValueOf(item)

	if m := v.MethodByName(name); m.IsValid() {
		sig, _ := signature.Of(v.Type(), name)
		return attr{value: m.Interface(), sig: sig}, nil
	}

	if a, ok, err := fieldOf(v, name); ok || err != nil {
		return a, err
	}

	if f, ok := item.(proxy.Fielder); ok {
		if val, ok := f.ForwardField(name); ok {
			return attr{value: val}, nil
		}
	}

	if fw, ok := item.(Forwarder); ok {
		val, err := fw.Forward(name)
		if err != nil {
			return attr{}, err
		}
		return attr{value: val}, nil
	}

	return attr{}, &AttributeError{Type: fmt.Sprintf("%T", item), Name: name}
}

// fieldOf reads the exported struct field name from v. Function-valued
// fields whose first parameter is the owner type are bound to v.
func fieldOf(v reflect.Value, name string) (attr, bool, error) {
	s := v
	if s.Kind() == reflect.Pointer {
		if s.IsNil() {
			return attr{}, false, nil
		}
		s = s.Elem()
	}
	if s.Kind() != reflect.Struct {
		return attr{}, false, nil
	}
	sf, ok := s.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return attr{}, false, nil
	}
	f, err := s.FieldByIndexErr(sf.Index)
	if err != nil {
		return attr{}, false, &AttributeError{Type: v.Type().String(), Name: name, Err: err}
	}
	if !f.CanInterface() {
		return attr{}, false, nil
	}
	ft := f.Type()
	if ft.Kind() == reflect.Func && !f.IsNil() && ft.NumIn() > 0 && ft.In(0) == v.Type() {
		sig, _ := signature.Of(v.Type(), name)
		return attr{value: bindField(f, v).Interface(), sig: sig}, true, nil
	}
	return attr{value: f.Interface()}, true, nil
}

// bindField returns fn with its first argument fixed to recv.
func bindField(fn, recv reflect.Value) reflect.Value {
	ft := fn.Type()
	in := make([]reflect.Type, ft.NumIn()-1)
	for i := range in {
		in[i] = ft.In(i + 1)
	}
	out := make([]reflect.Type, ft.NumOut())
	for i := range out {
		out[i] = ft.Out(i)
	}
	bound := reflect.FuncOf(in, out, ft.IsVariadic())
	return reflect.MakeFunc(bound, func(args []reflect.Value) []reflect.Value {
		full := append([]reflect.Value{recv}, args...)
		if ft.IsVariadic() {
			return fn.CallSlice(full)
		}
		return fn.Call(full)
	})
}

// isCallable reports whether v is a non-nil func or a Callable.
func isCallable(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(Callable); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// call invokes a.value with positional args and keywords.
func (a attr) call(args []any, kw signature.Kwargs) (any, error) {
	rv := reflect.ValueOf(a.value)
	if rv.Kind() != reflect.Func {
		if c, ok := a.value.(Callable); ok {
			return c.Invoke(signature.Join(args, kw)...)
		}
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, a.value)
	}
	in, err := signature.Bind(a.sig, rv.Type(), args, kw)
	if err != nil {
		return nil, err
	}
	return unpack(rv.Call(in))
}

var errorType = reflect.TypeFor[error]()

// unpack turns call results into a single value. A trailing error result is
// returned as the error; several remaining results become a []any.
func unpack(out []reflect.Value) (any, error) {
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if err, _ := out[n-1].Interface().(error); err != nil {
			return nil, err
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}
	vals := make([]any, len(out))
	for i, o := range out {
		vals[i] = o.Interface()
	}
	return vals, nil
}
