package signature

import (
	"fmt"
	"math"
	"math/bits"
	"reflect"
	"sort"
	"strings"
)

// Kwargs carries keyword arguments. Pass it as the last element of an
// argument list; [Split] separates it again.
type Kwargs map[string]any

// Names returns the keyword names in sorted order.
func (kw Kwargs) Names() []string {
	names := make([]string, 0, len(kw))
	for k := range kw {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Split separates a trailing Kwargs value from the positional arguments.
func Split(args []any) ([]any, Kwargs) {
	if n := len(args); n > 0 {
		if kw, ok := args[n-1].(Kwargs); ok {
			return args[:n-1], kw
		}
	}
	return args, nil
}

// Join is the inverse of [Split]. An empty kw is dropped.
func Join(args []any, kw Kwargs) []any {
	if len(kw) == 0 {
		return args
	}
	out := make([]any, 0, len(args)+1)
	out = append(out, args...)
	return append(out, kw)
}

// Bind converts args and kw into the input values for a call of fn, a
// function type without receiver (a bound method or bound field).
//
// sig supplies parameter names and defaults; it may be nil, in which case
// keyword arguments are rejected and no defaults apply.
func Bind(sig *Signature, fn reflect.Type, args []any, kw Kwargs) ([]reflect.Value, error) {
	n := fn.NumIn()
	fixed := n
	if fn.IsVariadic() {
		fixed = n - 1
	}
	vals, err := place(sig, fixed, args, kw)
	if err != nil {
		return nil, err
	}
	switch {
	case fn.IsVariadic() && len(vals) < fixed:
		return nil, fmt.Errorf("%w: %s takes at least %d, got %d", ErrArity, label(sig), fixed, len(vals))
	case !fn.IsVariadic() && len(vals) != n:
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, label(sig), n, len(vals))
	}
	in := make([]reflect.Value, len(vals))
	for i, a := range vals {
		v, err := convert(a, paramType(fn, i))
		if err != nil {
			return nil, fmt.Errorf("%w (argument %d of %s)", err, i, label(sig))
		}
		in[i] = v
	}
	return in, nil
}

// place orders keyword arguments into their positional slots and fills
// missing trailing parameters from their defaults.
func place(sig *Signature, fixed int, args []any, kw Kwargs) ([]any, error) {
	vals := append([]any(nil), args...)
	if sig == nil || sig.Permissive {
		if len(kw) > 0 {
			return nil, fmt.Errorf("%w: %s declares no parameter names (%s)",
				ErrUnknownKeyword, label(sig), strings.Join(kw.Names(), ", "))
		}
		return vals, nil
	}
	if len(vals) >= fixed && len(kw) == 0 {
		return vals, nil
	}

	params := sig.Args()
	slots := make([]any, max(fixed, len(vals)))
	filled := make([]bool, len(slots))
	for i, v := range vals {
		slots[i], filled[i] = v, true
	}
	for _, k := range kw.Names() {
		j := paramIndex(params, k)
		if j < 0 || j >= fixed {
			return nil, fmt.Errorf("%w: %q for %s", ErrUnknownKeyword, k, label(sig))
		}
		if filled[j] {
			return nil, fmt.Errorf("%w: %q for %s", ErrDuplicateArgument, k, label(sig))
		}
		slots[j], filled[j] = kw[k], true
	}
	for i := 0; i < fixed; i++ {
		if filled[i] {
			continue
		}
		if i < len(params) && params[i].HasDefault {
			slots[i], filled[i] = params[i].Default, true
			continue
		}
		name := fmt.Sprintf("arg%d", i)
		if i < len(params) {
			name = params[i].Name
		}
		return nil, fmt.Errorf("%w: %q for %s", ErrMissingArgument, name, label(sig))
	}
	return slots, nil
}

func paramIndex(params []Param, name string) int {
	for i, p := range params {
		if p.Name == name && !p.Variadic {
			return i
		}
	}
	return -1
}

func paramType(fn reflect.Type, i int) reflect.Type {
	last := fn.NumIn() - 1
	if fn.IsVariadic() && i >= last {
		return fn.In(last).Elem()
	}
	return fn.In(i)
}

func convert(a any, t reflect.Type) (reflect.Value, error) {
	if a == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil is not a valid %s", ErrArgType, typeString(t))
	}
	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if convertible(v.Type(), t) {
		if !fits(v, t) {
			return reflect.Value{}, fmt.Errorf("%w: %v does not fit in %s", ErrArgType, a, typeString(t))
		}
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s",
		ErrArgType, typeString(v.Type()), typeString(t))
}

// convertible allows integer to integer or float kinds, float to float, and
// between string kinds. Numeric conversions must also pass fits.
func convertible(src, dst reflect.Type) bool {
	s, d := src.Kind(), dst.Kind()
	switch {
	case isInt(s) && (isInt(d) || isFloat(d)):
	case isFloat(s) && isFloat(d):
	case s == reflect.String && d == reflect.String:
	default:
		return false
	}
	return src.ConvertibleTo(dst)
}

// fits reports whether converting the numeric v to t preserves its value.
// Integers going to a float must be exactly representable.
func fits(v reflect.Value, t reflect.Type) bool {
	z := reflect.Zero(t)
	switch k := v.Kind(); {
	case isSigned(k):
		x := v.Int()
		switch {
		case isSigned(t.Kind()):
			return !z.OverflowInt(x)
		case isInt(t.Kind()):
			return x >= 0 && !z.OverflowUint(uint64(x))
		case isFloat(t.Kind()):
			u := uint64(x)
			if x < 0 {
				u = -u
			}
			return exact(u, t)
		}
	case isInt(k):
		x := v.Uint()
		switch {
		case isSigned(t.Kind()):
			return x <= math.MaxInt64 && !z.OverflowInt(int64(x))
		case isInt(t.Kind()):
			return !z.OverflowUint(x)
		case isFloat(t.Kind()):
			return exact(x, t)
		}
	case isFloat(k):
		return !z.OverflowFloat(v.Float())
	}
	return true
}

// exact reports whether the magnitude u has no more significant bits than
// the mantissa of the float type t.
func exact(u uint64, t reflect.Type) bool {
	if u == 0 {
		return true
	}
	mantissa := 53
	if t.Kind() == reflect.Float32 {
		mantissa = 24
	}
	return bits.Len64(u>>bits.TrailingZeros64(u)) <= mantissa
}

func isSigned(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func label(sig *Signature) string {
	if sig == nil {
		return "func"
	}
	return sig.Name
}
