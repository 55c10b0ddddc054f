package forward

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hasbyte1/go-metaforward/signature"
)

// Literal is an argument that scatter mode passes unchanged to every
// element. Create one with [Broadcast].
type Literal struct {
	Value any
}

// Broadcast marks v as a literal argument.
//
//	l.Scatter().Call("Tag", ids, forward.Broadcast([]string{"a", "b"}))
func Broadcast(v any) Literal { return Literal{Value: v} }

// source yields the argument value for the next element.
type source func() any

func repeat(v any) source { return func() any { return v } }

func cycle(vals []any) source {
	i := 0
	return func() any {
		v := vals[i%len(vals)]
		i++
		return v
	}
}

// sourceFor classifies a scatter argument.
func sourceFor(v any) (source, error) {
	switch x := v.(type) {
	case nil:
		return repeat(nil), nil
	case Literal:
		return repeat(x.Value), nil
	case string, []byte:
		return repeat(v), nil
	case *List:
		if x.Len() == 0 {
			return nil, ErrEmptyScatter
		}
		return cycle(x.All()), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return repeat(v), nil
		}
		if rv.Len() == 0 {
			return nil, fmt.Errorf("%w: %T", ErrEmptyScatter, v)
		}
		vals := make([]any, rv.Len())
		for i := range vals {
			vals[i] = rv.Index(i).Interface()
		}
		return cycle(vals), nil
	}
	return repeat(v), nil
}

// kwargSource applies the keyword suffix convention: "k_" broadcasts k,
// "k__" scatters k_.
func kwargSource(k string, v any) (string, source, error) {
	switch {
	case strings.HasSuffix(k, "__"):
		k = k[:len(k)-1]
	case strings.HasSuffix(k, "_"):
		return k[:len(k)-1], repeat(unliteral(v)), nil
	}
	s, err := sourceFor(v)
	return k, s, err
}

// scatterArgs returns a generator of per-element arguments.
func scatterArgs(pos []any, kw signature.Kwargs) (func() ([]any, signature.Kwargs), error) {
	ps := make([]source, len(pos))
	for i, a := range pos {
		s, err := sourceFor(a)
		if err != nil {
			return nil, fmt.Errorf("%w (argument %d)", err, i)
		}
		ps[i] = s
	}
	ks := make(map[string]source, len(kw))
	for _, k := range kw.Names() {
		name, s, err := kwargSource(k, kw[k])
		if err != nil {
			return nil, fmt.Errorf("%w (keyword %q)", err, k)
		}
		ks[name] = s
	}
	return func() ([]any, signature.Kwargs) {
		args := make([]any, len(ps))
		for i, s := range ps {
			args[i] = s()
		}
		var kwargs signature.Kwargs
		if len(ks) > 0 {
			kwargs = make(signature.Kwargs, len(ks))
			for k, s := range ks {
				kwargs[k] = s()
			}
		}
		return args, kwargs
	}, nil
}

// literals unwraps Broadcast markers for a plain call.
func literals(pos []any, kw signature.Kwargs) ([]any, signature.Kwargs) {
	out := make([]any, len(pos))
	for i, a := range pos {
		out[i] = unliteral(a)
	}
	if len(kw) == 0 {
		return out, kw
	}
	k := make(signature.Kwargs, len(kw))
	for name, v := range kw {
		k[name] = unliteral(v)
	}
	return out, k
}

func unliteral(v any) any {
	if l, ok := v.(Literal); ok {
		return l.Value
	}
	return v
}
