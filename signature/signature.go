package signature

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Param is one parameter of a forwardable callable.
type Param struct {
	Name string
	// Type is the declared Go type. For a variadic parameter it is the slice
	// type, as reported by reflect.
	Type       reflect.Type
	HasDefault bool
	Default    any
	Variadic   bool
}

// String renders the parameter as "name type" with an optional " = default".
func (p Param) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	if p.Type != nil {
		b.WriteByte(' ')
		if p.Variadic {
			b.WriteString("...")
			b.WriteString(typeString(p.Type.Elem()))
		} else {
			b.WriteString(typeString(p.Type))
		}
	}
	if p.HasDefault {
		fmt.Fprintf(&b, " = %#v", p.Default)
	}
	return b.String()
}

// Signature is the declared calling convention of a forwardable method.
//
// Params[0] is always the receiver. A Signature is immutable once built and
// may be shared between goroutines.
type Signature struct {
	Name    string
	Params  []Param
	Results []reflect.Type
	Doc     string
	// Package is the import path of the package that declares the receiver.
	Package string
	// Permissive is set when the real signature could not be determined and
	// the callable accepts anything: receiver plus args ...any.
	Permissive bool
}

// Receiver returns the receiver type.
func (s *Signature) Receiver() reflect.Type { return s.Params[0].Type }

// Args returns the parameters after the receiver.
func (s *Signature) Args() []Param { return s.Params[1:] }

// Defaults returns the default values of the trailing parameters that have
// one, in declaration order.
func (s *Signature) Defaults() []any {
	var out []any
	for _, p := range s.Args() {
		if p.HasDefault {
			out = append(out, p.Default)
		}
	}
	return out
}

// String renders the signature in Go method syntax, e.g.
//
//	(*pkg.Item) Greet(name string, punct string = "!") string
func (s *Signature) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%s) %s(", typeString(s.Receiver()), s.Name)
	for i, p := range s.Args() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	switch len(s.Results) {
	case 0:
	case 1:
		b.WriteByte(' ')
		b.WriteString(typeString(s.Results[0]))
	default:
		parts := make([]string, len(s.Results))
		for i, r := range s.Results {
			parts[i] = typeString(r)
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	}
	return b.String()
}

// Extract returns the signature of fn, a function whose first parameter must
// be the receiver type recv (a method expression type, or a function-valued
// field that takes its owner explicitly).
//
// Anything else yields a [*NotAMethodError].
func Extract(name string, fn, recv reflect.Type) (*Signature, error) {
	if fn == nil || fn.Kind() != reflect.Func {
		return nil, &NotAMethodError{Def: fmt.Sprintf("%s (%v)", name, fn)}
	}
	if fn.NumIn() == 0 || fn.In(0) != recv {
		return nil, &NotAMethodError{Def: name + strings.TrimPrefix(typeString(fn), "func")}
	}
	return build(name, recv, fn, 1), nil
}

// FromMethod returns the signature of m, a method of recv. Interface methods
// carry no receiver in their reflect type; one is added.
func FromMethod(recv reflect.Type, m reflect.Method) (*Signature, error) {
	if recv.Kind() == reflect.Interface {
		return build(m.Name, recv, m.Type, 0), nil
	}
	return Extract(m.Name, m.Type, recv)
}

// Permissive returns the maximally permissive signature for name on recv:
// the receiver followed by args ...any, without defaults.
func Permissive(name string, recv reflect.Type) *Signature {
	return &Signature{
		Name:    name,
		Package: pkgPath(recv),
		Params: []Param{
			{Name: "recv", Type: recv},
			{Name: "args", Type: reflect.TypeFor[[]any](), Variadic: true},
		},
		Permissive: true,
	}
}

// Annotate applies d to s and returns the result. s is not modified.
//
// When d does not fit s (wrong number of parameter names, more defaults than
// parameters, or a default on the variadic parameter) the permissive
// signature is returned instead.
func Annotate(s *Signature, d Doc) *Signature {
	out := *s
	out.Params = append([]Param(nil), s.Params...)
	out.Doc = d.Text
	args := out.Params[1:]
	if len(d.Params) > 0 {
		if len(d.Params) != len(args) {
			return degrade(s, d.Text)
		}
		for i, n := range d.Params {
			args[i].Name = n
		}
	}
	if len(d.Defaults) > 0 {
		if len(d.Defaults) > len(args) {
			return degrade(s, d.Text)
		}
		off := len(args) - len(d.Defaults)
		for j, def := range d.Defaults {
			if args[off+j].Variadic {
				return degrade(s, d.Text)
			}
			args[off+j].HasDefault = true
			args[off+j].Default = def
		}
	}
	return &out
}

func degrade(s *Signature, doc string) *Signature {
	p := Permissive(s.Name, s.Receiver())
	p.Doc = doc
	p.Results = s.Results
	return p
}

func build(name string, recv, fn reflect.Type, skip int) *Signature {
	s := &Signature{Name: name, Package: pkgPath(recv)}
	s.Params = append(s.Params, Param{Name: "recv", Type: recv})
	n := fn.NumIn()
	for i := skip; i < n; i++ {
		p := Param{Name: fmt.Sprintf("arg%d", i-skip), Type: fn.In(i)}
		if fn.IsVariadic() && i == n-1 {
			p.Name = "args"
			p.Variadic = true
		}
		s.Params = append(s.Params, p)
	}
	for i := 0; i < fn.NumOut(); i++ {
		s.Results = append(s.Results, fn.Out(i))
	}
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Memoised lookup
// ─────────────────────────────────────────────────────────────────────────────

type cacheKey struct {
	recv reflect.Type
	name string
}

// signatures caches Of results, including misses (stored as nil).
var signatures sync.Map

// Of returns the annotated signature of the member name on recv, or false
// when recv has no forwardable method of that name. Results are memoised.
func Of(recv reflect.Type, name string) (*Signature, bool) {
	k := cacheKey{recv, name}
	if v, ok := signatures.Load(k); ok {
		s := v.(*Signature)
		return s, s != nil
	}
	v, _ := signatures.LoadOrStore(k, resolve(recv, name))
	s := v.(*Signature)
	return s, s != nil
}

func resolve(recv reflect.Type, name string) *Signature {
	if recv == nil {
		return nil
	}
	var s *Signature
	if m, ok := recv.MethodByName(name); ok {
		s, _ = FromMethod(recv, m)
	} else if f, ok := structField(recv, name); ok && f.Type.Kind() == reflect.Func {
		s, _ = Extract(name, f.Type, recv)
	}
	if s == nil {
		return nil
	}
	if d, ok := Docs(recv)[name]; ok {
		s = Annotate(s, d)
	}
	return s
}

func structField(t reflect.Type, name string) (reflect.StructField, bool) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}
	f, ok := t.FieldByName(name)
	if !ok || !f.IsExported() {
		return reflect.StructField{}, false
	}
	return f, true
}

func pkgPath(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.PkgPath()
}

func typeString(t reflect.Type) string {
	return strings.ReplaceAll(t.String(), "interface {}", "any")
}
