package lineage

import (
	"log/slog"
	"reflect"
	"sort"
)

// Any is the universal base type, interface{}.
var Any = reflect.TypeFor[any]()

// Resolver computes ancestor chains and common types.
//
// The zero value is not usable; create one with [New]. A Resolver is
// immutable after construction and safe for concurrent use.
type Resolver struct {
	logger       *slog.Logger
	capabilities []reflect.Type
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithLogger sets the logger used for resolver warnings.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCapabilities registers interface types that take part in ancestor
// chains. Non-interface types are ignored. Interfaces with more methods are
// considered more specific; ties keep registration order.
func WithCapabilities(types ...reflect.Type) Option {
	return func(r *Resolver) {
		for _, t := range types {
			if t != nil && t.Kind() == reflect.Interface && t != Any {
				r.capabilities = append(r.capabilities, t)
			}
		}
	}
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	sort.SliceStable(r.capabilities, func(i, j int) bool {
		return r.capabilities[i].NumMethod() > r.capabilities[j].NumMethod()
	})
	return r
}

// Default is the Resolver used by the package-level functions.
var Default = New()

// Ancestors returns the self-inclusive ancestor chain of t, most specific
// first. The last element is always [Any]. A nil t has the chain [Any].
func (r *Resolver) Ancestors(t reflect.Type) []reflect.Type {
	if t == nil || t == Any {
		return []reflect.Type{Any}
	}
	seen := make(map[reflect.Type]bool)
	var chain []reflect.Type
	walkEmbedded(t, seen, &chain)
	for _, c := range r.capabilities {
		if !seen[c] && t.Implements(c) {
			seen[c] = true
			chain = append(chain, c)
		}
	}
	return append(chain, Any)
}

// walkEmbedded appends t and, depth first, everything t embeds. An embedded
// struct E reached through a pointer type contributes *E, whose method set
// is the one actually promoted.
func walkEmbedded(t reflect.Type, seen map[reflect.Type]bool, chain *[]reflect.Type) {
	if seen[t] {
		return
	}
	seen[t] = true
	*chain = append(*chain, t)

	s, ptr := t, false
	if s.Kind() == reflect.Pointer {
		s, ptr = s.Elem(), true
	}
	if s.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		if !f.Anonymous {
			continue
		}
		et := f.Type
		if ptr && et.Kind() == reflect.Struct {
			et = reflect.PointerTo(et)
		}
		walkEmbedded(et, seen, chain)
	}
}

// CommonOf returns the most specific type shared by all types. An empty
// input logs a warning and returns [Any].
func (r *Resolver) CommonOf(types []reflect.Type) reflect.Type {
	if len(types) == 0 {
		r.logger.Warn("lineage: cannot determine a common type from an empty sequence")
		return Any
	}
	common := r.Ancestors(types[0])
	for _, t := range types[1:] {
		for _, base := range r.Ancestors(t) {
			if i := indexOf(common, base); i >= 0 {
				common = common[i:]
				break
			}
		}
	}
	return common[0]
}

// Common returns the most specific type shared by the dynamic types of
// items. See [Resolver.CommonOf].
func (r *Resolver) Common(items []any) reflect.Type {
	types := make([]reflect.Type, len(items))
	for i, it := range items {
		types[i] = reflect.TypeOf(it)
	}
	return r.CommonOf(types)
}

// IsSubtype reports whether t can stand in for base: base is [Any], base
// appears in the ancestor chain of t, or base is an interface t implements.
func (r *Resolver) IsSubtype(t, base reflect.Type) bool {
	if base == nil || base == Any {
		return true
	}
	if t == nil {
		return false
	}
	if indexOf(r.Ancestors(t), base) >= 0 {
		return true
	}
	return base.Kind() == reflect.Interface && t.Implements(base)
}

func indexOf(chain []reflect.Type, t reflect.Type) int {
	for i, c := range chain {
		if c == t {
			return i
		}
	}
	return -1
}

// Ancestors calls [Resolver.Ancestors] on [Default].
func Ancestors(t reflect.Type) []reflect.Type { return Default.Ancestors(t) }

// Common calls [Resolver.Common] on [Default].
func Common(items []any) reflect.Type { return Default.Common(items) }

// CommonOf calls [Resolver.CommonOf] on [Default].
func CommonOf(types []reflect.Type) reflect.Type { return Default.CommonOf(types) }

// IsSubtype calls [Resolver.IsSubtype] on [Default].
func IsSubtype(t, base reflect.Type) bool { return Default.IsSubtype(t, base) }
