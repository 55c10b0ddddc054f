package proxy

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/hasbyte1/go-metaforward/lineage"
)

// Family is a forwarding container kind, optionally specialised for a
// target type. Families form a tree rooted at a family created with
// [NewRoot]; the target of a family is always a subtype of its base's
// target.
//
// A Family is immutable and safe for concurrent use.
type Family struct {
	name      string
	base      *Family
	target    reflect.Type
	container reflect.Type
	ignore    map[string]bool
	shadowed  map[string]bool
	generated bool
	table     *Table
}

// Declaration describes a family derived with [Declare].
type Declaration struct {
	Name string
	// Target is the type the family forwards to. Nil keeps the base target.
	Target reflect.Type
	// Ignore lists member names that are never forwarded. Ignored names are
	// inherited by every family derived from this one.
	Ignore []string
	// Container is the container type whose native members shadow forwarded
	// ones. Nil keeps the base container. It must derive from the base
	// container.
	Container reflect.Type
	// Default makes the family the one returned when its base, or the family
	// itself, is specialised for Target.
	Default bool
}

// NewRoot returns an untyped family for the given container type.
func NewRoot(name string, container reflect.Type) *Family {
	return &Family{
		name:      name,
		container: container,
		ignore:    map[string]bool{},
		shadowed:  nativeNames(container),
	}
}

// Declare derives a family from base.
//
// It fails with [ErrType] when base is nil, when the container does not
// derive from the base container, or when the target is not a subtype of the
// base target.
func Declare(base *Family, d Declaration) (*Family, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: family %q does not derive from a forwarding family", ErrType, d.Name)
	}
	container := base.container
	if d.Container != nil {
		if !lineage.IsSubtype(d.Container, base.container) {
			return nil, fmt.Errorf("%w: family %q: container %v does not derive from %v",
				ErrType, d.Name, d.Container, base.container)
		}
		container = d.Container
	}
	target := base.target
	if d.Target != nil {
		if !lineage.IsSubtype(d.Target, base.target) {
			return nil, fmt.Errorf("%w: family %q: %v is not a subtype of %v",
				ErrType, d.Name, d.Target, base.target)
		}
		target = d.Target
	}

	f := &Family{
		name:      d.Name,
		base:      base,
		target:    target,
		container: container,
		ignore:    union(base.ignore, d.Ignore),
		shadowed:  nativeNames(container),
	}
	if f.name == "" {
		f.name = specialName(base, target)
	}
	if target != nil {
		f.table = Generate(target, f.ignore, f.shadowed)
	}
	if d.Default && d.Target != nil {
		specializations.Store(specKey{base, target}, f)
		specializations.Store(specKey{f, target}, f)
	}
	return f, nil
}

// MustDeclare is like [Declare] but panics on error. It is intended for
// package-level family variables.
func MustDeclare(base *Family, d Declaration) *Family {
	f, err := Declare(base, d)
	if err != nil {
		panic(err)
	}
	return f
}

type specKey struct {
	family *Family
	target reflect.Type
}

// specializations caches Specialize results. Entries are written at most
// once per key and never mutated.
var specializations sync.Map

// Specialize returns the family specialised for t, generating it on first
// use. Repeated calls with the same t return the same *Family.
//
// Specialising for [lineage.Any] or for the family's own target returns f.
// A nil t, or a t that is not a subtype of the family target, fails with
// [ErrType].
func (f *Family) Specialize(t reflect.Type) (*Family, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: specialisation target is not a type", ErrType)
	}
	if t == lineage.Any || t == f.target {
		return f, nil
	}
	k := specKey{f, t}
	if v, ok := specializations.Load(k); ok {
		return v.(*Family), nil
	}
	if !lineage.IsSubtype(t, f.target) {
		return nil, fmt.Errorf("%w: %v is not a subtype of %v", ErrType, t, f.target)
	}
	child := &Family{
		name:      specialName(f, t),
		base:      f,
		target:    t,
		container: f.container,
		ignore:    f.ignore,
		shadowed:  f.shadowed,
		generated: true,
		table:     Generate(t, f.ignore, f.shadowed),
	}
	v, _ := specializations.LoadOrStore(k, child)
	return v.(*Family), nil
}

// Name returns the family name.
func (f *Family) Name() string { return f.name }

// Base returns the family f derives from, or nil for a root.
func (f *Family) Base() *Family { return f.base }

// Target returns the target type, or nil for an untyped family.
func (f *Family) Target() reflect.Type { return f.target }

// Container returns the container type.
func (f *Family) Container() reflect.Type { return f.container }

// Table returns the dispatch table, or nil for an untyped family.
func (f *Family) Table() *Table { return f.table }

// Generated reports whether f was created by Specialize rather than
// declared.
func (f *Family) Generated() bool { return f.generated }

// Ignored returns the ignored member names in sorted order.
func (f *Family) Ignored() []string { return sortedKeys(f.ignore) }

// Shadowed returns the names defined natively by the container, in sorted
// order.
func (f *Family) Shadowed() []string { return sortedKeys(f.shadowed) }

func (f *Family) String() string {
	if f.target == nil {
		return f.name
	}
	return fmt.Sprintf("%s[%v]", f.name, f.target)
}

// nativeNames collects the exported methods and fields of a container type.
func nativeNames(t reflect.Type) map[string]bool {
	names := map[string]bool{}
	if t == nil {
		return names
	}
	for i := 0; i < t.NumMethod(); i++ {
		names[t.Method(i).Name] = true
	}
	for _, f := range structFields(t) {
		names[f.Name] = true
	}
	return names
}

func union(base map[string]bool, extra []string) map[string]bool {
	out := make(map[string]bool, len(base)+len(extra))
	for k := range base {
		out[k] = true
	}
	for _, k := range extra {
		out[k] = true
	}
	return out
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// specialName renders names like TypedListForItem.
func specialName(base *Family, t reflect.Type) string {
	if t == nil {
		return base.name
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	n := t.Name()
	if n == "" {
		n = strings.NewReplacer(" ", "", "{", "", "}", "").Replace(t.String())
	}
	return "Typed" + base.name + "For" + n
}
