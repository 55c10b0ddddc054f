package forward

import (
	"fmt"

	"github.com/hasbyte1/go-metaforward/proxy"
)

// List forwards member access to every element of an ordered sequence.
//
// Results are re-collected into new Lists in element order. A result list
// keeps only whether its parent was typed: a typed parent produces a result
// specialised for the common type of the results.
type List struct {
	items   []any
	family  *proxy.Family
	typed   bool
	scatter bool
	cfg     *Config
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List from items (the slice is copied).
//
// It fails with proxy.ErrType when the requested specialisation is not a
// subtype of the family target.
func New(items []any, opts ...Option) (*List, error) {
	return newList(root, items, opts)
}

// Of creates an untyped List from a variadic list of items.
func Of(items ...any) *List {
	cfg := newConfig(root, nil)
	return &List{items: clone(items), family: root, cfg: cfg}
}

// From creates a List from a typed slice.
//
//	l, _ := forward.From([]*Item{a, b}, forward.AutoDetect())
func From[T any](items []T, opts ...Option) (*List, error) {
	dst := make([]any, len(items))
	for i, it := range items {
		dst[i] = it
	}
	return New(dst, opts...)
}

func newList(family *proxy.Family, items []any, opts []Option) (*List, error) {
	cfg := newConfig(family, opts)
	dst := clone(items)
	fam, err := cfg.family(dst)
	if err != nil {
		return nil, err
	}
	return &List{
		items:  dst,
		family: fam,
		typed:  cfg.AutoDetect || cfg.Target != nil || fam.Target() != nil,
		cfg:    cfg,
	}, nil
}

// collect builds a result list. Typed results are specialised for the
// common type of items.
func collect(cfg *Config, typed bool, items []any) *List {
	fam := root
	if typed && len(items) > 0 {
		if f, err := root.Specialize(cfg.Resolver.Common(items)); err == nil {
			fam = f
		}
	}
	return &List{items: items, family: fam, typed: typed, cfg: cfg.derived()}
}

func (l *List) wrap(items []any) *List { return collect(l.cfg, l.typed, items) }

func clone(items []any) []any {
	dst := make([]any, len(items))
	copy(dst, items)
	return dst
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequence operations
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements.
func (l *List) Len() int { return len(l.items) }

// At returns the element at index together with a presence flag.
func (l *List) At(index int) (any, bool) {
	if index < 0 || index >= len(l.items) {
		return nil, false
	}
	return l.items[index], true
}

// All returns a copy of the elements.
func (l *List) All() []any { return clone(l.items) }

// Append adds items to the end of l in place and returns l.
func (l *List) Append(items ...any) *List {
	l.items = append(l.items, items...)
	return l
}

// Set replaces the element at index in place.
func (l *List) Set(index int, v any) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	l.items[index] = v
	return nil
}

// Splice replaces at most length elements starting at offset with
// replacement, in place, and returns the removed elements. A negative offset
// counts from the end; a negative length means "to the end".
func (l *List) Splice(offset, length int, replacement ...any) []any {
	start, end := bounds(len(l.items), offset, length)
	removed := clone(l.items[start:end])
	tail := append(clone(replacement), l.items[end:]...)
	l.items = append(l.items[:start], tail...)
	return removed
}

// Slice returns the elements starting at offset with at most length
// elements as a List of the root family, specialised again when l is typed.
// A negative offset counts from the end; a negative length means "to the end".
//
// Slicing a ReducingList yields a List, which is the way back from
// reduction.
func (l *List) Slice(offset, length int) *List {
	start, end := bounds(len(l.items), offset, length)
	return l.wrap(clone(l.items[start:end]))
}

func bounds(total, offset, length int) (int, int) {
	if offset < 0 {
		offset += total
	}
	offset = max(0, min(offset, total))
	if length < 0 || offset+length > total {
		return offset, total
	}
	return offset, offset + length
}

// Each calls fn(item, index) for every element.
func (l *List) Each(fn func(any, int)) {
	for i, it := range l.items {
		fn(it, i)
	}
}

// String renders the family name followed by the elements.
func (l *List) String() string {
	return fmt.Sprintf("%s%v", l.family.Name(), l.items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Introspection
// ─────────────────────────────────────────────────────────────────────────────

// Family returns the family of l.
func (l *List) Family() *proxy.Family { return l.family }

// Table returns the dispatch table, or nil for an untyped family.
func (l *List) Table() *proxy.Table { return l.family.Table() }

// Typed reports whether l was created with a specialisation request, even
// one that resolved to the untyped family.
func (l *List) Typed() bool { return l.typed }

// Specialized reports whether name is in the dispatch table, as opposed to
// being reachable only through Fallback.
func (l *List) Specialized(name string) bool {
	t := l.family.Table()
	return t != nil && t.Specialized(name)
}

// Describe returns the description of the dispatch table, or false for an
// untyped list.
func (l *List) Describe() (proxy.TableInfo, bool) {
	t := l.family.Table()
	if t == nil {
		return proxy.TableInfo{}, false
	}
	return t.Describe(), true
}

// Scatter returns a copy of l whose method calls distribute their arguments
// element-wise. See [Method.Call].
func (l *List) Scatter() *List {
	c := *l
	c.items = l.All()
	c.scatter = true
	return &c
}
