package proxy

import (
	"encoding/hex"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-metaforward/signature"
)

// Table is the dispatch table of one target type. It is immutable once
// built and safe for concurrent use.
type Table struct {
	target  reflect.Type
	members map[string]Member
	names   []string
}

// Target returns the type the table was generated for.
func (t *Table) Target() reflect.Type { return t.target }

// Lookup returns the member registered under name.
func (t *Table) Lookup(name string) (Member, bool) {
	m, ok := t.members[name]
	return m, ok
}

// Specialized reports whether name is present in the table, as opposed to
// being reachable only through the generic fallback path.
func (t *Table) Specialized(name string) bool {
	_, ok := t.members[name]
	return ok
}

// Names returns the registered names in sorted order.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

// Members returns the members sorted by registered name.
func (t *Table) Members() []Member {
	out := make([]Member, len(t.names))
	for i, n := range t.names {
		out[i] = t.members[n]
	}
	return out
}

// Len returns the number of members.
func (t *Table) Len() int { return len(t.names) }

// TableInfo is the serialisable description of a Table.
type TableInfo struct {
	Target      string       `yaml:"target"`
	Fingerprint string       `yaml:"fingerprint"`
	Members     []MemberInfo `yaml:"members"`
}

// Describe returns the serialisable description of t.
func (t *Table) Describe() TableInfo {
	info := TableInfo{Target: t.target.String(), Fingerprint: t.Fingerprint()}
	for _, m := range t.Members() {
		info.Members = append(info.Members, m.Info())
	}
	return info
}

// Fingerprint returns a hex-encoded BLAKE2b-256 digest of the member
// descriptions. Two tables generated for the same type with the same
// filters have the same fingerprint.
func (t *Table) Fingerprint() string {
	var b strings.Builder
	b.WriteString(t.target.String())
	for _, m := range t.Members() {
		b.WriteByte('\n')
		b.WriteString(m.String())
	}
	sum := blake2b.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// ─────────────────────────────────────────────────────────────────────────────
// Generation
// ─────────────────────────────────────────────────────────────────────────────

// Generate builds the dispatch table of target. Members named in ignored are
// left out; members named in shadowed are registered under name + "_"
// unless they belong to the call and context protocol.
func Generate(target reflect.Type, ignored, shadowed map[string]bool) *Table {
	t := &Table{target: target, members: make(map[string]Member)}
	for _, m := range Enumerate(target) {
		if ignored[m.Name] {
			continue
		}
		if shadowed[m.Name] && !IsProtocol(m.Name) {
			m.Target = m.Name
			m.Name += "_"
			m.Alias = true
		}
		if _, dup := t.members[m.Name]; dup {
			continue
		}
		t.members[m.Name] = m
		t.names = append(t.names, m.Name)
	}
	sort.Strings(t.names)
	return t
}

// Enumerate lists every forwardable member of target, sorted by name:
// exported methods, exported struct fields (promoted ones included),
// function-valued fields that take the owner as first parameter, and fields
// declared through [Fielder]. Interface types contribute their methods.
//
// Function-valued fields without a receiver parameter are skipped, as are
// fields tagged forward:"-" and names with the reserved prefix.
func Enumerate(target reflect.Type) []Member {
	if target == nil {
		return nil
	}
	docs := signature.Docs(target)
	seen := make(map[string]bool)
	var out []Member
	add := func(m Member) {
		if seen[m.Name] || strings.HasPrefix(m.Name, ReservedPrefix) {
			return
		}
		seen[m.Name] = true
		out = append(out, m)
	}

	for i := 0; i < target.NumMethod(); i++ {
		m := target.Method(i)
		if strings.HasPrefix(m.Name, ReservedPrefix) {
			continue
		}
		sig, ok := signature.Of(target, m.Name)
		if !ok {
			continue
		}
		add(Member{Name: m.Name, Target: m.Name, Kind: Method, Type: m.Type, Signature: sig, Doc: sig.Doc})
	}

	for _, f := range structFields(target) {
		if f.Type.Kind() == reflect.Func {
			sig, ok := signature.Of(target, f.Name)
			if !ok {
				continue
			}
			add(Member{Name: f.Name, Target: f.Name, Kind: Method, Type: f.Type, Signature: sig, Doc: sig.Doc})
			continue
		}
		add(Member{Name: f.Name, Target: f.Name, Kind: Property, Type: f.Type, Doc: docs[f.Name].Text})
	}

	for _, f := range declaredFields(target) {
		doc := f.Doc
		if doc == "" {
			doc = docs[f.Name].Text
		}
		add(Member{Name: f.Name, Target: f.Name, Kind: Property, Type: f.Type, Doc: doc})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// structFields returns the exported, unambiguous, visible fields of a struct
// or pointer-to-struct type.
func structFields(t reflect.Type) []reflect.StructField {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var out []reflect.StructField
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Tag.Get("forward") == "-" {
			continue
		}
		// FieldByName resolves promotion; a different index means f is
		// shadowed or ambiguous at its depth.
		sf, ok := t.FieldByName(f.Name)
		if !ok || !sameIndex(sf.Index, f.Index) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func sameIndex(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// declaredFields calls ForwardFields on a zero value of t, allocated for
// pointer types. A panicking implementation declares nothing.
func declaredFields(t reflect.Type) (fields []FieldInfo) {
	if !t.Implements(fielderType) {
		return nil
	}
	defer func() {
		if recover() != nil {
			fields = nil
		}
	}()
	z := reflect.Zero(t)
	if t.Kind() == reflect.Pointer {
		z = reflect.New(t.Elem())
	}
	f, ok := z.Interface().(Fielder)
	if !ok {
		return nil
	}
	return f.ForwardFields()
}
