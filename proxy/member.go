package proxy

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hasbyte1/go-metaforward/signature"
)

// ReservedPrefix marks member names that are never forwarded. Methods such
// as ForwardDocs and ForwardFields are hooks for this package, not part of
// the forwarded surface.
const ReservedPrefix = "Forward"

// protocol names keep their bare name even when the container defines them,
// since the container's own implementation forwards them.
var protocol = map[string]bool{"Enter": true, "Exit": true, "Invoke": true}

// IsProtocol reports whether name belongs to the context and call protocol
// (Enter, Exit, Invoke).
func IsProtocol(name string) bool { return protocol[name] }

// Kind distinguishes value members from callable members.
type Kind int

const (
	// Property members are read from every element.
	Property Kind = iota
	// Method members are called on every element.
	Method
)

func (k Kind) String() string {
	switch k {
	case Property:
		return "property"
	case Method:
		return "method"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Member describes one forwardable member of a target type.
type Member struct {
	// Name is the name the member is registered under in a Table.
	Name string
	// Target is the name looked up on the wrapped elements. It differs from
	// Name only for aliases.
	Target string
	Kind   Kind
	// Type is the field type of a property or the method type of a method.
	Type reflect.Type
	// Signature is set for methods.
	Signature *signature.Signature
	Doc       string
	// Alias is set when the member was renamed to Target + "_" because the
	// container defines Target itself.
	Alias bool
}

// MemberInfo is the serialisable description of a Member.
type MemberInfo struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"`
	Target    string `yaml:"target,omitempty"`
	Type      string `yaml:"type,omitempty"`
	Signature string `yaml:"signature,omitempty"`
	Doc       string `yaml:"doc,omitempty"`
}

// Info returns the serialisable description of m.
func (m Member) Info() MemberInfo {
	info := MemberInfo{Name: m.Name, Kind: m.Kind.String(), Doc: m.Doc}
	if m.Alias {
		info.Target = m.Target
	}
	if m.Signature != nil {
		info.Signature = m.Signature.String()
	} else if m.Type != nil {
		info.Type = m.Type.String()
	}
	return info
}

func (m Member) String() string {
	i := m.Info()
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", i.Kind, i.Name)
	if i.Target != "" {
		fmt.Fprintf(&b, " -> %s", i.Target)
	}
	if i.Signature != "" {
		fmt.Fprintf(&b, " %s", i.Signature)
	} else if i.Type != "" {
		fmt.Fprintf(&b, " %s", i.Type)
	}
	if i.Doc != "" {
		fmt.Fprintf(&b, " // %s", i.Doc)
	}
	return b.String()
}

// FieldInfo declares one field of a type whose fields are not visible to
// ordinary struct reflection.
type FieldInfo struct {
	Name string
	Type reflect.Type
	Doc  string
}

// Fielder is implemented by types that declare their fields explicitly.
// ForwardFields is called on a zero value of the type; ForwardField reads
// one declared field from a live value.
type Fielder interface {
	ForwardFields() []FieldInfo
	ForwardField(name string) (any, bool)
}

var fielderType = reflect.TypeFor[Fielder]()
