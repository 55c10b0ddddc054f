package signature

import "reflect"

// Doc is the human-facing description of one member.
type Doc struct {
	// Text is the documentation string.
	Text string
	// Params names the parameters after the receiver, in order. Leave empty
	// to keep the generated names (arg0, arg1, …).
	Params []string
	// Defaults holds default values for the trailing parameters.
	Defaults []any
}

// Annotated is implemented by types that declare names, defaults and docs
// for their members. ForwardDocs is called on a zero value of the type; for
// pointer types that is a pointer to a fresh zero struct, so embedded
// pointers are still nil.
type Annotated interface {
	ForwardDocs() map[string]Doc
}

var annotatedType = reflect.TypeFor[Annotated]()

// Docs returns the annotations declared by t, or nil when t declares none or
// its ForwardDocs panics on a zero value.
func Docs(t reflect.Type) (docs map[string]Doc) {
	if t == nil || !t.Implements(annotatedType) {
		return nil
	}
	defer func() {
		if recover() != nil {
			docs = nil
		}
	}()
	z := reflect.Zero(t)
	if t.Kind() == reflect.Pointer {
		z = reflect.New(t.Elem())
	}
	a, ok := z.Interface().(Annotated)
	if !ok {
		return nil
	}
	return a.ForwardDocs()
}
