package forward

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by forwarding operations.
var (
	// ErrNotForwarded is returned when a typed list is asked for a name that
	// its dispatch table does not contain.
	ErrNotForwarded = errors.New("forward: name not in dispatch table")

	// ErrNoAttribute is returned when an element has no member of the
	// requested name.
	ErrNoAttribute = errors.New("forward: no such attribute")

	// ErrNotCallable is returned when a call or scatter targets members that
	// are not callable.
	ErrNotCallable = errors.New("forward: not callable")

	// ErrEmptyScatter is returned when a scatter argument is an empty slice,
	// array or list.
	ErrEmptyScatter = errors.New("forward: empty scatter argument")

	// ErrIndexOutOfRange is returned when an index is outside [0, Len()-1].
	ErrIndexOutOfRange = errors.New("forward: index out of range")

	// ErrElementType is returned by Values when an element does not have the
	// requested type.
	ErrElementType = errors.New("forward: element has unexpected type")
)

// AttributeError reports a failed member lookup on one element.
type AttributeError struct {
	// Type is the dynamic type of the element, formatted with %T.
	Type string
	Name string
	// Err is the underlying reflection failure, if any.
	Err error
}

func (e *AttributeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s has no attribute %q: %v", ErrNoAttribute, e.Type, e.Name, e.Err)
	}
	return fmt.Sprintf("%v: %s has no attribute %q", ErrNoAttribute, e.Type, e.Name)
}

// Unwrap makes errors.Is(err, ErrNoAttribute) work.
func (e *AttributeError) Unwrap() error { return ErrNoAttribute }

// NotCallableError names the elements whose member could not be called.
type NotCallableError struct {
	Name string
	// Offending lists the rejected members as "index:type".
	Offending []string
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("%v: %q on [%s]", ErrNotCallable, e.Name, strings.Join(e.Offending, " "))
}

// Unwrap makes errors.Is(err, ErrNotCallable) work.
func (e *NotCallableError) Unwrap() error { return ErrNotCallable }
