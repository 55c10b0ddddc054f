package signature

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by signature extraction and argument binding.
var (
	// ErrNotAMethod is returned when a callable does not take the receiver as
	// its first parameter and so cannot be forwarded as an instance method.
	ErrNotAMethod = errors.New("signature: not an instance method")

	// ErrArity is returned when a call supplies too few or too many
	// positional arguments.
	ErrArity = errors.New("signature: wrong number of arguments")

	// ErrArgType is returned when an argument cannot be assigned or converted
	// to the parameter type.
	ErrArgType = errors.New("signature: argument type mismatch")

	// ErrUnknownKeyword is returned when a keyword argument does not name a
	// declared parameter.
	ErrUnknownKeyword = errors.New("signature: unknown keyword argument")

	// ErrDuplicateArgument is returned when a parameter receives both a
	// positional and a keyword value.
	ErrDuplicateArgument = errors.New("signature: multiple values for argument")

	// ErrMissingArgument is returned when a parameter without a default
	// receives no value.
	ErrMissingArgument = errors.New("signature: missing argument")
)

// NotAMethodError describes a callable that was rejected by [Extract].
type NotAMethodError struct {
	// Def is the rendered definition of the rejected callable.
	Def string
}

func (e *NotAMethodError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotAMethod, e.Def)
}

// Unwrap makes errors.Is(err, ErrNotAMethod) work.
func (e *NotAMethodError) Unwrap() error { return ErrNotAMethod }
