package proxy

import "errors"

// Sentinel errors returned by family declaration and specialisation.
var (
	// ErrType is returned when a specialisation target is not a type, is not
	// a subtype of the family target, or when a family does not derive from
	// a forwarding family.
	ErrType = errors.New("proxy: invalid type for forwarding family")

	// ErrConfig is returned by LoadFamilies for malformed declarations.
	ErrConfig = errors.New("proxy: invalid family configuration")
)
