package proxy

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"
)

// FamilySpec is the YAML form of a [Declaration].
type FamilySpec struct {
	Name string `yaml:"name"`
	// Base names the root or an earlier family in the same file. Empty means
	// the root.
	Base    string   `yaml:"base,omitempty"`
	Target  string   `yaml:"target,omitempty"`
	Ignore  []string `yaml:"ignore,omitempty"`
	Default bool     `yaml:"default,omitempty"`
}

// FamilyFile is the top-level YAML document read by [LoadFamilies].
type FamilyFile struct {
	Families []FamilySpec `yaml:"families"`
}

// LoadFamilies declares the families listed in a YAML document, in order.
// Target names are resolved through catalog; base names refer to root or to
// families declared earlier in the document.
//
//	families:
//	  - name: Items
//	    target: item
//	    ignore: [Secret]
//	    default: true
//	  - name: SubItems
//	    base: Items
//	    target: subitem
func LoadFamilies(r io.Reader, root *Family, catalog map[string]reflect.Type) (map[string]*Family, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: no root family", ErrConfig)
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file FamilyFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	out := map[string]*Family{root.Name(): root}
	for i, spec := range file.Families {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: family %d has no name", ErrConfig, i)
		}
		if _, dup := out[spec.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate family %q", ErrConfig, spec.Name)
		}
		base := root
		if spec.Base != "" {
			b, ok := out[spec.Base]
			if !ok {
				return nil, fmt.Errorf("%w: family %q: unknown base %q", ErrConfig, spec.Name, spec.Base)
			}
			base = b
		}
		var target reflect.Type
		if spec.Target != "" {
			t, ok := catalog[spec.Target]
			if !ok {
				return nil, fmt.Errorf("%w: family %q: unknown target %q", ErrConfig, spec.Name, spec.Target)
			}
			target = t
		}
		f, err := Declare(base, Declaration{
			Name:    spec.Name,
			Target:  target,
			Ignore:  spec.Ignore,
			Default: spec.Default,
		})
		if err != nil {
			return nil, fmt.Errorf("family %q: %w", spec.Name, err)
		}
		out[spec.Name] = f
	}
	return out, nil
}
