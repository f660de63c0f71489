package registry

import (
	skemareg "github.com/reoring/skemareg"
	"github.com/reoring/skemareg/dsl"
)

// Filter reports whether the field named name with schema field should be
// excluded from a derived schema. Returning true blacklists the field.
// Filters must be pure; they are evaluated as a logical OR and may be
// short-circuited in any order.
type Filter func(name string, field skemareg.Schema) bool

// ExcludeKeys returns a Filter that blacklists fields by exact name.
func ExcludeKeys(names ...string) Filter {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(name string, _ skemareg.Schema) bool {
		_, ok := set[name]
		return ok
	}
}

// ApplyFilters produces the derived form of s: the discriminator field is
// carried over untouched, fields flagged by any filter are dropped, and every
// surviving field has its optional/default wrapping stripped. The result
// always contains at least the discriminator field; s itself is never
// mutated.
func ApplyFilters(s skemareg.ObjectSchema, filters ...Filter) (skemareg.ObjectSchema, error) {
	b := dsl.Object()
	if s.Unknown() == skemareg.UnknownStrip {
		b.UnknownStrip()
	}
	for _, name := range s.Keys() {
		fs, ok := s.Field(name)
		if !ok {
			continue
		}
		if name == DiscriminatorField {
			b.Field(name, fs)
			continue
		}
		if excluded(name, fs, filters) {
			continue
		}
		b.Field(name, StripWrappers(fs))
	}
	return b.Build()
}

func excluded(name string, fs skemareg.Schema, filters []Filter) bool {
	for _, f := range filters {
		if f != nil && f(name, fs) {
			return true
		}
	}
	return false
}

// StripWrappers unwraps Optional and Default nodes until the first
// non-wrapper node, so a chain like optional(default(optional(T))) collapses
// to T. Already-stripped schemas come back unchanged.
func StripWrappers(s skemareg.Schema) skemareg.Schema {
	for {
		switch s.Kind() {
		case skemareg.KindOptional, skemareg.KindDefault:
			s = s.(skemareg.WrapperSchema).Inner()
		default:
			return s
		}
	}
}
