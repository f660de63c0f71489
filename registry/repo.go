package registry

import (
	"errors"

	skemareg "github.com/reoring/skemareg"
	"github.com/reoring/skemareg/dsl"
)

// DiscriminatorField is the object field whose literal value keys a schema in
// a repository and selects the variant in derived unions.
const DiscriminatorField = "type"

var (
	// ErrMissingDiscriminator reports a registration attempt on a schema
	// lacking a literal-valued type field with a non-empty string value.
	ErrMissingDiscriminator = errors.New("skemareg: schema is missing a literal-valued type discriminator")

	// ErrInsufficientSchemas reports a union or enum request on a repository
	// holding fewer than two schemas.
	ErrInsufficientSchemas = errors.New("skemareg: union and enum require at least two registered schemas")
)

// Repo stores tagged object schemas keyed by their discriminator value and
// derives union and enum views from the current contents. Derived views are
// rebuilt on every call so late registrations always show up.
type Repo struct {
	tags    []string
	schemas map[string]skemareg.ObjectSchema
}

// NewRepo returns an empty repository.
func NewRepo() *Repo {
	return &Repo{schemas: map[string]skemareg.ObjectSchema{}}
}

// Add inserts s keyed by its discriminator value. Re-adding an existing tag
// overwrites the entry but keeps the tag's position in insertion order.
func (r *Repo) Add(s skemareg.ObjectSchema) error {
	tag, ok := skemareg.DiscriminatorValue(s, DiscriminatorField)
	if !ok {
		return ErrMissingDiscriminator
	}
	if _, exists := r.schemas[tag]; !exists {
		r.tags = append(r.tags, tag)
	}
	r.schemas[tag] = s
	return nil
}

// Schemas returns a fresh snapshot of the stored schemas in insertion order.
// Mutating the returned slice never affects the repository.
func (r *Repo) Schemas() []skemareg.ObjectSchema {
	out := make([]skemareg.ObjectSchema, 0, len(r.tags))
	for _, t := range r.tags {
		out = append(out, r.schemas[t])
	}
	return out
}

// Schema returns the schema registered under tag. Absence is an expected
// case, not an error.
func (r *Repo) Schema(tag string) (skemareg.ObjectSchema, bool) {
	s, ok := r.schemas[tag]
	return s, ok
}

// Tags returns the discriminator values in insertion order.
func (r *Repo) Tags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}

// Len reports the number of stored schemas.
func (r *Repo) Len() int { return len(r.tags) }

// Union builds a discriminated union over the type field from the current
// contents, in insertion order.
func (r *Repo) Union() (skemareg.Schema, error) {
	if len(r.tags) < 2 {
		return nil, ErrInsufficientSchemas
	}
	return dsl.Union(DiscriminatorField, r.Schemas()...)
}

// Enum builds an enumeration of the discriminator values in insertion order.
func (r *Repo) Enum() (skemareg.EnumSchema, error) {
	if len(r.tags) < 2 {
		return nil, ErrInsufficientSchemas
	}
	return dsl.Enum(r.tags...), nil
}

// remove deletes the entry under tag and returns it. Deletion is a
// registry-level concern; the store itself only grows through Add.
func (r *Repo) remove(tag string) (skemareg.ObjectSchema, bool) {
	s, ok := r.schemas[tag]
	if !ok {
		return nil, false
	}
	delete(r.schemas, tag)
	for i, t := range r.tags {
		if t == tag {
			r.tags = append(r.tags[:i], r.tags[i+1:]...)
			break
		}
	}
	return s, true
}
