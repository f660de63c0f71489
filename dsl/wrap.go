package dsl

import (
	"context"

	skemareg "github.com/reoring/skemareg"
	js "github.com/reoring/skemareg/jsonschema"
)

// Optional wraps inner so an enclosing object accepts the field being absent.
// Present values parse through inner unchanged; absence handling belongs to
// the enclosing object, not to this node.
func Optional(inner skemareg.Schema) skemareg.Schema { return optionalSchema{inner: inner} }

// Default wraps inner with a fallback the enclosing object fills in when the
// field is absent. The stored value is parsed through inner at fill time so a
// bad default surfaces as a normal validation failure.
func Default(inner skemareg.Schema, value any) skemareg.Schema {
	return defaultSchema{inner: inner, value: value}
}

type optionalSchema struct{ inner skemareg.Schema }

func (optionalSchema) Kind() skemareg.Kind { return skemareg.KindOptional }

// Inner returns the wrapped node.
func (o optionalSchema) Inner() skemareg.Schema { return o.inner }

func (o optionalSchema) Parse(ctx context.Context, v any) (any, error) {
	return o.inner.Parse(ctx, v)
}

func (o optionalSchema) Validate(ctx context.Context, v any) error {
	return o.inner.Validate(ctx, v)
}

func (o optionalSchema) JSONSchema() (*js.Schema, error) { return o.inner.JSONSchema() }

type defaultSchema struct {
	inner skemareg.Schema
	value any
}

func (defaultSchema) Kind() skemareg.Kind { return skemareg.KindDefault }

// Inner returns the wrapped node.
func (d defaultSchema) Inner() skemareg.Schema { return d.inner }

// DefaultValue returns the fallback value as given, unparsed.
func (d defaultSchema) DefaultValue() any { return d.value }

func (d defaultSchema) Parse(ctx context.Context, v any) (any, error) {
	return d.inner.Parse(ctx, v)
}

func (d defaultSchema) Validate(ctx context.Context, v any) error {
	return d.inner.Validate(ctx, v)
}

func (d defaultSchema) JSONSchema() (*js.Schema, error) {
	s, err := d.inner.JSONSchema()
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = &js.Schema{}
	}
	s.Default = d.value
	return s, nil
}

var (
	_ skemareg.WrapperSchema = optionalSchema{}
	_ skemareg.DefaultSchema = defaultSchema{}
)
