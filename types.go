package skemareg

import (
	"context"

	js "github.com/reoring/skemareg/jsonschema"
)

// Kind identifies the variant of a schema node. The set is closed: consumers
// switch over Kind to walk a schema tree without reflection, and wrapper kinds
// (Optional, Default) are the only ones that carry an inner node.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindNumber
	KindLiteral
	KindEnum
	KindArray
	KindObject
	KindOptional
	KindDefault
	KindUnion
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindLiteral:
		return "literal"
	case KindEnum:
		return "enum"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindOptional:
		return "optional"
	case KindDefault:
		return "default"
	case KindUnion:
		return "union"
	}
	return "unknown"
}

// Schema is the untyped contract shared by every schema node.
type Schema interface {
	// Kind reports which variant this node is.
	Kind() Kind
	// Parse validates v and returns the normalized value. It returns Issues
	// on mismatch.
	Parse(ctx context.Context, v any) (any, error)
	// Validate is Parse with the value discarded.
	Validate(ctx context.Context, v any) error
	// JSONSchema projects the node into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// UnknownPolicy controls how object schemas treat keys that were never
// declared as fields.
type UnknownPolicy int

const (
	// UnknownStrict rejects undeclared keys.
	UnknownStrict UnknownPolicy = iota
	// UnknownStrip silently drops undeclared keys from the parsed value.
	UnknownStrip
)

// ObjectSchema is implemented by object nodes. Field introspection is what
// the registry's filter pipeline walks.
type ObjectSchema interface {
	Schema
	// Keys returns the field names in declaration order.
	Keys() []string
	// Field returns the schema declared under name.
	Field(name string) (Schema, bool)
	// Unknown reports the unknown-key policy.
	Unknown() UnknownPolicy
}

// LiteralSchema is implemented by literal nodes.
type LiteralSchema interface {
	Schema
	// Value returns the single accepted value.
	Value() any
}

// EnumSchema is implemented by enum nodes.
type EnumSchema interface {
	Schema
	// Values returns the accepted values in declaration order.
	Values() []string
}

// WrapperSchema is implemented by the Optional and Default nodes.
type WrapperSchema interface {
	Schema
	// Inner returns the wrapped node, one level down.
	Inner() Schema
}

// DefaultSchema is the Default node: a wrapper that also carries the value an
// enclosing object fills in when the field is absent.
type DefaultSchema interface {
	WrapperSchema
	DefaultValue() any
}

// DiscriminatorValue extracts the literal string value declared for the field
// key on s. It reports false when the field is absent, is not a literal node,
// or its literal value is not a non-empty string.
func DiscriminatorValue(s ObjectSchema, key string) (string, bool) {
	if s == nil || key == "" {
		return "", false
	}
	fs, ok := s.Field(key)
	if !ok {
		return "", false
	}
	lit, ok := fs.(LiteralSchema)
	if !ok || lit.Kind() != KindLiteral {
		return "", false
	}
	v, ok := lit.Value().(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
