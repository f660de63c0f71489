package dsl

import (
	"context"
	"sort"

	skemareg "github.com/reoring/skemareg"
	"github.com/reoring/skemareg/i18n"
	js "github.com/reoring/skemareg/jsonschema"
)

// ObjectBuilder accumulates fields for an object schema. Requiredness is
// derived from wrappers: a field is required unless its schema is an Optional
// or Default node.
type ObjectBuilder struct {
	keys    []string
	fields  map[string]skemareg.Schema
	unknown skemareg.UnknownPolicy
	err     error
}

// Object creates a new object builder with safe defaults (UnknownStrict).
func Object() *ObjectBuilder {
	return &ObjectBuilder{
		fields:  map[string]skemareg.Schema{},
		unknown: skemareg.UnknownStrict,
	}
}

// Field registers a field with its schema. Re-declaring a name overwrites the
// schema but keeps the field's position.
func (b *ObjectBuilder) Field(name string, s skemareg.Schema) *ObjectBuilder {
	if b.err != nil {
		return b
	}
	if name == "" {
		b.err = skemareg.Issues{skemareg.Issue{Path: "/", Code: skemareg.CodeParseError, Message: i18n.T(skemareg.CodeParseError, nil), Hint: "empty field name"}}
		return b
	}
	if s == nil {
		b.err = skemareg.Issues{skemareg.Issue{Path: "/" + name, Code: skemareg.CodeParseError, Message: i18n.T(skemareg.CodeParseError, nil), Hint: "nil field schema"}}
		return b
	}
	if _, dup := b.fields[name]; !dup {
		b.keys = append(b.keys, name)
	}
	b.fields[name] = s
	return b
}

// UnknownStrict sets unknown policy to Strict.
func (b *ObjectBuilder) UnknownStrict() *ObjectBuilder {
	b.unknown = skemareg.UnknownStrict
	return b
}

// UnknownStrip sets unknown policy to Strip.
func (b *ObjectBuilder) UnknownStrip() *ObjectBuilder {
	b.unknown = skemareg.UnknownStrip
	return b
}

// Build validates the builder and returns the object schema.
func (b *ObjectBuilder) Build() (skemareg.ObjectSchema, error) {
	if b.err != nil {
		return nil, b.err
	}
	keys := make([]string, len(b.keys))
	copy(keys, b.keys)
	fields := make(map[string]skemareg.Schema, len(b.fields))
	for k, v := range b.fields {
		fields[k] = v
	}
	return &objectSchema{keys: keys, fields: fields, unknown: b.unknown}, nil
}

// MustBuild is like Build but panics on error.
func (b *ObjectBuilder) MustBuild() skemareg.ObjectSchema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

type objectSchema struct {
	keys    []string
	fields  map[string]skemareg.Schema
	unknown skemareg.UnknownPolicy
}

var _ skemareg.ObjectSchema = (*objectSchema)(nil)

func (*objectSchema) Kind() skemareg.Kind { return skemareg.KindObject }

// Keys returns the field names in declaration order.
func (o *objectSchema) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Field returns the schema declared under name.
func (o *objectSchema) Field(name string) (skemareg.Schema, bool) {
	s, ok := o.fields[name]
	return s, ok
}

// Unknown reports the unknown-key policy.
func (o *objectSchema) Unknown() skemareg.UnknownPolicy { return o.unknown }

func (o *objectSchema) Parse(ctx context.Context, v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, skemareg.Issues{skemareg.Issue{Path: "/", Code: skemareg.CodeInvalidType, Message: i18n.T(skemareg.CodeInvalidType, nil), Hint: "expected object"}}
	}
	out := make(map[string]any, len(o.keys))
	var iss skemareg.Issues
	for _, k := range o.keys {
		fs := o.fields[k]
		if raw, exists := m[k]; exists {
			pv, err := fs.Parse(ctx, raw)
			if err != nil {
				iss = skemareg.AppendIssues(iss, rebaseIssues("/"+k, err)...)
				continue
			}
			out[k] = pv
			continue
		}
		dv, set, i2 := absent(ctx, fs, "/"+k)
		if len(i2) > 0 {
			iss = skemareg.AppendIssues(iss, i2...)
			continue
		}
		if set {
			out[k] = dv
		}
	}
	iss = skemareg.AppendIssues(iss, o.collectUnknown(m)...)
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (o *objectSchema) Validate(ctx context.Context, v any) error {
	_, err := o.Parse(ctx, v)
	return err
}

// absent resolves a missing field against its schema. The outermost wrapper
// decides: Optional omits the field, Default fills it with the stored value
// parsed through the inner chain. Anything else means the field was required.
func absent(ctx context.Context, fs skemareg.Schema, path string) (any, bool, skemareg.Issues) {
	switch fs.Kind() {
	case skemareg.KindOptional:
		return nil, false, nil
	case skemareg.KindDefault:
		d := fs.(skemareg.DefaultSchema)
		dv, err := d.Inner().Parse(ctx, d.DefaultValue())
		if err != nil {
			return nil, false, rebaseIssues(path, err)
		}
		return dv, true, nil
	default:
		return nil, false, skemareg.Issues{skemareg.Issue{Path: path, Code: skemareg.CodeRequired, Message: i18n.T(skemareg.CodeRequired, nil), Hint: "required property missing"}}
	}
}

// collectUnknown processes undeclared keys according to the unknown policy.
func (o *objectSchema) collectUnknown(m map[string]any) skemareg.Issues {
	if o.unknown == skemareg.UnknownStrip {
		return nil
	}
	var uks []string
	for k := range m {
		if _, known := o.fields[k]; !known {
			uks = append(uks, k)
		}
	}
	// unknown keys in key-sorted order for deterministic issues
	sort.Strings(uks)
	var iss skemareg.Issues
	for _, k := range uks {
		iss = skemareg.AppendIssues(iss, skemareg.Issue{Path: "/" + k, Code: skemareg.CodeUnknownKey, Message: i18n.T(skemareg.CodeUnknownKey, nil), Hint: "unknown key: '" + k + "'"})
	}
	return iss
}

func (o *objectSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(o.keys))
	var required []string
	for _, k := range o.keys {
		fs := o.fields[k]
		ps, err := fs.JSONSchema()
		if err != nil {
			return nil, err
		}
		props[k] = ps
		switch fs.Kind() {
		case skemareg.KindOptional, skemareg.KindDefault:
		default:
			required = append(required, k)
		}
	}
	out := &js.Schema{Type: "object", Properties: props, Required: required}
	if o.unknown == skemareg.UnknownStrict {
		out.AdditionalProperties = false
	}
	return out, nil
}

// rebaseIssues prefixes child issue paths with base. Non-Issues errors are
// wrapped as a single parse_error entry.
func rebaseIssues(base string, err error) skemareg.Issues {
	if err == nil {
		return nil
	}
	child, ok := skemareg.AsIssues(err)
	if !ok {
		return skemareg.Issues{skemareg.Issue{Path: base, Code: skemareg.CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(skemareg.Issues, 0, len(child))
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}
