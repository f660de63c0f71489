package dsl

import (
	"context"

	skemareg "github.com/reoring/skemareg"
	"github.com/reoring/skemareg/i18n"
	js "github.com/reoring/skemareg/jsonschema"
)

// Union builds a discriminated union over key from the given variants, in the
// given order. Each variant must declare key as a literal-valued field whose
// value is a non-empty string, and at least two variants are required; a union
// of one variant is degenerate and rejected.
func Union(key string, variants ...skemareg.ObjectSchema) (skemareg.Schema, error) {
	if key == "" {
		return nil, skemareg.Issues{skemareg.Issue{Path: "/", Code: skemareg.CodeParseError, Message: i18n.T(skemareg.CodeParseError, nil), Hint: "empty discriminator key"}}
	}
	if len(variants) < 2 {
		return nil, skemareg.Issues{skemareg.Issue{Path: "/", Code: skemareg.CodeParseError, Message: i18n.T(skemareg.CodeParseError, nil), Hint: "union requires at least two variants"}}
	}
	tags := make([]string, 0, len(variants))
	mapping := make(map[string]skemareg.ObjectSchema, len(variants))
	for _, v := range variants {
		tag, ok := skemareg.DiscriminatorValue(v, key)
		if !ok {
			return nil, skemareg.Issues{skemareg.Issue{Path: "/" + key, Code: skemareg.CodeDiscriminatorMissing, Message: i18n.T(skemareg.CodeDiscriminatorMissing, nil), Hint: "variant must declare a literal-valued '" + key + "' field"}}
		}
		if _, dup := mapping[tag]; dup {
			return nil, skemareg.Issues{skemareg.Issue{Path: "/" + key, Code: skemareg.CodeParseError, Message: i18n.T(skemareg.CodeParseError, nil), Hint: "duplicate variant: '" + tag + "'"}}
		}
		tags = append(tags, tag)
		mapping[tag] = v
	}
	return &unionSchema{key: key, tags: tags, mapping: mapping}, nil
}

// unionSchema is a discriminated union schema over map[string]any objects.
type unionSchema struct {
	key     string
	tags    []string
	mapping map[string]skemareg.ObjectSchema
}

func (*unionSchema) Kind() skemareg.Kind { return skemareg.KindUnion }

func (u *unionSchema) Parse(ctx context.Context, v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, skemareg.Issues{skemareg.Issue{Path: "/", Code: skemareg.CodeInvalidType, Message: i18n.T(skemareg.CodeInvalidType, nil), Hint: "expected object"}}
	}
	tag, _ := m[u.key].(string)
	if tag == "" {
		return nil, skemareg.Issues{skemareg.Issue{Path: "/" + u.key, Code: skemareg.CodeDiscriminatorMissing, Message: i18n.T(skemareg.CodeDiscriminatorMissing, nil), Hint: "discriminator missing"}}
	}
	s, ok := u.mapping[tag]
	if !ok {
		return nil, skemareg.Issues{skemareg.Issue{Path: "/" + u.key, Code: skemareg.CodeDiscriminatorUnknown, Message: i18n.T(skemareg.CodeDiscriminatorUnknown, nil), Hint: "unknown variant: '" + tag + "'"}}
	}
	return s.Parse(ctx, v)
}

func (u *unionSchema) Validate(ctx context.Context, v any) error {
	_, err := u.Parse(ctx, v)
	return err
}

func (u *unionSchema) JSONSchema() (*js.Schema, error) {
	// oneOf with variant schemas in declaration order; the discriminator is
	// documented by each variant's const field
	out := &js.Schema{OneOf: make([]*js.Schema, 0, len(u.tags))}
	for _, tag := range u.tags {
		vs, err := u.mapping[tag].JSONSchema()
		if err != nil {
			return nil, err
		}
		out.OneOf = append(out.OneOf, vs)
	}
	return out, nil
}
