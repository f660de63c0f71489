package dsl

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	skemareg "github.com/reoring/skemareg"
	"github.com/reoring/skemareg/i18n"
	js "github.com/reoring/skemareg/jsonschema"
)

// String returns the minimal string schema implementation.
func String() skemareg.Schema { return stringSchema{} }

// Bool returns the minimal bool schema implementation.
func Bool() skemareg.Schema { return boolSchema{} }

// Number returns a numeric schema. Parsed values are normalized to
// json.Number so precision survives decode/validate round trips.
func Number() skemareg.Schema { return numberSchema{} }

// Literal returns a schema accepting exactly v and nothing else.
func Literal(v any) skemareg.LiteralSchema { return literalSchema{value: v} }

// Enum returns a schema accepting any of the given string values.
func Enum(values ...string) skemareg.EnumSchema {
	vs := make([]string, len(values))
	copy(vs, values)
	idx := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		idx[v] = struct{}{}
	}
	return enumSchema{values: vs, index: idx}
}

type stringSchema struct{}

func (stringSchema) Kind() skemareg.Kind { return skemareg.KindString }

func (stringSchema) Parse(ctx context.Context, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, skemareg.Issues{skemareg.Issue{Path: "/", Code: skemareg.CodeInvalidType, Message: i18n.T(skemareg.CodeInvalidType, nil), Hint: "expected string"}}
	}
	return s, nil
}

func (s stringSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (stringSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "string"}, nil }

type boolSchema struct{}

func (boolSchema) Kind() skemareg.Kind { return skemareg.KindBool }

func (boolSchema) Parse(ctx context.Context, v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, skemareg.Issues{skemareg.Issue{Path: "/", Code: skemareg.CodeInvalidType, Message: i18n.T(skemareg.CodeInvalidType, nil), Hint: "expected bool"}}
	}
	return b, nil
}

func (s boolSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (boolSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

type numberSchema struct{}

func (numberSchema) Kind() skemareg.Kind { return skemareg.KindNumber }

func (numberSchema) Parse(ctx context.Context, v any) (any, error) {
	switch n := v.(type) {
	case json.Number:
		return n, nil
	case float64:
		return json.Number(strconv.FormatFloat(n, 'g', -1, 64)), nil
	case float32:
		return json.Number(strconv.FormatFloat(float64(n), 'g', -1, 32)), nil
	case int:
		return json.Number(strconv.Itoa(n)), nil
	case int32:
		return json.Number(strconv.FormatInt(int64(n), 10)), nil
	case int64:
		return json.Number(strconv.FormatInt(n, 10)), nil
	}
	return nil, skemareg.Issues{skemareg.Issue{Path: "/", Code: skemareg.CodeInvalidType, Message: i18n.T(skemareg.CodeInvalidType, nil), Hint: "expected number"}}
}

func (s numberSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (numberSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "number"}, nil }

type literalSchema struct{ value any }

func (literalSchema) Kind() skemareg.Kind { return skemareg.KindLiteral }

// Value returns the single accepted value.
func (l literalSchema) Value() any { return l.value }

func (l literalSchema) Parse(ctx context.Context, v any) (any, error) {
	if !reflect.DeepEqual(v, l.value) {
		return nil, skemareg.Issues{skemareg.Issue{Path: "/", Code: skemareg.CodeInvalidLiteral, Message: i18n.T(skemareg.CodeInvalidLiteral, nil), Hint: fmt.Sprintf("expected %v", l.value)}}
	}
	return v, nil
}

func (l literalSchema) Validate(ctx context.Context, v any) error {
	_, err := l.Parse(ctx, v)
	return err
}

func (l literalSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Const: l.value}, nil
}

type enumSchema struct {
	values []string
	index  map[string]struct{}
}

func (enumSchema) Kind() skemareg.Kind { return skemareg.KindEnum }

// Values returns a copy of the accepted values in declaration order.
func (e enumSchema) Values() []string {
	out := make([]string, len(e.values))
	copy(out, e.values)
	return out
}

func (e enumSchema) Parse(ctx context.Context, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, skemareg.Issues{skemareg.Issue{Path: "/", Code: skemareg.CodeInvalidType, Message: i18n.T(skemareg.CodeInvalidType, nil), Hint: "expected string"}}
	}
	if _, ok := e.index[s]; !ok {
		return nil, skemareg.Issues{skemareg.Issue{Path: "/", Code: skemareg.CodeInvalidEnum, Message: i18n.T(skemareg.CodeInvalidEnum, nil), Hint: "unknown value: '" + s + "'"}}
	}
	return s, nil
}

func (e enumSchema) Validate(ctx context.Context, v any) error {
	_, err := e.Parse(ctx, v)
	return err
}

func (e enumSchema) JSONSchema() (*js.Schema, error) {
	vals := make([]any, len(e.values))
	for i, v := range e.values {
		vals[i] = v
	}
	return &js.Schema{Type: "string", Enum: vals}, nil
}

var (
	_ skemareg.LiteralSchema = literalSchema{}
	_ skemareg.EnumSchema    = enumSchema{}
)
