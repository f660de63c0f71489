package dsl

import (
	"context"
	"strconv"

	skemareg "github.com/reoring/skemareg"
	"github.com/reoring/skemareg/i18n"
	js "github.com/reoring/skemareg/jsonschema"
)

// Array returns a homogeneous array schema over elem.
func Array(elem skemareg.Schema) skemareg.Schema { return arraySchema{elem: elem} }

type arraySchema struct{ elem skemareg.Schema }

func (arraySchema) Kind() skemareg.Kind { return skemareg.KindArray }

func (a arraySchema) Parse(ctx context.Context, v any) (any, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, skemareg.Issues{skemareg.Issue{Path: "/", Code: skemareg.CodeInvalidType, Message: i18n.T(skemareg.CodeInvalidType, nil), Hint: "expected array"}}
	}
	out := make([]any, 0, len(arr))
	var iss skemareg.Issues
	for i, el := range arr {
		pv, err := a.elem.Parse(ctx, el)
		if err != nil {
			iss = skemareg.AppendIssues(iss, rebaseIssues("/"+strconv.Itoa(i), err)...)
			continue
		}
		out = append(out, pv)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (a arraySchema) Validate(ctx context.Context, v any) error {
	_, err := a.Parse(ctx, v)
	return err
}

func (a arraySchema) JSONSchema() (*js.Schema, error) {
	es, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: es}, nil
}
