package skemareg

import (
	"bytes"
	"context"

	j "github.com/goccy/go-json"
)

// ParseJSON decodes JSON bytes and validates the result against s. Numbers
// are decoded as json.Number so numeric precision survives the trip. This is
// the natural entry point for checking generator output against a derived
// union schema.
func ParseJSON(ctx context.Context, s Schema, data []byte) (any, error) {
	if s == nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: "nil schema"}}
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return s.Parse(ctx, v)
}

// ExportJSON renders the JSON Schema projection of s as JSON bytes, ready to
// hand to a structured-output interface.
func ExportJSON(s Schema) ([]byte, error) {
	if s == nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: "nil schema"}}
	}
	js, err := s.JSONSchema()
	if err != nil {
		return nil, err
	}
	return j.Marshal(js)
}
