package skemareg_test

import (
	"context"
	"encoding/json"
	"testing"

	skemareg "github.com/reoring/skemareg"
	g "github.com/reoring/skemareg/dsl"
	"github.com/reoring/skemareg/registry"
)

func TestParseJSON_AgainstDerivedUnion(t *testing.T) {
	ctx := context.Background()
	reg := registry.New()

	user := g.Object().
		Field("type", g.Literal("user")).
		Field("id", g.String()).
		Field("age", g.Optional(g.Number())).
		MustBuild()
	post := g.Object().
		Field("type", g.Literal("post")).
		Field("id", g.String()).
		MustBuild()
	if err := reg.Register(user); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := reg.Register(post); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	u, err := reg.LLM().Union()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	v, err := skemareg.ParseJSON(ctx, u, []byte(`{"type":"user","id":"1","age":5}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := v.(map[string]any)
	if m["age"] != json.Number("5") {
		t.Fatalf("numbers should decode as json.Number, got: %#v", m["age"])
	}

	// the derived view stripped the optional wrapper, so age is required now
	if _, err := skemareg.ParseJSON(ctx, u, []byte(`{"type":"user","id":"1"}`)); err == nil {
		t.Fatalf("expected required error for missing age in the derived view")
	}
}

func TestParseJSON_MalformedInput(t *testing.T) {
	ctx := context.Background()
	s := g.Object().Field("id", g.String()).MustBuild()

	_, err := skemareg.ParseJSON(ctx, s, []byte(`{"id":`))
	if err == nil {
		t.Fatalf("expected parse_error for malformed JSON")
	}
	iss, ok := skemareg.AsIssues(err)
	if !ok || iss[0].Code != skemareg.CodeParseError {
		t.Fatalf("expected parse_error, got: %v", err)
	}

	if _, err := skemareg.ParseJSON(ctx, nil, []byte(`{}`)); err == nil {
		t.Fatalf("expected parse_error for nil schema")
	}
}

func TestExportJSON_RoundTrip(t *testing.T) {
	s := g.Object().
		Field("type", g.Literal("user")).
		Field("id", g.String()).
		MustBuild()

	data, err := skemareg.ExportJSON(s)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if got["type"] != "object" {
		t.Fatalf("unexpected export: %s", data)
	}
}
