package dsl_test

import (
	"testing"

	j "github.com/goccy/go-json"

	skemareg "github.com/reoring/skemareg"
	g "github.com/reoring/skemareg/dsl"
)

// TestJSONSchema_ObjectProjection checks the JSON Schema export of a tagged
// object: literal becomes const, optional/default fields leave the required
// list, defaults are carried, and strict objects close additionalProperties.
func TestJSONSchema_ObjectProjection(t *testing.T) {
	user := g.Object().
		Field("type", g.Literal("user")).
		Field("id", g.String()).
		Field("age", g.Optional(g.Number())).
		Field("role", g.Default(g.String(), "member")).
		Field("tags", g.Array(g.String())).
		MustBuild()

	data, err := skemareg.ExportJSON(user)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var got map[string]any
	if err := j.Unmarshal(data, &got); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if got["type"] != "object" {
		t.Fatalf("expected object type, got: %v", got["type"])
	}
	if got["additionalProperties"] != false {
		t.Fatalf("strict object should close additionalProperties, got: %v", got["additionalProperties"])
	}

	props, _ := got["properties"].(map[string]any)
	if props == nil {
		t.Fatalf("missing properties: %s", data)
	}
	if tp, _ := props["type"].(map[string]any); tp == nil || tp["const"] != "user" {
		t.Fatalf("discriminator should export const=user, got: %v", props["type"])
	}
	if role, _ := props["role"].(map[string]any); role == nil || role["default"] != "member" {
		t.Fatalf("default should be exported, got: %v", props["role"])
	}
	if tags, _ := props["tags"].(map[string]any); tags == nil || tags["type"] != "array" {
		t.Fatalf("array field should export items, got: %v", props["tags"])
	}

	req, _ := got["required"].([]any)
	want := map[string]bool{"type": true, "id": true, "tags": true}
	if len(req) != len(want) {
		t.Fatalf("unexpected required list: %v", req)
	}
	for _, r := range req {
		if !want[r.(string)] {
			t.Fatalf("unexpected required field: %v", r)
		}
	}
}

func TestJSONSchema_UnionAndEnumProjection(t *testing.T) {
	card, bank := paymentVariants(t)

	u, err := g.Union("type", card, bank)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	us, err := u.JSONSchema()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(us.OneOf) != 2 {
		t.Fatalf("expected two oneOf branches, got: %d", len(us.OneOf))
	}
	if us.OneOf[0].Properties["type"].Const != "card" {
		t.Fatalf("oneOf order should follow variant order, got: %v", us.OneOf[0].Properties["type"].Const)
	}

	es, err := g.Enum("card", "bank").JSONSchema()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if es.Type != "string" || len(es.Enum) != 2 || es.Enum[0] != "card" {
		t.Fatalf("unexpected enum projection: %+v", es)
	}
}
