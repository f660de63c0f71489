package registry_test

import (
	"context"
	"errors"
	"testing"

	skemareg "github.com/reoring/skemareg"
	g "github.com/reoring/skemareg/dsl"
	"github.com/reoring/skemareg/registry"
)

func taggedSchema(t *testing.T, tag string) skemareg.ObjectSchema {
	t.Helper()
	return g.Object().
		Field("type", g.Literal(tag)).
		Field("id", g.String()).
		MustBuild()
}

func TestRepo_Add_MissingDiscriminator(t *testing.T) {
	repo := registry.NewRepo()

	cases := map[string]skemareg.ObjectSchema{
		"no type field":      g.Object().Field("id", g.String()).MustBuild(),
		"non-literal type":   g.Object().Field("type", g.String()).MustBuild(),
		"empty literal":      g.Object().Field("type", g.Literal("")).MustBuild(),
		"non-string literal": g.Object().Field("type", g.Literal(7)).MustBuild(),
		"wrapped literal":    g.Object().Field("type", g.Optional(g.Literal("user"))).MustBuild(),
	}
	for name, s := range cases {
		if err := repo.Add(s); !errors.Is(err, registry.ErrMissingDiscriminator) {
			t.Fatalf("%s: expected ErrMissingDiscriminator, got: %v", name, err)
		}
	}
	if repo.Len() != 0 {
		t.Fatalf("failed adds must not mutate the repo, len=%d", repo.Len())
	}
}

func TestRepo_Add_OverwriteKeepsPosition(t *testing.T) {
	repo := registry.NewRepo()
	if err := repo.Add(taggedSchema(t, "user")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := repo.Add(taggedSchema(t, "post")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	second := g.Object().
		Field("type", g.Literal("user")).
		Field("id", g.String()).
		Field("email", g.String()).
		MustBuild()
	if err := repo.Add(second); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if repo.Len() != 2 {
		t.Fatalf("overwrite must keep exactly one entry per tag, len=%d", repo.Len())
	}
	if tags := repo.Tags(); tags[0] != "user" || tags[1] != "post" {
		t.Fatalf("overwrite must keep insertion position, tags=%v", tags)
	}
	s, ok := repo.Schema("user")
	if !ok {
		t.Fatalf("user missing after overwrite")
	}
	if _, ok := s.Field("email"); !ok {
		t.Fatalf("second registration should win, keys=%v", s.Keys())
	}
}

func TestRepo_Schemas_SnapshotIsolation(t *testing.T) {
	repo := registry.NewRepo()
	_ = repo.Add(taggedSchema(t, "user"))
	_ = repo.Add(taggedSchema(t, "post"))

	a := repo.Schemas()
	b := repo.Schemas()
	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("unexpected snapshot sizes: %d %d", len(a), len(b))
	}
	a[0] = nil
	if b[0] == nil {
		t.Fatalf("snapshots must be distinct containers")
	}
	if repo.Schemas()[0] == nil {
		t.Fatalf("mutating a snapshot must not affect the repo")
	}
}

func TestRepo_UnionEnum_MinimumArity(t *testing.T) {
	repo := registry.NewRepo()

	for i := 0; i < 2; i++ {
		if _, err := repo.Union(); !errors.Is(err, registry.ErrInsufficientSchemas) {
			t.Fatalf("expected ErrInsufficientSchemas from union, got: %v", err)
		}
		if _, err := repo.Enum(); !errors.Is(err, registry.ErrInsufficientSchemas) {
			t.Fatalf("expected ErrInsufficientSchemas from enum, got: %v", err)
		}
		_ = repo.Add(taggedSchema(t, "user"))
	}

	// second schema resolves the failure; it is not sticky
	_ = repo.Add(taggedSchema(t, "post"))
	if _, err := repo.Union(); err != nil {
		t.Fatalf("union with two entries should succeed, got: %v", err)
	}
	if _, err := repo.Enum(); err != nil {
		t.Fatalf("enum with two entries should succeed, got: %v", err)
	}
}

func TestRepo_Union_ReflectsLatestState(t *testing.T) {
	ctx := context.Background()
	repo := registry.NewRepo()
	_ = repo.Add(taggedSchema(t, "user"))
	_ = repo.Add(taggedSchema(t, "post"))

	u, err := repo.Union()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := u.Parse(ctx, map[string]any{"type": "comment", "id": "1"}); err == nil {
		t.Fatalf("expected discriminator_unknown before comment is registered")
	}

	_ = repo.Add(taggedSchema(t, "comment"))
	u2, err := repo.Union()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := u2.Parse(ctx, map[string]any{"type": "comment", "id": "1"}); err != nil {
		t.Fatalf("union must be rebuilt from current state, got: %v", err)
	}
}

func TestRepo_Enum_InsertionOrder(t *testing.T) {
	repo := registry.NewRepo()
	_ = repo.Add(taggedSchema(t, "user"))
	_ = repo.Add(taggedSchema(t, "post"))
	_ = repo.Add(taggedSchema(t, "comment"))

	e, err := repo.Enum()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got := e.Values()
	if len(got) != 3 || got[0] != "user" || got[1] != "post" || got[2] != "comment" {
		t.Fatalf("enum values must follow insertion order, got: %v", got)
	}
}
