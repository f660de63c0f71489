// Package yamldef loads declarative schema definitions from YAML and converts
// them into tagged object schemas ready for registration.
//
// A definition document looks like:
//
//	type: user
//	fields:
//	  id: { type: string }
//	  age: { type: number, optional: true }
//	  role: { type: string, default: member }
//
// Multi-document streams define one schema per document. The discriminator
// field is synthesized from the document's type tag; fields are declared in
// name-sorted order because YAML mappings carry no usable order.
package yamldef

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	skemareg "github.com/reoring/skemareg"
	"github.com/reoring/skemareg/dsl"
	"github.com/reoring/skemareg/registry"
	"gopkg.in/yaml.v3"
)

type schemaDef struct {
	Type    string              `yaml:"type"`
	Unknown string              `yaml:"unknown"` // "strict" (default) or "strip"
	Fields  map[string]fieldDef `yaml:"fields"`
}

type fieldDef struct {
	Type     string              `yaml:"type"` // string|bool|number|enum|array|object
	Optional bool                `yaml:"optional"`
	Default  yaml.Node           `yaml:"default"`
	Values   []string            `yaml:"values"` // enum only
	Items    *fieldDef           `yaml:"items"`  // array only
	Fields   map[string]fieldDef `yaml:"fields"` // object only
}

// Load parses every YAML document in data into a tagged object schema.
func Load(data []byte) ([]skemareg.ObjectSchema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []skemareg.ObjectSchema
	for {
		var def schemaDef
		if err := dec.Decode(&def); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		s, err := buildSchema(def)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, errors.New("yamldef: no schema definitions found")
	}
	return out, nil
}

// Register loads definitions from data and registers each into reg. The opts
// apply to every registration.
func Register(reg *registry.Registry, data []byte, opts ...registry.RegisterOption) error {
	ss, err := Load(data)
	if err != nil {
		return err
	}
	for _, s := range ss {
		if err := reg.Register(s, opts...); err != nil {
			return err
		}
	}
	return nil
}

func buildSchema(def schemaDef) (skemareg.ObjectSchema, error) {
	if def.Type == "" {
		return nil, errors.New("yamldef: definition is missing a type tag")
	}
	switch def.Unknown {
	case "", "strict", "strip":
	default:
		return nil, fmt.Errorf("yamldef: %s: unknown policy %q", def.Type, def.Unknown)
	}
	b := dsl.Object().Field(registry.DiscriminatorField, dsl.Literal(def.Type))
	if def.Unknown == "strip" {
		b.UnknownStrip()
	}
	for _, name := range sortedNames(def.Fields) {
		if name == registry.DiscriminatorField {
			return nil, fmt.Errorf("yamldef: %s: field %q collides with the discriminator", def.Type, name)
		}
		fs, err := buildField(def.Type, name, def.Fields[name])
		if err != nil {
			return nil, err
		}
		b.Field(name, fs)
	}
	return b.Build()
}

func buildField(tag, name string, fd fieldDef) (skemareg.Schema, error) {
	var s skemareg.Schema
	switch fd.Type {
	case "string":
		s = dsl.String()
	case "bool":
		s = dsl.Bool()
	case "number":
		s = dsl.Number()
	case "enum":
		if len(fd.Values) == 0 {
			return nil, fmt.Errorf("yamldef: %s.%s: enum needs values", tag, name)
		}
		s = dsl.Enum(fd.Values...)
	case "array":
		if fd.Items == nil {
			return nil, fmt.Errorf("yamldef: %s.%s: array needs items", tag, name)
		}
		elem, err := buildField(tag, name, *fd.Items)
		if err != nil {
			return nil, err
		}
		s = dsl.Array(elem)
	case "object":
		b := dsl.Object()
		for _, sub := range sortedNames(fd.Fields) {
			fs, err := buildField(tag, name+"."+sub, fd.Fields[sub])
			if err != nil {
				return nil, err
			}
			b.Field(sub, fs)
		}
		obj, err := b.Build()
		if err != nil {
			return nil, err
		}
		s = obj
	default:
		return nil, fmt.Errorf("yamldef: %s.%s: unknown field type %q", tag, name, fd.Type)
	}
	if !fd.Default.IsZero() {
		var dv any
		if err := fd.Default.Decode(&dv); err != nil {
			return nil, fmt.Errorf("yamldef: %s.%s: %w", tag, name, err)
		}
		s = dsl.Default(s, dv)
	}
	// optional wraps default so absence omits the field rather than filling it
	if fd.Optional {
		s = dsl.Optional(s)
	}
	return s, nil
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
