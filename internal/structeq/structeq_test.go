package structeq

import "testing"

type schemaStub struct {
	Type       string                 `json:"type"`
	Properties map[string]*schemaStub `json:"properties,omitempty"`
	Required   []string               `json:"required,omitempty"`
}

func TestEqual_PropertiesSetWise(t *testing.T) {
	a := &schemaStub{
		Type: "object",
		Properties: map[string]*schemaStub{
			"name": {Type: "string"},
			"age":  {Type: "integer"},
		},
	}
	b := &schemaStub{
		Type: "object",
		Properties: map[string]*schemaStub{
			"age":  {Type: "integer"},
			"name": {Type: "string"},
		},
	}
	if !Equal(a, b) {
		t.Fatalf("expected equal: map key order must not matter")
	}
}

func TestEqual_RequiredPositional(t *testing.T) {
	a := &schemaStub{Type: "object", Required: []string{"name", "age"}}
	b := &schemaStub{Type: "object", Required: []string{"age", "name"}}
	if Equal(a, b) {
		t.Fatalf("expected not equal: required order is significant")
	}
}

func TestEqual_DifferentPropertyCount(t *testing.T) {
	a := &schemaStub{Type: "object", Properties: map[string]*schemaStub{"name": {Type: "string"}}}
	b := &schemaStub{Type: "object", Properties: map[string]*schemaStub{}}
	if Equal(a, b) {
		t.Fatalf("expected not equal: property sets differ in size")
	}
}

func TestEqual_NestedSchemas(t *testing.T) {
	a := &schemaStub{
		Type: "object",
		Properties: map[string]*schemaStub{
			"tags": {Type: "array", Required: []string{"x"}},
		},
	}
	b := &schemaStub{
		Type: "object",
		Properties: map[string]*schemaStub{
			"tags": {Type: "array", Required: []string{"x"}},
		},
	}
	if !Equal(a, b) {
		t.Fatalf("expected equal for identical nested structures")
	}
}

func TestEqual_Scalars(t *testing.T) {
	if !Equal("abc", "abc") {
		t.Fatalf("expected equal strings")
	}
	if Equal("abc", "def") {
		t.Fatalf("expected unequal strings")
	}
	if !Equal(3, 3) {
		t.Fatalf("expected equal ints to compare equal through JSON round-trip")
	}
}
