package document

import (
	"encoding/json"

	"github.com/erraggy/openapi-merge/internal/jsonext"
	"github.com/erraggy/openapi-merge/internal/ordered"
)

// Schema is the OAS 3.0 subset of JSON Schema used throughout the document:
// parameter/header/media-type schemas and components.schemas entries.
//
// A non-empty Ref means this value is the InlineOrRef Ref variant; every
// other field is the zero value in that case (see SPEC_FULL.md §3's
// InlineOrRef note).
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
	Format      string `yaml:"format,omitempty" json:"format,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Example     any    `yaml:"example,omitempty" json:"example,omitempty"`
	Nullable    bool   `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	ReadOnly    bool   `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly   bool   `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`

	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum bool     `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum bool     `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`
	MaxLength        *int     `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength        *int     `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern          string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	MaxItems         *int     `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems         *int     `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems      bool     `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`
	MaxProperties    *int     `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties    *int     `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`

	// Required is order-significant for structural-equality purposes: it is
	// compared positionally, not set-wise.
	Required []string `yaml:"required,omitempty" json:"required,omitempty"`
	// Enum is order-significant for the same reason.
	Enum []any `yaml:"enum,omitempty" json:"enum,omitempty"`

	// AllOf/OneOf/AnyOf are order-significant sequences of sub-schemas.
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	Not   *Schema   `yaml:"not,omitempty" json:"not,omitempty"`

	Items *Schema `yaml:"items,omitempty" json:"items,omitempty"`

	// Properties is a semantically-unordered map: compared set-wise for
	// structural equality, but insertion order is still preserved for
	// deterministic serialization.
	Properties *ordered.Map[*Schema] `yaml:"properties,omitempty" json:"-"`

	// AdditionalProperties is either a *Schema or a bool (true/false),
	// mirroring the JSON Schema "additionalProperties" union.
	AdditionalProperties any `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`

	Discriminator *Discriminator `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	XML           *XML           `yaml:"xml,omitempty" json:"xml,omitempty"`
	ExternalDocs  *ExternalDocs  `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// Discriminator supports polymorphism via a property name plus an explicit
// value-to-schema mapping. Mapping values are reference strings and are
// visited/rewritten by the Reference Index/Rewriter like any other Ref.
type Discriminator struct {
	PropertyName string            `yaml:"propertyName" json:"propertyName"`
	Mapping      map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"`
}

// XML carries XML-specific serialization hints for a schema.
type XML struct {
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	Namespace string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Prefix    string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Attribute bool   `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Wrapped   bool   `yaml:"wrapped,omitempty" json:"wrapped,omitempty"`
}

// MarshalJSON flattens Properties (an ordered.Map, not a plain map the
// encoding/json package understands) and Extra into the output object. It
// marshals through a struct-tag alias rather than hand-building a map, so
// every unset *float64/*int/*Schema field is omitted by its own
// "omitempty" tag instead of round-tripping through interface{} (where a
// nil typed pointer boxed into any is not == nil and would otherwise
// marshal as a literal null).
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.Ref != "" {
		return json.Marshal(map[string]any{"$ref": s.Ref})
	}

	type alias Schema
	aux := struct {
		*alias
		Properties *ordered.Map[*Schema] `json:"properties,omitempty"`
	}{alias: (*alias)(s), Properties: s.Properties}
	if aux.Properties != nil && aux.Properties.Len() == 0 {
		aux.Properties = nil
	}

	return jsonext.MarshalAliasWithExtras(aux, s.Extra)
}

func (s *Schema) UnmarshalJSON(data []byte) error {
	type alias Schema
	aux := struct {
		*alias
		Properties *ordered.Map[*Schema] `json:"properties,omitempty"`
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.Properties = aux.Properties
	s.Extra = jsonext.ExtractExtensions(data)
	return nil
}
