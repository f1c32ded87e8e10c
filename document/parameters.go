package document

import (
	"encoding/json"

	"github.com/erraggy/openapi-merge/internal/jsonext"
)

// Parameter describes a single operation parameter (query/header/path/cookie).
type Parameter struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	Name            string `yaml:"name,omitempty" json:"name,omitempty"`
	In              string `yaml:"in,omitempty" json:"in,omitempty"`
	Description     string `yaml:"description,omitempty" json:"description,omitempty"`
	Required        bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated      bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	AllowEmptyValue bool   `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`

	Style         string                `yaml:"style,omitempty" json:"style,omitempty"`
	Explode       *bool                 `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved bool                  `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	Schema        *Schema               `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example       any                   `yaml:"example,omitempty" json:"example,omitempty"`
	Examples      map[string]*Example   `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content       map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

func (p *Parameter) MarshalJSON() ([]byte, error) {
	type alias Parameter
	return jsonext.MarshalAliasWithExtras((*alias)(p), p.Extra)
}

func (p *Parameter) UnmarshalJSON(data []byte) error {
	type alias Parameter
	if err := json.Unmarshal(data, (*alias)(p)); err != nil {
		return err
	}
	p.Extra = jsonext.ExtractExtensions(data)
	return nil
}

// RequestBody describes the body of an operation's request.
type RequestBody struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Extra       map[string]any        `yaml:",inline" json:"-"`
}

func (r *RequestBody) MarshalJSON() ([]byte, error) {
	type alias RequestBody
	return jsonext.MarshalAliasWithExtras((*alias)(r), r.Extra)
}

func (r *RequestBody) UnmarshalJSON(data []byte) error {
	type alias RequestBody
	if err := json.Unmarshal(data, (*alias)(r)); err != nil {
		return err
	}
	r.Extra = jsonext.ExtractExtensions(data)
	return nil
}

// Header is a response/parameter header object (a Parameter without name/in).
type Header struct {
	Ref         string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	Style    string                `yaml:"style,omitempty" json:"style,omitempty"`
	Explode  *bool                 `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema   *Schema               `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                   `yaml:"example,omitempty" json:"example,omitempty"`
	Examples map[string]*Example   `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content  map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

func (h *Header) MarshalJSON() ([]byte, error) {
	type alias Header
	return jsonext.MarshalAliasWithExtras((*alias)(h), h.Extra)
}

func (h *Header) UnmarshalJSON(data []byte) error {
	type alias Header
	if err := json.Unmarshal(data, (*alias)(h)); err != nil {
		return err
	}
	h.Extra = jsonext.ExtractExtensions(data)
	return nil
}

// MediaType binds a schema/example/encoding set to a content-type key.
type MediaType struct {
	Schema   *Schema             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                 `yaml:"example,omitempty" json:"example,omitempty"`
	Examples map[string]*Example `yaml:"examples,omitempty" json:"examples,omitempty"`
	Encoding map[string]*Encoding `yaml:"encoding,omitempty" json:"encoding,omitempty"`
}

// Example is a named example value, inline or by reference.
type Example struct {
	Ref           string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary       string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	Value         any    `yaml:"value,omitempty" json:"value,omitempty"`
	ExternalValue string `yaml:"externalValue,omitempty" json:"externalValue,omitempty"`
}

// Encoding describes how a single request-body property is serialized.
type Encoding struct {
	ContentType   string             `yaml:"contentType,omitempty" json:"contentType,omitempty"`
	Headers       map[string]*Header `yaml:"headers,omitempty" json:"headers,omitempty"`
	Style         string             `yaml:"style,omitempty" json:"style,omitempty"`
	Explode       bool               `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved bool               `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
}
