package document

import (
	"encoding/json"

	"github.com/erraggy/openapi-merge/internal/jsonext"
)

// Info is the OpenAPI document's metadata block.
type Info struct {
	Title          string         `yaml:"title" json:"title"`
	Description    string         `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string         `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact       `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License       `yaml:"license,omitempty" json:"license,omitempty"`
	Version        string         `yaml:"version" json:"version"`
	Extra          map[string]any `yaml:",inline" json:"-"`
}

func (i *Info) MarshalJSON() ([]byte, error) {
	type alias Info
	return jsonext.MarshalAliasWithExtras((*alias)(i), i.Extra)
}

func (i *Info) UnmarshalJSON(data []byte) error {
	type alias Info
	if err := json.Unmarshal(data, (*alias)(i)); err != nil {
		return err
	}
	i.Extra = jsonext.ExtractExtensions(data)
	return nil
}

// Contact is the OpenAPI document's contact block.
type Contact struct {
	Name  string         `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string         `yaml:"url,omitempty" json:"url,omitempty"`
	Email string         `yaml:"email,omitempty" json:"email,omitempty"`
	Extra map[string]any `yaml:",inline" json:"-"`
}

// License is the OpenAPI document's license block.
type License struct {
	Name  string         `yaml:"name" json:"name"`
	URL   string         `yaml:"url,omitempty" json:"url,omitempty"`
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Server is one entry of the document's (or an operation's) server list.
type Server struct {
	URL         string                     `yaml:"url" json:"url"`
	Description string                     `yaml:"description,omitempty" json:"description,omitempty"`
	Variables   map[string]*ServerVariable `yaml:"variables,omitempty" json:"variables,omitempty"`
	Extra       map[string]any             `yaml:",inline" json:"-"`
}

// ServerVariable is one substitution variable for a Server URL template.
type ServerVariable struct {
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default     string   `yaml:"default" json:"default"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// Tag is a top-level tag declaration with documentation.
type Tag struct {
	Name         string        `yaml:"name" json:"name"`
	Description  string        `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
}

// ExternalDocs is an external documentation reference.
type ExternalDocs struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string `yaml:"url" json:"url"`
}

// SecurityRequirement maps a security scheme name to its required scopes.
// An empty requirement (no entries) means "no security required" when it
// appears alone in a list.
type SecurityRequirement map[string][]string
