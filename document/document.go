// Package document is the in-memory OpenAPI 3.0 data model the merge engine
// operates on: parsed in by the loader, mutated only by the engine packages
// (pathtransform, namer, rewriter, merge), and handed to the Output Assembler
// unchanged in shape at the end of one merge.
package document

import "github.com/erraggy/openapi-merge/internal/ordered"

// Document is one parsed (or merged) OpenAPI 3.0 document.
type Document struct {
	OpenAPI      string                  `yaml:"openapi" json:"openapi"`
	Info         *Info                   `yaml:"info" json:"info"`
	Servers      []Server                `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths        *ordered.Map[*PathItem] `yaml:"paths" json:"paths"`
	Components   *Components             `yaml:"components,omitempty" json:"components,omitempty"`
	Security     []SecurityRequirement   `yaml:"security,omitempty" json:"security,omitempty"`
	Tags         []Tag                   `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs           `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
}

// New returns an empty Document with initialized ordered maps, ready to
// accumulate a merge's output (used by merge.Merge as its zero state).
func New() *Document {
	return &Document{
		Paths:      ordered.NewMap[*PathItem](),
		Components: NewComponents(),
	}
}

// Components holds one ordered map per component category. Components'
// field order is the category processing order the Namer and Reference
// Rewriter use; struct field order is also what reflection-based yaml/json
// marshaling renders, so the two stay in sync without a separate ordering
// table.
type Components struct {
	Schemas         *ordered.Map[*Schema]         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       *ordered.Map[*Response]       `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      *ordered.Map[*Parameter]      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Examples        *ordered.Map[*Example]        `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequestBodies   *ordered.Map[*RequestBody]    `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers         *ordered.Map[*Header]         `yaml:"headers,omitempty" json:"headers,omitempty"`
	SecuritySchemes *ordered.Map[*SecurityScheme] `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	Links           *ordered.Map[*Link]           `yaml:"links,omitempty" json:"links,omitempty"`
	Callbacks       *ordered.Map[*Callback]       `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`
}

// NewComponents returns a Components with every category map initialized.
func NewComponents() *Components {
	return &Components{
		Schemas:         ordered.NewMap[*Schema](),
		Responses:       ordered.NewMap[*Response](),
		Parameters:      ordered.NewMap[*Parameter](),
		Examples:        ordered.NewMap[*Example](),
		RequestBodies:   ordered.NewMap[*RequestBody](),
		Headers:         ordered.NewMap[*Header](),
		SecuritySchemes: ordered.NewMap[*SecurityScheme](),
		Links:           ordered.NewMap[*Link](),
		Callbacks:       ordered.NewMap[*Callback](),
	}
}
