package document

import (
	"encoding/json"

	"github.com/erraggy/openapi-merge/internal/jsonext"
	"github.com/erraggy/openapi-merge/internal/ordered"
	"go.yaml.in/yaml/v4"
)

// PathItem is the per-path bundle of up to one operation per HTTP method,
// plus parameters shared by every operation on the path.
type PathItem struct {
	Ref         string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	Get     *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put     *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post    *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete  *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options *Operation `yaml:"options,omitempty" json:"options,omitempty"`
	Head    *Operation `yaml:"head,omitempty" json:"head,omitempty"`
	Patch   *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace   *Operation `yaml:"trace,omitempty" json:"trace,omitempty"`

	Servers    []Server    `yaml:"servers,omitempty" json:"servers,omitempty"`
	Parameters []Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Operations returns the method -> *Operation entries present on p, in the
// fixed method order every walk in this module uses (GET, PUT, POST, DELETE,
// OPTIONS, HEAD, PATCH, TRACE) so iteration is stable across runs.
func (p *PathItem) Operations() []MethodOperation {
	if p == nil {
		return nil
	}
	var out []MethodOperation
	add := func(method string, op *Operation) {
		if op != nil {
			out = append(out, MethodOperation{Method: method, Operation: op})
		}
	}
	add("get", p.Get)
	add("put", p.Put)
	add("post", p.Post)
	add("delete", p.Delete)
	add("options", p.Options)
	add("head", p.Head)
	add("patch", p.Patch)
	add("trace", p.Trace)
	return out
}

// SetOperation assigns op to the named HTTP method slot, or clears it when
// op is nil.
func (p *PathItem) SetOperation(method string, op *Operation) {
	switch method {
	case "get":
		p.Get = op
	case "put":
		p.Put = op
	case "post":
		p.Post = op
	case "delete":
		p.Delete = op
	case "options":
		p.Options = op
	case "head":
		p.Head = op
	case "patch":
		p.Patch = op
	case "trace":
		p.Trace = op
	}
}

// Empty reports whether p has no remaining operations. Used by the Path
// Transformer to drop PathItems left with nothing after tag filtering.
func (p *PathItem) Empty() bool {
	return len(p.Operations()) == 0
}

// MethodOperation pairs an HTTP method with its Operation.
type MethodOperation struct {
	Method    string
	Operation *Operation
}

// Operation bundles everything OpenAPI associates with one HTTP method on
// one path.
type Operation struct {
	OperationID string   `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Summary     string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Deprecated  bool     `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	Parameters  []Parameter             `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody            `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   *ordered.Map[*Response] `yaml:"responses,omitempty" json:"responses,omitempty"`
	Callbacks   map[string]*Callback    `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`

	Security []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Servers  []Server              `yaml:"servers,omitempty" json:"servers,omitempty"`
}

// Response describes one status-code (or "default") response.
type Response struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Headers     map[string]*Header    `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Links       map[string]*Link      `yaml:"links,omitempty" json:"links,omitempty"`
	Extra       map[string]any        `yaml:",inline" json:"-"`
}

func (r *Response) MarshalJSON() ([]byte, error) {
	type alias Response
	return jsonext.MarshalAliasWithExtras((*alias)(r), r.Extra)
}

func (r *Response) UnmarshalJSON(data []byte) error {
	type alias Response
	if err := json.Unmarshal(data, (*alias)(r)); err != nil {
		return err
	}
	r.Extra = jsonext.ExtractExtensions(data)
	return nil
}

// Link describes a possible design-time relationship between operations.
type Link struct {
	Ref          string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	OperationRef string         `yaml:"operationRef,omitempty" json:"operationRef,omitempty"`
	OperationID  string         `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  any            `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`
	Server       *Server        `yaml:"server,omitempty" json:"server,omitempty"`
}

// Callback is either a reference to a named components.callbacks entry, or
// an inline map from a runtime expression (e.g.
// "{$request.body#/callbackUrl}") to the PathItem describing that callback
// request. The Reference Index recurses into Expressions' PathItems exactly
// as it does top-level paths.
type Callback struct {
	Ref         string
	Expressions *ordered.Map[*PathItem]
}

func (c *Callback) MarshalJSON() ([]byte, error) {
	if c.Ref != "" {
		return json.Marshal(map[string]any{"$ref": c.Ref})
	}
	if c.Expressions == nil {
		return []byte("{}"), nil
	}
	return c.Expressions.MarshalJSON()
}

func (c *Callback) UnmarshalJSON(data []byte) error {
	var refOnly struct {
		Ref string `json:"$ref"`
	}
	if err := json.Unmarshal(data, &refOnly); err == nil && refOnly.Ref != "" {
		c.Ref = refOnly.Ref
		return nil
	}
	c.Expressions = ordered.NewMap[*PathItem]()
	return c.Expressions.UnmarshalJSON(data)
}

func (c *Callback) MarshalYAML() (any, error) {
	if c.Ref != "" {
		return map[string]any{"$ref": c.Ref}, nil
	}
	if c.Expressions == nil {
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}, nil
	}
	return c.Expressions.MarshalYAML()
}

func (c *Callback) UnmarshalYAML(value *yaml.Node) error {
	var refOnly struct {
		Ref string `yaml:"$ref"`
	}
	if err := value.Decode(&refOnly); err == nil && refOnly.Ref != "" {
		c.Ref = refOnly.Ref
		return nil
	}
	c.Expressions = ordered.NewMap[*PathItem]()
	return c.Expressions.UnmarshalYAML(value)
}
