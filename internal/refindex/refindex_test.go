package refindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/openapi-merge/document"
	"github.com/erraggy/openapi-merge/internal/ordered"
)

func TestWalk_SchemaTreeVisitsEveryRef(t *testing.T) {
	doc := document.New()
	doc.Components.Schemas.Set("Pet", &document.Schema{
		Type: "object",
		Properties: func() *ordered.Map[*document.Schema] {
			m := ordered.NewMap[*document.Schema]()
			m.Set("owner", &document.Schema{Ref: "#/components/schemas/Owner"})
			return m
		}(),
		AllOf: []*document.Schema{{Ref: "#/components/schemas/Base"}},
	})

	sites := Walk(doc)
	var refs []string
	for _, s := range sites {
		if v := s.Get(); v != "" {
			refs = append(refs, v)
		}
	}
	assert.Contains(t, refs, "#/components/schemas/Owner")
	assert.Contains(t, refs, "#/components/schemas/Base")
}

func TestWalk_OperationResponsesAndParameters(t *testing.T) {
	doc := document.New()
	item := &document.PathItem{}
	responses := ordered.NewMap[*document.Response]()
	responses.Set("200", &document.Response{Ref: "#/components/responses/OK"})
	item.SetOperation("get", &document.Operation{
		Parameters: []document.Parameter{{Ref: "#/components/parameters/Limit"}},
		Responses:  responses,
	})
	doc.Paths.Set("/pets", item)

	sites := Walk(doc)
	var refs []string
	for _, s := range sites {
		if v := s.Get(); v != "" {
			refs = append(refs, v)
		}
	}
	assert.Contains(t, refs, "#/components/responses/OK")
	assert.Contains(t, refs, "#/components/parameters/Limit")
}

func TestWalk_CallbackRecursesIntoExpressions(t *testing.T) {
	doc := document.New()
	item := &document.PathItem{}
	expr := &document.PathItem{}
	expr.SetOperation("post", &document.Operation{
		RequestBody: &document.RequestBody{Ref: "#/components/requestBodies/Ping"},
	})
	expressions := ordered.NewMap[*document.PathItem]()
	expressions.Set("{$request.body#/callbackUrl}", expr)
	item.SetOperation("post", &document.Operation{
		Callbacks: map[string]*document.Callback{
			"onEvent": {Expressions: expressions},
		},
	})
	doc.Paths.Set("/subscribe", item)

	sites := Walk(doc)
	var refs []string
	for _, s := range sites {
		if v := s.Get(); v != "" {
			refs = append(refs, v)
		}
	}
	assert.Contains(t, refs, "#/components/requestBodies/Ping")
}

func TestWalk_DiscriminatorMappingIsBareAllowed(t *testing.T) {
	doc := document.New()
	doc.Components.Schemas.Set("Pet", &document.Schema{
		Type: "object",
		Discriminator: &document.Discriminator{
			PropertyName: "petType",
			Mapping:      map[string]string{"dog": "Dog"},
		},
	})

	sites := Walk(doc)
	found := false
	for _, s := range sites {
		if s.Get() == "Dog" {
			require.True(t, s.BareAllowed)
			assert.Equal(t, document.CategorySchemas, s.BareCategory)
			found = true
		}
	}
	assert.True(t, found, "expected to find the bare discriminator mapping site")
}
