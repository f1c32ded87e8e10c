package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/openapi-merge/internal/ordered"
)

func TestNew_InitializesEmptyOrderedMaps(t *testing.T) {
	doc := New()
	require.NotNil(t, doc.Paths)
	require.NotNil(t, doc.Components)
	assert.Equal(t, 0, doc.Paths.Len())
	assert.Equal(t, 0, doc.Components.Schemas.Len())
}

func TestSchema_MarshalUnmarshalJSONRoundTrip(t *testing.T) {
	props := ordered.NewMap[*Schema]()
	props.Set("id", &Schema{Type: "string"})
	props.Set("name", &Schema{Type: "string"})

	original := &Schema{
		Type:       "object",
		Required:   []string{"id", "name"},
		Properties: props,
		Extra:      map[string]any{"x-internal": true},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"x-internal":true`)

	var decoded Schema
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "object", decoded.Type)
	assert.Equal(t, []string{"id", "name"}, decoded.Required)
	require.NotNil(t, decoded.Properties)
	assert.Equal(t, 2, decoded.Properties.Len())
	assert.Equal(t, map[string]any{"x-internal": true}, decoded.Extra)
}

func TestSchema_RefVariantMarshalsOnlyRef(t *testing.T) {
	s := &Schema{Ref: "#/components/schemas/Pet", Type: "should-be-ignored"}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"$ref":"#/components/schemas/Pet"}`, string(data))
}

func TestSchema_MarshalJSONOmitsUnsetPointerFields(t *testing.T) {
	s := &Schema{Type: "string"}
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, map[string]any{"type": "string"}, m)
	assert.NotContains(t, string(data), "null")
}

func TestInfo_MarshalJSONOmitsUnsetContactAndLicense(t *testing.T) {
	i := &Info{Title: "Pet Store", Version: "1.0.0"}
	data, err := json.Marshal(i)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, map[string]any{"title": "Pet Store", "version": "1.0.0"}, m)
	assert.NotContains(t, string(data), "null")
}

func TestDiscriminator_MappingRoundTrips(t *testing.T) {
	s := &Schema{
		Type: "object",
		Discriminator: &Discriminator{
			PropertyName: "petType",
			Mapping:      map[string]string{"dog": "#/components/schemas/Dog", "cat": "Cat"},
		},
	}
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded Schema
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Discriminator)
	assert.Equal(t, "petType", decoded.Discriminator.PropertyName)
	assert.Equal(t, "#/components/schemas/Dog", decoded.Discriminator.Mapping["dog"])
	assert.Equal(t, "Cat", decoded.Discriminator.Mapping["cat"])
}
