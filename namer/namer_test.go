package namer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/openapi-merge/document"
	"github.com/erraggy/openapi-merge/internal/ordered"
	"github.com/erraggy/openapi-merge/merrors"
)

type stub struct {
	Type string `json:"type"`
}

func mapOf(entries map[string]*stub) *ordered.Map[*stub] {
	m := ordered.NewMap[*stub]()
	for k, v := range entries {
		m.Set(k, v)
	}
	return m
}

func TestResolve_AdoptsNewName(t *testing.T) {
	merged := mapOf(map[string]*stub{"Pet": {Type: "object"}})
	incoming := mapOf(map[string]*stub{"Toy": {Type: "object"}})

	renamed, err := Resolve(document.CategorySchemas, 1, merged, incoming, Policy{})
	require.NoError(t, err)
	assert.Empty(t, renamed)
}

func TestResolve_DedupesIdenticalDefinition(t *testing.T) {
	merged := mapOf(map[string]*stub{"Pet": {Type: "object"}})
	incoming := mapOf(map[string]*stub{"Pet": {Type: "object"}})

	renamed, err := Resolve(document.CategorySchemas, 1, merged, incoming, Policy{})
	require.NoError(t, err)
	assert.Empty(t, renamed)
}

func TestResolve_RenamesOnConflict(t *testing.T) {
	merged := mapOf(map[string]*stub{"Pet": {Type: "object"}})
	incoming := mapOf(map[string]*stub{"Pet": {Type: "string"}})

	renamed, err := Resolve(document.CategorySchemas, 1, merged, incoming, Policy{Prefix: "B_"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Pet": "B_Pet"}, renamed)
}

func TestResolve_NoPolicyReturnsDisputeUnresolved(t *testing.T) {
	merged := mapOf(map[string]*stub{"Pet": {Type: "object"}})
	incoming := mapOf(map[string]*stub{"Pet": {Type: "string"}})

	_, err := Resolve(document.CategorySchemas, 2, merged, incoming, Policy{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, merrors.ErrDisputeUnresolved))

	var disputeErr *merrors.DisputeUnresolvedError
	require.ErrorAs(t, err, &disputeErr)
	assert.Equal(t, "schemas", disputeErr.Category)
	assert.Equal(t, "Pet", disputeErr.Name)
	assert.Equal(t, 2, disputeErr.InputIndex)
}

func TestResolve_RenameStillConflicts(t *testing.T) {
	merged := mapOf(map[string]*stub{
		"Pet":   {Type: "object"},
		"B_Pet": {Type: "object"},
	})
	incoming := mapOf(map[string]*stub{"Pet": {Type: "string"}})

	_, err := Resolve(document.CategorySchemas, 1, merged, incoming, Policy{Prefix: "B_"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, merrors.ErrDisputeStillConflicts))
}

func TestResolve_AlwaysApplyForcesRenameWithoutConflict(t *testing.T) {
	merged := mapOf(map[string]*stub{"Pet": {Type: "object"}})
	incoming := mapOf(map[string]*stub{"Toy": {Type: "object"}})

	renamed, err := Resolve(document.CategorySchemas, 1, merged, incoming, Policy{Prefix: "B_", AlwaysApply: true})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Toy": "B_Toy"}, renamed)
}
