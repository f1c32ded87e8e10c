package merrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathConflictError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &PathConflictError{Path: "/pets", InputIndex: 2}
		assert.Equal(t, `path conflict: "/pets" already declared before input 2`, err.Error())
	})

	t.Run("Is matches ErrPathConflict", func(t *testing.T) {
		err := &PathConflictError{Path: "/pets", InputIndex: 0}
		assert.True(t, errors.Is(err, ErrPathConflict))
		assert.False(t, errors.Is(err, ErrDanglingReference))
	})

	t.Run("As extracts PathConflictError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &PathConflictError{Path: "/pets", InputIndex: 1})
		var pcErr *PathConflictError
		require.True(t, errors.As(err, &pcErr))
		assert.Equal(t, "/pets", pcErr.Path)
		assert.Equal(t, 1, pcErr.InputIndex)
	})
}

func TestDisputeUnresolvedError(t *testing.T) {
	err := &DisputeUnresolvedError{Category: "schemas", Name: "Pet", InputIndex: 1}
	assert.Equal(t, `dispute unresolved: schemas "Pet" from input 1 has no configured rename policy`, err.Error())
	assert.True(t, errors.Is(err, ErrDisputeUnresolved))
}

func TestDisputeStillConflictsError(t *testing.T) {
	err := &DisputeStillConflictsError{Category: "schemas", Original: "Pet", Candidate: "b_Pet"}
	assert.Equal(t, `dispute still conflicts: renaming schemas "Pet" to "b_Pet" collides with an existing definition`, err.Error())
	assert.True(t, errors.Is(err, ErrDisputeStillConflicts))
}

func TestDanglingReferenceError(t *testing.T) {
	err := &DanglingReferenceError{Category: "schemas", Name: "Missing"}
	assert.Equal(t, `dangling reference: schemas "Missing" has no matching definition`, err.Error())
	assert.True(t, errors.Is(err, ErrDanglingReference))
}

func TestIntegrityFailureError(t *testing.T) {
	err := &IntegrityFailureError{Reference: "#/components/schemas/Missing"}
	assert.Equal(t, `integrity failure: "#/components/schemas/Missing" does not resolve in the merged document`, err.Error())
	assert.True(t, errors.Is(err, ErrIntegrityFailure))
}

func TestUnsupportedVersionError(t *testing.T) {
	err := &UnsupportedVersionError{Input: "b.yaml", Version: "3.1.0"}
	assert.Equal(t, `unsupported openapi version "3.1.0" in b.yaml: only 3.0.x is supported`, err.Error())
	assert.True(t, errors.Is(err, ErrUnsupportedVersion))
}

func TestInputUnreachableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &InputUnreachableError{Input: "https://example.com/a.yaml", Cause: cause}
	assert.Equal(t, "input unreachable: https://example.com/a.yaml: connection refused", err.Error())
	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, ErrInputUnreachable))
}

func TestInputUnparseableError(t *testing.T) {
	cause := errors.New("yaml: line 3: did not find expected key")
	err := &InputUnparseableError{Input: "a.yaml", Cause: cause}
	assert.Equal(t, "input unparseable: a.yaml: yaml: line 3: did not find expected key", err.Error())
	assert.True(t, errors.Is(err, ErrInputUnparseable))
}

func TestConfigInvalidError(t *testing.T) {
	err := &ConfigInvalidError{Field: "inputs[0].pathModification.stripStart", Message: "must start with /"}
	assert.Equal(t, "invalid configuration at inputs[0].pathModification.stripStart: must start with /", err.Error())
	assert.True(t, errors.Is(err, ErrConfigInvalid))
}
