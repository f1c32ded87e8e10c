package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/openapi-merge/merrors"
)

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "openapi-merge.json")
	writeFile(t, path, `{
		"inputs": [
			{"inputFile": "a.yaml", "dispute": {"prefix": "A_"}},
			{"inputURL": "https://example.com/b.yaml"}
		],
		"output": "merged.yaml"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Inputs, 2)
	assert.Equal(t, "A_", cfg.Inputs[0].Dispute.Prefix)
}

func TestLoad_MissingFileIsConfigInvalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, merrors.ErrConfigInvalid))
}

func TestValidate_RequiresNonEmptyInputs(t *testing.T) {
	cfg := &Config{Output: "merged.yaml"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, merrors.ErrConfigInvalid))
}

func TestValidate_RejectsBothFileAndURL(t *testing.T) {
	cfg := &Config{
		Inputs: []InputConfig{{InputFile: "a.yaml", InputURL: "https://example.com/a.yaml"}},
		Output: "merged.yaml",
	}
	err := cfg.Validate()
	require.Error(t, err)
}

func TestValidate_RejectsNeitherFileNorURL(t *testing.T) {
	cfg := &Config{Inputs: []InputConfig{{}}, Output: "merged.yaml"}
	require.Error(t, cfg.Validate())
}

func TestValidate_RejectsBothPrefixAndSuffix(t *testing.T) {
	cfg := &Config{
		Inputs: []InputConfig{{
			InputFile: "a.yaml",
			Dispute:   &DisputeConfig{Prefix: "A_", Suffix: "_A"},
		}},
		Output: "merged.yaml",
	}
	require.Error(t, cfg.Validate())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
