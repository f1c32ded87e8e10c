package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inputA = `openapi: 3.0.3
info:
  title: A
  version: "1.0"
paths:
  /widgets:
    get:
      operationId: listWidgets
      responses:
        "200":
          description: ok
`

const inputB = `openapi: 3.0.3
info:
  title: B
  version: "1.0"
paths:
  /gadgets:
    get:
      operationId: listGadgets
      responses:
        "200":
          description: ok
`

func TestRun_MergesTwoFilesToYAMLOutput(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.yaml")
	pathB := filepath.Join(dir, "b.yaml")
	output := filepath.Join(dir, "merged.yaml")
	require.NoError(t, os.WriteFile(pathA, []byte(inputA), 0o600))
	require.NoError(t, os.WriteFile(pathB, []byte(inputB), 0o600))

	cfgPath := filepath.Join(dir, "openapi-merge.json")
	cfgBody := `{
		"inputs": [
			{"inputFile": "` + pathA + `"},
			{"inputFile": "` + pathB + `"}
		],
		"output": "` + output + `"
	}`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgBody), 0o600))

	err := run([]string{"--config", cfgPath, "-q"})
	require.NoError(t, err)

	merged, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(merged), "/widgets")
	assert.Contains(t, string(merged), "/gadgets")
}

func TestRun_MissingConfigFails(t *testing.T) {
	dir := t.TempDir()
	err := run([]string{"--config", filepath.Join(dir, "missing.json")})
	require.Error(t, err)
}

func TestMarshalOutput_JSONExtension(t *testing.T) {
	data, err := marshalOutput(map[string]string{"hello": "world"}, "out.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"hello\"")
}

func TestRun_VersionFlagSucceeds(t *testing.T) {
	err := run([]string{"--version"})
	require.NoError(t, err)
}

func TestMarshalOutput_DefaultsToYAML(t *testing.T) {
	data, err := marshalOutput(map[string]string{"hello": "world"}, "")
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello: world")
}
