package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinySpec = `openapi: "3.0.0"
info:
  title: Test
  version: "1.0"
paths: {}
`

func TestSpecInput_MaterializeFile(t *testing.T) {
	specCache.reset()
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tinySpec), 0o644))

	input := specInput{File: path}
	got, cleanup, err := input.materialize()
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, path, got, "a File input should be returned as-is, not copied")
}

func TestSpecInput_MaterializeContent(t *testing.T) {
	specCache.reset()
	input := specInput{Content: tinySpec}
	got, cleanup, err := input.materialize()
	require.NoError(t, err)
	defer cleanup()

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, tinySpec, string(data))
}

func TestSpecInput_MaterializeNoneProvided(t *testing.T) {
	input := specInput{}
	_, _, err := input.materialize()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file, url, or content must be provided")
}

func TestSpecInput_MaterializeMultipleProvided(t *testing.T) {
	input := specInput{File: "foo.yaml", Content: "bar"}
	_, _, err := input.materialize()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file, url, or content must be provided")
}

func TestSpecInput_MaterializeFileNotFound(t *testing.T) {
	input := specInput{File: "/nonexistent/path.yaml"}
	_, _, err := input.materialize()
	assert.Error(t, err)
}

func TestSpecInput_MaterializeContentTooLarge(t *testing.T) {
	orig := cfg.MaxInlineSize
	cfg.MaxInlineSize = 4
	defer func() { cfg.MaxInlineSize = orig }()

	input := specInput{Content: tinySpec}
	_, _, err := input.materialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestSpecCache_ContentHit(t *testing.T) {
	specCache.reset()
	input := specInput{Content: tinySpec}

	path1, cleanup1, err := input.materialize()
	require.NoError(t, err)
	defer cleanup1()
	assert.Equal(t, 1, specCache.size())

	key := makeCacheKey(input)
	cached := specCache.get(key)
	require.NotNil(t, cached)
	assert.Equal(t, tinySpec, string(cached))

	// A second materialize call reuses the cached bytes rather than
	// re-deriving them, but still produces an independent temp file.
	path2, cleanup2, err := input.materialize()
	require.NoError(t, err)
	defer cleanup2()
	assert.NotEqual(t, path1, path2)

	data2, err := os.ReadFile(path2)
	require.NoError(t, err)
	assert.Equal(t, tinySpec, string(data2))
}

func TestSpecCache_LRUEviction(t *testing.T) {
	specCache.reset()

	var firstKey string
	for i := range 11 {
		content := `openapi: "3.0.0"
info:
  title: "Spec ` + string(rune('A'+i)) + `"
  version: "1.0"
paths: {}
`
		if i == 0 {
			firstKey = makeCacheKey(specInput{Content: content})
		}
		input := specInput{Content: content}
		_, cleanup, err := input.materialize()
		require.NoError(t, err)
		cleanup()
	}

	assert.Equal(t, 10, specCache.size())
	assert.Nil(t, specCache.get(firstKey), "expected oldest entry to be evicted")
}
