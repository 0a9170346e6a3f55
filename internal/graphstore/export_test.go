// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graphstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/drug-graph/pkg/types"
)

func TestWriteGraphJSONShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, WriteGraph(path, sampleGraph(), types.FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// The export shape is the external contract: snake_case keys under a
	// top-level "drugs" array.
	var doc map[string][]map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	drugs := doc["drugs"]
	require.Len(t, drugs, 3)
	assert.Equal(t, "A1", drugs[0]["id"])
	assert.Contains(t, drugs[0], "clinical_trial_references")
	assert.Contains(t, drugs[0], "article_references")
	assert.Contains(t, drugs[0], "journal_references")

	refs := drugs[0]["journal_references"].([]any)
	ref := refs[0].(map[string]any)
	assert.Equal(t, "J1", ref["journal_name"])
	assert.Equal(t, float64(2), ref["ref_count"])
	assert.Equal(t, "2021-01-12", ref["date"])
}

func TestGraphRoundTrip(t *testing.T) {
	dir := t.TempDir()
	g := sampleGraph()

	for _, tt := range []struct {
		file   string
		format types.GraphFormat
	}{
		{"graph.json", types.FormatJSON},
		{"graph.yaml", types.FormatYAML},
	} {
		path := filepath.Join(dir, tt.file)
		require.NoError(t, WriteGraph(path, g, tt.format))

		loaded, err := ReadGraph(path)
		require.NoError(t, err, tt.file)
		require.Len(t, loaded.Drugs, len(g.Drugs), tt.file)
		assert.Equal(t, g.Drugs[0], loaded.Drugs[0], tt.file)
	}
}

func TestWriteGraphDefaultsToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, WriteGraph(path, types.Graph{}, ""))

	loaded, err := ReadGraph(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.Drugs)
}

func TestWriteGraphUnknownFormat(t *testing.T) {
	err := WriteGraph(filepath.Join(t.TempDir(), "graph.bin"), types.Graph{}, "protobuf")
	assert.ErrorContains(t, err, "unknown graph format")
}

func TestWriteGraphCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "graph.json")
	require.NoError(t, WriteGraph(path, types.Graph{}, types.FormatJSON))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
