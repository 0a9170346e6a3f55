// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graphstore persists finished citation graphs: flat JSON or YAML
// exports for downstream consumers, and a SQLite store for SQL analytics
// over graphs too large to re-read into memory.
package graphstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/drug-graph/pkg/types"
)

// WriteGraph serializes the graph to path in the given format. An empty
// format defaults to JSON. Parent directories are created as needed.
func WriteGraph(path string, g types.Graph, format types.GraphFormat) error {
	var data []byte
	var err error
	switch format {
	case types.FormatJSON, "":
		data, err = json.MarshalIndent(g, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case types.FormatYAML:
		data, err = yaml.Marshal(g)
	default:
		return fmt.Errorf("unknown graph format %q", format)
	}
	if err != nil {
		return fmt.Errorf("serializing graph: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing graph: %w", err)
	}
	return nil
}

// ReadGraph loads a graph exported by WriteGraph, picking the decoder from
// the file extension (.yaml/.yml for YAML, anything else JSON).
func ReadGraph(path string) (types.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Graph{}, fmt.Errorf("reading graph: %w", err)
	}

	var g types.Graph
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &g)
	default:
		err = json.Unmarshal(data, &g)
	}
	if err != nil {
		return types.Graph{}, fmt.Errorf("decoding graph %s: %w", filepath.Base(path), err)
	}
	return g, nil
}
