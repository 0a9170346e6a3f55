// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CatalogueConfig holds the location of the three source tables.
type CatalogueConfig struct {
	// DataDir is the directory containing the source CSV files.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// DrugsFile is the drugs table filename (default "drugs.csv").
	DrugsFile string `json:"drugs_file" yaml:"drugs_file"`

	// TrialsFile is the clinical trials table filename (default "clinical_trials.csv").
	TrialsFile string `json:"trials_file" yaml:"trials_file"`

	// ArticlesFile is the articles table filename (default "pubmed.csv").
	ArticlesFile string `json:"articles_file" yaml:"articles_file"`
}

// ExtractConfig holds the parallelism knobs for the extraction pipeline.
// Both knobs tune scheduling only; any setting produces the same graph.
type ExtractConfig struct {
	// Partitions is the number of chunks each input table is split into
	// for the map step (default 2).
	Partitions int `json:"partitions" yaml:"partitions"`

	// Workers is the number of concurrent map-step workers (default 4).
	Workers int `json:"workers" yaml:"workers"`
}

// GraphFormat selects the graph export serialization.
type GraphFormat string

const (
	FormatJSON GraphFormat = "json"
	FormatYAML GraphFormat = "yaml"
)

// OutputConfig holds settings for the graph export.
type OutputConfig struct {
	// GraphFile is the export path (default "output/graph.json").
	GraphFile string `json:"graph_file" yaml:"graph_file"`

	// Format selects the export serialization: json or yaml.
	Format GraphFormat `json:"format" yaml:"format"`
}

// StoreConfig holds settings for the SQLite graph store.
type StoreConfig struct {
	// DBPath is the SQLite database file (empty disables the store).
	DBPath string `json:"db_path" yaml:"db_path"`
}

// PipelineConfig groups all configuration for a drug-graph run.
type PipelineConfig struct {
	Catalogue CatalogueConfig `json:"catalogue" yaml:"catalogue"`
	Extract   ExtractConfig   `json:"extract" yaml:"extract"`
	Output    OutputConfig    `json:"output" yaml:"output"`
	Store     StoreConfig     `json:"store" yaml:"store"`
}
