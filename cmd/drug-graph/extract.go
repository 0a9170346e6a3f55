// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/drug-graph/internal/catalogue"
	"github.com/pdiddy/drug-graph/internal/graphstore"
	"github.com/pdiddy/drug-graph/internal/pipeline"
	"github.com/pdiddy/drug-graph/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run the extraction pipeline and write the citation graph",
	Long: `Extract loads the drugs, clinical trials and articles tables from the data
directory, matches every drug name against trial and article titles, and
writes the aggregated citation graph as JSON or YAML.

A malformed drug name or date anywhere in the input aborts the whole run:
the job never writes a partial graph.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("data-dir", "", "directory containing drugs.csv, clinical_trials.csv and pubmed.csv")
	extractCmd.Flags().String("out", "", "output graph file (default output/graph.json)")
	extractCmd.Flags().String("format", "", "output format: json or yaml")
	extractCmd.Flags().Int("partitions", 0, "chunks per input table for the map step")
	extractCmd.Flags().Int("workers", 0, "concurrent map-step workers")
	extractCmd.Flags().String("db", "", "also save the graph into this SQLite database")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfigFromFlags(cmd)

	cat, err := catalogue.Load(cfg.Catalogue)
	if err != nil {
		return err
	}

	graph, err := pipeline.Extract(context.Background(),
		cat.Drugs, cat.ClinicalTrials, cat.Articles, cfg.Extract, os.Stdout)
	if err != nil {
		return err
	}

	if err := graphstore.WriteGraph(cfg.Output.GraphFile, graph, cfg.Output.Format); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d drugs)\n", cfg.Output.GraphFile, len(graph.Drugs))

	if cfg.Store.DBPath != "" {
		store, err := graphstore.NewStore(cfg.Store.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Save(context.Background(), graph); err != nil {
			return err
		}
		fmt.Printf("Saved graph to %s\n", cfg.Store.DBPath)
	}
	return nil
}

// pipelineConfigFromFlags resolves the run configuration: flags beat viper
// settings, which beat built-in defaults.
func pipelineConfigFromFlags(cmd *cobra.Command) types.PipelineConfig {
	return types.PipelineConfig{
		Catalogue: types.CatalogueConfig{
			DataDir:      stringSetting(cmd, "data-dir", "catalogue.data_dir", "data"),
			DrugsFile:    viper.GetString("catalogue.drugs_file"),
			TrialsFile:   viper.GetString("catalogue.trials_file"),
			ArticlesFile: viper.GetString("catalogue.articles_file"),
		},
		Extract: types.ExtractConfig{
			Partitions: intSetting(cmd, "partitions", "extract.partitions"),
			Workers:    intSetting(cmd, "workers", "extract.workers"),
		},
		Output: types.OutputConfig{
			GraphFile: stringSetting(cmd, "out", "output.graph_file", "output/graph.json"),
			Format:    types.GraphFormat(stringSetting(cmd, "format", "output.format", "")),
		},
		Store: types.StoreConfig{
			DBPath: stringSetting(cmd, "db", "store.db_path", ""),
		},
	}
}

func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if v, _ := cmd.Flags().GetInt(flag); v > 0 {
		return v
	}
	return viper.GetInt(key)
}
