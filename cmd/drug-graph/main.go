// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the drug-graph CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the drug-graph CLI.
var rootCmd = &cobra.Command{
	Use:   "drug-graph",
	Short: "Build a drug-centric citation graph from trials and articles",
	Long: `drug-graph scans clinical trial and PubMed article tables for mentions of
known drugs and builds a citation graph: for each drug, every trial and
article that mentions it, plus per-journal mention counts by date.

The extract command runs the full batch pipeline over the source tables;
the query command answers analytical questions over a finished graph. A run
either produces a complete graph or fails outright; there is no partial
output.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./drug-graph.yaml or ~/.config/drug-graph/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("drug-graph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "drug-graph"))
		}
	}

	viper.SetEnvPrefix("DRUG_GRAPH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
