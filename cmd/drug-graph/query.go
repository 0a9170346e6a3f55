// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/drug-graph/internal/graphquery"
	"github.com/pdiddy/drug-graph/internal/graphstore"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run analytical queries over a finished citation graph",
	Long: `Query answers read-only analytical questions over a graph produced by the
extract command. Queries run against a graph export file by default, or
against a SQLite graph store with --db.`,
}

var queryMostDiverseCmd = &cobra.Command{
	Use:   "most-diverse-journal",
	Short: "Name the journal that mentions the most distinct drugs",
	RunE:  runMostDiverseJournal,
}

var queryRelatedDrugsCmd = &cobra.Command{
	Use:   "related-drugs [drug-id]",
	Short: "List drugs sharing at least one journal with the given drug",
	Args:  cobra.ExactArgs(1),
	RunE:  runRelatedDrugs,
}

func init() {
	queryCmd.PersistentFlags().String("graph", "output/graph.json", "graph file to query (json or yaml)")
	queryCmd.PersistentFlags().String("db", "", "query this SQLite graph store instead of a graph file")

	queryCmd.AddCommand(queryMostDiverseCmd)
	queryCmd.AddCommand(queryRelatedDrugsCmd)
	rootCmd.AddCommand(queryCmd)
}

func runMostDiverseJournal(cmd *cobra.Command, args []string) error {
	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		store, err := graphstore.NewStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		journal, err := store.MostDiverseJournal(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(journal)
		return nil
	}

	graphFile, _ := cmd.Flags().GetString("graph")
	graph, err := graphstore.ReadGraph(graphFile)
	if err != nil {
		return err
	}
	journal, err := graphquery.MostDiverseJournal(graph)
	if err != nil {
		return err
	}
	fmt.Println(journal)
	return nil
}

func runRelatedDrugs(cmd *cobra.Command, args []string) error {
	drugID := args[0]

	var related []string
	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		store, err := graphstore.NewStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		related, err = store.RelatedDrugs(context.Background(), drugID)
		if err != nil {
			return err
		}
	} else {
		graphFile, _ := cmd.Flags().GetString("graph")
		graph, err := graphstore.ReadGraph(graphFile)
		if err != nil {
			return err
		}
		related, err = graphquery.RelatedDrugs(graph, drugID)
		if err != nil {
			return err
		}
	}

	if len(related) == 0 {
		fmt.Println("No related drugs found.")
		return nil
	}
	for _, name := range related {
		fmt.Println(name)
	}
	return nil
}
