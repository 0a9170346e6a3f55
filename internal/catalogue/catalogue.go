// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalogue loads the three source tables backing a pipeline run.
// The catalogue is a boundary: the pipeline only sees plain row slices and
// does not care whether they came from local CSV files or elsewhere.
package catalogue

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/drug-graph/pkg/types"
)

// Default table filenames inside the data directory.
const (
	defaultDrugsFile    = "drugs.csv"
	defaultTrialsFile   = "clinical_trials.csv"
	defaultArticlesFile = "pubmed.csv"
)

// Catalogue holds the three loaded source tables.
type Catalogue struct {
	Drugs          []types.DrugRecord
	ClinicalTrials []types.ClinicalTrial
	Articles       []types.Article
}

// Load reads the drugs, clinical trials and articles tables from
// cfg.DataDir. Column names are the contract; column order in each file is
// free, and extra columns are ignored.
func Load(cfg types.CatalogueConfig) (*Catalogue, error) {
	drugsFile := cfg.DrugsFile
	if drugsFile == "" {
		drugsFile = defaultDrugsFile
	}
	trialsFile := cfg.TrialsFile
	if trialsFile == "" {
		trialsFile = defaultTrialsFile
	}
	articlesFile := cfg.ArticlesFile
	if articlesFile == "" {
		articlesFile = defaultArticlesFile
	}

	drugRows, err := readTable(filepath.Join(cfg.DataDir, drugsFile), "atccode", "drug")
	if err != nil {
		return nil, err
	}
	trialRows, err := readTable(filepath.Join(cfg.DataDir, trialsFile), "scientific_title", "date", "journal")
	if err != nil {
		return nil, err
	}
	articleRows, err := readTable(filepath.Join(cfg.DataDir, articlesFile), "title", "date", "journal")
	if err != nil {
		return nil, err
	}

	cat := &Catalogue{
		Drugs:          make([]types.DrugRecord, 0, len(drugRows)),
		ClinicalTrials: make([]types.ClinicalTrial, 0, len(trialRows)),
		Articles:       make([]types.Article, 0, len(articleRows)),
	}
	for _, row := range drugRows {
		cat.Drugs = append(cat.Drugs, types.DrugRecord{
			ATCCode: row["atccode"],
			Name:    row["drug"],
		})
	}
	for _, row := range trialRows {
		cat.ClinicalTrials = append(cat.ClinicalTrials, types.ClinicalTrial{
			ScientificTitle: row["scientific_title"],
			Date:            row["date"],
			Journal:         row["journal"],
		})
	}
	for _, row := range articleRows {
		cat.Articles = append(cat.Articles, types.Article{
			Title:   row["title"],
			Date:    row["date"],
			Journal: row["journal"],
		})
	}
	return cat, nil
}

// readTable reads a CSV file into one map per row, keyed by column name.
// The named columns must all be present in the header.
func readTable(path string, columns ...string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("table %s is empty", filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", filepath.Base(path), err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	for _, col := range columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("table %s: missing column %q", filepath.Base(path), col)
		}
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
		}
		row := make(map[string]string, len(columns))
		for _, col := range columns {
			row[col] = record[index[col]]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
