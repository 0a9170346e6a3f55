// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data structures for drug-graph: the rows of
// the three source tables, the citation graph the pipeline produces, and the
// configuration that drives a run.
package types

// Graph is the drug-centric citation graph produced by one pipeline run.
// Drug order carries no meaning, but each drug identity appears exactly once.
type Graph struct {
	Drugs []Drug `json:"drugs" yaml:"drugs"`
}

// Drug ties one known drug to every mention found in the source tables.
// Identity is the (ID, Name) pair and is immutable once assigned; the
// pipeline merges partial records that share an identity.
type Drug struct {
	// ID is the drug's short code ("atccode"), unique across the drugs table.
	ID string `json:"id" yaml:"id"`

	// Name is the upper-case display name used for matching.
	Name string `json:"name" yaml:"name"`

	// ClinicalTrialReferences lists the clinical trials that mention the drug.
	ClinicalTrialReferences []ClinicalTrialReference `json:"clinical_trial_references" yaml:"clinical_trial_references"`

	// ArticleReferences lists the articles that mention the drug.
	ArticleReferences []ArticleReference `json:"article_references" yaml:"article_references"`

	// JournalReferences aggregates mentions per (journal, date) bucket.
	JournalReferences []JournalReference `json:"journal_references" yaml:"journal_references"`
}

// ClinicalTrialReference records one clinical trial mentioning a drug.
type ClinicalTrialReference struct {
	// Date is the trial's publication date in ISO 8601 form ("YYYY-MM-DD").
	Date string `json:"date" yaml:"date"`

	// ClinicalTrialName is the trial's scientific title.
	ClinicalTrialName string `json:"clinical_trial_name" yaml:"clinical_trial_name"`
}

// ArticleReference records one article mentioning a drug.
type ArticleReference struct {
	Date string `json:"date" yaml:"date"`

	// ArticleName is the article's title.
	ArticleName string `json:"article_name" yaml:"article_name"`
}

// JournalReference counts the distinct source documents (trials plus
// articles) that mention a drug in one journal on one date. The final graph
// holds at most one JournalReference per (journal, date) pair per drug.
type JournalReference struct {
	Date        string `json:"date" yaml:"date"`
	JournalName string `json:"journal_name" yaml:"journal_name"`
	RefCount    int    `json:"ref_count" yaml:"ref_count"`
}
