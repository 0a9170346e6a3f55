// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DrugRecord is one row of the drugs table.
type DrugRecord struct {
	// ATCCode is the drug's short identifying code.
	ATCCode string `json:"atccode" yaml:"atccode"`

	// Name is the upper-case display name; allowed charset is [A-Z0-9-]+.
	Name string `json:"drug" yaml:"drug"`
}

// ClinicalTrial is one row of the clinical trials table. Date keeps its
// original spelling; the pipeline normalizes it when a mention is found.
type ClinicalTrial struct {
	ScientificTitle string `json:"scientific_title" yaml:"scientific_title"`
	Date            string `json:"date" yaml:"date"`
	Journal         string `json:"journal" yaml:"journal"`
}

// Article is one row of the articles (PubMed) table.
type Article struct {
	Title   string `json:"title" yaml:"title"`
	Date    string `json:"date" yaml:"date"`
	Journal string `json:"journal" yaml:"journal"`
}
