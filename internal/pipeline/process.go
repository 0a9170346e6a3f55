// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"

	"github.com/pdiddy/drug-graph/internal/dates"
	"github.com/pdiddy/drug-graph/pkg/types"
)

// ProcessTrials is the map step over one (drug slice, trial slice) pair: it
// scans every trial title for every drug name and returns exactly one partial
// record per input drug, article references always empty. A drug with no
// matching trial still gets a record, with empty lists, so it survives into
// the final graph. The first invalid drug name or unparseable date aborts
// the whole invocation.
func ProcessTrials(drugs []types.DrugRecord, trials []types.ClinicalTrial) ([]types.Drug, error) {
	partials := make([]types.Drug, 0, len(drugs))
	for _, drug := range drugs {
		matcher, err := CompileMatcher(drug.Name)
		if err != nil {
			return nil, err
		}

		record := types.Drug{ID: drug.ATCCode, Name: drug.Name}
		for _, trial := range trials {
			if !matcher.MatchString(trial.ScientificTitle) {
				continue
			}
			parsed, err := dates.Parse(trial.Date)
			if err != nil {
				return nil, fmt.Errorf("clinical trial %q: %w", trial.ScientificTitle, err)
			}
			day := dates.Format(parsed)
			record.ClinicalTrialReferences = append(record.ClinicalTrialReferences,
				types.ClinicalTrialReference{Date: day, ClinicalTrialName: trial.ScientificTitle})
			record.JournalReferences = append(record.JournalReferences,
				types.JournalReference{Date: day, JournalName: trial.Journal, RefCount: 1})
		}
		partials = append(partials, record)
	}
	return partials, nil
}

// ProcessArticles mirrors ProcessTrials for the articles table; clinical
// trial references are always empty on its output.
func ProcessArticles(drugs []types.DrugRecord, articles []types.Article) ([]types.Drug, error) {
	partials := make([]types.Drug, 0, len(drugs))
	for _, drug := range drugs {
		matcher, err := CompileMatcher(drug.Name)
		if err != nil {
			return nil, err
		}

		record := types.Drug{ID: drug.ATCCode, Name: drug.Name}
		for _, article := range articles {
			if !matcher.MatchString(article.Title) {
				continue
			}
			parsed, err := dates.Parse(article.Date)
			if err != nil {
				return nil, fmt.Errorf("article %q: %w", article.Title, err)
			}
			day := dates.Format(parsed)
			record.ArticleReferences = append(record.ArticleReferences,
				types.ArticleReference{Date: day, ArticleName: article.Title})
			record.JournalReferences = append(record.JournalReferences,
				types.JournalReference{Date: day, JournalName: article.Journal, RefCount: 1})
		}
		partials = append(partials, record)
	}
	return partials, nil
}
