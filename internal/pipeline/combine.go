// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pdiddy/drug-graph/pkg/types"
)

// ErrIdentityMismatch reports a combine over two partial records that do not
// share a drug identity. It indicates a grouping bug upstream, never a data
// problem.
var ErrIdentityMismatch = errors.New("drug identity mismatch")

// Combine merges two partial records for the same drug. Trial and article
// references concatenate without dedup; journal references are grouped by
// (journal, date) with their counts summed. Combine is associative and
// commutative up to list order, which lets the fold merge partials in any
// order or tree shape.
func Combine(a, b types.Drug) (types.Drug, error) {
	if a.ID != b.ID || a.Name != b.Name {
		return types.Drug{}, fmt.Errorf("%w: (%s, %s) vs (%s, %s)",
			ErrIdentityMismatch, a.ID, a.Name, b.ID, b.Name)
	}

	merged := types.Drug{ID: a.ID, Name: a.Name}

	merged.ClinicalTrialReferences = make([]types.ClinicalTrialReference, 0,
		len(a.ClinicalTrialReferences)+len(b.ClinicalTrialReferences))
	merged.ClinicalTrialReferences = append(merged.ClinicalTrialReferences, a.ClinicalTrialReferences...)
	merged.ClinicalTrialReferences = append(merged.ClinicalTrialReferences, b.ClinicalTrialReferences...)

	merged.ArticleReferences = make([]types.ArticleReference, 0,
		len(a.ArticleReferences)+len(b.ArticleReferences))
	merged.ArticleReferences = append(merged.ArticleReferences, a.ArticleReferences...)
	merged.ArticleReferences = append(merged.ArticleReferences, b.ArticleReferences...)

	all := make([]types.JournalReference, 0, len(a.JournalReferences)+len(b.JournalReferences))
	all = append(all, a.JournalReferences...)
	all = append(all, b.JournalReferences...)
	merged.JournalReferences = dedupJournalReferences(all)

	return merged, nil
}

// dedupJournalReferences groups references by (journal, date) and sums the
// counts, emitting one reference per bucket. The output is sorted by journal
// then date so the same multiset of inputs always yields the same slice.
func dedupJournalReferences(refs []types.JournalReference) []types.JournalReference {
	type bucket struct {
		journal string
		date    string
	}
	counts := make(map[bucket]int, len(refs))
	for _, ref := range refs {
		counts[bucket{ref.JournalName, ref.Date}] += ref.RefCount
	}

	deduped := make([]types.JournalReference, 0, len(counts))
	for b, n := range counts {
		deduped = append(deduped, types.JournalReference{
			Date:        b.date,
			JournalName: b.journal,
			RefCount:    n,
		})
	}
	sort.Slice(deduped, func(i, j int) bool {
		if deduped[i].JournalName != deduped[j].JournalName {
			return deduped[i].JournalName < deduped[j].JournalName
		}
		return deduped[i].Date < deduped[j].Date
	})
	return deduped
}
