// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graphquery answers ad hoc analytical questions over a finished
// citation graph. Queries are read-only and sit outside the pipeline; they
// consume the same Graph shape the pipeline exports.
package graphquery

import (
	"fmt"
	"sort"

	"github.com/pdiddy/drug-graph/pkg/types"
)

// MostDiverseJournal returns the journal mentioned by the most distinct
// drugs. On a tie, an arbitrary journal among the leaders is returned.
func MostDiverseJournal(g types.Graph) (string, error) {
	drugCount := make(map[string]int)
	for _, drug := range g.Drugs {
		seen := make(map[string]bool)
		for _, ref := range drug.JournalReferences {
			if seen[ref.JournalName] {
				continue
			}
			seen[ref.JournalName] = true
			drugCount[ref.JournalName]++
		}
	}

	best := ""
	bestCount := 0
	for journal, count := range drugCount {
		if count > bestCount {
			best = journal
			bestCount = count
		}
	}
	if best == "" {
		return "", fmt.Errorf("graph has no journal references")
	}
	return best, nil
}

// RelatedDrugs returns the names of drugs that share at least one journal
// with the given drug, sorted, the drug itself excluded.
func RelatedDrugs(g types.Graph, drugID string) ([]string, error) {
	var target *types.Drug
	for i := range g.Drugs {
		if g.Drugs[i].ID == drugID {
			target = &g.Drugs[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("unknown drug id %q", drugID)
	}

	journals := make(map[string]bool)
	for _, ref := range target.JournalReferences {
		journals[ref.JournalName] = true
	}

	var related []string
	for _, drug := range g.Drugs {
		if drug.ID == drugID {
			continue
		}
		for _, ref := range drug.JournalReferences {
			if journals[ref.JournalName] {
				related = append(related, drug.Name)
				break
			}
		}
	}
	sort.Strings(related)
	return related, nil
}
