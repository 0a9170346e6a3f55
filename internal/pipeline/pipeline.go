// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline extracts the drug citation graph from the source tables.
//
// The work is organized as a map step over (drug partition, document
// partition) pairs followed by a key-grouped fold that merges the partial
// records per drug. Partition count and worker count tune parallelism only:
// any split of the inputs, down to one row per partition or one partition
// per table, produces the same graph, because the fold's binary operator
// (Combine) is associative and commutative.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/pdiddy/drug-graph/pkg/types"
)

const (
	defaultPartitions = 2
	defaultWorkers    = 4
)

// Extract builds the full citation graph from the three source tables.
// Progress goes to w. The run has no partial-success mode: the first
// invalid drug name, unparseable date, or grouping inconsistency fails the
// whole call and no graph is returned.
func Extract(ctx context.Context, drugs []types.DrugRecord, trials []types.ClinicalTrial,
	articles []types.Article, cfg types.ExtractConfig, w io.Writer) (types.Graph, error) {

	partitions := cfg.Partitions
	if partitions <= 0 {
		partitions = defaultPartitions
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	drugChunks := partition(drugs, partitions)
	trialChunks := partition(trials, partitions)
	articleChunks := partition(articles, partitions)

	// Schedule one map task per (drug chunk, document chunk) pair. Each
	// task reads only its own read-only slices and owns its output until
	// the fold consumes it.
	type task func() ([]types.Drug, error)
	var tasks []task
	for _, dc := range drugChunks {
		dc := dc // per-iteration copies: the module builds with a pre-1.22
		for _, tc := range trialChunks {
			tc := tc // go directive, where range variables are shared
			tasks = append(tasks, func() ([]types.Drug, error) { return ProcessTrials(dc, tc) })
		}
		for _, ac := range articleChunks {
			ac := ac
			tasks = append(tasks, func() ([]types.Drug, error) { return ProcessArticles(dc, ac) })
		}
	}

	fmt.Fprintf(w, "Extracting references: %d drugs, %d trials, %d articles (%d map tasks, %d workers)\n",
		len(drugs), len(trials), len(articles), len(tasks), workers)

	type result struct {
		partials []types.Drug
		err      error
	}

	taskCh := make(chan task)
	resultCh := make(chan result, len(tasks))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range taskCh {
				partials, err := t()
				resultCh <- result{partials: partials, err: err}
			}
		}()
	}

	go func() {
		for _, t := range tasks {
			taskCh <- t
		}
		close(taskCh)
		wg.Wait()
		close(resultCh)
	}()

	// Barrier: the fold starts only once every map task has reported.
	// On error, keep draining so the workers can finish.
	var all []types.Drug
	var firstErr error
	for r := range resultCh {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		all = append(all, r.partials...)
	}
	if firstErr != nil {
		return types.Graph{}, firstErr
	}
	if err := ctx.Err(); err != nil {
		return types.Graph{}, err
	}

	return fold(all)
}

// fold groups the partial records by drug id and reduces each group to one
// record with Combine. Arrival order of the partials is scheduling noise;
// Combine's associativity and commutativity make it irrelevant.
func fold(partials []types.Drug) (types.Graph, error) {
	groups := make(map[string][]types.Drug)
	var ids []string
	for _, p := range partials {
		if _, ok := groups[p.ID]; !ok {
			ids = append(ids, p.ID)
		}
		groups[p.ID] = append(groups[p.ID], p)
	}
	sort.Strings(ids)

	graph := types.Graph{Drugs: make([]types.Drug, 0, len(ids))}
	for _, id := range ids {
		group := groups[id]
		merged := group[0]
		for _, p := range group[1:] {
			var err error
			merged, err = Combine(merged, p)
			if err != nil {
				return types.Graph{}, err
			}
		}
		graph.Drugs = append(graph.Drugs, merged)
	}
	return graph, nil
}

// partition splits rows into at most n contiguous chunks of near-equal
// size. An empty table still yields one empty chunk: every drug must
// produce a partial record even when there is nothing to scan, so that
// unreferenced drugs reach the final graph.
func partition[T any](rows []T, n int) [][]T {
	if len(rows) == 0 {
		return [][]T{nil}
	}
	if n > len(rows) {
		n = len(rows)
	}
	size := (len(rows) + n - 1) / n
	chunks := make([][]T, 0, n)
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		chunks = append(chunks, rows[start:end])
	}
	return chunks
}
