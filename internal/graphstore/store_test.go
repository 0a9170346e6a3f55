// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graphstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/drug-graph/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "graph.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleGraph() types.Graph {
	return types.Graph{Drugs: []types.Drug{
		{
			ID: "A1", Name: "ASPIRIN",
			ClinicalTrialReferences: []types.ClinicalTrialReference{
				{Date: "2021-01-12", ClinicalTrialName: "Aspirin trial"},
			},
			ArticleReferences: []types.ArticleReference{
				{Date: "2021-01-12", ArticleName: "Aspirin effects"},
			},
			JournalReferences: []types.JournalReference{
				{Date: "2021-01-12", JournalName: "J1", RefCount: 2},
			},
		},
		{
			ID: "B2", Name: "BETAMETHASONE",
			JournalReferences: []types.JournalReference{
				{Date: "2020-01-01", JournalName: "J1", RefCount: 1},
				{Date: "2020-01-01", JournalName: "J2", RefCount: 1},
			},
		},
		{ID: "C3", Name: "CETIRIZINE"},
	}}
}

func TestSaveAndLoadGraph(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleGraph()))

	loaded, err := store.LoadGraph(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Drugs, 3)

	aspirin := loaded.Drugs[0]
	assert.Equal(t, "A1", aspirin.ID)
	assert.Equal(t, "ASPIRIN", aspirin.Name)
	require.Len(t, aspirin.ClinicalTrialReferences, 1)
	assert.Equal(t, "Aspirin trial", aspirin.ClinicalTrialReferences[0].ClinicalTrialName)
	require.Len(t, aspirin.JournalReferences, 1)
	assert.Equal(t, 2, aspirin.JournalReferences[0].RefCount)

	// A drug with no references round-trips with empty lists.
	cetirizine := loaded.Drugs[2]
	assert.Empty(t, cetirizine.ClinicalTrialReferences)
	assert.Empty(t, cetirizine.ArticleReferences)
	assert.Empty(t, cetirizine.JournalReferences)
}

func TestSaveReplacesPreviousRun(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleGraph()))

	smaller := types.Graph{Drugs: []types.Drug{
		{ID: "X9", Name: "XYLOMETAZOLINE", JournalReferences: []types.JournalReference{
			{Date: "2022-05-01", JournalName: "J9", RefCount: 1},
		}},
	}}
	require.NoError(t, store.Save(ctx, smaller))

	loaded, err := store.LoadGraph(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Drugs, 1)
	assert.Equal(t, "X9", loaded.Drugs[0].ID)

	// Stale journal rows from the first run must be gone too.
	journal, err := store.MostDiverseJournal(ctx)
	require.NoError(t, err)
	assert.Equal(t, "J9", journal)
}

func TestMostDiverseJournalSQL(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, sampleGraph()))

	journal, err := store.MostDiverseJournal(ctx)
	require.NoError(t, err)
	assert.Equal(t, "J1", journal)
}

func TestMostDiverseJournalEmptyStore(t *testing.T) {
	store := testStore(t)

	_, err := store.MostDiverseJournal(context.Background())
	assert.Error(t, err)
}

func TestRelatedDrugsSQL(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, sampleGraph()))

	related, err := store.RelatedDrugs(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, []string{"BETAMETHASONE"}, related)

	related, err = store.RelatedDrugs(ctx, "C3")
	require.NoError(t, err)
	assert.Empty(t, related)
}

func TestRelatedDrugsUnknownID(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save(context.Background(), sampleGraph()))

	_, err := store.RelatedDrugs(context.Background(), "nope")
	assert.ErrorContains(t, err, "unknown drug id")
}
