package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/rostercost/internal/costing"
	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/alexanderramin/rostercost/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ costing.Store = (*SQLiteCostStore)(nil)

func TestCostStore_EngineOverSQLite(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	f := seedRoster(t, database)
	other := testutil.NewTestProject("Annex")
	require.NoError(t, NewSQLiteProjectRepo(database).Create(ctx, other))

	rosters := NewSQLiteRosterRepo(database)
	for day := 1; day <= 29; day++ {
		code := "1"
		if day > 20 {
			code = "OFF"
		}
		require.NoError(t, rosters.UpsertEntry(ctx, entry(f.roster.ID, f.alice.ID, day, code)))
		require.NoError(t, rosters.UpsertEntry(ctx, entry(f.roster.ID, f.bob.ID, day, code)))
	}
	require.NoError(t, NewSQLiteCostSharingRepo(database).ReplaceOutgoing(ctx, f.project.ID, []*domain.CostSharing{
		testutil.NewTestEdge(f.project.ID, other.ID, "25"),
	}))

	engine := costing.NewEngine(NewSQLiteCostStore(database))

	results, err := engine.AllProjectsCost(ctx, 2024, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	byID := map[string]*domain.CostSharingCalculation{}
	for _, r := range results {
		byID[r.ProjectID] = r
	}

	clinic := byID[f.project.ID]
	require.NotNil(t, clinic)
	// 20 × 450 + 20 × 400.50
	assert.Equal(t, "17010", clinic.OriginalCost.String())
	assert.Equal(t, "4252.5", clinic.SharedOut.String())
	assert.Equal(t, "12757.5", clinic.NetCost.String())

	annex := byID[other.ID]
	require.NotNil(t, annex)
	assert.Equal(t, "4252.5", annex.SharedIn.String())
	assert.Equal(t, "Clinic", annex.Incoming[0].CounterpartyName)
}

func TestCostStore_FindRosterMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := NewSQLiteCostStore(database)

	_, err := store.FindRoster(context.Background(), "nope", 2024, 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
