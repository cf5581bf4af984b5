package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alexanderramin/rostercost/internal/costing"
	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/alexanderramin/rostercost/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAccess_ReportDuringRosterWrites checks that cost reads taken
// while a roster is being filled in always see whole entries. WAL mode lets
// readers proceed alongside the single writer.
func TestConcurrentAccess_ReportDuringRosterWrites(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()

	f := seedRoster(t, database)
	rosters := NewSQLiteRosterRepo(database)
	engine := costing.NewEngine(NewSQLiteCostStore(database))
	wage := f.alice.WagePerDay

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for day := 1; day <= 29; day++ {
			if err := rosters.UpsertEntry(ctx, entry(f.roster.ID, f.alice.ID, day, "1")); err != nil {
				t.Errorf("writer: day %d: %v", day, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				cost, err := engine.Aggregator().ProjectOriginalCost(ctx, f.project.ID, 2024, 2)
				if err != nil {
					t.Errorf("reader %d: %v", reader, err)
					return
				}
				if !cost.Mod(wage).IsZero() {
					t.Errorf("reader %d: cost %s is not a whole number of days", reader, cost)
				}
			}
		}(r)
	}

	wg.Wait()

	cost, err := engine.Aggregator().ProjectOriginalCost(ctx, f.project.ID, 2024, 2)
	require.NoError(t, err)
	assert.True(t, cost.Equal(wage.Mul(decimal.NewFromInt(29))), "got %s", cost)
}

// TestConcurrentAccess_ParallelReport runs the report with several workers
// against a file database and compares it to the sequential result.
func TestConcurrentAccess_ParallelReport(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()

	projects := NewSQLiteProjectRepo(database)
	staff := NewSQLiteStaffRepo(database)
	rosters := NewSQLiteRosterRepo(database)
	sharings := NewSQLiteCostSharingRepo(database)

	const projectCount = 8
	var created []*domain.Project
	for i := 0; i < projectCount; i++ {
		p := testutil.NewTestProject(fmt.Sprintf("Site %d", i), testutil.WithShortID(fmt.Sprintf("PAR%02d", i)))
		require.NoError(t, projects.Create(ctx, p))
		s := testutil.NewTestStaff(p.ID, "S001", testutil.WithWage(fmt.Sprintf("%d", 100*(i+1))))
		require.NoError(t, staff.Create(ctx, s))
		ro := testutil.NewTestRoster(p.ID, 2024, 3)
		require.NoError(t, rosters.Create(ctx, ro))
		for day := 1; day <= 10; day++ {
			require.NoError(t, rosters.UpsertEntry(ctx, entry(ro.ID, s.ID, day, "2")))
		}
		if i > 0 {
			require.NoError(t, sharings.ReplaceOutgoing(ctx, created[i-1].ID, []*domain.CostSharing{
				testutil.NewTestEdge(created[i-1].ID, p.ID, "10"),
			}))
		}
		created = append(created, p)
	}

	store := NewSQLiteCostStore(database)
	sequential, err := costing.NewEngine(store).AllProjectsCost(ctx, 2024, 3)
	require.NoError(t, err)
	parallel, err := costing.NewEngine(store, costing.WithWorkers(4)).AllProjectsCost(ctx, 2024, 3)
	require.NoError(t, err)

	require.Len(t, parallel, projectCount)
	for i := range sequential {
		assert.Equal(t, sequential[i].ProjectID, parallel[i].ProjectID)
		assert.True(t, sequential[i].NetCost.Equal(parallel[i].NetCost))
	}
}
