package costing_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/rostercost/internal/costing"
	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/alexanderramin/rostercost/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockStore is a testify mock for costing.Store.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) FindProjectByID(ctx context.Context, id string) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*domain.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) FindActiveProjects(ctx context.Context) ([]*domain.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]*domain.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) FindOutgoingEdges(ctx context.Context, projectID string) ([]*domain.CostSharing, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]*domain.CostSharing); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) FindIncomingEdges(ctx context.Context, projectID string) ([]*domain.CostSharing, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]*domain.CostSharing); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) FindEdge(ctx context.Context, sourceID, destinationID string) (*domain.CostSharing, error) {
	args := m.Called(ctx, sourceID, destinationID)
	if e, ok := args.Get(0).(*domain.CostSharing); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) ListEdges(ctx context.Context) ([]*domain.CostSharing, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]*domain.CostSharing); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) FindRoster(ctx context.Context, projectID string, year, month int) (*domain.RosterSheet, error) {
	args := m.Called(ctx, projectID, year, month)
	if s, ok := args.Get(0).(*domain.RosterSheet); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) ListShiftTypes(ctx context.Context) ([]*domain.ShiftType, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]*domain.ShiftType); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestAllProjectsCost_AbortsOnRosterFailure(t *testing.T) {
	for _, workers := range []int{1, 3} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			ctx := context.Background()
			unavailable := errors.New("store unavailable")
			p1 := testutil.NewTestProject("One")
			p2 := testutil.NewTestProject("Two")
			p3 := testutil.NewTestProject("Three")

			store := new(mockStore)
			store.On("FindActiveProjects", mock.Anything).Return([]*domain.Project{p1, p2, p3}, nil)
			for _, p := range []*domain.Project{p1, p3} {
				store.On("FindRoster", mock.Anything, p.ID, 2024, 1).
					Return((*domain.RosterSheet)(nil), domain.ErrNotFound).Maybe()
				store.On("FindProjectByID", mock.Anything, p.ID).Return(p, nil).Maybe()
				store.On("FindOutgoingEdges", mock.Anything, p.ID).Return([]*domain.CostSharing{}, nil).Maybe()
				store.On("FindIncomingEdges", mock.Anything, p.ID).Return([]*domain.CostSharing{}, nil).Maybe()
			}
			store.On("FindRoster", mock.Anything, p2.ID, 2024, 1).Return((*domain.RosterSheet)(nil), unavailable)

			engine := costing.NewEngine(store, costing.WithWorkers(workers))
			results, err := engine.AllProjectsCost(ctx, 2024, 1)

			require.ErrorIs(t, err, unavailable)
			assert.Nil(t, results)
			store.AssertCalled(t, "FindRoster", mock.Anything, p2.ID, 2024, 1)
		})
	}
}

func TestAllProjectsCost_StoreOrderAndActiveOnly(t *testing.T) {
	ctx := context.Background()
	a := testutil.NewTestProject("Zulu")
	b := testutil.NewTestProject("Alpha")
	off := testutil.NewTestProject("Closed", testutil.WithInactive())
	sa := testutil.NewTestStaff(a.ID, "Z1", testutil.WithWage("100"))
	store := testutil.NewMemoryStore().
		AddProject(a).
		AddProject(off).
		AddProject(b).
		SetRoster(a.ID, 2024, 2, testutil.Lines(sa, "1", "1", "1")).
		AddEdge(testutil.NewTestEdge(a.ID, b.ID, "50"))

	for _, workers := range []int{1, 4} {
		results, err := costing.NewEngine(store, costing.WithWorkers(workers)).AllProjectsCost(ctx, 2024, 2)
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, a.ID, results[0].ProjectID)
		assert.Equal(t, "150", results[0].NetCost.String())
		assert.Equal(t, b.ID, results[1].ProjectID)
		assert.Equal(t, "150", results[1].NetCost.String())
	}
}

func TestAllProjectsCost_InvalidPeriod(t *testing.T) {
	store := testutil.NewMemoryStore()
	_, err := costing.NewEngine(store).AllProjectsCost(context.Background(), 2024, 13)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, store.Calls("FindActiveProjects"))
}

func TestProjectCost_UnknownProject(t *testing.T) {
	_, err := costing.NewEngine(testutil.NewMemoryStore()).ProjectCost(context.Background(), "nope", 2024, 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
