package repository

import (
	"context"

	"github.com/alexanderramin/rostercost/internal/db"
	"github.com/alexanderramin/rostercost/internal/domain"
)

// SQLiteCostStore is the read side of the cost engine, built from the
// per-aggregate repositories over one DBTX.
type SQLiteCostStore struct {
	projects   *SQLiteProjectRepo
	rosters    *SQLiteRosterRepo
	sharings   *SQLiteCostSharingRepo
	shiftTypes *SQLiteShiftTypeRepo
}

// NewSQLiteCostStore creates a SQLiteCostStore.
func NewSQLiteCostStore(db db.DBTX) *SQLiteCostStore {
	return &SQLiteCostStore{
		projects:   NewSQLiteProjectRepo(db),
		rosters:    NewSQLiteRosterRepo(db),
		sharings:   NewSQLiteCostSharingRepo(db),
		shiftTypes: NewSQLiteShiftTypeRepo(db),
	}
}

func (s *SQLiteCostStore) FindProjectByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *SQLiteCostStore) FindActiveProjects(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx, false)
}

func (s *SQLiteCostStore) FindOutgoingEdges(ctx context.Context, projectID string) ([]*domain.CostSharing, error) {
	return s.sharings.ListOutgoing(ctx, projectID)
}

func (s *SQLiteCostStore) FindIncomingEdges(ctx context.Context, projectID string) ([]*domain.CostSharing, error) {
	return s.sharings.ListIncoming(ctx, projectID)
}

func (s *SQLiteCostStore) FindEdge(ctx context.Context, sourceID, destinationID string) (*domain.CostSharing, error) {
	return s.sharings.Get(ctx, sourceID, destinationID)
}

func (s *SQLiteCostStore) ListEdges(ctx context.Context) ([]*domain.CostSharing, error) {
	return s.sharings.ListAll(ctx)
}

// FindRoster returns the project's roster for the period with every entry
// joined to its staff wage.
func (s *SQLiteCostStore) FindRoster(ctx context.Context, projectID string, year, month int) (*domain.RosterSheet, error) {
	ro, err := s.rosters.GetByPeriod(ctx, projectID, year, month)
	if err != nil {
		return nil, err
	}
	lines, err := s.rosters.ListLines(ctx, ro.ID)
	if err != nil {
		return nil, err
	}
	return &domain.RosterSheet{Roster: *ro, Lines: lines}, nil
}

func (s *SQLiteCostStore) ListShiftTypes(ctx context.Context) ([]*domain.ShiftType, error) {
	return s.shiftTypes.List(ctx)
}
