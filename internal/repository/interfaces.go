package repository

import (
	"context"

	"github.com/alexanderramin/rostercost/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetActive(ctx context.Context, id string, active bool) error
}

type StaffRepo interface {
	Create(ctx context.Context, s *domain.Staff) error
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
	GetByCode(ctx context.Context, projectID, code string) (*domain.Staff, error)
	ListByProject(ctx context.Context, projectID string, includeInactive bool) ([]*domain.Staff, error)
	Update(ctx context.Context, s *domain.Staff) error
	SetActive(ctx context.Context, id string, active bool) error
}

type ShiftTypeRepo interface {
	Upsert(ctx context.Context, s *domain.ShiftType) error
	GetByCode(ctx context.Context, code string) (*domain.ShiftType, error)
	List(ctx context.Context) ([]*domain.ShiftType, error)
	Delete(ctx context.Context, code string) error
}

// RosterRepo stores rosters and their entries. UpsertEntry keeps at most one
// entry per (roster, staff, day).
type RosterRepo interface {
	Create(ctx context.Context, r *domain.Roster) error
	GetByID(ctx context.Context, id string) (*domain.Roster, error)
	GetByPeriod(ctx context.Context, projectID string, year, month int) (*domain.Roster, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Roster, error)
	UpsertEntry(ctx context.Context, e *domain.RosterEntry) error
	DeleteEntry(ctx context.Context, rosterID, staffID string, day int) error
	ListLines(ctx context.Context, rosterID string) ([]domain.RosterLine, error)
}

// CostSharingRepo stores cost-sharing edges. ReplaceOutgoing deletes and
// re-inserts a project's whole outgoing set and must run inside a unit of
// work to be atomic.
type CostSharingRepo interface {
	Get(ctx context.Context, sourceID, destinationID string) (*domain.CostSharing, error)
	ListOutgoing(ctx context.Context, projectID string) ([]*domain.CostSharing, error)
	ListIncoming(ctx context.Context, projectID string) ([]*domain.CostSharing, error)
	ListAll(ctx context.Context) ([]*domain.CostSharing, error)
	ReplaceOutgoing(ctx context.Context, projectID string, edges []*domain.CostSharing) error
}
