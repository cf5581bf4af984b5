package service

import (
	"context"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/alexanderramin/rostercost/internal/importer"
	"github.com/shopspring/decimal"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// Resolve finds a project by short ID (case-insensitive) or full ID.
	Resolve(ctx context.Context, ref string) (*domain.Project, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Deactivate(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) error
}

type StaffService interface {
	Create(ctx context.Context, s *domain.Staff) error
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
	GetByCode(ctx context.Context, projectID, code string) (*domain.Staff, error)
	ListByProject(ctx context.Context, projectID string, includeInactive bool) ([]*domain.Staff, error)
	Update(ctx context.Context, s *domain.Staff) error
	Deactivate(ctx context.Context, id string) error
}

type ShiftTypeService interface {
	Upsert(ctx context.Context, st *domain.ShiftType) error
	List(ctx context.Context) ([]*domain.ShiftType, error)
	Delete(ctx context.Context, code string) error
	// Seed inserts or refreshes the reference shift catalogue and returns
	// how many codes it wrote.
	Seed(ctx context.Context) (int, error)
}

// ImportResult holds the outcome of a roster import.
type ImportResult struct {
	Project    *domain.Project
	Roster     *domain.Roster
	StaffCount int
	EntryCount int
}

type RosterService interface {
	GetOrCreate(ctx context.Context, projectID string, year, month int) (*domain.Roster, error)
	SetEntry(ctx context.Context, projectID string, year, month int, staffID string, day int, shiftCode string) error
	ClearEntry(ctx context.Context, projectID string, year, month int, staffID string, day int) error
	GetSheet(ctx context.Context, projectID string, year, month int) (*domain.RosterSheet, error)
	Import(ctx context.Context, filePath string) (*ImportResult, error)
	ImportGrid(ctx context.Context, grid *importer.RosterImport) (*ImportResult, error)
}

// ShareInput is one proposed outgoing edge of a project.
type ShareInput struct {
	DestinationProjectID string
	Percentage           decimal.Decimal
}

type CostSharingService interface {
	ListOutgoing(ctx context.Context, projectID string) ([]*domain.CostSharing, error)
	ListIncoming(ctx context.Context, projectID string) ([]*domain.CostSharing, error)
	ListAll(ctx context.Context) ([]*domain.CostSharing, error)
	// ReplaceOutgoing swaps the project's whole outgoing set for shares in
	// one transaction. On any validation error nothing changes.
	ReplaceOutgoing(ctx context.Context, projectID string, shares []ShareInput) ([]*domain.CostSharing, error)
	ValidateNewEdge(ctx context.Context, sourceID, destinationID string) error
	CheckGraph(ctx context.Context) ([]string, error)
}

type CostService interface {
	GetProjectCostBreakdown(ctx context.Context, projectID string, year, month int) (*domain.CostSharingCalculation, error)
	GetAllProjectsCostBreakdown(ctx context.Context, year, month int) ([]*domain.CostSharingCalculation, error)
	GetStaffCosts(ctx context.Context, projectID string, year, month int) ([]domain.StaffCost, error)
}
