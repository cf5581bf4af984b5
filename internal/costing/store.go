// Package costing turns roster assignments into per-project labor cost and
// applies cost-sharing edges between projects.
package costing

import (
	"context"

	"github.com/alexanderramin/rostercost/internal/domain"
)

// Store is the read side the cost engine depends on. Lookups of a single
// record return an error wrapping domain.ErrNotFound when it does not exist.
type Store interface {
	FindProjectByID(ctx context.Context, id string) (*domain.Project, error)
	FindActiveProjects(ctx context.Context) ([]*domain.Project, error)
	FindOutgoingEdges(ctx context.Context, projectID string) ([]*domain.CostSharing, error)
	FindIncomingEdges(ctx context.Context, projectID string) ([]*domain.CostSharing, error)
	FindEdge(ctx context.Context, sourceID, destinationID string) (*domain.CostSharing, error)
	ListEdges(ctx context.Context) ([]*domain.CostSharing, error)
	FindRoster(ctx context.Context, projectID string, year, month int) (*domain.RosterSheet, error)
	ListShiftTypes(ctx context.Context) ([]*domain.ShiftType, error)
}
