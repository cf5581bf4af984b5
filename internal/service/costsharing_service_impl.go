package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rostercost/internal/costing"
	"github.com/alexanderramin/rostercost/internal/db"
	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/alexanderramin/rostercost/internal/repository"
	"github.com/google/uuid"
)

type costSharingService struct {
	sharings repository.CostSharingRepo
	engine   *costing.Engine
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewCostSharingService(
	sharings repository.CostSharingRepo,
	engine *costing.Engine,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) CostSharingService {
	return &costSharingService{
		sharings: sharings,
		engine:   engine,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *costSharingService) ListOutgoing(ctx context.Context, projectID string) ([]*domain.CostSharing, error) {
	return s.sharings.ListOutgoing(ctx, projectID)
}

func (s *costSharingService) ListIncoming(ctx context.Context, projectID string) ([]*domain.CostSharing, error) {
	return s.sharings.ListIncoming(ctx, projectID)
}

func (s *costSharingService) ListAll(ctx context.Context) ([]*domain.CostSharing, error) {
	return s.sharings.ListAll(ctx)
}

func (s *costSharingService) ReplaceOutgoing(ctx context.Context, projectID string, shares []ShareInput) (edges []*domain.CostSharing, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"project": projectID,
		"edges":   len(shares),
		"policy":  string(s.engine.Policy()),
	}
	defer observe(ctx, s.observer, "replace-cost-sharing", startedAt, fields, &err)

	now := time.Now().UTC()
	seen := make(map[string]bool, len(shares))
	edges = make([]*domain.CostSharing, 0, len(shares))
	for _, in := range shares {
		if seen[in.DestinationProjectID] {
			return nil, fmt.Errorf("destination %s listed twice: %w", in.DestinationProjectID, domain.ErrInvalidInput)
		}
		seen[in.DestinationProjectID] = true

		edge := &domain.CostSharing{
			ID:                   uuid.New().String(),
			SourceProjectID:      projectID,
			DestinationProjectID: in.DestinationProjectID,
			Percentage:           in.Percentage,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if err := edge.Validate(); err != nil {
			return nil, err
		}
		edges = append(edges, edge)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		store := repository.NewSQLiteCostStore(tx)
		if _, err := store.FindProjectByID(ctx, projectID); err != nil {
			return err
		}
		for _, e := range edges {
			if _, err := store.FindProjectByID(ctx, e.DestinationProjectID); err != nil {
				return fmt.Errorf("destination: %w", err)
			}
		}

		txEngine := costing.NewEngine(store, costing.WithCyclePolicy(s.engine.Policy()))
		if err := txEngine.ValidateEdgeSet(ctx, projectID, edges); err != nil {
			return err
		}
		return repository.NewSQLiteCostSharingRepo(tx).ReplaceOutgoing(ctx, projectID, edges)
	})
	if err != nil {
		return nil, err
	}
	return edges, nil
}

func (s *costSharingService) ValidateNewEdge(ctx context.Context, sourceID, destinationID string) error {
	return s.engine.ValidateNewEdge(ctx, sourceID, destinationID)
}

func (s *costSharingService) CheckGraph(ctx context.Context) ([]string, error) {
	return s.engine.CheckGraph(ctx)
}
