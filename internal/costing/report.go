package costing

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rostercost/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ProjectCost computes one project's net cost for the period.
func (e *Engine) ProjectCost(ctx context.Context, projectID string, year, month int) (*domain.CostSharingCalculation, error) {
	if err := domain.ValidatePeriod(year, month); err != nil {
		return nil, err
	}
	if _, err := e.store.FindProjectByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("loading project %s: %w", projectID, err)
	}
	original, err := e.agg.ProjectOriginalCost(ctx, projectID, year, month)
	if err != nil {
		return nil, err
	}
	return e.ComputeNetCost(ctx, projectID, year, month, original)
}

// AllProjectsCost computes the net cost of every active project for the
// period, in the order the store lists them. The first failure aborts the
// whole report and no partial result is returned.
func (e *Engine) AllProjectsCost(ctx context.Context, year, month int) ([]*domain.CostSharingCalculation, error) {
	if err := domain.ValidatePeriod(year, month); err != nil {
		return nil, err
	}
	projects, err := e.store.FindActiveProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading active projects: %w", err)
	}

	results := make([]*domain.CostSharingCalculation, len(projects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, p := range projects {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			original, err := e.agg.ProjectOriginalCost(gctx, p.ID, year, month)
			if err != nil {
				return fmt.Errorf("project %s: %w", p.DisplayID(), err)
			}
			calc, err := e.ComputeNetCost(gctx, p.ID, year, month, original)
			if err != nil {
				return fmt.Errorf("project %s: %w", p.DisplayID(), err)
			}
			results[i] = calc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// StaffCosts returns the per-staff breakdown of one project's original cost.
func (e *Engine) StaffCosts(ctx context.Context, projectID string, year, month int) ([]domain.StaffCost, error) {
	if err := domain.ValidatePeriod(year, month); err != nil {
		return nil, err
	}
	if _, err := e.store.FindProjectByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("loading project %s: %w", projectID, err)
	}
	return e.agg.StaffCosts(ctx, projectID, year, month)
}
