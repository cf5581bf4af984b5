package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rostercost/internal/costing"
	"github.com/alexanderramin/rostercost/internal/domain"
)

type costService struct {
	engine   *costing.Engine
	observer UseCaseObserver
}

func NewCostService(engine *costing.Engine, observers ...UseCaseObserver) CostService {
	return &costService{
		engine:   engine,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *costService) GetProjectCostBreakdown(ctx context.Context, projectID string, year, month int) (calc *domain.CostSharingCalculation, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": projectID, "period": period(year, month)}
	defer observe(ctx, s.observer, "project-cost", startedAt, fields, &err)

	calc, err = s.engine.ProjectCost(ctx, projectID, year, month)
	if err != nil {
		return nil, err
	}
	fields["net_cost"] = calc.NetCost.String()
	return calc, nil
}

func (s *costService) GetAllProjectsCostBreakdown(ctx context.Context, year, month int) (calcs []*domain.CostSharingCalculation, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"period": period(year, month)}
	defer observe(ctx, s.observer, "cost-report", startedAt, fields, &err)

	calcs, err = s.engine.AllProjectsCost(ctx, year, month)
	if err != nil {
		return nil, err
	}
	fields["projects"] = len(calcs)
	return calcs, nil
}

func (s *costService) GetStaffCosts(ctx context.Context, projectID string, year, month int) (costs []domain.StaffCost, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": projectID, "period": period(year, month)}
	defer observe(ctx, s.observer, "staff-cost", startedAt, fields, &err)

	return s.engine.StaffCosts(ctx, projectID, year, month)
}

func period(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
